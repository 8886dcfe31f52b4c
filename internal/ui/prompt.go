package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/dynadojo/dojo-cli/internal/constants"
	"github.com/dynadojo/dojo-cli/internal/selector"
)

// Fragments holds the three naming-convention answers collected from the user.
type Fragments struct {
	Challenge string
	System    string
	Algorithm string
}

// Complete reports whether every fragment has been provided.
func (f Fragments) Complete() bool {
	return f.Challenge != "" && f.System != "" && f.Algorithm != ""
}

// Trimmed returns a copy with surrounding whitespace removed from each field.
// Flag-supplied fragments must pass through here before any matching, so the
// naming-convention token never carries stray whitespace.
func (f Fragments) Trimmed() Fragments {
	return Fragments{
		Challenge: strings.TrimSpace(f.Challenge),
		System:    strings.TrimSpace(f.System),
		Algorithm: strings.TrimSpace(f.Algorithm),
	}
}

// AskFragments prompts for any fragment not already provided. Blank answers
// re-prompt inside the form; returned fragments are always non-empty and
// trimmed.
func AskFragments(defaults Fragments) (Fragments, error) {
	f := defaults

	var fields []huh.Field
	if f.Challenge == "" {
		fields = append(fields, huh.NewInput().
			Title("Challenge").
			Description(fmt.Sprintf("Challenge kind [%s]", constants.ChallengeHint())).
			Value(&f.Challenge).
			Validate(notBlank("challenge")))
	}
	if f.System == "" {
		fields = append(fields, huh.NewInput().
			Title("System").
			Value(&f.System).
			Validate(notBlank("system")))
	}
	if f.Algorithm == "" {
		fields = append(fields, huh.NewInput().
			Title("Algorithm").
			Value(&f.Algorithm).
			Validate(notBlank("algorithm")))
	}

	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return Fragments{}, err
		}
	}

	return f.Trimmed(), nil
}

// PickCandidate shows the numbered menu of params files and returns the
// chosen one. The selection index flows through selector.ResolveSelection so
// the pure resolution logic stays independently testable.
func PickCandidate(candidates []selector.Candidate) (selector.Candidate, error) {
	options := make([]huh.Option[int], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(fmt.Sprintf("%2d. %s", i+1, c.DisplayPath), i+1)
	}

	var choice int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Params file").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return selector.Candidate{}, err
	}

	return selector.ResolveSelection(candidates, choice)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " must not be empty")
		}
		return nil
	}
}
