// Package selector finds the output directories left behind by previous
// experiment runs. Directories follow the harness naming convention
// <challenge>_<system>_<algorithm>... under
// <root>/<output>/<challenge>/<system>/.
package selector

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dynadojo/dojo-cli/internal/constants"
)

// ErrIndexOutOfRange is returned when a menu selection falls outside the
// candidate list.
var ErrIndexOutOfRange = errors.New("selection out of range")

// Request identifies which previous run's output directories to look for.
// All fragments must be non-empty and pre-trimmed by the caller.
type Request struct {
	Root      string // cluster scratch root
	Output    string // experiment output dir under Root
	Challenge string
	System    string
	Algorithm string

	// Exact anchors the match to the start of the directory name instead of
	// the default substring containment. The loose default mirrors the
	// harness scripts and can over-match when one token contains another.
	Exact bool
}

// Candidate is one matching output directory.
type Candidate struct {
	// AbsPath is the on-disk location under Root/Output.
	AbsPath string
	// DisplayPath is AbsPath with the Root/Output prefix replaced by the
	// container-relative display root. This is the form shown in menus and
	// handed to the rerun job.
	DisplayPath string
}

// Token returns the underscore-joined naming-convention fragment the
// directory name is matched against.
func (r Request) Token() string {
	return r.Challenge + "_" + r.System + "_" + r.Algorithm
}

// ParentDir returns the directory whose immediate children are candidates.
func (r Request) ParentDir() string {
	return filepath.Join(r.Root, r.Output, r.Challenge, r.System)
}

// ListCandidates enumerates the immediate subdirectories of the request's
// parent directory and returns those matching the naming convention. A
// missing parent directory is a normal empty result, not an error. The
// returned order is whatever the enumeration yields; callers needing a stable
// order must sort.
func ListCandidates(req Request) ([]Candidate, error) {
	parent := req.ParentDir()
	entries, err := os.ReadDir(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", parent, err)
	}

	token := req.Token()
	var candidates []Candidate
	for _, entry := range entries {
		if !isDirOrSymlink(entry, parent) {
			continue
		}
		if !matches(entry.Name(), token, req.Exact) {
			continue
		}
		candidates = append(candidates, Candidate{
			AbsPath:     filepath.Join(parent, entry.Name()),
			DisplayPath: displayPath(req, entry.Name()),
		})
	}
	return candidates, nil
}

// ResolveSelection returns the candidate at the 1-based position n, as
// numbered in the menu shown to the user.
func ResolveSelection(candidates []Candidate, n int) (Candidate, error) {
	if n < 1 || n > len(candidates) {
		return Candidate{}, fmt.Errorf("%w: %d (valid range 1-%d)", ErrIndexOutOfRange, n, len(candidates))
	}
	return candidates[n-1], nil
}

// matches applies the naming-convention filter. The default is a
// case-sensitive, unanchored substring check, faithful to the harness
// scripts. Exact mode requires the name to be the token or start with
// token followed by a separator.
func matches(name, token string, exact bool) bool {
	if exact {
		return name == token || strings.HasPrefix(name, token+"_")
	}
	return strings.Contains(name, token)
}

// displayPath rewrites a candidate name to its container-relative display
// form. Always slash-separated; the rerun job resolves it inside the
// experiment image.
func displayPath(req Request, name string) string {
	return path.Join(constants.DisplayRoot, req.Challenge, req.System, name)
}

// isDirOrSymlink reports whether the entry is a directory or a symlink that
// resolves to one. parentDir is needed to build the full path for symlink
// resolution.
func isDirOrSymlink(entry os.DirEntry, parentDir string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parentDir, entry.Name()))
	return err == nil && fi.IsDir()
}
