package ui

import (
	"github.com/pterm/pterm"
)

// Success displays a success message with a checkmark
func Success(message string) {
	pterm.Success.Println(message)
}

// Error displays an error message
func Error(message string) {
	pterm.Error.Println(message)
}

// Warning displays a warning message
func Warning(message string) {
	pterm.Warning.Println(message)
}

// Info displays an info message
func Info(message string) {
	pterm.Info.Println(message)
}

// Println prints a blank line
func Println() {
	pterm.Println()
}

// Section displays a section title
func Section(text string) {
	pterm.Println()
	pterm.DefaultSection.Println(text)
}

// Table creates and renders a table with headers and data
func Table(headers []string, data [][]string) error {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, data...)
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
}

// Confirmation asks user for yes/no confirmation
func Confirmation(message string) bool {
	result, _ := pterm.DefaultInteractiveConfirm.Show(message)
	return result
}

// KeyValue displays a key-value pair in a styled format
func KeyValue(key, value string) {
	pterm.Printf("%s %s\n", pterm.LightCyan(key+":"), value)
}
