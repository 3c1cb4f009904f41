package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorGreen marks a step that succeeded.
	ColorGreen = lipgloss.Color("10")

	// ColorRed marks a step that failed.
	ColorRed = lipgloss.Color("9")

	// ColorCyan is used for template names.
	ColorCyan = lipgloss.Color("14")
)

var (
	StyleOK     = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleFail   = lipgloss.NewStyle().Foreground(ColorRed)
	StyleNoun   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleBanner = lipgloss.NewStyle().Bold(true)
)

// Status words printed after each step.
const (
	StatusOK   = "OK"
	StatusFail = "FAIL"
)

// Banner writes title framed above and below by rule, with the title in
// StyleBanner.
func Banner(w io.Writer, rule, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, StyleBanner.Render(title), rule)
	return err
}
