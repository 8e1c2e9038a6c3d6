package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ------- styled stderr helpers (Lip Gloss) -------
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}
