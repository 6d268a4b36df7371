package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	orchestrators "github.com/ochairo/sbomdiff/internal/domain-orchestrators"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#03AC13"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#03AC13")).Bold(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
)

// printSummary writes the run summary, colouring each line by its kind
func printSummary(w io.Writer, result *orchestrators.Result) {
	fmt.Fprintln(w, titleStyle.Render("SBOM comparison"))

	for _, line := range strings.Split(strings.TrimRight(result.GetComparisonSummary(), "\n"), "\n") {
		fmt.Fprintln(w, styleFor(line).Render(line))
	}
}

func styleFor(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "+ "), strings.HasPrefix(line, "Added:"):
		return addedStyle
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "Removed:"):
		return removedStyle
	case strings.HasPrefix(line, "~ "), strings.HasPrefix(line, "Modified:"):
		return modifiedStyle
	case strings.HasPrefix(line, "Integrity"):
		return successStyle
	default:
		return detailStyle
	}
}
