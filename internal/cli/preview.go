package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Width(12)

// swatch renders c as a block of its own color, labelled with its hex code in
// whichever of black or white reads better on it.
func swatch(c colorspace.Color) string {
	text := colorspace.Black
	if analysis.AnalyzeContrast(c).BestBackground == "white" {
		text = colorspace.White
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Padding(0, 1).
		Render(c.Hex())
}

// sample renders fg text on a bg block.
func sample(fg, bg colorspace.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Padding(0, 2).
		Render("Sample text Aa")
}

type previewRow struct {
	label  string
	colors []colorspace.Color
}

func writePreview(w io.Writer, rows ...previewRow) {
	for _, row := range rows {
		parts := make([]string, len(row.colors))
		for i, c := range row.colors {
			parts[i] = swatch(c)
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row.label), strings.Join(parts, " ")))
	}
}
