// Package preview draws a dialog View tree as a terminal box.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/hxdialog"
)

var (
	borderColor = lipgloss.Color("240")
	mutedColor  = lipgloss.Color("241")
	closeColor  = lipgloss.Color("196")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)
	closeStyle = lipgloss.NewStyle().Foreground(closeColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// panelWidths approximates the el-dialog--{size} widths in terminal cells.
var panelWidths = map[string]int{
	"tiny":  30,
	"small": 50,
	"large": 90,
}

// Options tune the preview.
type Options struct {
	// Width is the terminal width; full size panels fill it.
	Width int
	// Body is the text shown below the header.
	Body string
}

// Render draws v. A tree without a wrapper renders as a muted note.
func Render(v hxdialog.View, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if v.Find(hxdialog.ClassWrapper) == nil {
		return mutedStyle.Render("(dialog hidden)")
	}

	panel := v.Find(hxdialog.ClassDialog)
	if panel == nil {
		return mutedStyle.Render("(dialog has no panel)")
	}
	width := panelWidth(panel, opts.Width)
	inner := width - panelStyle.GetHorizontalFrameSize()

	var title string
	if t := v.Find(hxdialog.ClassTitle); t != nil {
		title = t.Text
	}
	header := titleStyle.Render(title)
	if v.Find(hxdialog.ClassHeaderBtn) != nil {
		closeBtn := closeStyle.Render("✕")
		gap := inner - lipgloss.Width(header) - lipgloss.Width(closeBtn)
		if gap < 1 {
			gap = 1
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, strings.Repeat(" ", gap), closeBtn)
	}

	rows := []string{header}
	if opts.Body != "" {
		rows = append(rows, "", lipgloss.NewStyle().Width(inner).Render(opts.Body))
	}
	rows = append(rows, "", mutedStyle.Render(describe(v, panel)))

	return panelStyle.Width(width - panelStyle.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func panelWidth(panel *hxdialog.View, termWidth int) int {
	for _, class := range panel.Classes {
		size, ok := strings.CutPrefix(class, hxdialog.ClassDialog+"--")
		if !ok {
			continue
		}
		if w, ok := panelWidths[size]; ok && w < termWidth {
			return w
		}
		return termWidth
	}
	return termWidth
}

func describe(v hxdialog.View, panel *hxdialog.View) string {
	parts := []string{strings.Join(panel.Classes, " ")}
	if top := panel.Style["top"]; top != "" {
		parts = append(parts, "top "+top)
	}
	if wrapper := v.Find(hxdialog.ClassWrapper); wrapper != nil {
		parts = append(parts, fmt.Sprintf("z %d", wrapper.Layer))
	}
	if backdrop := v.Find(hxdialog.ClassBackdrop); backdrop != nil {
		parts = append(parts, fmt.Sprintf("backdrop z %d", backdrop.Layer))
	}
	return strings.Join(parts, " · ")
}
