package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/statusline/internal"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorProfile maps a color mode to a termenv profile. Colors are forced on by
// default because the host tool reads the status line through a pipe.
func ColorProfile(mode internal.ColorMode, out io.Writer) termenv.Profile {
	switch mode {
	case internal.ColorNever:
		return termenv.Ascii
	case internal.ColorAuto:
		if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return termenv.TrueColor
		}
		return termenv.Ascii
	default:
		return termenv.TrueColor
	}
}

// ProfileName returns a readable name for a color profile
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "none"
	}
}

// TextRenderer writes the two-line status line:
//
//	[<model>] $<cost> - [<label>] - <usedK>k/<maxK>k (<pct>%) - <elapsed>us
//	<short path>
type TextRenderer struct {
	model      lipgloss.Style
	folder     lipgloss.Style
	usage      lipgloss.Style
	costLow    lipgloss.Style
	costMedium lipgloss.Style
	costHigh   lipgloss.Style
	dim        lipgloss.Style
}

// NewTextRenderer builds segment styles from palette for the given profile.
// Segments are rendered inline so stray newlines cannot add output lines.
func NewTextRenderer(palette internal.Palette, profile termenv.Profile) *TextRenderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	style := func(hex string) lipgloss.Style {
		return r.NewStyle().Inline(true).Foreground(lipgloss.Color(hex))
	}

	return &TextRenderer{
		model:      style(palette.Model),
		folder:     style(palette.Folder),
		usage:      style(palette.Usage),
		costLow:    style(palette.CostLow),
		costMedium: style(palette.CostMedium),
		costHigh:   style(palette.CostHigh),
		dim:        style(palette.Dim),
	}
}

func (r *TextRenderer) costStyle(tier internal.CostTier) lipgloss.Style {
	switch tier {
	case internal.CostTierMedium:
		return r.costMedium
	case internal.CostTierHigh:
		return r.costHigh
	default:
		return r.costLow
	}
}

// Lines returns the two status lines without trailing newlines
func (r *TextRenderer) Lines(m *internal.Metrics) (string, string) {
	usage := fmt.Sprintf("%dk/%dk (%.0f%%)", m.UsedKilotokens, m.MaxKilotokens, m.UsedPercentage)

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(r.model.Render(m.ModelName))
	b.WriteString("] ")
	b.WriteString(r.costStyle(m.CostTier).Render(fmt.Sprintf("$%d", m.CostRoundedUSD)))
	b.WriteString(" - [")
	b.WriteString(r.folder.Render(m.RepoLabel))
	b.WriteString("] - ")
	b.WriteString(r.usage.Render(usage))
	b.WriteString(" - ")
	b.WriteString(r.dim.Render(fmt.Sprintf("%dus", m.ElapsedMicros)))

	return b.String(), r.dim.Render(m.ShortPath)
}

// Render writes both lines to w
func (r *TextRenderer) Render(m *internal.Metrics, w io.Writer) error {
	first, second := r.Lines(m)
	_, err := fmt.Fprintf(w, "%s\n%s\n", first, second)
	return err
}

// Format returns the format name
func (r *TextRenderer) Format() string {
	return "text"
}
