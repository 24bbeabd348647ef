package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"biglittle/internal/common"
	"biglittle/internal/match"
)

// Renderer resolves matching-set indices back to names and renders the run.
type Renderer struct {
	// Names is the registry the run was loaded with.
	Names *match.Names

	// Color enables styled output.
	Color bool
}

// Table renders the run as a bordered table followed by the unmatched lists.
func (r Renderer) Table(set *match.MatchingSet) string {
	border, header, cell, heading, muted := r.styles()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		}).
		Headers("BIG", "LITTLES", "COUNT")

	for _, mt := range set.Matchings() {
		t.Row(
			r.bigName(mt.Big),
			strings.Join(r.littleNames(mt.Littles), ", "),
			strconv.Itoa(len(mt.Littles)),
		)
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")

	writeList(&b, heading.Render("Unmatched bigs:"), r.unmatchedBigNames(set), muted)
	writeList(&b, heading.Render("Unmatched littles:"), r.unmatchedLittleNames(set), muted)

	return b.String()
}

// Plain renders the run without any styling.
func (r Renderer) Plain(set *match.MatchingSet) string {
	var b strings.Builder

	b.WriteString("Matchings:\n")
	if common.IsEmpty(set.Matchings()) {
		b.WriteString("  (none)\n")
	}
	for _, mt := range set.Matchings() {
		fmt.Fprintf(&b, "  %s: %s\n",
			r.bigName(mt.Big), strings.Join(r.littleNames(mt.Littles), ", "))
	}

	fmt.Fprintf(&b, "Unmatched bigs: %s\n", orNone(r.unmatchedBigNames(set)))
	fmt.Fprintf(&b, "Unmatched littles: %s\n", orNone(r.unmatchedLittleNames(set)))

	return b.String()
}

func (r Renderer) styles() (border, header, cell, heading, muted lipgloss.Style) {
	cell = lipgloss.NewStyle().Padding(0, 1)

	if !r.Color {
		return lipgloss.NewStyle(), cell, cell, lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	border = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	header = cell.Bold(true)
	heading = lipgloss.NewStyle().Bold(true)
	muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return border, header, cell, heading, muted
}

func (r Renderer) bigName(idx match.Index[match.Big]) string {
	if name, ok := r.Names.Bigs().NameOf(idx); ok {
		return name
	}

	return fmt.Sprintf("big#%d", idx.Position())
}

func (r Renderer) littleName(idx match.Index[match.Little]) string {
	if name, ok := r.Names.Littles().NameOf(idx); ok {
		return name
	}

	return fmt.Sprintf("little#%d", idx.Position())
}

func (r Renderer) littleNames(littles []match.Index[match.Little]) []string {
	out := make([]string, len(littles))
	for i, l := range littles {
		out[i] = r.littleName(l)
	}

	return out
}

func (r Renderer) unmatchedBigNames(set *match.MatchingSet) []string {
	out := make([]string, 0, len(set.UnmatchedBigs()))
	for _, b := range set.UnmatchedBigs() {
		out = append(out, r.bigName(b))
	}

	return out
}

func (r Renderer) unmatchedLittleNames(set *match.MatchingSet) []string {
	out := make([]string, 0, len(set.UnmatchedLittles()))
	for _, l := range set.UnmatchedLittles() {
		out = append(out, r.littleName(l))
	}

	return out
}

func writeList(b *strings.Builder, heading string, names []string, muted lipgloss.Style) {
	b.WriteString(heading)
	b.WriteString(" ")
	b.WriteString(muted.Render(orNone(names)))
	b.WriteString("\n")
}

func orNone(names []string) string {
	if common.IsEmpty(names) {
		return "(none)"
	}

	return strings.Join(names, ", ")
}
