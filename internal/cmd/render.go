package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ufccards/ufccards/internal/output"
	"github.com/ufccards/ufccards/internal/paginate"
	"github.com/ufccards/ufccards/internal/roster"
)

const (
	cardWidth  = 60
	barWidth   = 20
	nameWidth  = 28
	classWidth = 22
)

// rankHeader labels the rank column for the selected class.
func rankHeader(weightClass string) string {
	if weightClass == roster.AllWeightClasses {
		return "P4P"
	}
	return "Rank"
}

// formatOverall renders the optional overall rating.
func formatOverall(f roster.Fighter) string {
	if f.Overall == nil {
		return output.Color("-", output.Dim)
	}
	return output.FormatRating(*f.Overall)
}

// renderTable renders fighters as a compact table.
func renderTable(fighters []roster.Fighter, weightClass string) string {
	table := output.NewTable(rankHeader(weightClass), "Name", "Nickname", "Weight Class", "Record", "OVR").
		SetAlign(0, output.AlignRight).
		SetAlign(5, output.AlignRight)

	for _, f := range fighters {
		nickname := ""
		if f.Nickname != "" {
			nickname = fmt.Sprintf("%q", f.Nickname)
		}
		table.AddRow(
			output.FormatRank(f.DisplayRank(weightClass)),
			output.Truncate(f.Name, nameWidth),
			output.TruncateCell(nickname, nameWidth),
			output.Truncate(f.WeightClass, classWidth),
			f.Record,
			formatOverall(f),
		)
	}
	return table.RenderCompact()
}

// renderView writes a page of results followed by the result counter.
func renderView(w io.Writer, v paginate.View) {
	if len(v.Fighters) == 0 {
		fmt.Fprintln(w, output.Color("No fighters match.", output.Yellow))
	} else {
		fmt.Fprint(w, renderTable(v.Fighters, v.Criteria.WeightClass))
	}
	fmt.Fprintln(w, v.Summary())
}

// renderCard writes the full card of one fighter.
func renderCard(w io.Writer, f roster.Fighter) {
	fmt.Fprintln(w, output.Header(f.Name, cardWidth))
	if f.Nickname != "" {
		fmt.Fprintln(w, output.Center(fmt.Sprintf("%q", f.Nickname), cardWidth))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-14s %s\n", "Weight class:", f.WeightClass)
	fmt.Fprintf(w, "  %-14s %s   %-6s %s\n", "Division rank:", output.FormatRank(f.Rank),
		"P4P:", output.FormatRank(f.PFPRank))
	fmt.Fprintf(w, "  %-14s %s\n", "Overall:", formatOverall(f))
	fmt.Fprintf(w, "  %-14s %s\n", "Stance:", f.Stance)
	fmt.Fprintf(w, "  %-14s %s   %-6s %s\n", "Record:", f.Record, "UFC:", f.UFCRecord)
	if divisions := roster.DivisionsLabel(f); divisions != "" {
		fmt.Fprintf(w, "  %-14s %s\n", "Divisions:", divisions)
	}
	if !f.DOB.IsEmpty() {
		fmt.Fprintf(w, "  %-14s %s\n", "Born:", f.DOB.String())
	}
	if wins, ok := f.TitleFightWins.Float(); ok && wins > 0 {
		fmt.Fprintf(w, "  %-14s %s\n", "Title wins:", f.TitleFightWins.String())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, output.SubHeader("Ratings", cardWidth))
	for _, m := range roster.Ratings(f) {
		writeMetric(w, m)
	}

	for _, section := range roster.DetailedStats(f).Sections() {
		fmt.Fprintln(w, output.SubHeader(section.Title, cardWidth))
		for _, m := range section.Metrics {
			writeMetric(w, m)
		}
	}
}

func writeMetric(w io.Writer, m roster.Metric) {
	fmt.Fprintf(w, "  %s %s %s\n",
		output.PadRight(m.Name, 16),
		output.Bar(m.Value, m.Max, barWidth),
		formatMetricValue(m.Value))
}

// formatMetricValue drops a trailing ".0" from whole numbers.
func formatMetricValue(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

// renderClasses writes the weight class enumeration, optionally with counts.
func renderClasses(w io.Writer, counts map[string]int, total int) {
	for _, wc := range roster.WeightClasses() {
		if counts == nil {
			fmt.Fprintln(w, wc)
			continue
		}
		n := counts[wc]
		if wc == roster.AllWeightClasses {
			n = total
		}
		fmt.Fprintf(w, "%s %d\n", output.PadRight(wc, classWidth), n)
	}
}
