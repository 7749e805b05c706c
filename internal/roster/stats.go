package roster

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metric is one row of a detailed stat sheet.
type Metric struct {
	Name  string  `json:"metric"`
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// StatSheet groups the detail metrics shown for a fighter.
type StatSheet struct {
	Striking  []Metric `json:"striking"`
	Wrestling []Metric `json:"wrestling"`
	Grappling []Metric `json:"grappling"`
	Defense   []Metric `json:"defense"`
	Finishing []Metric `json:"finishing"`
}

// Sections returns the sheet in display order with a title per section.
func (s StatSheet) Sections() []StatSection {
	return []StatSection{
		{Title: "Striking", Metrics: s.Striking},
		{Title: "Wrestling", Metrics: s.Wrestling},
		{Title: "Grappling", Metrics: s.Grappling},
		{Title: "Defense", Metrics: s.Defense},
		{Title: "Finishing", Metrics: s.Finishing},
	}
}

// StatSection is a titled group of metrics.
type StatSection struct {
	Title   string
	Metrics []Metric
}

// DetailedStats builds the stat sheet for f.
func DetailedStats(f Fighter) StatSheet {
	return StatSheet{
		Striking: []Metric{
			{Name: "Strikes/Min", Value: f.StrikingDetails.SPLM, Max: 10},
			{Name: "Accuracy", Value: f.StrikingDetails.StrAcc, Max: 100},
			{Name: "Knockdowns/Min", Value: f.StrikingDetails.KD, Max: 25},
			{Name: "Sig Attempts", Value: f.StrikingDetails.SigAtt, Max: 100},
		},
		Wrestling: []Metric{
			{Name: "TD Landed", Value: f.WrestlingDetails.TDL, Max: 5},
			{Name: "TD Accuracy", Value: f.WrestlingDetails.TDAvg, Max: 100},
			{Name: "Control Time", Value: f.WrestlingDetails.Ctrl, Max: 10},
			{Name: "TD Attempts", Value: f.WrestlingDetails.TAtt, Max: 100},
		},
		Grappling: []Metric{
			{Name: "Total Subs", Value: f.GrapplingDetails.TSub, Max: 15},
			{Name: "Sub Average", Value: f.GrapplingDetails.SubAvg, Max: 3},
			{Name: "Sub Attempts", Value: f.GrapplingDetails.SubAtt, Max: 25},
			{Name: "Sub Resistance", Value: f.GrapplingDetails.SubLosses, Max: 100},
		},
		Defense: []Metric{
			{Name: "Strike Defense", Value: f.DefenseDetails.StrDef, Max: 100},
			{Name: "Durability", Value: f.DefenseDetails.Dur, Max: 100},
			{Name: "TD Defense", Value: f.DefenseDetails.TakDef, Max: 100},
			{Name: "Strike Absorb", Value: f.DefenseDetails.StrAbs, Max: 100},
		},
		Finishing: []Metric{
			{Name: "KO Power", Value: float64(f.Finishing), Max: 100},
			{Name: "Sub Threat", Value: math.Round(float64(f.Grappling) * 0.8), Max: 100},
			{Name: "Dominance", Value: float64(f.Dominance), Max: 100},
			{Name: "Finish Rate", Value: math.Round(float64(f.Finishing) * 0.9), Max: 100},
		},
	}
}

// Ratings returns the headline ratings in chart order.
func Ratings(f Fighter) []Metric {
	return []Metric{
		{Name: "Striking", Value: float64(f.Striking), Max: 100},
		{Name: "Wrestling", Value: float64(f.Wrestling), Max: 100},
		{Name: "Grappling", Value: float64(f.Grappling), Max: 100},
		{Name: "Defense", Value: float64(f.Defense), Max: 100},
		{Name: "Finishing", Value: float64(f.Finishing), Max: 100},
	}
}

var divisionNoise = regexp.MustCompile(`[\[\]'"]+`)

// DivisionsLabel renders the divisions cell for display: list brackets
// and quotes are stripped and every word is title-cased.
func DivisionsLabel(f Fighter) string {
	cleaned := strings.TrimSpace(divisionNoise.ReplaceAllString(f.Divisions.String(), ""))
	if cleaned == "" {
		return ""
	}
	return cases.Title(language.English).String(cleaned)
}
