package roster

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Recognized source columns.
const (
	ColName           = "name"
	ColNickname       = "nickname"
	ColStance         = "stance"
	ColOverall        = "overall"
	ColPFPRank        = "pfprank"
	ColRank           = "rank"
	ColPFPRankCareer  = "pfp_rank"
	ColDivRankCareer  = "div_rank"
	ColTitleFightWins = "Titlefighs_wins"
	ColDivisions      = "divisions"
	ColMainDivision   = "maindiv"
	ColWins           = "wins"
	ColLosses         = "losses"
	ColDraws          = "draws"
	ColUFCWins        = "ufcwins"
	ColUFCLosses      = "ufclosses"
	ColUFCDraws       = "ufcdraws"
	ColUFCNoContests  = "ufcnocon"
	ColStriking       = "striking"
	ColWrestling      = "wrestling"
	ColGrappling      = "grappling"
	ColDefense        = "defense"
	ColFinishing      = "finishing"
	ColDominance      = "dominance"
	ColCareerScore    = "career_score"
	ColDOB            = "dob"
	ColImageURL       = "image_url"
)

// Normalize maps raw rows onto canonical Fighters. Rows that cannot
// yield a usable record are dropped. The result is stably sorted by rank.
func Normalize(rows []RawRow) []Fighter {
	fighters, _ := NormalizeReport(rows)
	return fighters
}

// NormalizeReport is Normalize that also returns the dropped rows.
func NormalizeReport(rows []RawRow) ([]Fighter, []*ValidationError) {
	fighters := make([]Fighter, 0, len(rows))
	var dropped []*ValidationError

	for i, row := range rows {
		f := normalizeRow(row, i+1)
		if strings.TrimSpace(f.Name) == "" {
			dropped = append(dropped, &ValidationError{Position: i + 1, Reason: "empty name"})
			continue
		}
		fighters = append(fighters, f)
	}

	sort.SliceStable(fighters, func(i, j int) bool {
		return fighters[i].SortRank() < fighters[j].SortRank()
	})

	return fighters, dropped
}

// normalizeRow applies the per-field coercion table to a single row.
func normalizeRow(row RawRow, position int) Fighter {
	f := NewFighter(position)

	if name := textField(row, ColName); name != "" {
		f.Name = name
	}
	f.Nickname = textField(row, ColNickname)
	if stance := textField(row, ColStance); stance != "" {
		f.Stance = stance
	}

	if overall, ok := row.Get(ColOverall).Float(); ok {
		f.Overall = &overall
	}
	f.PFPRank = roundedInt(row, ColPFPRank, position)
	f.Rank = roundedInt(row, ColRank, position)

	f.Record = formatRecord(
		wholeNumber(row, ColWins),
		wholeNumber(row, ColLosses),
		wholeNumber(row, ColDraws),
	)
	f.UFCRecord = formatUFCRecord(row)

	f.Striking = roundedInt(row, ColStriking, DefaultStat)
	f.Wrestling = roundedInt(row, ColWrestling, DefaultStat)
	f.Grappling = roundedInt(row, ColGrappling, DefaultStat)
	f.Defense = roundedInt(row, ColDefense, DefaultStat)
	f.Finishing = roundedInt(row, ColFinishing, DefaultStat)
	f.Dominance = roundedInt(row, ColDominance, DefaultStat)

	if class := textField(row, ColMainDivision); class != "" {
		f.WeightClass = class
	}
	f.Divisions = row.Get(ColDivisions).Or(String(""))
	f.PFPRankCareer = row.Get(ColPFPRankCareer)
	f.DivRankCareer = row.Get(ColDivRankCareer)
	f.TitleFightWins = row.Get(ColTitleFightWins).Or(Number(0))
	f.CareerScore = row.Get(ColCareerScore).Or(Number(0))
	f.DOB = row.Get(ColDOB)
	f.Image = row.Get(ColImageURL)

	f.StrikingDetails = StrikingDetails{
		SPLM:   metric(row, "strikes_landed_permin"),
		StrAcc: metric(row, "striking_acc"),
		KD:     metric(row, "kd_permin"),
		SigAtt: metric(row, "sigstrikes_attempted"),
	}
	f.WrestlingDetails = WrestlingDetails{
		TDL:   metric(row, "takedown_landed"),
		TDAvg: metric(row, "takedown_acc"),
		Ctrl:  metric(row, "control_time"),
		TAtt:  metric(row, "takedown_attempted"),
	}
	f.GrapplingDetails = GrapplingDetails{
		TSub:      metric(row, "total_sub"),
		SubAvg:    metric(row, "sub_avg15"),
		SubAtt:    metric(row, "sub_attempted"),
		SubLosses: metric(row, "sub_resistance"),
	}
	f.DefenseDetails = DefenseDetails{
		StrDef: metric(row, "striking_def"),
		Dur:    metric(row, "durability"),
		TakDef: metric(row, "takedown_def"),
		StrAbs: metric(row, "strabsorbpm"),
	}

	return f
}

// textField returns the trimmed text of a cell, "" when absent.
func textField(row RawRow, col string) string {
	return strings.TrimSpace(row.Get(col).String())
}

// roundedInt rounds a numeric cell half away from zero, falling back
// to def when the cell is absent, empty, not a number or out of range.
func roundedInt(row RawRow, col string, def int) int {
	f, ok := row.Get(col).Float()
	if !ok {
		return def
	}
	n, ok := intFromFloat(math.Round(f))
	if !ok {
		return def
	}
	return n
}

// wholeNumber truncates a numeric cell to an integer, 0 when unusable.
func wholeNumber(row RawRow, col string) int {
	f, ok := row.Get(col).Float()
	if !ok {
		return 0
	}
	n, ok := intFromFloat(math.Trunc(f))
	if !ok {
		return 0
	}
	return n
}

// metric returns a detail metric, 0 when unusable.
func metric(row RawRow, col string) float64 {
	f, ok := row.Get(col).Float()
	if !ok {
		return 0
	}
	return f
}

// formatRecord renders "W-L-D". Negative counts are clamped to zero so
// the result always has three unsigned parts.
func formatRecord(wins, losses, draws int) string {
	return fmt.Sprintf("%d-%d-%d", max(wins, 0), max(losses, 0), max(draws, 0))
}

// formatUFCRecord builds "W-L-D" from the UFC columns with parseInt
// semantics, appending "-N NC" when the no-contest count is non-zero.
func formatUFCRecord(row RawRow) string {
	leading := func(col string) int {
		n, _ := row.Get(col).LeadingInt()
		return n
	}

	record := formatRecord(leading(ColUFCWins), leading(ColUFCLosses), leading(ColUFCDraws))
	if nc := row.Get(ColUFCNoContests); nc.Truthy() {
		record += fmt.Sprintf("-%d NC", max(leading(ColUFCNoContests), 0))
	}
	return record
}
