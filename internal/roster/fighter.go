package roster

import "fmt"

// Default values applied by Normalize.
const (
	DefaultStance      = "Orthodox"
	DefaultWeightClass = "Unknown"
	DefaultStat        = 75

	// UnrankedSortKey is the rank used for ordering when a fighter has
	// no positive rank.
	UnrankedSortKey = 999
)

// Fighter is the canonical record for one competitor.
type Fighter struct {
	// Identity
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Stance   string `json:"stance"`

	// Ranking
	Overall *float64 `json:"overall"`
	PFPRank int      `json:"pfprank"`
	Rank    int      `json:"rank"`

	// Records are "W-L-D", the UFC record optionally suffixed "-N NC".
	Record    string `json:"record"`
	UFCRecord string `json:"ufcrecord"`

	// Core ratings
	Striking  int `json:"striking"`
	Wrestling int `json:"wrestling"`
	Grappling int `json:"grappling"`
	Defense   int `json:"defense"`
	Finishing int `json:"finishing"`
	Dominance int `json:"dominance"`

	// Division and career passthrough
	WeightClass    string `json:"weight_class"`
	Divisions      Value  `json:"divisions"`
	PFPRankCareer  Value  `json:"pfp_rank_career"`
	DivRankCareer  Value  `json:"div_rank_career"`
	TitleFightWins Value  `json:"titlefights_wins"`
	CareerScore    Value  `json:"career_score"`
	DOB            Value  `json:"dob"`
	Image          Value  `json:"image"`

	// Detail sheets
	StrikingDetails  StrikingDetails  `json:"striking_details"`
	WrestlingDetails WrestlingDetails `json:"wrestling_details"`
	GrapplingDetails GrapplingDetails `json:"grappling_details"`
	DefenseDetails   DefenseDetails   `json:"defense_details"`

	// position is the 1-based row the record came from.
	position int
}

// StrikingDetails holds per-minute and accuracy striking metrics.
type StrikingDetails struct {
	SPLM   float64 `json:"splm"`
	StrAcc float64 `json:"stracc"`
	KD     float64 `json:"kd"`
	SigAtt float64 `json:"sigatt"`
}

// WrestlingDetails holds takedown and control metrics.
type WrestlingDetails struct {
	TDL   float64 `json:"tdl"`
	TDAvg float64 `json:"tdavg"`
	Ctrl  float64 `json:"ctrl"`
	TAtt  float64 `json:"tatt"`
}

// GrapplingDetails holds submission metrics.
type GrapplingDetails struct {
	TSub      float64 `json:"tsub"`
	SubAvg    float64 `json:"subavg"`
	SubAtt    float64 `json:"subatt"`
	SubLosses float64 `json:"sublosses"`
}

// DefenseDetails holds defensive metrics.
type DefenseDetails struct {
	StrDef float64 `json:"strdef"`
	Dur    float64 `json:"dur"`
	TakDef float64 `json:"takdef"`
	StrAbs float64 `json:"strabs"`
}

// NewFighter creates a Fighter carrying every documented default for
// the given 1-based row position.
func NewFighter(position int) Fighter {
	return Fighter{
		Name:           fallbackName(position),
		Stance:         DefaultStance,
		PFPRank:        position,
		Rank:           position,
		Record:         "0-0-0",
		UFCRecord:      "0-0-0",
		Striking:       DefaultStat,
		Wrestling:      DefaultStat,
		Grappling:      DefaultStat,
		Defense:        DefaultStat,
		Finishing:      DefaultStat,
		Dominance:      DefaultStat,
		WeightClass:    DefaultWeightClass,
		Divisions:      String(""),
		TitleFightWins: Number(0),
		CareerScore:    Number(0),
		position:       position,
	}
}

// Position returns the 1-based source row of the record.
func (f Fighter) Position() int {
	return f.position
}

// SortRank is the key the canonical set is ordered by.
func (f Fighter) SortRank() int {
	if f.Rank <= 0 {
		return UnrankedSortKey
	}
	return f.Rank
}

// DisplayRank returns the pound-for-pound rank when no weight class is
// selected and the divisional rank otherwise.
func (f Fighter) DisplayRank(weightClass string) int {
	if weightClass == AllWeightClasses {
		return f.PFPRank
	}
	return f.Rank
}

// Slug returns the URL-safe identifier for the fighter.
func (f Fighter) Slug() string {
	return Slugify(f.Name)
}

// fallbackName is the synthesized name for rows without one.
func fallbackName(position int) string {
	return fmt.Sprintf("Fighter %d", position)
}
