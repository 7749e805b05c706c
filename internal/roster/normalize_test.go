package roster

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, text string) []Fighter {
	t.Helper()
	rows, err := ParseCSV(text)
	require.NoError(t, err)
	return Normalize(rows)
}

func names(fighters []Fighter) []string {
	out := make([]string, len(fighters))
	for i, f := range fighters {
		out[i] = f.Name
	}
	return out
}

func TestNormalizeEndToEnd(t *testing.T) {
	fighters := mustNormalize(t, "name,rank,striking\nJon Jones,1,95\n")
	require.Len(t, fighters, 1)

	want := NewFighter(1)
	want.Name = "Jon Jones"
	want.Rank = 1
	want.PFPRank = 1
	want.Striking = 95

	if diff := cmp.Diff(want, fighters[0], cmpopts.IgnoreUnexported(Fighter{})); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	f := fighters[0]
	assert.Equal(t, 75, f.Wrestling)
	assert.Equal(t, "0-0-0", f.Record)
	assert.Equal(t, "Unknown", f.WeightClass)
	assert.Equal(t, "Orthodox", f.Stance)
	assert.Nil(t, f.Overall)
	assert.True(t, f.DOB.IsEmpty())
	assert.True(t, f.PFPRankCareer.IsEmpty())
	assert.Equal(t, Number(0), f.TitleFightWins)
	assert.Equal(t, String(""), f.Divisions)
}

func TestNormalizeDefaultsFromPosition(t *testing.T) {
	fighters := mustNormalize(t, "nickname,stance\nBones,\n,Southpaw\n")
	require.Len(t, fighters, 2)

	assert.Equal(t, "Fighter 1", fighters[0].Name)
	assert.Equal(t, 1, fighters[0].Rank)
	assert.Equal(t, 1, fighters[0].PFPRank)
	assert.Equal(t, "Orthodox", fighters[0].Stance)

	assert.Equal(t, "Fighter 2", fighters[1].Name)
	assert.Equal(t, 2, fighters[1].Rank)
	assert.Equal(t, "Southpaw", fighters[1].Stance)
	assert.Equal(t, "", fighters[1].Nickname)
}

func TestNormalizeOutOfRangeNumbers(t *testing.T) {
	fighters := mustNormalize(t, "name,rank,pfprank,striking,wins,losses\n"+
		"Big,1e30,-1e30,1e30,1e30,2\n"+
		"Small,1000,7,80,3,1\n"+
		"Mid,5,6,80,2,0\n")
	require.Len(t, fighters, 3)

	assert.Equal(t, []string{"Big", "Mid", "Small"}, names(fighters))

	big := fighters[0]
	assert.Equal(t, 1, big.Rank, "out-of-range rank falls back to position")
	assert.Equal(t, 1, big.PFPRank)
	assert.Equal(t, DefaultStat, big.Striking)
	assert.Equal(t, "0-2-0", big.Record)

	for i := 1; i < len(fighters); i++ {
		assert.LessOrEqual(t, fighters[i-1].SortRank(), fighters[i].SortRank())
	}
}

func TestNormalizeWhitespaceNameIsSynthesized(t *testing.T) {
	rows := []RawRow{{"name": String("   ")}}
	fighters, dropped := NormalizeReport(rows)
	require.Len(t, fighters, 1)
	assert.Empty(t, dropped)
	assert.Equal(t, "Fighter 1", fighters[0].Name)
}

func TestNormalizeStatRounding(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"74.5", 75},
		{"74.4", 74},
		{"74.6", 75},
		{"-0.5", -1},
		{"0", 0},
		{"", 75},
		{"n/a", 75},
		{"1e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			row := RawRow{"striking": ParseValue(tt.raw)}
			f := Normalize([]RawRow{row})[0]
			assert.Equal(t, tt.want, f.Striking)
		})
	}
}

func TestNormalizeMissingStats(t *testing.T) {
	f := mustNormalize(t, "name,rank\nJon Jones,1\n")[0]
	for name, got := range map[string]int{
		"striking":  f.Striking,
		"wrestling": f.Wrestling,
		"grappling": f.Grappling,
		"defense":   f.Defense,
		"finishing": f.Finishing,
		"dominance": f.Dominance,
	} {
		assert.Equal(t, DefaultStat, got, name)
	}
	assert.Equal(t, StrikingDetails{}, f.StrikingDetails)
	assert.Equal(t, DefenseDetails{}, f.DefenseDetails)
}

func TestNormalizeExplicitZeroIsKept(t *testing.T) {
	f := mustNormalize(t, "name,rank,pfprank,wrestling,wins,Titlefighs_wins\nZero,0,0,0,0,0\n")[0]
	assert.Equal(t, 0, f.Rank)
	assert.Equal(t, 0, f.PFPRank)
	assert.Equal(t, 0, f.Wrestling)
	assert.Equal(t, "0-0-0", f.Record)
	assert.Equal(t, Number(0), f.TitleFightWins)
	assert.Equal(t, UnrankedSortKey, f.SortRank())
}

func TestNormalizeRecords(t *testing.T) {
	tests := []struct {
		name      string
		csv       string
		record    string
		ufcRecord string
	}{
		{
			name:      "all present",
			csv:       "name,wins,losses,draws,ufcwins,ufclosses,ufcdraws,ufcnocon\nA,27,1,0,22,1,0,1\n",
			record:    "27-1-0",
			ufcRecord: "22-1-0-1 NC",
		},
		{
			name:      "no contest zero",
			csv:       "name,ufcwins,ufclosses,ufcdraws,ufcnocon\nA,5,2,0,0\n",
			record:    "0-0-0",
			ufcRecord: "5-2-0",
		},
		{
			name:      "fractional and text counts",
			csv:       "name,wins,losses,ufcwins,ufclosses\nA,3.0,2.7,12abc,x\n",
			record:    "3-2-0",
			ufcRecord: "12-0-0",
		},
		{
			name:      "missing columns",
			csv:       "name\tnickname\nA\tB\n",
			record:    "0-0-0",
			ufcRecord: "0-0-0",
		},
	}

	shape := regexp.MustCompile(`^\d+-\d+-\d+(-\d+ NC)?$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, tt.csv)[0]
			assert.Equal(t, tt.record, f.Record)
			assert.Equal(t, tt.ufcRecord, f.UFCRecord)
			assert.Regexp(t, shape, f.Record)
			assert.Regexp(t, shape, f.UFCRecord)
		})
	}
}

func TestNormalizePassthrough(t *testing.T) {
	csv := "name,overall,divisions,pfp_rank,div_rank,career_score,dob,image_url,maindiv\n" +
		"Jon Jones,97.5,\"['heavyweight', 'light heavyweight']\",1,2,88.1,1987-07-19,https://img/jj.png,heavyweight\n"
	f := mustNormalize(t, csv)[0]

	require.NotNil(t, f.Overall)
	assert.Equal(t, 97.5, *f.Overall)
	assert.Equal(t, "['heavyweight', 'light heavyweight']", f.Divisions.String())
	assert.Equal(t, Number(1), f.PFPRankCareer)
	assert.Equal(t, Number(2), f.DivRankCareer)
	assert.Equal(t, Number(88.1), f.CareerScore)
	assert.Equal(t, "1987-07-19", f.DOB.String())
	assert.Equal(t, "https://img/jj.png", f.Image.String())
	assert.Equal(t, "heavyweight", f.WeightClass)
}

func TestNormalizeDetails(t *testing.T) {
	csv := "name,strikes_landed_permin,striking_acc,kd_permin,sigstrikes_attempted," +
		"takedown_landed,takedown_acc,control_time,takedown_attempted," +
		"total_sub,sub_avg15,sub_attempted,sub_resistance," +
		"striking_def,durability,takedown_def,strabsorbpm\n" +
		"A,4.3,57,0.5,9,1.9,45,3.2,4,7,0.6,12,90,64,88,95,2.2\n"
	f := mustNormalize(t, csv)[0]

	assert.Equal(t, StrikingDetails{SPLM: 4.3, StrAcc: 57, KD: 0.5, SigAtt: 9}, f.StrikingDetails)
	assert.Equal(t, WrestlingDetails{TDL: 1.9, TDAvg: 45, Ctrl: 3.2, TAtt: 4}, f.WrestlingDetails)
	assert.Equal(t, GrapplingDetails{TSub: 7, SubAvg: 0.6, SubAtt: 12, SubLosses: 90}, f.GrapplingDetails)
	assert.Equal(t, DefenseDetails{StrDef: 64, Dur: 88, TakDef: 95, StrAbs: 2.2}, f.DefenseDetails)
}

func TestNormalizeStableSort(t *testing.T) {
	csv := "name,rank\n" +
		"A,2\n" +
		"B,1\n" +
		"C,2\n" +
		"D,\n" +
		"E,0\n" +
		"F,0\n" +
		"G,3\n"
	fighters := mustNormalize(t, csv)

	// D defaults to its position (4); E and F sort as unranked, keeping order.
	assert.Equal(t, []string{"B", "A", "C", "G", "D", "E", "F"}, names(fighters))
}

func TestNormalizeDeterministic(t *testing.T) {
	csv := "name,rank,striking\nA,3,70\nB,1,80\nC,3,90\nD,2,60\n"
	first := mustNormalize(t, csv)
	for i := 0; i < 5; i++ {
		again := mustNormalize(t, csv)
		if diff := cmp.Diff(first, again, cmpopts.IgnoreUnexported(Fighter{})); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
		assert.Equal(t, names(first), names(again))
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	rows := []RawRow{
		{"name": String("B"), "rank": Number(2)},
		{"name": String("A"), "rank": Number(1)},
	}
	_ = Normalize(rows)
	assert.Equal(t, "B", rows[0].Get("name").String())
	assert.Equal(t, "A", rows[1].Get("name").String())
	assert.Len(t, rows[0], 2)
}

func TestNormalizeRetainsPosition(t *testing.T) {
	fighters := mustNormalize(t, "name,rank\nA,2\nB,1\n")
	assert.Equal(t, 2, fighters[0].Position())
	assert.Equal(t, 1, fighters[1].Position())
}
