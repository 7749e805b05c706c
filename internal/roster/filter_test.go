package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func sampleFighters() []Fighter {
	mk := func(pos int, name, nickname, class string) Fighter {
		f := NewFighter(pos)
		f.Name = name
		f.Nickname = nickname
		f.WeightClass = class
		return f
	}
	return []Fighter{
		mk(1, "Jon Jones", "Bones", "heavyweight"),
		mk(2, "Islam Makhachev", "", "lightweight"),
		mk(3, "Alex Pereira", "Poatan", "light heavyweight"),
		mk(4, "Jiří Procházka", "Denisa", "light heavyweight"),
		mk(5, "Jonathan Martinez", "Dragon", "bantamweight"),
		mk(6, "Zhang Weili", "Magnum", "women's strawweight"),
	}
}

var ignorePosition = cmpopts.IgnoreUnexported(Fighter{})

func TestFilterPassthrough(t *testing.T) {
	all := sampleFighters()
	got := Filter(all, "", AllWeightClasses)
	if diff := cmp.Diff(all, got, ignorePosition); diff != "" {
		t.Errorf("Filter(all, \"\", sentinel) mismatch (-want +got):\n%s", diff)
	}

	got = Filter(all, "   ", AllWeightClasses)
	assert.Len(t, got, len(all))
}

func TestFilterSearch(t *testing.T) {
	all := sampleFighters()
	tests := []struct {
		term string
		want []string
	}{
		{"jon", []string{"Jon Jones", "Jonathan Martinez"}},
		{"JON", []string{"Jon Jones", "Jonathan Martinez"}},
		{"  jon  ", []string{"Jon Jones", "Jonathan Martinez"}},
		{"bones", []string{"Jon Jones"}},
		{"poatan", []string{"Alex Pereira"}},
		{"PROCHÁZKA", []string{"Jiří Procházka"}},
		{"nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Filter(all, tt.term, AllWeightClasses)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterWeightClass(t *testing.T) {
	all := sampleFighters()

	got := Filter(all, "", "light heavyweight")
	assert.Equal(t, []string{"Alex Pereira", "Jiří Procházka"}, names(got))

	// Exact match only.
	assert.Empty(t, Filter(all, "", "Light Heavyweight"))
	assert.Empty(t, Filter(all, "", "flyweight"))
}

func TestFilterComposesStages(t *testing.T) {
	all := sampleFighters()
	got := Filter(all, "jon", "bantamweight")
	assert.Equal(t, []string{"Jonathan Martinez"}, names(got))

	assert.Empty(t, Filter(all, "jon", "lightweight"))
}

func TestFilterIdempotent(t *testing.T) {
	all := sampleFighters()
	cases := []struct{ term, class string }{
		{"jon", AllWeightClasses},
		{"jon", "heavyweight"},
		{"", "light heavyweight"},
		{"a", AllWeightClasses},
		{"zzz", "flyweight"},
	}

	for _, c := range cases {
		once := Filter(all, c.term, c.class)
		twice := Filter(once, c.term, c.class)
		if diff := cmp.Diff(once, twice, ignorePosition); diff != "" {
			t.Errorf("Filter not idempotent for %+v (-once +twice):\n%s", c, diff)
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, "jon", "heavyweight")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	all := sampleFighters()
	got := Filter(all, "", AllWeightClasses)
	got[0].Name = "Changed"
	assert.Equal(t, "Jon Jones", all[0].Name)
}

func TestCriteria(t *testing.T) {
	c := DefaultCriteria()
	assert.False(t, c.Searching())
	assert.Equal(t, AllWeightClasses, c.WeightClass)

	c2 := Criteria{Search: "jon", WeightClass: AllWeightClasses}
	assert.True(t, c2.Searching())
	assert.False(t, c.Equal(c2))
	assert.True(t, c2.Equal(Criteria{Search: "jon", WeightClass: AllWeightClasses}))

	assert.Equal(t, []string{"Jon Jones", "Jonathan Martinez"}, names(c2.Apply(sampleFighters())))
}
