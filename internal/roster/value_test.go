package roster

import (
	"encoding/json"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		wantKind Kind
		wantStr  string
	}{
		{"", KindEmpty, ""},
		{"   ", KindEmpty, ""},
		{"42", KindNumber, "42"},
		{"-7", KindNumber, "-7"},
		{"3.25", KindNumber, "3.25"},
		{".5", KindNumber, "0.5"},
		{"5.", KindNumber, "5"},
		{"1e3", KindNumber, "1000"},
		{" 12 ", KindNumber, "12"},
		{"0x10", KindString, "0x10"},
		{"NaN", KindString, "NaN"},
		{"Inf", KindString, "Inf"},
		{"1,000", KindString, "1,000"},
		{"Jon Jones", KindString, "Jon Jones"},
		{"  padded  ", KindString, "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseValue(tt.input)
			if got.Kind() != tt.wantKind {
				t.Errorf("ParseValue(%q).Kind() = %v, want %v", tt.input, got.Kind(), tt.wantKind)
			}
			if got.String() != tt.wantStr {
				t.Errorf("ParseValue(%q).String() = %q, want %q", tt.input, got.String(), tt.wantStr)
			}
		})
	}
}

func TestValueLeadingInt(t *testing.T) {
	tests := []struct {
		value  Value
		want   int
		wantOK bool
	}{
		{Number(3.9), 3, true},
		{Number(-3.9), -3, true},
		{String("12abc"), 12, true},
		{String("abc"), 0, false},
		{Empty(), 0, false},
		{Number(1e30), 0, false},
		{Number(-1e30), 0, false},
		{String("99999999999999999999"), 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.value.LeadingInt()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.LeadingInt() = (%d, %v), want (%d, %v)", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValueTruthy(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{Number(1), true},
		{Number(0), false},
		{Empty(), false},
		{String("2"), true},
		{String("0"), false},
		{String("yes"), false},
	}

	for _, tt := range tests {
		if got := tt.value.Truthy(); got != tt.want {
			t.Errorf("%v.Truthy() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValueJSON(t *testing.T) {
	type doc struct {
		A Value `json:"a"`
		B Value `json:"b"`
		C Value `json:"c"`
	}

	data, err := json.Marshal(doc{A: Empty(), B: Number(1.5), C: String("x")})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"a":null,"b":1.5,"c":"x"}` {
		t.Errorf("Marshal = %s", data)
	}

	var back doc
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.A.IsEmpty() || !back.B.Equal(Number(1.5)) || !back.C.Equal(String("x")) {
		t.Errorf("Unmarshal = %+v", back)
	}
}
