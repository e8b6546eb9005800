package pitch

import (
	"reflect"
	"testing"
)

func TestEdges(t *testing.T) {
	tests := []struct {
		name    string
		reading string
		accent  Accent
		want    []EdgeSet
	}{
		{
			name:    "odaka one mora",
			reading: "き",
			accent:  Accent{Kind: Odaka},
			want:    []EdgeSet{EdgeTop, EdgeLeft | EdgeBottom},
		},
		{
			name:    "odaka two morae",
			reading: "かわ",
			accent:  Accent{Kind: Odaka},
			want:    []EdgeSet{EdgeBottom, EdgeLeft | EdgeTop, EdgeLeft | EdgeBottom},
		},
		{
			name:    "heiban three morae",
			reading: "じかん",
			accent:  Accent{Kind: Heiban},
			want:    []EdgeSet{EdgeBottom, EdgeLeft | EdgeTop, EdgeTop, EdgeTop},
		},
		{
			name:    "nakadaka drop two",
			reading: "ひとつ",
			accent:  Accent{Kind: Nakadaka, Drop: 2},
			want:    []EdgeSet{EdgeBottom, EdgeLeft | EdgeTop, EdgeLeft | EdgeBottom, EdgeBottom},
		},
		{
			name:    "nakadaka drop three",
			reading: "あのかた",
			accent:  Accent{Kind: Nakadaka, Drop: 3},
			want:    []EdgeSet{EdgeBottom, EdgeLeft | EdgeTop, EdgeTop, EdgeLeft | EdgeBottom, EdgeBottom},
		},
		{
			name:    "nakadaka low tail",
			reading: "あたらしい",
			accent:  Accent{Kind: Nakadaka, Drop: 2},
			want: []EdgeSet{
				EdgeBottom, EdgeLeft | EdgeTop, EdgeLeft | EdgeBottom,
				EdgeBottom, EdgeBottom, EdgeBottom,
			},
		},
		{
			name:    "atamadaka",
			reading: "てんき",
			accent:  Accent{Kind: Atamadaka},
			want:    []EdgeSet{EdgeTop, EdgeLeft | EdgeBottom, EdgeBottom, EdgeBottom},
		},
		{
			name:    "atamadaka one mora",
			reading: "き",
			accent:  Accent{Kind: Atamadaka},
			want:    []EdgeSet{EdgeTop, EdgeBottom},
		},
		{
			name:    "heiban one mora",
			reading: "ひ",
			accent:  Accent{Kind: Heiban},
			want:    []EdgeSet{EdgeBottom, EdgeTop},
		},
		{
			name:    "segmented morae count as one position",
			reading: "れっしゃ",
			accent:  Accent{Kind: Heiban},
			want:    []EdgeSet{EdgeBottom, EdgeLeft | EdgeTop, EdgeTop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Edges(tt.reading, tt.accent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Edges(%q, %v) = %v, want %v", tt.reading, tt.accent, got, tt.want)
			}
		})
	}
}

func TestEdges_PositionCount(t *testing.T) {
	// One extra position for the following particle, regardless of pattern.
	for _, accent := range []Accent{
		{Kind: Heiban}, {Kind: Atamadaka}, {Kind: Odaka}, {Kind: Nakadaka, Drop: 2},
	} {
		got := Edges("あのかた", accent)
		if len(got) != 5 {
			t.Errorf("%v: got %d positions, want 5", accent, len(got))
		}
	}
}

func TestEdgeSet_Has(t *testing.T) {
	e := EdgeLeft | EdgeTop
	if !e.Has(EdgeTop) || !e.Has(EdgeLeft) {
		t.Error("EdgeSet should contain its own members")
	}
	if e.Has(EdgeBottom) {
		t.Error("EdgeSet should not contain EdgeBottom")
	}
}
