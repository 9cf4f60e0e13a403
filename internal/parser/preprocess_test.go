package parser

import (
	"testing"

	"github.com/washingtonalto/ballotscan/internal/types"
)

func TestPreprocessLocation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "city line",
			text: "OFFICIAL BALLOT\nMAKATI CITY\nClustered Precinct ID: 0001A\n",
			want: "MAKATI CITY",
		},
		{
			name: "city with region suffix",
			text: "PARAÑAQUE CITY, FOURTH DISTRICT\nmore text\n",
			want: "PARAÑAQUE CITY, FOURTH DISTRICT",
		},
		{
			name: "no city token",
			text: "MUNICIPALITY OF JOMALIG, QUEZON\n",
			want: types.Unknown,
		},
		{
			name: "lowercase city ignored",
			text: "makati city\n",
			want: types.Unknown,
		},
	}

	p := testParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := p.Preprocess(tt.text)
			if meta.Location != tt.want {
				t.Errorf("got %q, want %q", meta.Location, tt.want)
			}
		})
	}
}

func TestPreprocessClusteredPrecinctID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labelled id",
			text: "Clustered Precinct ID: 7402B\n",
			want: "7402B",
		},
		{
			name: "no whitespace after label",
			text: "Clustered Precinct ID:7402B\n",
			want: "7402B",
		},
		{
			name: "label absent",
			text: "no identifier here\n",
			want: types.Unknown,
		},
	}

	p := testParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := p.Preprocess(tt.text)
			if meta.ClusteredPrecinctID != tt.want {
				t.Errorf("got %q, want %q", meta.ClusteredPrecinctID, tt.want)
			}
		})
	}
}

func TestPreprocessPrecincts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comma separated",
			text: "Precincts in Cluster: 0001A, 0002B, 0003C\n\nrest",
			want: []string{"0001A", "0002B", "0003C"},
		},
		{
			name: "newlines as separators",
			text: "Precincts in Cluster: 0001A\n0002B\n0003C\n\nrest",
			want: []string{"0001A", "0002B", "0003C"},
		},
		{
			name: "mixed separators collapse",
			text: "Precincts in Cluster: 0001A,\n0002B,\n0003C\n\nrest",
			want: []string{"0001A", "0002B", "0003C"},
		},
		{
			name: "label absent yields empty list",
			text: "no precinct block\n\n",
			want: []string{},
		},
		{
			name: "block without terminator yields empty list",
			text: "Precincts in Cluster: 0001A, 0002B",
			want: []string{},
		},
	}

	p := testParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := p.Preprocess(tt.text)
			if len(meta.Precincts) != len(tt.want) {
				t.Fatalf("got %v, want %v", meta.Precincts, tt.want)
			}
			for i := range tt.want {
				if meta.Precincts[i] != tt.want[i] {
					t.Errorf("item %d: got %q, want %q", i, meta.Precincts[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitPrecincts(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{name: "doubled commas collapse", block: "A,,B", want: []string{"A", "B"}},
		{name: "surrounding whitespace trimmed", block: "  A ,\n B ", want: []string{"A", "B"}},
		{name: "empty block", block: "", want: []string{}},
		{name: "separators only", block: ",\n,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPrecincts(tt.block)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("item %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
