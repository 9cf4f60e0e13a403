package parser

import (
	"strings"

	"github.com/washingtonalto/ballotscan/internal/types"
)

// Metadata holds the document-level fields extracted ahead of position
// parsing. Fields degrade independently: a missing label yields the
// sentinel or an empty list, never an error.
type Metadata struct {
	Location            string
	ClusteredPrecinctID string
	Precincts           []string
}

// Preprocess scans the document text for metadata fields.
func (p *Parser) Preprocess(text string) Metadata {
	meta := Metadata{
		Location:            types.Unknown,
		ClusteredPrecinctID: types.Unknown,
		Precincts:           []string{},
	}

	if m := p.locationPattern.FindStringSubmatch(text); m != nil {
		meta.Location = strings.TrimSpace(m[1])
	}

	if m := p.precinctIDPattern.FindStringSubmatch(text); m != nil {
		meta.ClusteredPrecinctID = m[1]
	}

	if m := p.precinctBlockPattern.FindStringSubmatch(text); m != nil {
		meta.Precincts = splitPrecincts(m[1])
	}

	return meta
}

// splitPrecincts turns the precinct block into a list. Line breaks act
// as item separators equivalent to commas; doubled separators collapse.
func splitPrecincts(block string) []string {
	raw := strings.ReplaceAll(block, "\n", ",")
	raw = strings.ReplaceAll(raw, ",,", ",")

	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
