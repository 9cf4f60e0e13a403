package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/washingtonalto/ballotscan/internal/types"
)

// extractCandidates decomposes one segment into numbered candidate
// entries. Strategy A matches the repeating "<n>. NAME (PARTY)" shape;
// when it finds nothing, strategy B retries with a single match
// anchored at entry "1." to recover lone-candidate layouts. An empty
// result drops the position upstream.
func (p *Parser) extractCandidates(section string) []types.Candidate {
	var out []types.Candidate

	for _, m := range p.candidatePattern.FindAllStringSubmatch(section, -1) {
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, newCandidate(number, m[2], m[3]))
	}

	if len(out) == 0 {
		if m := p.loneCandidatePattern.FindStringSubmatch(section); m != nil {
			out = append(out, newCandidate(1, m[1], m[2]))
		}
	}

	// Segment line order normally matches numeric order already; the
	// sort makes the ordering a guarantee instead of an accident.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Number.Int() < out[j].Number.Int()
	})
	return out
}

// newCandidate normalizes a raw match: line breaks inside a wrapped
// name collapse to single spaces, and an empty party field becomes the
// independent label.
func newCandidate(number int, name, party string) types.Candidate {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\n", " "))

	party = strings.TrimSpace(party)
	if party == "" {
		party = types.Independent
	}

	return types.Candidate{
		Number: types.Num(number),
		Name:   name,
		Party:  party,
	}
}
