// Package parser turns the extracted text of one ballot document into a
// structured BallotRecord.
//
// Parsing is a pure function of the input text plus the two fixed
// reference positions: no I/O, no shared state. A Parser is safe for
// concurrent use across documents.
package parser

import (
	"regexp"
	"strings"

	"github.com/washingtonalto/ballotscan/internal/types"
)

// DefaultElectionDate is the election cycle this ballot layout belongs to.
const DefaultElectionDate = "MAY 12, 2025"

// Config configures a Parser.
type Config struct {
	// ElectionDate overrides DefaultElectionDate when set.
	ElectionDate string

	// Fixed positions prepended to every record, in order. Their names
	// are reserved: a matching header in the document text is skipped.
	Fixed []types.Position
}

// Parser extracts one BallotRecord per document text.
type Parser struct {
	electionDate string
	fixed        []types.Position

	locationPattern      *regexp.Regexp
	precinctIDPattern    *regexp.Regexp
	precinctBlockPattern *regexp.Regexp
	headerPattern        *regexp.Regexp
	candidatePattern     *regexp.Regexp
	loneCandidatePattern *regexp.Regexp
}

// New creates a Parser with all patterns compiled up front.
func New(cfg Config) *Parser {
	date := cfg.ElectionDate
	if date == "" {
		date = DefaultElectionDate
	}

	return &Parser{
		electionDate: date,
		fixed:        cfg.Fixed,

		locationPattern:      regexp.MustCompile(`([A-ZÑ, ]+CITY.*?)\n`),
		precinctIDPattern:    regexp.MustCompile(`Clustered Precinct ID:\s*(\w+)`),
		precinctBlockPattern: regexp.MustCompile(`Precincts in Cluster:\s*([\s\S]*?)\n\n`),
		headerPattern:        regexp.MustCompile(`([A-ZÑ ,\-/]+) / Vote for (\d+)`),
		candidatePattern:     regexp.MustCompile(`(?s)(\d{1,3})\.\s+([A-ZÑ.,' \-\n]+?)\s*\((.*?)\)`),
		loneCandidatePattern: regexp.MustCompile(`(?s)1\.\s+([A-ZÑ.,' \-\n]+?)\s*\((.*?)\)`),
	}
}

// Parse builds the record for one document. name identifies the source
// document in errors; it is not part of the output.
func (p *Parser) Parse(name, text string) (*types.BallotRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &DocumentError{Path: name, Err: ErrEmptyDocument}
	}

	meta := p.Preprocess(text)

	positions := make([]types.Position, 0, len(p.fixed)+4)
	positions = append(positions, p.fixed...)

	sess := newSession(p.fixed)
	for _, seg := range p.segments(text, sess) {
		candidates := p.extractCandidates(seg.text)
		if len(candidates) == 0 {
			continue
		}
		positions = append(positions, types.Position{
			Name:         seg.name,
			VoteFor:      seg.voteFor,
			Instructions: types.DefaultInstructions,
			Candidates:   candidates,
		})
	}

	return &types.BallotRecord{
		ElectionDate:        p.electionDate,
		Location:            meta.Location,
		ClusteredPrecinctID: meta.ClusteredPrecinctID,
		PrecinctsInCluster:  meta.Precincts,
		Positions:           positions,
	}, nil
}
