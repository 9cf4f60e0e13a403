// Package types defines the structured ballot record produced by the parser.
package types

// Unknown is the sentinel for metadata fields that could not be located.
const Unknown = "UNKNOWN"

// Independent is the party label substituted for an empty affiliation field.
const Independent = "IND"

// Instructions is the bilingual marking instruction printed beside a position.
type Instructions struct {
	English  string `json:"english"`
	Filipino string `json:"filipino"`
}

// DefaultInstructions is the standard marking instruction for positions
// listed on the ballot face.
var DefaultInstructions = Instructions{
	English:  "Mark the inside of the circle beside the name of the desired candidate.",
	Filipino: "Markahan ang loob ng bilog sa tabi ng nais ibotong kandidato.",
}

// PartyListInstructions directs the voter to the reverse side of the
// ballot, where the party-list candidates are printed.
var PartyListInstructions = Instructions{
	English:  "For PARTY LIST CANDIDATES, CHECK THE BACK OF THIS BALLOT",
	Filipino: "Para sa mga kandidato ng Party List, tingnan ang likod ng balotang ito",
}

// Candidate is one numbered entry under a position.
type Candidate struct {
	Number BallotNumber `json:"number"`
	Name   string       `json:"name"`
	Party  string       `json:"party"`
}

// Position is one electable office with its ordered candidate list.
// Candidates are sorted ascending by ballot number.
type Position struct {
	Name         string       `json:"position"`
	VoteFor      int          `json:"vote_for"`
	Instructions Instructions `json:"instructions"`
	Candidates   []Candidate  `json:"candidates"`
}

// BallotRecord is the full structured output for one ballot document.
type BallotRecord struct {
	ElectionDate        string     `json:"election_date"`
	Location            string     `json:"location"`
	ClusteredPrecinctID string     `json:"clustered_precinct_id"`
	PrecinctsInCluster  []string   `json:"precincts_in_cluster"`
	Positions           []Position `json:"positions"`
}
