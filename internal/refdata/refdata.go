// Package refdata loads and validates the two fixed reference datasets
// (senators and party-list candidates) and builds the fixed positions
// every ballot record starts with.
//
// Reference data problems are fatal at startup: both fixed positions
// depend on it, so no document is processed until the datasets load
// cleanly.
package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/washingtonalto/ballotscan/internal/types"
)

const (
	// SenatorPosition is the reserved name of the fixed 12-seat position.
	SenatorPosition = "SENATOR"

	// PartyListPosition is the reserved name of the fixed 1-seat position.
	PartyListPosition = "PARTY LIST"

	// SenatorVoteFor is the maximum selectable senator candidates.
	SenatorVoteFor = 12

	// PartyListVoteFor is the maximum selectable party-list entries.
	PartyListVoteFor = 1
)

// ErrNoReferenceData indicates a dataset file held an empty list.
var ErrNoReferenceData = errors.New("reference dataset is empty")

// ValidationError wraps a dataset load or validation failure with the
// dataset it came from.
type ValidationError struct {
	Dataset string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reference dataset %s: %v", e.Dataset, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// candidateSchema validates the structural shape of a reference
// dataset: a non-empty array of {number, name, party} objects, where
// number may be an integer or a numeric string (the published files
// use strings; see types.BallotNumber).
const candidateSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["number", "name", "party"],
    "properties": {
      "number": {"type": ["integer", "string"], "pattern": "^[0-9]+$"},
      "name": {"type": "string", "minLength": 1},
      "party": {"type": "string"}
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("candidates.schema.json", candidateSchema)

// Load reads one reference dataset from path. dataset names the file's
// role in errors (e.g. "senators").
func Load(path, dataset string) ([]types.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ValidationError{Dataset: dataset, Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Dataset: dataset, Err: err}
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, &ValidationError{Dataset: dataset, Err: err}
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, &ValidationError{Dataset: dataset, Err: err}
	}
	if len(candidates) == 0 {
		return nil, &ValidationError{Dataset: dataset, Err: ErrNoReferenceData}
	}
	return candidates, nil
}

// Set holds both loaded reference datasets.
type Set struct {
	Senators  []types.Candidate
	PartyList []types.Candidate
}

// LoadSet loads both datasets, failing on the first invalid one.
func LoadSet(senatorFile, partyListFile string) (*Set, error) {
	senators, err := Load(senatorFile, "senators")
	if err != nil {
		return nil, err
	}
	partyList, err := Load(partyListFile, "party-list")
	if err != nil {
		return nil, err
	}
	return &Set{Senators: senators, PartyList: partyList}, nil
}

// FixedPositions builds the two fixed positions in record order. The
// returned positions are constructed once and shared read-only across
// every document in a batch.
func (s *Set) FixedPositions() []types.Position {
	return []types.Position{
		{
			Name:         SenatorPosition,
			VoteFor:      SenatorVoteFor,
			Instructions: types.DefaultInstructions,
			Candidates:   s.Senators,
		},
		{
			Name:         PartyListPosition,
			VoteFor:      PartyListVoteFor,
			Instructions: types.PartyListInstructions,
			Candidates:   s.PartyList,
		},
	}
}
