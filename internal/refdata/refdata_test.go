package refdata

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/washingtonalto/ballotscan/internal/types"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const senatorFixture = `[
  {"number": "1", "name": "ABALOS, BENHUR", "party": "PFP"},
  {"number": "2", "name": "ADONIS, JEROME", "party": "MKBYN"}
]`

const partyListFixture = `[
  {"number": "1", "name": "4PS", "party": "4PS"}
]`

func TestLoad(t *testing.T) {
	path := writeDataset(t, "senators.json", senatorFixture)

	candidates, err := Load(path, "senators")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "ABALOS, BENHUR" || candidates[0].Party != "PFP" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
}

func TestLoadPreservesStringNumbers(t *testing.T) {
	// The published datasets carry ballot numbers as JSON strings;
	// re-serializing must not turn them into integers.
	path := writeDataset(t, "senators.json", senatorFixture)

	candidates, err := Load(path, "senators")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(candidates[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"number":"1"`) {
		t.Errorf("expected string number in %s", raw)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing required field", content: `[{"number": "1", "name": "NO PARTY FIELD"}]`},
		{name: "empty array", content: `[]`},
		{name: "not an array", content: `{"number": "1"}`},
		{name: "non-numeric number string", content: `[{"number": "x", "name": "A", "party": "B"}]`},
		{name: "malformed JSON", content: `[{"number":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, "bad.json", tt.content)

			_, err := Load(path, "senators")
			if err == nil {
				t.Fatal("expected error")
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Dataset != "senators" {
				t.Errorf("expected dataset senators, got %q", vErr.Dataset)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "senators")
	if err == nil {
		t.Fatal("expected error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestLoadSet(t *testing.T) {
	senators := writeDataset(t, "senators.json", senatorFixture)
	partyList := writeDataset(t, "partylist.json", partyListFixture)

	set, err := LoadSet(senators, partyList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Senators) != 2 || len(set.PartyList) != 1 {
		t.Errorf("unexpected set sizes: %d senators, %d party-list", len(set.Senators), len(set.PartyList))
	}
}

func TestFixedPositions(t *testing.T) {
	set := &Set{
		Senators: []types.Candidate{
			{Number: types.Num(1), Name: "ABALOS, BENHUR", Party: "PFP"},
		},
		PartyList: []types.Candidate{
			{Number: types.Num(1), Name: "4PS", Party: "4PS"},
		},
	}

	positions := set.FixedPositions()
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}

	senator := positions[0]
	if senator.Name != SenatorPosition || senator.VoteFor != SenatorVoteFor {
		t.Errorf("senator position: %s / vote for %d", senator.Name, senator.VoteFor)
	}
	if senator.Instructions != types.DefaultInstructions {
		t.Errorf("senator instructions: %+v", senator.Instructions)
	}

	partyList := positions[1]
	if partyList.Name != PartyListPosition || partyList.VoteFor != PartyListVoteFor {
		t.Errorf("party-list position: %s / vote for %d", partyList.Name, partyList.VoteFor)
	}
	if partyList.Instructions != types.PartyListInstructions {
		t.Errorf("party-list instructions: %+v", partyList.Instructions)
	}
	if !strings.Contains(partyList.Instructions.English, "BACK OF THIS BALLOT") {
		t.Errorf("party-list instructions should point to the ballot back: %q", partyList.Instructions.English)
	}
}
