package types

import (
	"fmt"
	"strconv"
	"strings"
)

// BallotNumber is a candidate's ballot number. The reference datasets
// encode numbers as JSON strings while candidates discovered in the
// document text carry plain integers; the scalar round-trips whichever
// token shape the source used instead of silently unifying them.
type BallotNumber struct {
	text   string
	quoted bool
}

// Num returns a BallotNumber that serializes as a JSON integer.
func Num(n int) BallotNumber {
	return BallotNumber{text: strconv.Itoa(n)}
}

// Int returns the numeric value, or 0 if the source token was not a
// valid number (reference data validation rejects that case upstream).
func (n BallotNumber) Int() int {
	v, err := strconv.Atoi(n.text)
	if err != nil {
		return 0
	}
	return v
}

// String returns the source token without quoting.
func (n BallotNumber) String() string { return n.text }

// MarshalJSON emits the number in its original token shape.
func (n BallotNumber) MarshalJSON() ([]byte, error) {
	if n.quoted {
		return []byte(strconv.Quote(n.text)), nil
	}
	if n.text == "" {
		return []byte("0"), nil
	}
	return []byte(n.text), nil
}

// MarshalYAML mirrors the JSON token shape for the CLI's yaml output.
func (n BallotNumber) MarshalYAML() (any, error) {
	if n.quoted {
		return n.text, nil
	}
	return n.Int(), nil
}

// UnmarshalJSON accepts either a JSON number or a numeric string and
// remembers which one the source used.
func (n *BallotNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid ballot number %s: %w", s, err)
		}
		if _, err := strconv.Atoi(unquoted); err != nil {
			return fmt.Errorf("invalid ballot number %s: %w", s, err)
		}
		n.text = unquoted
		n.quoted = true
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("invalid ballot number %s: %w", s, err)
	}
	n.text = s
	n.quoted = false
	return nil
}
