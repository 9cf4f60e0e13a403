package parser

import (
	"strconv"
	"strings"

	"github.com/washingtonalto/ballotscan/internal/types"
)

// session tracks position names already claimed during one document's
// parse. Created per document, discarded after assembly.
type session struct {
	seen map[string]struct{}
}

// newSession pre-seeds the seen set with the fixed position names so a
// matching header in the text cannot rediscover them.
func newSession(fixed []types.Position) *session {
	s := &session{seen: make(map[string]struct{}, len(fixed)+8)}
	for _, pos := range fixed {
		s.seen[pos.Name] = struct{}{}
	}
	return s
}

// claim marks a name as seen. Returns false if it was already claimed.
func (s *session) claim(name string) bool {
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	return true
}

// segment is the slice of document text belonging to one discovered
// position header: from the end of its header match to the start of
// the next (or end of document).
type segment struct {
	name    string
	voteFor int
	text    string
}

// segments locates every position header in document order and slices
// the text between consecutive headers. Headers whose name was already
// claimed produce no segment.
func (p *Parser) segments(text string, sess *session) []segment {
	matches := p.headerPattern.FindAllStringSubmatchIndex(text, -1)

	segs := make([]segment, 0, len(matches))
	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])
		if !sess.claim(name) {
			continue
		}

		voteFor, err := strconv.Atoi(text[m[4]:m[5]])
		if err != nil {
			// \d+ capture; unreachable short of overflow
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		segs = append(segs, segment{
			name:    name,
			voteFor: voteFor,
			text:    text[m[1]:end],
		})
	}
	return segs
}
