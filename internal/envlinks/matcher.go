package envlinks

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// localhostRegex matches a localhost URL found at the start of the text or right after whitespace, either bare
// or as the destination of a markdown link. Groups are: 1 label, 2 origin, 3 tail.
//
// The tail is greedy over non-whitespace, so for markdown links it usually swallows the closing parenthesis,
// which cannot be told apart from a literal one at this point (see Match.Path).
//
// Labels ending in "Development" are rejected, which keeps links produced by a previous rewrite from being
// wrapped again.
//
// Port digits are ASCII only and labels stop at line terminators, as regexp2 would otherwise accept any Unicode
// digit for \d and a carriage return for the dot.
var localhostRegex = regexp2.MustCompile(
	`(?<=^|\s)(?:\[([^\r\n\u2028\u2029]+?)(?<!Development)\]\(|)(https?://localhost(?::[0-9]*)?)(\S*)?\)?`,
	regexp2.IgnoreCase,
)

// Match is a single localhost reference found in a text.
type Match struct {
	// Label of the markdown link, empty for bare URLs.
	Label string

	// Origin is the scheme, host and optional port, as written.
	Origin string

	// Tail is whatever non-whitespace text directly follows the origin.
	Tail string
}

func (m Match) IsMarkdownLink() bool {
	return m.Label != ""
}

// Path returns the path, query and fragment of the matched URL. For markdown links a single trailing parenthesis
// is dropped from the tail, as it is most likely the link's closing one. It is only a single one because `)` is
// a valid URL character.
func (m Match) Path() string {
	if m.IsMarkdownLink() {
		return strings.TrimSuffix(m.Tail, ")")
	}
	return m.Tail
}

// URL returns the matched localhost URL.
func (m Match) URL() string {
	return m.Origin + m.Path()
}

// FindMatches returns all localhost references found in text, in order of appearance.
func FindMatches(text string) []Match {
	var matches []Match
	m, err := localhostRegex.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = localhostRegex.FindNextMatch(m) {
		matches = append(matches, newMatch(m))
	}
	return matches
}

func newMatch(m *regexp2.Match) Match {
	return Match{
		Label:  m.GroupByNumber(1).String(),
		Origin: m.GroupByNumber(2).String(),
		Tail:   m.GroupByNumber(3).String(),
	}
}
