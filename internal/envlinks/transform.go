package envlinks

import (
	"github.com/dlclark/regexp2"
)

// Transform rewrites every localhost reference found in body into links to given environments.
func Transform(environments Environments, body string) string {
	result, err := localhostRegex.ReplaceFunc(body, func(m regexp2.Match) string {
		return Rewrite(newMatch(&m), environments)
	}, -1, -1)
	if err != nil {
		// regexp2 only fails on match timeouts, which are disabled for localhostRegex.
		return body
	}
	return result
}

// Count returns the number of localhost references Transform would rewrite in body.
func Count(body string) int {
	return len(FindMatches(body))
}
