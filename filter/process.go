package filter

import (
	"strings"

	"github.com/handsomefox/memeapi/api"
)

const maxSnippets = 3

// Process drops the filtered posts and fills in the snippets of the remaining ones.
// The relative order of the posts is kept.
func Process(posts []api.Post, filters ...Filter) []api.Post {
	result := make([]api.Post, 0, len(posts))
	for i := range posts {
		p := posts[i]
		if IsFiltered(&p, filters...) {
			continue
		}
		p.Snippets = Snippets(p.Selftext)
		result = append(result, p)
	}
	return result
}

// Snippets returns up to three trimmed, non-blank lines of the text.
func Snippets(selftext string) []string {
	snippets := make([]string, 0, maxSnippets)
	if strings.TrimSpace(selftext) == "" {
		return snippets
	}
	for _, line := range strings.Split(selftext, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		snippets = append(snippets, line)
		if len(snippets) == maxSnippets {
			break
		}
	}
	return snippets
}
