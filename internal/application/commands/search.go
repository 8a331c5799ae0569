package commands

import (
	"context"
	"sort"
	"strings"

	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// MinQueryLength is the shortest query the search runs for
const MinQueryLength = 2

// snippetRadius is how many runes of context surround a body match
const snippetRadius = 30

// SearchCommand searches activity records with fuzzy matching
type SearchCommand struct {
	docs  ports.DocumentReader
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(docs ports.DocumentReader, query string) *SearchCommand {
	return &SearchCommand{
		docs:  docs,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len([]rune(query)) < MinQueryLength {
		return nil, nil
	}

	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	return FuzzySort(doc.Projects, query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '/') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// bodyScore only accepts substring matches; in long prose nearly every
// query would match fuzzily
func bodyScore(text, query string) int {
	if strings.Contains(strings.ToLower(text), strings.ToLower(query)) {
		return 60
	}
	return 0
}

// FuzzySort scores records against the query and sorts them by relevance.
// Records that do not match are dropped; ties keep document order.
func FuzzySort(records []domain.ActivityRecord, query string) []domain.SearchResult {
	scored := make([]domain.SearchResult, 0, len(records))

	for _, r := range records {
		best := domain.SearchResult{Record: r}

		consider := func(score int, text string) {
			if score > best.Score {
				best.Score = score
				best.MatchedText = text
			}
		}

		consider(FuzzyScore(r.Title, query), r.Title)
		for _, tool := range r.Tools {
			consider(FuzzyScore(tool, query), tool)
		}
		for _, s := range r.Stack {
			consider(FuzzyScore(s, query), s)
		}
		for _, l := range r.Learnings {
			consider(bodyScore(l, query), l)
		}
		consider(bodyScore(r.Description, query), snippet(r.Description, query))

		if best.Score > 0 {
			scored = append(scored, best)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// snippet cuts a window of text around the first match of query
func snippet(text, query string) string {
	runes := []rune(text)
	lower := []rune(strings.ToLower(text))
	q := []rune(strings.ToLower(query))

	idx := -1
	for i := 0; i+len(q) <= len(lower); i++ {
		if string(lower[i:i+len(q)]) == string(q) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ""
	}

	start := min(max(0, idx-snippetRadius), len(runes))
	end := max(start, min(len(runes), idx+len(q)+snippetRadius))

	out := strings.Join(strings.Fields(string(runes[start:end])), " ")
	if start > 0 {
		out = "…" + out
	}
	if end < len(runes) {
		out += "…"
	}
	return out
}
