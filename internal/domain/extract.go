package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BulletGlyph replaces list markers in cleaned descriptions
const BulletGlyph = "• "

var (
	wikiEmbedPattern     = regexp.MustCompile(`!\[\[.*?\]\]`)
	markdownImagePattern = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	boldStarPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderPattern     = regexp.MustCompile(`__(.*?)__`)
	italicStarPattern    = regexp.MustCompile(`\*(.*?)\*`)
	italicUnderPattern   = regexp.MustCompile(`_(.*?)_`)
	bulletPattern        = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	numberedPattern      = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	horizontalSpace      = regexp.MustCompile(`[ \t]+`)
	blankLines           = regexp.MustCompile(`\n\s*\n`)

	listMarkerPattern = regexp.MustCompile(`^(?:[-*]|\d+\.)\s*`)
	numberedPrefix    = regexp.MustCompile(`^\d+\.`)
	costPattern       = regexp.MustCompile(`\$(\d+)`)
)

// LearningKeywords flag a list line as a learning
var LearningKeywords = []string{"learning", "learned", "wondering", "issue", "problem", "should", "need to"}

// Intensity bounds
const (
	MinIntensity = 1
	MaxIntensity = 4
)

// CleanMarkdown strips markdown decoration for display. The transform is
// applied until it stops changing the text, so CleanMarkdown(CleanMarkdown(s))
// always equals CleanMarkdown(s).
func CleanMarkdown(content string) string {
	// Every pass that changes the text shortens it or removes a marker/tab,
	// so the loop terminates.
	for {
		next := cleanPass(content)
		if next == content {
			return next
		}
		content = next
	}
}

func cleanPass(s string) string {
	s = wikiEmbedPattern.ReplaceAllString(s, "")
	s = markdownImagePattern.ReplaceAllString(s, "")
	s = boldStarPattern.ReplaceAllString(s, "$1")
	s = boldUnderPattern.ReplaceAllString(s, "$1")
	s = italicStarPattern.ReplaceAllString(s, "$1")
	s = italicUnderPattern.ReplaceAllString(s, "$1")
	s = bulletPattern.ReplaceAllString(s, BulletGlyph)
	s = numberedPattern.ReplaceAllString(s, "")
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractLearnings returns list lines that mention a learning keyword, with
// the list marker removed. Source order is preserved.
func ExtractLearnings(content string) []string {
	learnings := []string{}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !isListLine(trimmed) || !mentionsLearning(trimmed) {
			continue
		}
		learnings = append(learnings, strings.TrimSpace(listMarkerPattern.ReplaceAllString(trimmed, "")))
	}
	return learnings
}

func isListLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "*") ||
		numberedPrefix.MatchString(trimmed)
}

func mentionsLearning(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range LearningKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ScoreIntensity maps section length and learning count onto 1-4
func ScoreIntensity(content string, learningCount int) int {
	n := utf8.RuneCountInString(content)

	score := MaxIntensity
	switch {
	case n < 500:
		score = 1
	case n < 1000:
		score = 2
	case n < 2000:
		score = 3
	}

	if learningCount >= 3 {
		score = min(score+1, MaxIntensity)
	}
	return score
}

// DetectCost returns the first "$<digits>" mention, or nil
func DetectCost(content string) *string {
	m := costPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	cost := "$" + m[1]
	return &cost
}
