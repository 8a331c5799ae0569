package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// NoteExt is the extension of note files
const NoteExt = ".md"

const frontmatterFence = "---"

// ErrUnterminatedFrontmatter is returned when the opening fence has no closing fence
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")

// Note is a single markdown file read from the notes folder
type Note struct {
	Path    string    // Full path to the file
	Content string    // Raw file text
	ModTime time.Time // Filesystem last-modified time
}

// Title returns the file name without its extension
func (n Note) Title() string {
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StringList decodes either a YAML sequence or a single scalar
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = StringList(items)
		return nil
	default:
		return fmt.Errorf("line %d: expected a list of strings", value.Line)
	}
}

// Frontmatter holds the keys the parser understands
type Frontmatter struct {
	VibeTools StringList `yaml:"VibeTools"`
	Stack     StringList `yaml:"Stack"`
}

// ParseFrontmatter splits a note into its frontmatter and markdown body.
// Text that does not open with a "---" fence is all body.
func ParseFrontmatter(content string) (Frontmatter, string, error) {
	var fm Frontmatter

	first, rest, found := strings.Cut(content, "\n")
	if strings.TrimSpace(first) != frontmatterFence {
		return fm, content, nil
	}
	if !found {
		return fm, "", ErrUnterminatedFrontmatter
	}

	var block strings.Builder
	for {
		line, remaining, more := strings.Cut(rest, "\n")
		if strings.TrimSpace(line) == frontmatterFence {
			if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
				return Frontmatter{}, "", fmt.Errorf("invalid frontmatter: %w", err)
			}
			return fm, remaining, nil
		}
		if !more {
			return Frontmatter{}, "", ErrUnterminatedFrontmatter
		}
		block.WriteString(line)
		block.WriteByte('\n')
		rest = remaining
	}
}

// ParseNote turns one note into its activity records: one per dated section,
// or a single record dated by the file's modification day when the body has
// no date headings.
func ParseNote(note Note) ([]ActivityRecord, error) {
	fm, body, err := ParseFrontmatter(note.Content)
	if err != nil {
		return nil, err
	}

	title := note.Title()
	tools := nonNil(fm.VibeTools)
	stack := nonNil(fm.Stack)

	sections := SplitSections(body)
	if len(sections) == 0 {
		sections = []Section{{
			Date:  note.ModTime.Local().Format(DateLayout),
			Lines: []string{body},
		}}
	}

	slug := Slugify(title)
	records := make([]ActivityRecord, 0, len(sections))
	for _, s := range sections {
		id := slug
		if len(sections) > 1 {
			id = slug + "-" + s.Date
		}
		records = append(records, buildRecord(id, title, s, tools, stack, note.Path))
	}
	return records, nil
}

func buildRecord(id, title string, s Section, tools, stack []string, path string) ActivityRecord {
	content := s.Content()
	learnings := ExtractLearnings(content)

	return ActivityRecord{
		ID:          id,
		Date:        s.Date,
		Title:       title,
		Tools:       tools,
		Stack:       stack,
		Description: CleanMarkdown(content),
		Learnings:   learnings,
		Cost:        DetectCost(content),
		Status:      StatusCompleted,
		Intensity:   ScoreIntensity(content, len(learnings)),
		FilePath:    path,
	}
}

func nonNil(l StringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
