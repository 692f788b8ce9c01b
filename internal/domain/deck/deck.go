package deck

import (
	"regexp"
	"strings"
)

// Delimiter separates a question from its answer inside a block.
const Delimiter = "==="

// blankLine matches one or more whitespace-only lines between blocks.
var blankLine = regexp.MustCompile(`\n\s*\n`)

// Entry is one parsed question/answer pair. Entries are values and are
// never modified after Parse returns them.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HasAnswer reports whether the block carried a delimiter with a non-empty body.
func (e Entry) HasAnswer() bool {
	return e.Answer != ""
}

// Parse turns freeform text into entries, one per blank-line separated block,
// in document order. It never fails: a block without a delimiter becomes a
// question-only entry.
func Parse(text string) []Entry {
	if strings.TrimSpace(text) == "" {
		return []Entry{}
	}

	blocks := blankLine.Split(text, -1)
	entries := make([]Entry, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		entries = append(entries, parseBlock(block))
	}
	return entries
}

func parseBlock(block string) Entry {
	parts := strings.Split(block, Delimiter)
	if len(parts) < 2 {
		return Entry{Question: strings.TrimSpace(block)}
	}

	// Later delimiters belong to the answer body.
	return Entry{
		Question: strings.TrimSpace(parts[0]),
		Answer:   strings.TrimSpace(strings.Join(parts[1:], Delimiter)),
	}
}
