package checklist

import (
	"regexp"
	"strings"
)

const (
	// Regex pattern: captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `^(\s*)- \[( |x)\] (.*)$`

	// EmptyDocumentText is shown in place of an empty document.
	EmptyDocumentText = "No content available"
)

var checkboxRe = regexp.MustCompile(CheckboxPattern)

// normalize converts CRLF line endings to LF.
func normalize(doc string) string {
	return strings.ReplaceAll(doc, "\r\n", "\n")
}

// matchCheckbox reports whether line is a checkbox item.
func matchCheckbox(line string) (depth int, label string, checked bool, ok bool) {
	m := checkboxRe.FindStringSubmatch(line)
	if len(m) != 4 {
		return 0, "", false, false
	}
	return len(m[1]), strings.TrimSpace(m[3]), m[2] == "x", true
}

// Classify splits doc into an ordered sequence of checkbox and prose segments.
func Classify(doc string) []Segment {
	if strings.TrimSpace(doc) == "" {
		return []Segment{{
			Kind:        KindProse,
			Text:        EmptyDocumentText,
			Placeholder: true,
		}}
	}

	lines := strings.Split(normalize(doc), "\n")
	segments := make([]Segment, 0, len(lines))

	for i := 0; i < len(lines); {
		if depth, label, checked, ok := matchCheckbox(lines[i]); ok {
			segments = append(segments, Segment{
				Kind:    KindCheckbox,
				Line:    i,
				Raw:     lines[i],
				Depth:   depth,
				Label:   label,
				Checked: checked,
			})
			i++
			continue
		}

		// Group consecutive non-checkbox lines
		j := i + 1
		for j < len(lines) {
			if _, _, _, ok := matchCheckbox(lines[j]); ok {
				break
			}
			j++
		}

		block := strings.Join(lines[i:j], "\n")
		if strings.TrimSpace(block) != "" {
			segments = append(segments, Segment{
				Kind: KindProse,
				Line: i,
				Raw:  block,
				Text: block,
			})
		}
		i = j
	}

	return segments
}
