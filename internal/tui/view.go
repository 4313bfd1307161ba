package tui

import (
	"fmt"
	"strings"

	"tesla-buddy/internal/checklist"
)

const progressWidth = 24

// RenderTree draws tree as terminal text. cursor is the index of the
// focused checkbox among the checkbox blocks, or -1 for none.
func RenderTree(tree checklist.Tree, styles Styles, cursor int) string {
	var b strings.Builder
	item := 0

	for _, block := range tree.Blocks {
		switch block.Kind {
		case checklist.KindProse:
			if block.Placeholder {
				b.WriteString(styles.Muted.Render(block.Body))
			} else {
				b.WriteString(block.Body)
			}
			b.WriteString("\n")

		case checklist.KindCheckbox:
			pointer := "  "
			if item == cursor {
				pointer = styles.Cursor.Render("> ")
			}
			b.WriteString(pointer)
			b.WriteString(strings.Repeat(" ", block.Depth))
			b.WriteString(renderCheckbox(block, styles))
			b.WriteString("\n")
			item++
		}
	}

	return b.String()
}

func renderCheckbox(block checklist.Block, styles Styles) string {
	box := "[ ]"
	label := styles.Unchecked.Render(block.Label)
	if block.Checked {
		box = "[x]"
	}
	if block.Strikethrough {
		label = styles.Checked.Render(block.Label)
	}
	if block.Disabled {
		box = styles.Muted.Render(box)
	} else if block.Checked {
		box = styles.Progress.Render(box)
	}
	return box + " " + label
}

// RenderProgress draws a completion bar for stats.
func RenderProgress(stats checklist.Stats, styles Styles) string {
	if stats.Total == 0 {
		return styles.Muted.Render("No checklist items")
	}
	filled := stats.Completed * progressWidth / stats.Total
	bar := styles.Progress.Render(strings.Repeat("█", filled)) +
		styles.Muted.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s %d/%d (%.0f%%)", bar, stats.Completed, stats.Total, stats.Progress)
}
