package checklist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesla-buddy/internal/checklist"
)

func TestClassify_CheckboxLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		depth   int
		label   string
		checked bool
	}{
		{name: "unchecked top level", line: "- [ ] Buy milk", depth: 0, label: "Buy milk"},
		{name: "checked indented", line: "  - [x] Done", depth: 2, label: "Done", checked: true},
		{name: "tab indent", line: "\t- [ ] Tabbed", depth: 1, label: "Tabbed"},
		{name: "label is trimmed", line: "- [ ] Spaced   ", depth: 0, label: "Spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := checklist.Classify(tt.line)
			require.Len(t, segs, 1)

			seg := segs[0]
			assert.Equal(t, checklist.KindCheckbox, seg.Kind)
			assert.Equal(t, tt.depth, seg.Depth)
			assert.Equal(t, tt.label, seg.Label)
			assert.Equal(t, tt.checked, seg.Checked)
			assert.Equal(t, tt.line, seg.Raw)
		})
	}
}

func TestClassify_MalformedFallsThroughToProse(t *testing.T) {
	for _, line := range []string{
		"- [x Missing bracket",
		"- [X] Upper-case marker",
		"-  [ ] Two spaces",
		"* [ ] Star bullet",
		"- [ ]NoSpace",
	} {
		segs := checklist.Classify(line)
		require.Len(t, segs, 1, line)
		assert.Equal(t, checklist.KindProse, segs[0].Kind, line)
		assert.Equal(t, line, segs[0].Text)
	}
}

func TestClassify_EndToEndDocument(t *testing.T) {
	segs := checklist.Classify("# Title\n- [ ] A\n- [x] B\n")
	require.Len(t, segs, 3)

	assert.Equal(t, checklist.KindProse, segs[0].Kind)
	assert.Equal(t, "# Title", segs[0].Text)

	assert.Equal(t, checklist.KindCheckbox, segs[1].Kind)
	assert.Equal(t, "A", segs[1].Label)
	assert.False(t, segs[1].Checked)
	assert.Equal(t, 1, segs[1].Line)

	assert.Equal(t, checklist.KindCheckbox, segs[2].Kind)
	assert.Equal(t, "B", segs[2].Label)
	assert.True(t, segs[2].Checked)
}

func TestClassify_GroupsConsecutiveProse(t *testing.T) {
	doc := "# Delivery\n\nBring your ID.\n- [ ] Paint\nSome notes\nmore notes\n  - [x] Panel gaps"
	segs := checklist.Classify(doc)
	require.Len(t, segs, 4)

	assert.Equal(t, "# Delivery\n\nBring your ID.", segs[0].Text)
	assert.Equal(t, "Paint", segs[1].Label)
	assert.Equal(t, "Some notes\nmore notes", segs[2].Text)
	assert.Equal(t, 4, segs[2].Line)
	assert.Equal(t, 2, segs[3].Depth)
}

func TestClassify_SkipsBlankProse(t *testing.T) {
	segs := checklist.Classify("- [ ] A\n   \n\n- [ ] B")
	require.Len(t, segs, 2)
	assert.Equal(t, checklist.KindCheckbox, segs[0].Kind)
	assert.Equal(t, checklist.KindCheckbox, segs[1].Kind)
}

func TestClassify_EmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "   ", "\n\n", "\r\n"} {
		segs := checklist.Classify(doc)
		require.Len(t, segs, 1)
		assert.True(t, segs[0].Placeholder)
		assert.Equal(t, checklist.KindProse, segs[0].Kind)
		assert.Equal(t, checklist.EmptyDocumentText, segs[0].Text)
	}
}

func TestClassify_CheckboxOnly(t *testing.T) {
	segs := checklist.Classify("- [ ] A\n- [x] B\n  - [ ] C\n")
	require.Len(t, segs, 3)
	for _, seg := range segs {
		assert.Equal(t, checklist.KindCheckbox, seg.Kind)
	}
}

func TestClassify_NoCheckboxes(t *testing.T) {
	doc := "# Heading\n\nJust [a link](https://example.com) here.\n"
	segs := checklist.Classify(doc)
	require.Len(t, segs, 1)
	assert.Equal(t, strings.TrimRight(doc, "\n"), strings.TrimRight(segs[0].Text, "\n"))
}

func TestClassify_CRLF(t *testing.T) {
	segs := checklist.Classify("Intro\r\n- [x] Keys\r\n- [ ] Manual")
	require.Len(t, segs, 3)
	assert.Equal(t, "Intro", segs[0].Text)
	assert.Equal(t, "Keys", segs[1].Label)
	assert.True(t, segs[1].Checked)
	assert.Equal(t, "Manual", segs[2].Label)
}

func TestClassify_Reconstructs(t *testing.T) {
	doc := "# Title\r\nintro\n- [ ] A\n  - [x] B\n\ntext\nmore\n- [ ] C"
	segs := checklist.Classify(doc)

	raws := make([]string, 0, len(segs))
	for _, seg := range segs {
		raws = append(raws, seg.Raw)
	}
	assert.Equal(t, strings.ReplaceAll(doc, "\r\n", "\n"), strings.Join(raws, "\n"))
}

func TestClassify_Idempotent(t *testing.T) {
	doc := "# T\n- [ ] A\nx\n- [x] B\n"
	assert.Equal(t, checklist.Classify(doc), checklist.Classify(doc))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "2:Done", checklist.Key{Depth: 2, Label: "Done"}.String())
}
