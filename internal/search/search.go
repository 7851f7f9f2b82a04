// Package search flattens event content into case-normalized text and
// navigates matches with a circular cursor. Matching is plain substring
// containment; no tokenization or fuzzy logic.
package search

import (
	"strconv"
	"strings"

	"hailview/internal/model"
)

// Index holds one searchable string per event, parallel to the event list
// it was built from.
type Index struct {
	texts []string
}

// BuildIndex flattens every event: type discriminator, typed payload data,
// content blocks, attributes, and task id, lowercased.
func BuildIndex(events []model.Event) Index {
	texts := make([]string, len(events))
	for i, ev := range events {
		texts[i] = strings.ToLower(flattenEvent(ev))
	}
	return Index{texts: texts}
}

// Matches returns the positions within visible (positions into the indexed
// events; nil means all) whose flattened text contains query. An empty
// query matches nothing.
func (ix Index) Matches(query string, visible []int) []int {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	if visible == nil {
		visible = make([]int, len(ix.texts))
		for i := range visible {
			visible[i] = i
		}
	}

	matches := make([]int, 0)
	for _, pos := range visible {
		if strings.Contains(ix.texts[pos], needle) {
			matches = append(matches, pos)
		}
	}
	return matches
}

func flattenEvent(ev model.Event) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	add(string(ev.Type.Kind()))

	switch t := ev.Type.(type) {
	case model.ToolCall:
		add(t.Name)
	case model.ToolResult:
		add(t.Name, t.CallID)
	case model.FileRead:
		add(t.Path)
	case model.FileEdit:
		add(t.Path, t.Diff)
	case model.FileCreate:
		add(t.Path)
	case model.FileDelete:
		add(t.Path)
	case model.ShellCommand:
		add(t.Command)
		if t.ExitCode != nil {
			add(strconv.Itoa(*t.ExitCode))
		}
	case model.WebSearch:
		add(t.Query)
	case model.WebFetch:
		add(t.URL)
	case model.CodeSearch:
		add(t.Query)
	case model.FileSearch:
		add(t.Pattern)
	case model.ImageGenerate:
		add(t.Prompt)
	case model.TaskStart:
		add(t.Title)
	case model.TaskEnd:
		add(t.Summary)
	}

	for _, block := range ev.Content.Blocks {
		switch b := block.(type) {
		case model.TextBlock:
			add(b.Text)
		case model.CodeBlock:
			add(b.Language, b.Code)
		case model.JSONBlock:
			add(string(b.Data))
		case model.FileBlock:
			add(b.Path, b.Content)
		case model.ImageBlock:
			add(b.URL, b.Alt)
		case model.AudioBlock:
			add(b.URL)
		case model.VideoBlock:
			add(b.URL)
		case model.ReferenceBlock:
			add(b.URI, b.MediaType)
		case model.UnknownBlock:
			add(b.Type, string(b.Raw))
		}
	}

	for key, value := range ev.Attributes {
		add(key + "=" + value.Text())
	}

	add(ev.TaskID)

	return strings.Join(parts, "\n")
}
