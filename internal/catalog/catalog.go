// ABOUTME: Static prompt catalog: tool definitions grouped by section
// ABOUTME: Tools are immutable; each carries a pure input -> prompt template

package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Section identifies one of the catalogs a tool belongs to.
type Section string

const (
	SectionCreativeStudio Section = "creativeStudio"
	SectionResearchHub    Section = "researchHub"
	SectionStrategyEngine Section = "strategyEngine"
	SectionSynthesisCore  Section = "synthesisCore"
)

// Kind tells the UI which modal a tool opens.
type Kind int

const (
	// KindText wraps the user's input in a template and generates text.
	KindText Kind = iota
	// KindImageEdit sends an image plus the raw prompt to the image editor.
	KindImageEdit
)

// String returns the kind label used in listings.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImageEdit:
		return "image"
	default:
		return "unknown"
	}
}

// Template turns raw user input into the prompt sent to the model.
// Templates are pure string transforms.
type Template func(input string) string

// Tool is a single generation capability shown as a card.
type Tool struct {
	ID          string
	Section     Section
	Kind        Kind
	Title       string
	Description string
	Placeholder string
	Template    Template // nil for KindImageEdit
}

// Prompt applies the tool template to input. Image-edit tools pass the
// input through unchanged.
func (t Tool) Prompt(input string) string {
	if t.Template == nil {
		return input
	}
	return t.Template(input)
}

// wrap builds a Template that appends the quoted input under a label:
// "<preamble>\n\n<label>: \"<input>\"".
func wrap(preamble, label string) Template {
	return func(input string) string {
		return fmt.Sprintf("%s\n\n%s: \"%s\"", preamble, label, input)
	}
}

// all holds every tool in display order: section order, then card order.
var all = func() []Tool {
	var tools []Tool
	tools = append(tools, creativeStudio...)
	tools = append(tools, researchHub...)
	tools = append(tools, strategyEngine...)
	tools = append(tools, synthesisCore...)
	return tools
}()

// byID indexes all tools for O(1) lookup.
var byID = func() map[string]Tool {
	idx := make(map[string]Tool, len(all))
	for _, t := range all {
		if _, dup := idx[t.ID]; dup {
			panic("catalog: duplicate tool id " + t.ID)
		}
		idx[t.ID] = t
	}
	return idx
}()

// All returns every tool in display order. The returned slice is a copy.
func All() []Tool {
	return slices.Clone(all)
}

// Lookup returns the tool with the given identifier.
func Lookup(id string) (Tool, bool) {
	t, ok := byID[id]
	return t, ok
}

// MustLookup is Lookup for identifiers known at compile time.
func MustLookup(id string) Tool {
	t, ok := byID[id]
	if !ok {
		panic("catalog: unknown tool " + id)
	}
	return t
}

// InSection returns the tools shown in the given section, in card order.
func InSection(s Section) []Tool {
	var out []Tool
	for _, t := range all {
		if t.Section == s {
			out = append(out, t)
		}
	}
	return out
}

// Sections returns the catalog sections in navigation order.
func Sections() []Section {
	return []Section{
		SectionCreativeStudio,
		SectionResearchHub,
		SectionStrategyEngine,
		SectionSynthesisCore,
	}
}

// ParseIDs splits a comma-separated list of tool identifiers and resolves
// each one. Blank entries are skipped.
func ParseIDs(list string) ([]Tool, error) {
	var tools []Tool
	for raw := range strings.SplitSeq(list, ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		t, ok := Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", id)
		}
		tools = append(tools, t)
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("no tools in %q", list)
	}
	return tools, nil
}
