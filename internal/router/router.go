// ABOUTME: View router: the current section and the tool open on top of it
// ABOUTME: Router is a value owned by the root model; every transition returns a new Router

package router

import (
	"fmt"

	"github.com/mauromedda/mindweaver/internal/catalog"
)

// Section is one of the top-level views.
type Section int

const (
	Dashboard Section = iota
	CreativeStudio
	ResearchHub
	StrategyEngine
	SynthesisCore
)

type sectionInfo struct {
	id          string
	title       string
	description string
	action      string
	catalog     catalog.Section
}

var sections = [...]sectionInfo{
	Dashboard: {id: "dashboard", title: "Dashboard"},
	CreativeStudio: {
		id:          "creativeStudio",
		title:       "Creative Studio",
		description: "Generate art, video scripts, music, and more. A suite for the modern digital artist.",
		action:      "Create",
		catalog:     catalog.SectionCreativeStudio,
	},
	ResearchHub: {
		id:          "researchHub",
		title:       "Research Hub",
		description: "Accelerate discovery with AI-powered literature reviews, data analysis, and hypothesis generation.",
		action:      "Research",
		catalog:     catalog.SectionResearchHub,
	},
	StrategyEngine: {
		id:          "strategyEngine",
		title:       "Strategy Engine",
		description: "Develop robust business and project plans with tools for market analysis and risk assessment.",
		action:      "Strategize",
		catalog:     catalog.SectionStrategyEngine,
	},
	SynthesisCore: {
		id:          "synthesisCore",
		title:       "Synthesis Core",
		description: "Discover breakthrough insights by connecting ideas from unrelated fields and domains.",
		action:      "Synthesize",
		catalog:     catalog.SectionSynthesisCore,
	},
}

func (s Section) valid() bool {
	return s >= Dashboard && s <= SynthesisCore
}

// String returns the header title of the section.
func (s Section) String() string {
	if !s.valid() {
		return "MindWeaver"
	}
	return sections[s].title
}

// ID returns the stable identifier used on the command line and in config.
func (s Section) ID() string {
	if !s.valid() {
		return ""
	}
	return sections[s].id
}

// Description is the dashboard hub card text. Empty for the dashboard.
func (s Section) Description() string {
	if !s.valid() {
		return ""
	}
	return sections[s].description
}

// Action is the dashboard hub button label. Empty for the dashboard.
func (s Section) Action() string {
	if !s.valid() {
		return ""
	}
	return sections[s].action
}

// Catalog returns the tool catalog shown by the section, if any.
func (s Section) Catalog() (catalog.Section, bool) {
	if !s.valid() || s == Dashboard {
		return "", false
	}
	return sections[s].catalog, true
}

// Sections returns every section in sidebar order.
func Sections() []Section {
	return []Section{Dashboard, CreativeStudio, ResearchHub, StrategyEngine, SynthesisCore}
}

// Hubs returns the sections reachable from the dashboard.
func Hubs() []Section {
	return Sections()[1:]
}

// ParseSection resolves a section identifier or title.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections() {
		if s == sec.ID() || s == sec.String() {
			return sec, nil
		}
	}
	return Dashboard, fmt.Errorf("unknown section %q", s)
}

// Router records which section is shown and which tool, if any, is open.
// The zero value shows the dashboard.
type Router struct {
	section  Section
	openTool string
}

// New returns a router on the dashboard.
func New() Router {
	return Router{section: Dashboard}
}

// Current returns the section being shown.
func (r Router) Current() Section {
	return r.section
}

// Select switches to section s and closes any open tool.
// Invalid sections fall back to the dashboard.
func (r Router) Select(s Section) Router {
	if !s.valid() {
		s = Dashboard
	}
	return Router{section: s}
}

// Next selects the following section in sidebar order, wrapping around.
func (r Router) Next() Router {
	return r.Select((r.section + 1) % Section(len(sections)))
}

// Prev selects the preceding section in sidebar order, wrapping around.
func (r Router) Prev() Router {
	n := Section(len(sections))
	return r.Select((r.section + n - 1) % n)
}

// Open records toolID as the open tool, keeping the current section.
func (r Router) Open(toolID string) Router {
	r.openTool = toolID
	return r
}

// Close closes the open tool.
func (r Router) Close() Router {
	r.openTool = ""
	return r
}

// OpenTool returns the open tool's identifier.
func (r Router) OpenTool() (string, bool) {
	return r.openTool, r.openTool != ""
}

// Title is the header line: "MindWeaver | <section>".
func (r Router) Title() string {
	return "MindWeaver | " + r.section.String()
}
