// ABOUTME: Output formatters for print mode: plain text, one JSON document, or JSON lines
// ABOUTME: stream-json also emits lifecycle phase events as they are published

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mauromedda/mindweaver/internal/invocation"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
)

// formatter abstracts output formatting.
type formatter interface {
	start()
	phase(ev invocation.Event)
	result(o Outcome)
	end()
}

func newFormatter(format string, deps Deps, batch bool) formatter {
	switch format {
	case "json":
		return &jsonFormatter{out: deps.Stdout}
	case "stream-json":
		return &streamJSONFormatter{out: deps.Stdout}
	default:
		return &textFormatter{out: deps.Stdout, errOut: deps.Stderr, display: deps.Display, headings: batch}
	}
}

// textFormatter writes results as plain text; errors go to stderr.
type textFormatter struct {
	out, errOut io.Writer
	display     Display
	headings    bool // label each result with its tool title
	written     int
}

func (f *textFormatter) start()                  {}
func (f *textFormatter) phase(invocation.Event) {}
func (f *textFormatter) end()                    {}

func (f *textFormatter) result(o Outcome) {
	if o.Failed() {
		fmt.Fprintf(f.errOut, "error: %s: %s\n", o.Tool.ID, o.Message())
		return
	}
	if f.written > 0 {
		fmt.Fprintln(f.out)
	}
	f.written++

	if o.ImagePath != "" {
		fmt.Fprintf(f.out, "saved %s\n", o.ImagePath)
		f.inline(o)
		return
	}
	if f.headings {
		fmt.Fprintf(f.out, "## %s\n\n", o.Tool.Title)
	}
	fmt.Fprintln(f.out, strings.TrimRight(o.State.Result.Text, "\n"))
}

func (f *textFormatter) inline(o Outcome) {
	if !f.display.Enabled {
		return
	}
	img := o.State.Result.Image
	cols, rows := max(f.display.Cols, 20), max(f.display.Rows, 10)
	for _, line := range image.Render(f.display.Protocol, img.Data, img.MIMEType, cols, rows) {
		fmt.Fprintln(f.out, line)
	}
}

type jsonResult struct {
	Tool    string `json:"tool"`
	Title   string `json:"title"`
	Model   string `json:"model,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
	Text    string `json:"text,omitempty"`
	Image   string `json:"image,omitempty"`
	Attempt int    `json:"attempt,omitempty"`
	Error   string `json:"error,omitempty"`
}

func toJSONResult(o Outcome) jsonResult {
	r := jsonResult{
		Tool:    o.Tool.ID,
		Title:   o.Tool.Title,
		Prompt:  o.State.Prompt,
		Image:   o.ImagePath,
		Attempt: o.State.Attempt,
	}
	if o.Failed() {
		r.Error = o.Message()
		return r
	}
	r.Model = o.State.Result.Model
	r.Text = o.State.Result.Text
	return r
}

// jsonFormatter collects all output and writes a single JSON object at the end.
type jsonFormatter struct {
	out     io.Writer
	results []jsonResult
}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
}

func (f *jsonFormatter) start()                  {}
func (f *jsonFormatter) phase(invocation.Event) {}
func (f *jsonFormatter) result(o Outcome)        { f.results = append(f.results, toJSONResult(o)) }
func (f *jsonFormatter) end() {
	data, _ := json.MarshalIndent(jsonOutput{Results: f.results}, "", "  ")
	fmt.Fprintln(f.out, string(data))
}

// streamJSONFormatter outputs one JSON line per event. Phase events arrive
// from worker goroutines, so writes are serialized.
type streamJSONFormatter struct {
	mu  sync.Mutex
	out io.Writer
}

type streamEvent struct {
	Type    string      `json:"type"`
	Tool    string      `json:"tool,omitempty"`
	Phase   string      `json:"phase,omitempty"`
	Attempt int         `json:"attempt,omitempty"`
	Error   string      `json:"error,omitempty"`
	Result  *jsonResult `json:"result,omitempty"`
}

func (f *streamJSONFormatter) start() { f.write(streamEvent{Type: "start"}) }
func (f *streamJSONFormatter) end()   { f.write(streamEvent{Type: "end"}) }

// phase skips Idle: print mode closes each controller once it finishes,
// and that reset is not part of the tool's lifecycle.
func (f *streamJSONFormatter) phase(ev invocation.Event) {
	if ev.Phase == invocation.PhaseIdle {
		return
	}
	f.write(streamEvent{Type: "phase", Tool: ev.Tool, Phase: ev.Phase.String(), Attempt: ev.Attempt, Error: ev.Err})
}

func (f *streamJSONFormatter) result(o Outcome) {
	r := toJSONResult(o)
	f.write(streamEvent{Type: "result", Tool: r.Tool, Result: &r})
}

func (f *streamJSONFormatter) write(evt streamEvent) {
	data, _ := json.Marshal(evt)
	f.mu.Lock()
	fmt.Fprintln(f.out, string(data))
	f.mu.Unlock()
}
