// ABOUTME: Tests for the request lifecycle controller with hand-written generator fakes
// ABOUTME: Covers transitions, validation, reset, stale outcomes, previews, and events

package invocation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/eventbus"
	"github.com/mauromedda/mindweaver/pkg/ai"
)

type fakeGen struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	images  []ai.Image

	res       *ai.Result
	err       error
	started   chan struct{} // closed when the first call begins
	block     chan struct{} // when set, calls wait for it (or ctx)
	ignoreCtx bool
}

var (
	_ ai.TextGenerator = (*fakeGen)(nil)
	_ ai.ImageEditor   = (*fakeGen)(nil)
	_ Previewer        = (*fakePreviews)(nil)
)

func (f *fakeGen) do(ctx context.Context, prompt string, img *ai.Image) (*ai.Result, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if img != nil {
		f.images = append(f.images, *img)
	}
	first := f.calls == 1
	f.mu.Unlock()

	if first && f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		if f.ignoreCtx {
			<-f.block
		} else {
			select {
			case <-f.block:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return f.res, f.err
}

func (f *fakeGen) GenerateText(ctx context.Context, prompt string) (*ai.Result, error) {
	return f.do(ctx, prompt, nil)
}

func (f *fakeGen) EditImage(ctx context.Context, img ai.Image, prompt string) (*ai.Result, error) {
	return f.do(ctx, prompt, &img)
}

func (f *fakeGen) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePreviews struct {
	mu       sync.Mutex
	next     int
	released map[string]int
	fail     error
}

func newFakePreviews() *fakePreviews {
	return &fakePreviews{released: make(map[string]int)}
}

func (p *fakePreviews) Allocate([]byte, string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return "", p.fail
	}
	p.next++
	return "ref-" + string(rune('0'+p.next)), nil
}

func (p *fakePreviews) Release(ref string) {
	p.mu.Lock()
	p.released[ref]++
	p.mu.Unlock()
}

func (p *fakePreviews) releases(ref string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released[ref]
}

func literatureTool(t *testing.T) catalog.Tool {
	t.Helper()
	tool, ok := catalog.Lookup("literatureReview")
	if !ok {
		t.Fatal("literatureReview tool missing from catalog")
	}
	return tool
}

func testAsset(name string) Asset {
	return Asset{Name: name, MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}

func TestSubmitEntersLoadingBeforeCallRuns(t *testing.T) {
	t.Parallel()

	want := &ai.Result{Text: "summary"}
	gen := &fakeGen{res: want}
	c := NewText(literatureTool(t), gen)

	call, err := c.Submit("soil microbiomes")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := c.State().Phase; got != PhaseLoading {
		t.Fatalf("Phase after Submit = %v; want loading", got)
	}
	if gen.callCount() != 0 {
		t.Fatal("generator called before Call ran")
	}

	st := call(context.Background())
	if st.Phase != PhaseSuccess {
		t.Fatalf("Phase = %v; want success (err %q)", st.Phase, st.Err)
	}
	if st.Result != want {
		t.Errorf("Result = %p; want the generator's result %p", st.Result, want)
	}
	if st.Err != "" || st.Cause != nil {
		t.Errorf("success state carries error %q / %v", st.Err, st.Cause)
	}
	if st.Attempt != 1 {
		t.Errorf("Attempt = %d; want 1", st.Attempt)
	}
}

func TestSubmitBlankInputNeverCallsGenerator(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\n\t "} {
		gen := &fakeGen{res: &ai.Result{Text: "x"}}
		c := NewText(literatureTool(t), gen)

		call, err := c.Submit(raw)
		if call != nil {
			t.Errorf("Submit(%q) returned a call", raw)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Submit(%q) err = %v; want ErrValidation", raw, err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Submit(%q) err is not *ValidationError", raw)
		}

		st := c.State()
		if st.Phase != PhaseError {
			t.Errorf("Phase = %v; want error", st.Phase)
		}
		if st.Err != "Please provide input for: Literature Reviewer" {
			t.Errorf("Err = %q", st.Err)
		}
		if gen.callCount() != 0 {
			t.Errorf("generator called %d times for blank input", gen.callCount())
		}
	}
}

func TestFailureMessages(t *testing.T) {
	t.Parallel()

	upstream := errors.New("quota exceeded")
	tests := []struct {
		name  string
		image bool
		err   error
		want  string
	}{
		{"text described", false, upstream, "quota exceeded"},
		{"text undescribed", false, errors.New(""), "An unknown error occurred."},
		{"image described", true, upstream, "An error occurred: quota exceeded"},
		{"image undescribed", true, errors.New("  "), "An unknown error occurred."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakeGen{err: tt.err}
			var c *Controller
			if tt.image {
				c = NewImageEdit(gen, nil)
				if err := c.SelectImage(testAsset("cat.png")); err != nil {
					t.Fatal(err)
				}
			} else {
				c = NewText(literatureTool(t), gen)
			}

			call, err := c.Submit("anything")
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			st := call(context.Background())
			if st.Phase != PhaseError {
				t.Fatalf("Phase = %v; want error", st.Phase)
			}
			if st.Err != tt.want {
				t.Errorf("Err = %q; want %q", st.Err, tt.want)
			}
			if st.Result != nil {
				t.Error("error state must not carry a result")
			}
			var gerr *GenerationError
			if !errors.As(st.Cause, &gerr) || !errors.Is(st.Cause, tt.err) {
				t.Errorf("Cause = %v; want *GenerationError wrapping upstream", st.Cause)
			}
		})
	}
}

func TestNilResultIsFailure(t *testing.T) {
	t.Parallel()

	c := NewText(literatureTool(t), &fakeGen{})
	call, _ := c.Submit("x")
	st := call(context.Background())
	if st.Phase != PhaseError || st.Err == "" {
		t.Errorf("state = %+v; want error with message", st)
	}
	if !errors.Is(st.Cause, ai.ErrEmptyResponse) {
		t.Errorf("Cause = %v; want ErrEmptyResponse", st.Cause)
	}
}

func TestResetFromAnyPhaseEqualsFresh(t *testing.T) {
	t.Parallel()

	fresh := NewText(literatureTool(t), &fakeGen{}).State()

	setups := map[string]func(t *testing.T, c *Controller){
		"idle with input": func(_ *testing.T, c *Controller) { c.SetInput("draft") },
		"loading": func(t *testing.T, c *Controller) {
			if _, err := c.Submit("topic"); err != nil {
				t.Fatal(err)
			}
		},
		"success": func(_ *testing.T, c *Controller) {
			call, _ := c.Submit("topic")
			call(context.Background())
		},
		"error": func(_ *testing.T, c *Controller) { _, _ = c.Submit(" ") },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := NewText(literatureTool(t), &fakeGen{res: &ai.Result{Text: "ok"}})
			setup(t, c)
			c.Reset()
			if got := c.State(); got != fresh {
				t.Errorf("state after Reset = %+v; want %+v", got, fresh)
			}
			c.Reset()
			if got := c.State(); got != fresh {
				t.Errorf("second Reset changed state: %+v", got)
			}
		})
	}
}

func TestLiteratureReviewerCRISPR(t *testing.T) {
	t.Parallel()

	raw := "Summary: CRISPR raises consent and equity questions."
	gen := &fakeGen{res: &ai.Result{Text: raw}}
	c := NewText(literatureTool(t), gen)

	call, err := c.Submit("CRISPR gene editing ethics")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	st := call(context.Background())

	if len(gen.prompts) != 1 {
		t.Fatalf("generator calls = %d; want 1", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], `"CRISPR gene editing ethics"`) {
		t.Errorf("prompt %q does not embed the input literally", gen.prompts[0])
	}
	if st.Prompt != gen.prompts[0] {
		t.Errorf("state prompt differs from the sent prompt")
	}
	if st.Phase != PhaseSuccess || st.Result.Text != raw {
		t.Errorf("state = %+v; want success holding the raw text", st)
	}
}

func TestImageEditWithoutImage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Add a retro filter", ""} {
		gen := &fakeGen{res: &ai.Result{Image: &ai.Image{MIMEType: "image/png"}}}
		c := NewImageEdit(gen, newFakePreviews())

		call, err := c.Submit(raw)
		if call != nil || !errors.Is(err, ErrValidation) {
			t.Errorf("Submit(%q) = %v, %v; want validation error", raw, call != nil, err)
		}
		st := c.State()
		if st.Phase != PhaseError || st.Err != "Please upload an image and enter a prompt." {
			t.Errorf("state = %+v", st)
		}
		if gen.callCount() != 0 {
			t.Errorf("EditImage called %d times", gen.callCount())
		}
	}
}

func TestImageEditBlankPromptWithImage(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{}
	c := NewImageEdit(gen, nil)
	if err := c.SelectImage(testAsset("cat.png")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Submit("  "); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v; want ErrValidation", err)
	}
	if gen.callCount() != 0 {
		t.Error("EditImage called for blank prompt")
	}
}

func TestImageEditSuccess(t *testing.T) {
	t.Parallel()

	out := &ai.Result{Image: &ai.Image{MIMEType: "image/png", Data: []byte{1}}}
	gen := &fakeGen{res: out}
	c := NewImageEdit(gen, newFakePreviews())
	asset := testAsset("cat.png")
	if err := c.SelectImage(asset); err != nil {
		t.Fatal(err)
	}

	call, err := c.Submit("Add a majestic dragon flying in the sky.")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	st := call(context.Background())
	if st.Phase != PhaseSuccess || st.Result != out {
		t.Fatalf("state = %+v; want success with edited image", st)
	}
	if gen.prompts[0] != "Add a majestic dragon flying in the sky." {
		t.Errorf("image prompt was rewritten: %q", gen.prompts[0])
	}
	if string(gen.images[0].Data) != string(asset.Data) {
		t.Error("EditImage did not receive the selected image")
	}
}

func TestSelectImageReleasesPreviousOnce(t *testing.T) {
	t.Parallel()

	previews := newFakePreviews()
	c := NewImageEdit(&fakeGen{}, previews)

	if err := c.SelectImage(testAsset("a.png")); err != nil {
		t.Fatal(err)
	}
	first, _ := c.Asset()
	if err := c.SelectImage(testAsset("b.png")); err != nil {
		t.Fatal(err)
	}
	second, _ := c.Asset()

	if first.PreviewRef == "" || first.PreviewRef == second.PreviewRef {
		t.Fatalf("preview refs not distinct: %q %q", first.PreviewRef, second.PreviewRef)
	}
	if n := previews.releases(first.PreviewRef); n != 1 {
		t.Errorf("first ref released %d times; want 1", n)
	}
	if n := previews.releases(second.PreviewRef); n != 0 {
		t.Errorf("current ref released %d times; want 0", n)
	}

	c.Reset()
	c.Reset()
	if n := previews.releases(second.PreviewRef); n != 1 {
		t.Errorf("ref released %d times after double Reset; want 1", n)
	}
	if n := previews.releases(first.PreviewRef); n != 1 {
		t.Errorf("first ref released again: %d", n)
	}
}

func TestSelectImageClearsOutcome(t *testing.T) {
	t.Parallel()

	c := NewImageEdit(&fakeGen{err: errors.New("boom")}, nil)
	if err := c.SelectImage(testAsset("a.png")); err != nil {
		t.Fatal(err)
	}
	call, _ := c.Submit("sepia")
	call(context.Background())
	if c.State().Phase != PhaseError {
		t.Fatal("expected error phase")
	}

	if err := c.SelectImage(testAsset("b.png")); err != nil {
		t.Fatal(err)
	}
	st := c.State()
	if st.Phase != PhaseIdle || st.Err != "" || st.Result != nil {
		t.Errorf("state after new image = %+v; want cleared outcome", st)
	}
	if st.Input != "sepia" {
		t.Errorf("Input = %q; want prompt kept", st.Input)
	}
}

func TestSelectImageAllocationFailureKeepsCurrent(t *testing.T) {
	t.Parallel()

	previews := newFakePreviews()
	c := NewImageEdit(&fakeGen{}, previews)
	if err := c.SelectImage(testAsset("a.png")); err != nil {
		t.Fatal(err)
	}
	previews.fail = errors.New("decode failed")

	if err := c.SelectImage(testAsset("b.png")); err == nil {
		t.Fatal("expected allocation error")
	}
	a, ok := c.Asset()
	if !ok || a.Name != "a.png" || previews.releases(a.PreviewRef) != 0 {
		t.Errorf("current asset disturbed: %+v", a)
	}
}

func TestResubmitWhileLoadingIsIgnored(t *testing.T) {
	t.Parallel()

	c := NewText(literatureTool(t), &fakeGen{res: &ai.Result{Text: "x"}})
	if _, err := c.Submit("first"); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	if _, err := c.Submit("second"); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v; want ErrBusy", err)
	}
	if got := c.State(); got != before {
		t.Errorf("state changed by ignored submit: %+v", got)
	}
}

func TestSelectImageWhileLoadingIsRejected(t *testing.T) {
	t.Parallel()

	previews := newFakePreviews()
	c := NewImageEdit(&fakeGen{}, previews)
	if err := c.SelectImage(testAsset("a.png")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Submit("sepia"); err != nil {
		t.Fatal(err)
	}

	if err := c.SelectImage(testAsset("b.png")); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v; want ErrBusy", err)
	}
	if a, _ := c.Asset(); a.Name != "a.png" {
		t.Errorf("asset = %q; want a.png kept", a.Name)
	}
}

func TestResetDiscardsLateOutcome(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{
		res:       &ai.Result{Text: "late"},
		started:   make(chan struct{}),
		block:     make(chan struct{}),
		ignoreCtx: true,
	}
	c := NewText(literatureTool(t), gen)
	call, err := c.Submit("topic")
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan State)
	go func() { done <- call(context.Background()) }()
	<-gen.started

	c.Reset()
	close(gen.block)
	<-done

	st := c.State()
	if st.Phase != PhaseIdle || st.Result != nil {
		t.Errorf("late outcome mutated state: %+v", st)
	}
}

func TestResetBeforeCallSkipsGeneration(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{res: &ai.Result{Text: "x"}}
	c := NewText(literatureTool(t), gen)
	call, _ := c.Submit("topic")
	c.Reset()

	if st := call(context.Background()); st.Phase != PhaseIdle {
		t.Errorf("Phase = %v; want idle", st.Phase)
	}
	if gen.callCount() != 0 {
		t.Error("generator called after Reset")
	}
}

func TestNewSubmitSupersedesPreviousOutcome(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{res: &ai.Result{Text: "first"}}
	c := NewText(literatureTool(t), gen)

	call, _ := c.Submit("one")
	call(context.Background())

	gen.res = &ai.Result{Text: "second"}
	call, err := c.Submit("two")
	if err != nil {
		t.Fatal(err)
	}
	if st := c.State(); st.Result != nil || st.Phase != PhaseLoading {
		t.Errorf("resubmit kept old result: %+v", st)
	}
	st := call(context.Background())
	if st.Result.Text != "second" || st.Attempt != 2 {
		t.Errorf("state = %+v; want second result on attempt 2", st)
	}
}

func TestCallRunsOnce(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{res: &ai.Result{Text: "x"}}
	c := NewText(literatureTool(t), gen)
	call, _ := c.Submit("topic")
	call(context.Background())
	call(context.Background())
	if gen.callCount() != 1 {
		t.Errorf("generator calls = %d; want 1", gen.callCount())
	}
}

func TestCloseCancelsAndRejects(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{
		res:     &ai.Result{Text: "x"},
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}
	c := NewText(literatureTool(t), gen)
	call, _ := c.Submit("topic")

	done := make(chan State)
	go func() { done <- call(context.Background()) }()
	<-gen.started

	c.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("in-flight call not cancelled by Close")
	}

	if _, err := c.Submit("again"); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v; want ErrClosed", err)
	}
	if c.State().Phase != PhaseIdle {
		t.Errorf("Phase = %v; want idle after Close", c.State().Phase)
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	gen := &fakeGen{block: make(chan struct{})}
	c := NewText(literatureTool(t), gen, WithTimeout(20*time.Millisecond))
	call, _ := c.Submit("topic")

	st := call(context.Background())
	if st.Phase != PhaseError {
		t.Fatalf("Phase = %v; want error", st.Phase)
	}
	if st.Err != "request timed out after 20ms" {
		t.Errorf("Err = %q", st.Err)
	}
	if !errors.Is(st.Cause, context.DeadlineExceeded) {
		t.Errorf("Cause = %v; want DeadlineExceeded", st.Cause)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	c := NewImageEdit(&fakeGen{}, nil, WithPicker(func(n int) int { return n - 1 }))
	got := c.Suggest()
	want := catalog.InspirationalPrompts[len(catalog.InspirationalPrompts)-1]
	if got != want {
		t.Errorf("Suggest() = %q; want %q", got, want)
	}
	if c.State().Input != want {
		t.Errorf("Input = %q; want suggestion stored", c.State().Input)
	}

	// Default picker stays within the prompt list.
	d := NewImageEdit(&fakeGen{}, nil)
	for range 20 {
		s := d.Suggest()
		found := false
		for _, p := range catalog.InspirationalPrompts {
			if p == s {
				found = true
			}
		}
		if !found {
			t.Fatalf("Suggest() = %q; not an inspirational prompt", s)
		}
	}
}

func TestEventsPublished(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[Event]()
	var (
		mu     sync.Mutex
		phases []Phase
	)
	bus.Subscribe(func(ev Event) {
		mu.Lock()
		phases = append(phases, ev.Phase)
		mu.Unlock()
		if ev.Tool != "literatureReview" {
			t.Errorf("event tool = %q", ev.Tool)
		}
	})

	c := NewText(literatureTool(t), &fakeGen{res: &ai.Result{Text: "x"}}, WithBus(bus))
	call, _ := c.Submit("topic")
	call(context.Background())
	_, _ = c.Submit("")
	c.Reset()

	mu.Lock()
	defer mu.Unlock()
	want := []Phase{PhaseLoading, PhaseSuccess, PhaseError, PhaseIdle}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v; want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phases[%d] = %v; want %v", i, phases[i], want[i])
		}
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	tests := map[Phase]string{
		PhaseIdle:    "idle",
		PhaseLoading: "loading",
		PhaseSuccess: "success",
		PhaseError:   "error",
		Phase(42):    "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q; want %q", int(p), got, want)
		}
	}
}
