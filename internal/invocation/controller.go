// ABOUTME: Request lifecycle controller: validates input, runs one generation call, records outcome
// ABOUTME: Submit moves to Loading synchronously and returns a Call; stale outcomes are discarded

package invocation

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/eventbus"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 120 * time.Second

// Call performs the generation call prepared by Submit and returns the
// resulting state. Only the first invocation of a Call does any work.
type Call func(ctx context.Context) State

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithBus publishes lifecycle events on bus.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithPicker replaces the random source used by Suggest. pick(n) must
// return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(c *Controller) { c.pick = pick }
}

// Controller owns the invocation state of one open tool modal.
// Methods are safe for concurrent use.
type Controller struct {
	tool     catalog.Tool
	text     ai.TextGenerator
	editor   ai.ImageEditor
	previews Previewer
	timeout  time.Duration
	bus      *eventbus.Bus[Event]
	pick     func(n int) int

	mu     sync.Mutex
	state  State
	asset  *Asset
	seq    int // bumped by every submit and reset; a call only lands if seq is unchanged
	cancel context.CancelFunc
	closed bool
}

func newController(tool catalog.Tool, opts []Option) *Controller {
	c := &Controller{
		tool:    tool,
		timeout: DefaultTimeout,
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewText creates a controller for a text tool.
func NewText(tool catalog.Tool, gen ai.TextGenerator, opts ...Option) *Controller {
	c := newController(tool, opts)
	c.text = gen
	return c
}

// NewImageEdit creates a controller for the image editor. previews may be
// nil when no preview is displayed.
func NewImageEdit(gen ai.ImageEditor, previews Previewer, opts ...Option) *Controller {
	c := newController(catalog.MustLookup(catalog.ImageEditorID), opts)
	c.editor = gen
	c.previews = previews
	return c
}

// Tool returns the tool this controller runs.
func (c *Controller) Tool() catalog.Tool {
	return c.tool
}

func (c *Controller) isImage() bool {
	return c.tool.Kind == catalog.KindImageEdit
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Asset returns the selected image, if any.
func (c *Controller) Asset() (Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.asset == nil {
		return Asset{}, false
	}
	return *c.asset, true
}

// SetInput records the raw input without validating it.
func (c *Controller) SetInput(raw string) {
	c.mu.Lock()
	c.state.Input = raw
	c.mu.Unlock()
}

// Suggest stores one of the inspirational prompts as the input and returns it.
func (c *Controller) Suggest() string {
	prompts := catalog.InspirationalPrompts
	s := prompts[c.pick(len(prompts))]
	c.SetInput(s)
	return s
}

// SelectImage makes asset the image to edit. The previous preview reference,
// if any, is released once the new one is allocated. Any previous result or
// error is cleared.
func (c *Controller) SelectImage(asset Asset) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase == PhaseLoading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.mu.Unlock()

	// Allocation may decode the image; keep it outside the lock.
	if c.previews != nil {
		ref, err := c.previews.Allocate(asset.Data, asset.MIMEType)
		if err != nil {
			return err
		}
		asset.PreviewRef = ref
	}

	c.mu.Lock()
	if c.closed || c.state.Phase == PhaseLoading {
		err := ErrBusy
		if c.closed {
			err = ErrClosed
		}
		c.mu.Unlock()
		c.release(asset.PreviewRef)
		return err
	}
	old := c.asset
	c.asset = &asset
	changed := c.state.Phase != PhaseIdle
	c.state.Phase = PhaseIdle
	c.state.Result = nil
	c.state.Err = ""
	c.state.Cause = nil
	ev := c.eventLocked()
	c.mu.Unlock()

	if old != nil {
		c.release(old.PreviewRef)
	}
	if changed {
		c.bus.Publish(ev)
	}
	return nil
}

func (c *Controller) release(ref string) {
	if c.previews != nil && ref != "" {
		c.previews.Release(ref)
	}
}

func (c *Controller) eventLocked() Event {
	return Event{
		Tool:    c.tool.ID,
		Phase:   c.state.Phase,
		Attempt: c.state.Attempt,
		Err:     c.state.Err,
	}
}

func (c *Controller) validateLocked(raw string) *ValidationError {
	if c.isImage() {
		if c.asset == nil || strings.TrimSpace(raw) == "" {
			return &ValidationError{Message: imageInputMessage}
		}
		return nil
	}
	if strings.TrimSpace(raw) == "" {
		return textInputError(c.tool.Title)
	}
	return nil
}

// Submit validates raw and, when valid, moves to Loading and returns the
// Call that performs the request. Invalid input moves to Error and returns
// a *ValidationError. While a call is in flight Submit returns ErrBusy and
// leaves the state untouched.
func (c *Controller) Submit(raw string) (Call, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.state.Phase == PhaseLoading {
		c.mu.Unlock()
		return nil, ErrBusy
	}

	c.state.Input = raw
	c.state.Result = nil
	if verr := c.validateLocked(raw); verr != nil {
		c.state.Phase = PhaseError
		c.state.Prompt = ""
		c.state.Err = verr.Message
		c.state.Cause = verr
		ev := c.eventLocked()
		c.mu.Unlock()
		c.bus.Publish(ev)
		return nil, verr
	}

	c.seq++
	c.state.Attempt++
	c.state.Phase = PhaseLoading
	c.state.Prompt = c.tool.Prompt(raw)
	c.state.Err = ""
	c.state.Cause = nil

	var img ai.Image
	if c.isImage() {
		img = c.asset.image()
	}
	seq, prompt := c.seq, c.state.Prompt
	ev := c.eventLocked()
	c.mu.Unlock()

	c.bus.Publish(ev)
	return c.newCall(seq, prompt, img), nil
}

func (c *Controller) newCall(seq int, prompt string, img ai.Image) Call {
	var started atomic.Bool
	return func(ctx context.Context) State {
		if !started.CompareAndSwap(false, true) {
			return c.State()
		}
		return c.run(ctx, seq, prompt, img)
	}
}

func (c *Controller) run(parent context.Context, seq int, prompt string, img ai.Image) State {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	if c.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, c.timeout)
		defer cancelTimeout()
	}

	c.mu.Lock()
	if c.seq != seq {
		st := c.state
		c.mu.Unlock()
		return st
	}
	c.cancel = cancel
	c.mu.Unlock()

	start := time.Now()
	var (
		res *ai.Result
		err error
	)
	if c.isImage() {
		res, err = c.editor.EditImage(ctx, img, prompt)
	} else {
		res, err = c.text.GenerateText(ctx, prompt)
	}
	if err == nil && res == nil {
		err = ai.ErrEmptyResponse
	}

	c.mu.Lock()
	if c.seq != seq {
		st := c.state
		c.mu.Unlock()
		pilog.Debug("invocation: %s discarded stale outcome after %s", c.tool.ID, time.Since(start).Round(time.Millisecond))
		return st
	}
	c.cancel = nil
	if err != nil {
		gerr := newGenerationError(err, c.timeout, c.isImage())
		c.state.Phase = PhaseError
		c.state.Err = gerr.Message
		c.state.Cause = gerr
	} else {
		c.state.Phase = PhaseSuccess
		c.state.Result = res
	}
	st := c.state
	ev := c.eventLocked()
	c.mu.Unlock()

	pilog.Debug("invocation: %s %s in %s", c.tool.ID, st.Phase, time.Since(start).Round(time.Millisecond))
	c.bus.Publish(ev)
	return st
}

// Reset cancels any in-flight call, releases the selected image and returns
// to the state of a freshly constructed controller. Calling it again is a no-op.
func (c *Controller) Reset() {
	c.mu.Lock()
	ev, changed, asset := c.resetLocked()
	c.mu.Unlock()

	if asset != nil {
		c.release(asset.PreviewRef)
	}
	if changed {
		c.bus.Publish(ev)
	}
}

func (c *Controller) resetLocked() (Event, bool, *Asset) {
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	changed := c.state.Phase != PhaseIdle
	asset := c.asset
	c.asset = nil
	c.state = State{}
	return c.eventLocked(), changed, asset
}

// Close resets the controller and rejects further submissions.
func (c *Controller) Close() {
	c.mu.Lock()
	ev, changed, asset := c.resetLocked()
	c.closed = true
	c.mu.Unlock()

	if asset != nil {
		c.release(asset.PreviewRef)
	}
	if changed {
		c.bus.Publish(ev)
	}
}
