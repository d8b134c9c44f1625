// ABOUTME: Headless print mode: run one or more catalog tools and write results to stdout
// ABOUTME: Batches run concurrently via errgroup; image edits are saved and optionally shown inline

package print

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/eventbus"
	"github.com/mauromedda/mindweaver/internal/invocation"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
)

// DefaultConcurrency bounds how many tools of a batch run at once.
const DefaultConcurrency = 4

// Config configures one headless run.
type Config struct {
	OutputFormat string         // "text" (default), "json", "stream-json"
	Tools        []catalog.Tool // run in order of appearance; output keeps that order
	ImageSource  string         // path or URL; required by the image editor
	OutputDir    string         // where edited images are saved
	Timeout      time.Duration  // per tool call; 0 = controller default
	Concurrency  int            // 0 = DefaultConcurrency
}

// Deps provides dependencies for print mode.
type Deps struct {
	Client ai.Client
	Bus    *eventbus.Bus[invocation.Event]
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Display selects inline image rendering; zero value disables it.
	Display Display
}

// Display describes the terminal images are rendered on.
type Display struct {
	Protocol image.Protocol
	Cols     int
	Rows     int
	Enabled  bool
}

// Outcome is the result of one tool run.
type Outcome struct {
	Tool      catalog.Tool
	State     invocation.State
	ImagePath string // set for saved image edits
	Err       error
}

// Failed reports whether the tool did not produce a result.
func (o Outcome) Failed() bool {
	return o.Err != nil || o.State.Phase != invocation.PhaseSuccess
}

// Message returns the error text for a failed outcome.
func (o Outcome) Message() string {
	if o.State.Err != "" {
		return o.State.Err
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return ""
}

// Run reads input (from stdin when empty), runs every configured tool, and
// writes the results in the configured format. It returns an error when any
// tool failed.
func Run(ctx context.Context, cfg Config, deps Deps, input string) error {
	deps = deps.withDefaults()
	if deps.Client == nil {
		return errors.New("print mode: no generation client")
	}
	if len(cfg.Tools) == 0 {
		return errors.New("print mode: no tool selected (use --tool)")
	}

	if strings.TrimSpace(input) == "" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = strings.TrimSpace(string(data))
	}

	f := newFormatter(cfg.OutputFormat, deps, len(cfg.Tools) > 1)
	if deps.Bus == nil {
		deps.Bus = eventbus.New[invocation.Event]()
	}
	unsubscribe := deps.Bus.Subscribe(f.phase)
	defer unsubscribe()

	f.start()
	outcomes := runAll(ctx, cfg, deps, input)
	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
		f.result(o)
	}
	f.end()

	if failed > 0 {
		return fmt.Errorf("%d of %d tools failed", failed, len(outcomes))
	}
	return nil
}

func (d Deps) withDefaults() Deps {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	return d
}

// runAll runs the tools concurrently and returns outcomes in tool order.
func runAll(ctx context.Context, cfg Config, deps Deps, input string) []Outcome {
	outcomes := make([]Outcome, len(cfg.Tools))
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	// Failures are reported per tool, so goroutines never return an error
	// and one failing tool does not cancel the rest.
	var g errgroup.Group
	g.SetLimit(limit)
	for i, tool := range cfg.Tools {
		g.Go(func() error {
			outcomes[i] = runOne(ctx, cfg, deps, tool, input)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func runOne(ctx context.Context, cfg Config, deps Deps, tool catalog.Tool, input string) Outcome {
	var opts []invocation.Option
	if cfg.Timeout > 0 {
		opts = append(opts, invocation.WithTimeout(cfg.Timeout))
	}
	opts = append(opts, invocation.WithBus(deps.Bus))

	if tool.Kind == catalog.KindImageEdit {
		return runImageEdit(ctx, cfg, deps, input, opts)
	}

	ctrl := invocation.NewText(tool, deps.Client, opts...)
	defer ctrl.Close()
	return finish(ctx, ctrl, input)
}

func runImageEdit(ctx context.Context, cfg Config, deps Deps, prompt string, opts []invocation.Option) Outcome {
	ctrl := invocation.NewImageEdit(deps.Client, nil, opts...)
	defer ctrl.Close()

	if cfg.ImageSource != "" {
		img, name, err := ai.LoadImage(ctx, cfg.ImageSource)
		if err != nil {
			return Outcome{Tool: ctrl.Tool(), Err: err}
		}
		data, mime, err := image.Downscale(img.Data, img.MIMEType, image.DefaultMaxDimension)
		if err != nil {
			return Outcome{Tool: ctrl.Tool(), Err: fmt.Errorf("preparing %s: %w", name, err)}
		}
		if err := ctrl.SelectImage(invocation.Asset{Name: name, MIMEType: mime, Data: data}); err != nil {
			return Outcome{Tool: ctrl.Tool(), Err: err}
		}
	}

	o := finish(ctx, ctrl, prompt)
	if o.Failed() || !o.State.Result.IsImage() {
		return o
	}
	asset, _ := ctrl.Asset()
	path, err := ai.SaveEdited(cfg.OutputDir, asset.Name, *o.State.Result.Image)
	if err != nil {
		o.Err = err
		return o
	}
	o.ImagePath = path
	return o
}

// finish submits input and runs the call to completion.
func finish(ctx context.Context, ctrl *invocation.Controller, input string) Outcome {
	call, err := ctrl.Submit(input)
	if err != nil {
		return Outcome{Tool: ctrl.Tool(), State: ctrl.State(), Err: err}
	}
	st := call(ctx)
	pilog.Debug("print: %s finished: %s", ctrl.Tool().ID, st.Phase)
	return Outcome{Tool: ctrl.Tool(), State: st}
}
