// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: Carries the generation client, preview cache, event bus, and output settings

package btea

import (
	"time"

	"github.com/mauromedda/mindweaver/internal/eventbus"
	"github.com/mauromedda/mindweaver/internal/invocation"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
)

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	Client    ai.Client
	Model     string // display name of the text model
	Version   string
	Timeout   time.Duration
	OutputDir string
	Previews  *image.PreviewCache
	Bus       *eventbus.Bus[invocation.Event]
}

// controllerOptions translates deps into per-modal controller options.
func (d AppDeps) controllerOptions() []invocation.Option {
	var opts []invocation.Option
	if d.Timeout > 0 {
		opts = append(opts, invocation.WithTimeout(d.Timeout))
	}
	if d.Bus != nil {
		opts = append(opts, invocation.WithBus(d.Bus))
	}
	return opts
}
