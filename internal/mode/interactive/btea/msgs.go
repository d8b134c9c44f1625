// ABOUTME: All custom tea.Msg types for the MindWeaver TUI
// ABOUTME: Generation outcomes, image loading and saving, and modal lifecycle

package btea

import "github.com/mauromedda/mindweaver/internal/invocation"

// --- Generation (sent by tea.Cmd goroutines running an invocation.Call) ---

// GenerationDoneMsg carries the controller state after a call finished.
// Ctrl identifies the modal the call belongs to; messages for a controller
// that is no longer on screen are dropped.
type GenerationDoneMsg struct {
	Ctrl  *invocation.Controller
	State invocation.State
}

// --- Image editor ---

// ImageLoadedMsg carries an image read from disk or fetched from a URL.
type ImageLoadedMsg struct {
	Ctrl  *invocation.Controller
	Asset invocation.Asset
	Err   error
}

// ImageSavedMsg reports where an edited image was written.
type ImageSavedMsg struct {
	Path string
	Err  error
}

// --- Modal lifecycle ---

// CloseModalMsg asks the root model to close the open tool modal.
type CloseModalMsg struct{}

// DismissOverlayMsg closes the About overlay.
type DismissOverlayMsg struct{}
