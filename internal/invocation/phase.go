// ABOUTME: Invocation phases and the state snapshot a controller exposes
// ABOUTME: Idle -> Loading -> Success | Error; a new submit re-enters Loading

package invocation

import "github.com/mauromedda/mindweaver/pkg/ai"

// Phase is the lifecycle position of a single tool invocation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of a controller. Result is set only in PhaseSuccess;
// Err and Cause only in PhaseError.
type State struct {
	Input   string
	Prompt  string
	Phase   Phase
	Result  *ai.Result
	Err     string
	Cause   error
	Attempt int
}

// Event reports a phase transition.
type Event struct {
	Tool    string
	Phase   Phase
	Attempt int
	Err     string
}
