// ABOUTME: Terminal inline-image protocol detection and encoders (Kitty, iTerm2)
// ABOUTME: Used when writing an edited image straight to a terminal in print mode

package image

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// Protocol identifies a terminal inline-image protocol.
type Protocol int

const (
	ProtoNone   Protocol = iota // half-block fallback
	ProtoKitty                  // Kitty graphics (also Ghostty, WezTerm)
	ProtoITerm2                 // iTerm2 OSC 1337
)

func (p Protocol) String() string {
	switch p {
	case ProtoKitty:
		return "kitty"
	case ProtoITerm2:
		return "iterm2"
	default:
		return "none"
	}
}

// Detect inspects the environment for a supported inline-image protocol.
func Detect() Protocol {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) Protocol {
	term := strings.ToLower(getenv("TERM_PROGRAM"))
	switch {
	case getenv("KITTY_WINDOW_ID") != "", term == "kitty":
		return ProtoKitty
	case getenv("GHOSTTY_RESOURCES_DIR") != "", term == "ghostty":
		return ProtoKitty
	case getenv("WEZTERM_PANE") != "", term == "wezterm":
		return ProtoKitty
	case getenv("ITERM_SESSION_ID") != "", term == "iterm.app":
		return ProtoITerm2
	default:
		return ProtoNone
	}
}

const kittyChunk = 4096

// EncodeKitty wraps PNG data in Kitty graphics escapes, chunked so that no
// payload exceeds the protocol's 4096-byte limit.
func EncodeKitty(pngData []byte, cols, rows int) string {
	if len(pngData) == 0 {
		return ""
	}
	enc := base64.StdEncoding.EncodeToString(pngData)

	var b strings.Builder
	for start := 0; start < len(enc); start += kittyChunk {
		end := min(start+kittyChunk, len(enc))
		more := 0
		if end < len(enc) {
			more = 1
		}
		if start == 0 {
			fmt.Fprintf(&b, "\x1b_Ga=T,f=100,q=2,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, enc[start:end])
		} else {
			fmt.Fprintf(&b, "\x1b_Gm=%d;%s\x1b\\", more, enc[start:end])
		}
	}
	return b.String()
}

// EncodeITerm2 wraps image data in an iTerm2 inline-image escape.
func EncodeITerm2(data []byte, cols int) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;width=%d:%s\a",
		len(data), cols, base64.StdEncoding.EncodeToString(data))
}
