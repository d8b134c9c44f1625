// ABOUTME: Tool listing for --list and terminal display detection for inline images
// ABOUTME: Listing is a padded text table or a JSON array

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/pkg/tui/image"
	"github.com/mauromedda/mindweaver/pkg/tui/width"
)

type listEntry struct {
	ID          string `json:"id"`
	Section     string `json:"section"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListTools writes tools as a table ("text") or a JSON array ("json",
// "stream-json").
func ListTools(w io.Writer, tools []catalog.Tool, format string) error {
	if format == "json" || format == "stream-json" {
		entries := make([]listEntry, len(tools))
		for i, t := range tools {
			entries[i] = listEntry{
				ID:          t.ID,
				Section:     string(t.Section),
				Kind:        t.Kind.String(),
				Title:       t.Title,
				Description: t.Description,
			}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(tools) == 0 {
		_, err := fmt.Fprintln(w, "no matching tools")
		return err
	}
	idWidth := 0
	for _, t := range tools {
		idWidth = max(idWidth, width.VisibleWidth(t.ID))
	}
	for _, t := range tools {
		if _, err := fmt.Fprintf(w, "%s  %-5s  %s\n", width.PadRight(t.ID, idWidth), t.Kind, t.Title); err != nil {
			return err
		}
	}
	return nil
}

// DetectDisplay reports how images can be shown on f. Inline output is only
// enabled when f is a terminal.
func DetectDisplay(f *os.File) Display {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Display{}
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}
	return Display{
		Protocol: image.Detect(),
		Cols:     min(cols, 80),
		Rows:     max(rows-4, 10),
		Enabled:  true,
	}
}
