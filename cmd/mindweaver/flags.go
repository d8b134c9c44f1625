// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Backend flags override config files; --print and --list select headless modes

package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

type cliArgs struct {
	provider   string
	model      string
	imageModel string
	baseURL    string
	apiKey     string
	timeout    time.Duration
	print      bool
	tool       string
	image      string
	out        string
	format     string
	list       bool
	verbose    bool
	version    bool

	rest []string
}

var validFormats = []string{"text", "json", "stream-json"}

// parseFlags parses argv (without the program name).
func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("mindweaver", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.provider, "provider", "", "Generation backend: gemini, openai, anthropic, ollama")
	fs.StringVar(&args.model, "model", "", "Text model (backend default when empty)")
	fs.StringVar(&args.imageModel, "image-model", "", "Image editing model")
	fs.StringVar(&args.baseURL, "base-url", "", "Custom API base URL")
	fs.StringVar(&args.apiKey, "api-key", "", "API key for this run (overrides auth.json and env)")
	fs.DurationVar(&args.timeout, "timeout", 0, "Per-request timeout (e.g. 90s)")
	fs.BoolVar(&args.print, "print", false, "Non-interactive print mode")
	fs.StringVar(&args.tool, "tool", "", "Tool id, or a comma-separated list for a batch (print mode)")
	fs.StringVar(&args.image, "image", "", "Image path or URL for the image editor (print mode)")
	fs.StringVar(&args.out, "out", "", "Directory for edited images")
	fs.StringVar(&args.format, "format", "text", "Output format: text, json, stream-json")
	fs.BoolVar(&args.list, "list", false, "List tools, optionally filtered by the remaining arguments")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.rest = fs.Args()

	if !slices.Contains(validFormats, args.format) {
		return cliArgs{}, fmt.Errorf("invalid --format %q (want one of %s)", args.format, strings.Join(validFormats, ", "))
	}
	if args.timeout < 0 {
		return cliArgs{}, fmt.Errorf("invalid --timeout %s", args.timeout)
	}
	return args, nil
}

// input joins the positional arguments into the tool input.
func (a cliArgs) input() string {
	return strings.Join(a.rest, " ")
}
