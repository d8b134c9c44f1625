// ABOUTME: CLI entry point for mindweaver
// ABOUTME: Parses flags, loads config and credentials, registers backends, dispatches to TUI or print mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/mindweaver/internal/termfix"

	"github.com/mauromedda/mindweaver/internal/catalog"
	"github.com/mauromedda/mindweaver/internal/config"
	"github.com/mauromedda/mindweaver/internal/eventbus"
	"github.com/mauromedda/mindweaver/internal/invocation"
	pilog "github.com/mauromedda/mindweaver/internal/log"
	"github.com/mauromedda/mindweaver/internal/mode/interactive/btea"
	"github.com/mauromedda/mindweaver/internal/mode/print"
	"github.com/mauromedda/mindweaver/pkg/ai"
	"github.com/mauromedda/mindweaver/pkg/ai/provider/anthropic"
	"github.com/mauromedda/mindweaver/pkg/ai/provider/gemini"
	"github.com/mauromedda/mindweaver/pkg/ai/provider/ollama"
	"github.com/mauromedda/mindweaver/pkg/ai/provider/openai"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the selected mode.
func run(argv []string, stdout, stderr io.Writer) error {
	args, err := parseFlags(argv, stderr)
	if err != nil {
		return err
	}

	if args.version {
		fmt.Fprintf(stdout, "mindweaver %s (%s) built %s\n", version, commit, date)
		return nil
	}
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}
	if args.list {
		return print.ListTools(stdout, catalog.Filter(catalog.All(), args.input()), args.format)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if err := config.LoadDotEnv(config.DotEnvFile(cwd)); err != nil {
		return err
	}
	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings.ApplyEnv()
	applyOverrides(settings, args)

	auth, err := config.LoadAuth()
	if err != nil {
		return fmt.Errorf("loading auth: %w", err)
	}
	if args.apiKey != "" {
		auth.SetRuntimeKey(args.apiKey)
	}

	resolved, err := config.Resolve(settings, auth)
	if err != nil {
		return err
	}

	registerProviders()
	client, clientErr := ai.GetProvider(resolved.Api, resolved.Options)
	if c, ok := client.(io.Closer); ok {
		defer c.Close()
	}

	bus := eventbus.New[invocation.Event]()
	bus.Subscribe(logEvent)

	if args.print {
		if clientErr != nil {
			return clientErr
		}
		return runPrint(args, resolved, client, bus, stdout, stderr)
	}

	if clientErr != nil {
		// The TUI still opens so the catalog can be browsed; tools report
		// the missing backend when opened.
		pilog.Warn("backend unavailable: %v", clientErr)
		client = nil
	}
	return runInteractive(resolved, client, bus)
}

// applyOverrides lets command-line flags win over config files.
func applyOverrides(s *config.Settings, args cliArgs) {
	if args.provider != "" {
		s.Provider = args.provider
	}
	if args.model != "" {
		s.Model = args.model
	}
	if args.imageModel != "" {
		s.ImageModel = args.imageModel
	}
	if args.baseURL != "" {
		s.BaseURL = args.baseURL
	}
	if args.timeout > 0 {
		s.Timeout = config.Duration(args.timeout)
	}
	if args.out != "" {
		s.OutputDir = args.out
	}
}

// registerProviders makes every built-in backend available by name.
func registerProviders() {
	ai.RegisterProvider(ai.ApiGemini, factory(gemini.New))
	ai.RegisterProvider(ai.ApiOpenAI, factory(openai.New))
	ai.RegisterProvider(ai.ApiAnthropic, factory(anthropic.New))
	ai.RegisterProvider(ai.ApiOllama, factory(ollama.New))
}

// factory adapts a concrete constructor so a failed build yields a nil
// interface rather than a typed nil.
func factory[C ai.Client](build func(ai.Options) (C, error)) ai.ProviderFactory {
	return func(opts ai.Options) (ai.Client, error) {
		c, err := build(opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func logEvent(ev invocation.Event) {
	if ev.Phase == invocation.PhaseError {
		pilog.Warn("%s attempt %d failed: %s", ev.Tool, ev.Attempt, ev.Err)
		return
	}
	pilog.Debug("%s attempt %d: %s", ev.Tool, ev.Attempt, ev.Phase)
}

func runPrint(args cliArgs, resolved config.Resolved, client ai.Client, bus *eventbus.Bus[invocation.Event], stdout, stderr io.Writer) error {
	toolList := args.tool
	if toolList == "" && args.image != "" {
		toolList = catalog.ImageEditorID
	}
	if toolList == "" {
		return errors.New("print mode needs --tool (see --list)")
	}
	tools, err := catalog.ParseIDs(toolList)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := print.Deps{
		Client: client,
		Bus:    bus,
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
	if args.format == "text" && stdout == io.Writer(os.Stdout) {
		deps.Display = print.DetectDisplay(os.Stdout)
	}
	cfg := print.Config{
		OutputFormat: args.format,
		Tools:        tools,
		ImageSource:  args.image,
		OutputDir:    resolved.OutputDir,
		Timeout:      resolved.Timeout,
	}
	return print.Run(ctx, cfg, deps, args.input())
}

func runInteractive(resolved config.Resolved, client ai.Client, bus *eventbus.Bus[invocation.Event]) error {
	closeLog := openLog()
	defer closeLog()

	model := resolved.Options.TextModel
	if model == "" {
		model = string(resolved.Api) + " default"
	}
	return btea.Run(btea.AppDeps{
		Client:    client,
		Model:     model,
		Version:   version,
		Timeout:   resolved.Timeout,
		OutputDir: resolved.OutputDir,
		Bus:       bus,
	})
}

// openLog sends log output to the log file, since lines on stderr would
// corrupt the alternate screen. Logging is discarded when the file cannot
// be opened.
func openLog() func() {
	if err := config.EnsureDir(config.GlobalDir()); err == nil {
		if closeLog, err := pilog.OpenFile(config.LogFile()); err == nil {
			return closeLog
		}
	}
	pilog.SetOutput(io.Discard)
	return func() { pilog.SetOutput(nil) }
}
