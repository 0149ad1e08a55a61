package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"aprsdecode/config"
	"aprsdecode/deviceid"
	"aprsdecode/feed"
	"aprsdecode/render"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1 // I/O or configuration failure
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("aprsdecode", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: aprsdecode [options]\n\nDecode APRS packets in TNC2 text format, one per line.\n\n")
		flags.PrintDefaults()
	}

	configPath := flags.StringP("config", "c", config.DefaultPath, "Configuration file.")
	format := flags.StringP("format", "f", "", "Output format: text, json or tui.")
	input := flags.StringP("input", "i", "", "Packet file to read, - for stdin.")
	timestampFormat := flags.StringP("timestamp-format", "T", "", "strftime pattern for the receive time.")
	logLevel := flags.StringP("log-level", "l", "", "Log level: debug, info, warn, error.")
	all := flags.BoolP("all", "a", false, "Also print lines whose header could not be decoded.")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		return exitUsage
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "aprsdecode: %v\n", err)
		return exitError
	}

	if flags.Changed("format") {
		conf.Output.Format = *format
	}
	if flags.Changed("input") {
		conf.Input.Path = *input
	}
	if flags.Changed("timestamp-format") {
		conf.Output.TimestampFormat = *timestampFormat
	}
	if flags.Changed("log-level") {
		conf.Log.Level = *logLevel
	}
	if flags.Changed("all") {
		conf.Output.All = *all
	}
	conf.Output.Format = strings.ToLower(conf.Output.Format)

	if err := conf.Validate(); err != nil {
		fmt.Fprintf(stderr, "aprsdecode: %v\n", err)
		return exitUsage
	}

	logger, closeLog, err := newLogger(conf, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "aprsdecode: %v\n", err)
		return exitError
	}
	defer closeLog()

	src, err := openInput(conf.Input.Path, stdin)
	if err != nil {
		logger.Error("cannot open input", "path", conf.Input.Path, "err", err)
		return exitError
	}

	devices := deviceid.Default()

	if conf.Output.Format == config.FormatTUI {
		err = runTUI(ctx, conf, src, logger, devices)
	} else {
		defer src.Close()
		err = stream(ctx, conf, src, stdout, logger, devices)
	}
	if err != nil {
		logger.Error("aprsdecode failed", "err", err)
		return exitError
	}
	return exitOK
}

// newLogger builds the diagnostic logger. The TUI owns the terminal, so
// there it logs to the configured file or nowhere.
func newLogger(conf config.Config, stderr io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = stderr
	closeLog := func() {}

	switch {
	case conf.Log.File != "":
		f, err := os.OpenFile(conf.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case conf.Output.Format == config.FormatTUI:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "aprsdecode",
		Level:           level,
	})
	log.SetDefault(logger)

	return logger, closeLog, nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// stream decodes src and renders every result to w in text or JSON form.
func stream(ctx context.Context, conf config.Config, src io.Reader, w io.Writer, logger *log.Logger, devices *deviceid.Registry) error {
	var renderer render.Renderer
	switch conf.Output.Format {
	case config.FormatJSON:
		renderer = render.NewJSON(w)
	default:
		var home render.Home
		home.Lat, home.Lon, home.Set = conf.Home()

		text, err := render.NewText(w, conf.Output.TimestampFormat, home)
		if err != nil {
			return err
		}
		renderer = text
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader := feed.NewReader(src, logger, devices)
	results := make(chan feed.Result)
	errc := make(chan error, 1)
	go func() { errc <- reader.Run(ctx, results) }()

	var renderErr error
	for res := range results {
		if renderErr != nil {
			continue // draining until Run sees the cancellation
		}
		if res.Err != nil && !conf.Output.All {
			continue
		}
		if err := renderer.Render(res); err != nil {
			renderErr = fmt.Errorf("write output: %w", err)
			cancel()
		}
	}

	runErr := <-errc
	if renderErr != nil {
		return renderErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	stats := reader.Stats()
	logger.Info("input done",
		"lines", stats.Lines,
		"decoded", stats.Decoded,
		"failed", stats.Failed,
		"skipped", stats.Skipped)
	return nil
}
