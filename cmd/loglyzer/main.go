package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vburojevic/loglyzer/internal/cli"
	"github.com/vburojevic/loglyzer/internal/config"
)

const quickStart = `loglyzer - analyze log files and extract patterns

START HERE (this is the command you want):
  loglyzer app.log

Flags:
  -f    Output format: text, json, csv
  -e    Keep only ERROR-level records
  -s    Keep records containing text (case-insensitive)
  --top Show top N most frequent errors (default 5)

Piped input works too:
  grep worker app.log | loglyzer --errors-only
`

func main() {
	// Show quick start if no args and nothing is piped in
	if len(os.Args) == 1 && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print(quickStart)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format": cfg.Format,
		"config_top":    strconv.Itoa(cfg.Top),
	}

	ctx := kong.Parse(&c,
		kong.Name("loglyzer"),
		kong.Description("Analyze log files and extract patterns\n\nSTART HERE: loglyzer <file>"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	logger := newLogger(c.Verbose || cfg.Verbose)
	defer func() {
		_ = logger.Sync()
	}()

	globals := cli.NewGlobals(&c, cfg, logger)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger. Debug level only in verbose
// mode; everything goes to stderr so stdout carries the payload alone.
func newLogger(verbose bool) *zap.SugaredLogger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
