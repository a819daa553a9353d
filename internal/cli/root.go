package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/vburojevic/loglyzer/internal/config"
)

// CLI is the root command structure for loglyzer
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,json,csv" help:"Output format"`
	Verbose bool   `short:"v" help:"Show diagnostic output (active filters, timing, skipped lines)"`

	// Commands
	Version VersionCmd `cmd:"" help:"Show version information"`
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Analyze a log file"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.SugaredLogger
}

// NewGlobals creates a Globals instance from CLI flags with config fallbacks
func NewGlobals(cli *CLI, cfg *config.Config, logger *zap.SugaredLogger) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Format:  cli.Format,
		Verbose: cli.Verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  logger,
	}
	// If verbose wasn't set via CLI, use config value
	if !cli.Verbose && cfg.Verbose {
		g.Verbose = true
	}
	return g
}

// Debug logs a diagnostic message; visible only in verbose mode.
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Debugf(format, args...)
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "json" {
		_, err := io.WriteString(globals.Stdout, `{"version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := fmt.Fprintf(globals.Stdout, "loglyzer version %s (%s)\n", Version, Commit)
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
