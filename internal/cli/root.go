// Package cli wires weaver's cobra command tree to the solver.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/weaver/dictionary"
	"github.com/katalvlaran/weaver/internal/config"
	werrors "github.com/katalvlaran/weaver/internal/errors"
	"github.com/katalvlaran/weaver/internal/logging"
	"github.com/katalvlaran/weaver/internal/metrics"
	"github.com/katalvlaran/weaver/internal/ui"
	"github.com/katalvlaran/weaver/solver"
)

// Version is set at link time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app carries flag values and the state built from them for one run.
type app struct {
	verbosity  int
	configFile string
	logFile    string

	words     string
	workers   int
	timeout   time.Duration
	maxDepth  int
	color     string
	separator string
	noSpinner bool
	textfile  string

	cfg     *config.Config
	printer *ui.Printer
	metrics *metrics.Metrics
}

// NewRootCmd creates and returns the root command. Running it with two
// arguments solves that ladder; subcommands expose the rest.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "weaver [START END]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: Version,
		Args:    cobra.MatchAll(cobra.RangeArgs(0, 2), rejectOneArg),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, logging.Options{
				Console: cmd.ErrOrStderr(),
				LogFile: a.logFile,
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.solve(cmd, args[0], args[1])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&a.logFile, "log-file", logging.LogFilePath(), MsgFlagLogFile)
	pf.StringVar(&a.words, "words", "", MsgFlagWords)
	pf.IntVar(&a.workers, "workers", 0, MsgFlagWorkers)
	pf.DurationVar(&a.timeout, "timeout", 0, MsgFlagTimeout)
	pf.IntVar(&a.maxDepth, "max-depth", 0, MsgFlagMaxDepth)
	pf.StringVar(&a.color, "color", ui.ColorAuto, MsgFlagColor)
	pf.StringVar(&a.separator, "separator", " -> ", MsgFlagSeparator)
	pf.BoolVar(&a.noSpinner, "no-spinner", false, MsgFlagNoSpinner)
	pf.StringVar(&a.textfile, "metrics-textfile", "", MsgFlagMetrics)
	_ = pf.MarkHidden("log-file")

	// "help" is a word; keep -h/--help but let `weaver help held` solve.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "__help",
		Hidden: true,
		Run:    func(cmd *cobra.Command, args []string) {},
	})

	rootCmd.AddCommand(
		newSolveCmd(a),
		newNeighborsCmd(a),
		newReachCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree with args and returns the process exit
// code: 0 on success, including "no ladder exists", and 1 on any error.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	defer func() { _ = logging.Close() }()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Str("code", string(werrors.GetErrorCode(err))).Msg("Command failed")
		msg := werrors.UserMessage(err)
		if !werrors.IsUserError(err) {
			msg = err.Error()
		}
		ui.NewPrinter(out, errOut, ui.Options{Color: colorFor(rootCmd)}).Error(msg)
		return 1
	}
	return 0
}

// colorFor recovers --color for error output, which may happen before
// configuration is loaded.
func colorFor(cmd *cobra.Command) string {
	if f := cmd.PersistentFlags().Lookup("color"); f != nil {
		return f.Value.String()
	}
	return ui.ColorAuto
}

func rejectOneArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return werrors.Newf(werrors.ErrInvalidInput, "expected START and END words, got only %q", args[0])
	}
	return nil
}

// configure loads configuration with explicitly set flags on top, then
// builds the printer and metrics for the run.
func (a *app) configure(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	set := func(flag, key string, value interface{}) {
		if flags.Changed(flag) {
			overrides[key] = value
		}
	}
	set("words", "dictionary.path", a.words)
	set("workers", "build.workers", a.workers)
	set("timeout", "search.timeout", a.timeout)
	set("max-depth", "search.max_depth", a.maxDepth)
	set("color", "output.color", a.color)
	set("separator", "output.separator", a.separator)
	set("no-spinner", "output.spinner", !a.noSpinner)
	set("metrics-textfile", "metrics.textfile", a.textfile)

	cfg, err := config.Load(config.LoadOptions{File: a.configFile, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.printer = ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), ui.Options{
		Color:     cfg.Output.Color,
		Separator: cfg.Output.Separator,
		Spinner:   cfg.Output.Spinner,
	})
	a.metrics = metrics.New()
	return nil
}

// loadDictionary reads dictionary.path, or the embedded list when unset.
func (a *app) loadDictionary() (*dictionary.Dictionary, error) {
	if a.cfg.Dictionary.Path == "" {
		return dictionary.Default(), nil
	}
	d, err := dictionary.LoadFile(a.cfg.Dictionary.Path)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.ErrDictionaryLoad, "failed to load word list").
			WithDetail("path", a.cfg.Dictionary.Path)
	}
	return d, nil
}

// newSolver loads the dictionary and builds the graph behind the
// "Precomputing words." spinner.
func (a *app) newSolver(ctx context.Context) (*solver.Solver, error) {
	var s *solver.Solver
	err := a.printer.Spin(MsgPrecomputing, func() error {
		d, err := a.loadDictionary()
		if err != nil {
			return err
		}
		s, err = solver.New(ctx, d,
			solver.WithWorkers(a.cfg.Build.Workers),
			solver.WithTimeout(a.cfg.Search.Timeout),
			solver.WithMaxDepth(a.cfg.Search.MaxDepth),
			solver.WithMetrics(a.metrics),
			solver.WithLogger(logging.GetLogger("solver")),
		)
		return err
	})
	return s, err
}

// flushMetrics writes the textfile when configured. Failure is logged,
// never fatal: the answer has already been printed.
func (a *app) flushMetrics() {
	if a.cfg == nil || a.cfg.Metrics.Textfile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		log.Warn().Err(err).Str("path", a.cfg.Metrics.Textfile).Msg("Failed to write metrics textfile")
		return
	}
	log.Debug().Str("path", a.cfg.Metrics.Textfile).Msg("Metrics written")
}
