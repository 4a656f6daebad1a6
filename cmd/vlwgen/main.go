package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"vlwgen/config"
	"vlwgen/misc"
	"vlwgen/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if er := env.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to release resources: %w", er))
	}

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := env.Cfg.Logging.PanicLogName()
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, cli.Exit() is never used. Errors are
// logged once here and main only reports them to stderr when log was not
// available.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt, remote requests and batch
	// generation honor context cancellation
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "wikitext page generator for the vocaloid lyrics wiki",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			generateCommand(),
			{
				Name:         "categories",
				Usage:        "Infers category list for a page snapshot",
				OnUsageError: usageErrorHandler,
				Action:       runCategories,
				Flags: []cli.Flag{
					kindFlag(),
					&cli.BoolFlag{Name: "update", Aliases: []string{"u"}, Usage: "write snapshot back with categories replaced instead of printing them"},
				},
				ArgsUsage: "SNAPSHOT [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SNAPSHOT:
    page form snapshot (YAML or JSON) of the kind selected by --kind

DESTINATION:
    where to write category markup or updated snapshot, if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "lyrics",
				Usage:        "Renders lyrics table from lyrics editor snapshot",
				OnUsageError: usageErrorHandler,
				Action:       runLyrics,
				ArgsUsage:    "SNAPSHOT [DESTINATION]",
			},
			{
				Name:         "extract",
				Usage:        "Extracts lyrics tables from existing wikitext into lyrics editor snapshots",
				OnUsageError: usageErrorHandler,
				Action:       runExtract,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "force-cp",
						Usage: "Force `ENCODING` for ALL non UTF-8 input (see IANA.org for character set names)"},
				},
				ArgsUsage: "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to wikitext to process, following formats are supported:
        path to a file: wikitext or Special:Export XML dump
        path to a directory: recursively process all files with configured extensions
        path to zip archive: process all entries with configured extensions

DESTINATION:
    file name to write extracted tables to (YAML), if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "prefill",
				Usage:        "Prepares page snapshot from VocaDB entry",
				OnUsageError: usageErrorHandler,
				Action:       runPrefill,
				Flags: []cli.Flag{
					kindFlag(),
					&cli.StringFlag{Name: "from-file", Usage: "read VocaDB entry from `FILE` (JSON) instead of requesting it"},
					&cli.StringFlag{Name: "into", Usage: "merge into existing `SNAPSHOT` instead of starting from an empty one"},
				},
				ArgsUsage: "URL|ID [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
URL|ID:
    VocaDB entry page URL (https://vocadb.net/S/123) or numeric entry id

DESTINATION:
    file name to write snapshot to (YAML), if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "discography",
				Usage:        "Builds producer discography from wiki category listings",
				OnUsageError: usageErrorHandler,
				Action:       runDiscography,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "listing", Usage: "read category listing from `FILE` (JSON) instead of requesting it"},
					&cli.StringFlag{Name: "into", Usage: "replace song and album lists in producer `SNAPSHOT`"},
				},
				ArgsUsage: "CATEGORY [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
CATEGORY:
    producer category name without namespace, e.g. "Kikuo"

DESTINATION:
    file name to write result to (YAML), if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", destinationName(fname)))
	return writeDestination(fname, data)
}
