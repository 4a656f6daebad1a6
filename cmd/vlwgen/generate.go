package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vlwgen/config"
	"vlwgen/page"
	"vlwgen/state"
	"vlwgen/utils/debug"
)

func generateCommand() *cli.Command {
	sub := func(kind, usage string) *cli.Command {
		return &cli.Command{
			Name:         kind,
			Usage:        usage,
			OnUsageError: usageErrorHandler,
			Action:       func(ctx context.Context, cmd *cli.Command) error { return runGenerate(ctx, cmd, kind) },
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "ignore-errors", Aliases: []string{"ie"}, Usage: "render page even when validation reports fatal problems"},
				&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing output files"},
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write generated pages to `DIRECTORY` instead of STDOUT"},
			},
			ArgsUsage: "SNAPSHOT...",
			CustomHelpTemplate: fmt.Sprintf(`%s
SNAPSHOT:
    %s form snapshot(s) (YAML or JSON), several snapshots require --out
`, cli.CommandHelpTemplate, kind),
		}
	}
	return &cli.Command{
		Name:         "generate",
		Usage:        "Generates page wikitext from form snapshots",
		OnUsageError: usageErrorHandler,
		Commands: []*cli.Command{
			sub(kindSong, "Generates song page"),
			sub(kindAlbum, "Generates album page"),
			sub(kindProducer, "Generates producer page"),
		},
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command, kind string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return errors.New("no input snapshot has been specified")
	}

	outDir := cmd.String("out")
	if len(outDir) == 0 && len(sources) > 1 {
		return errors.New("several snapshots require output directory (--out)")
	}
	if len(outDir) > 0 {
		var err error
		if outDir, err = filepath.Abs(outDir); err != nil {
			return err
		}
	}

	env.IgnoreErrors = env.Cfg.Generator.IgnoreErrors || cmd.Bool("ignore-errors")
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("kind", kind), zap.Int("snapshots", len(sources)), zap.String("destination", destinationName(outDir)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return generatePages(ctx, kind, sources, outDir, env, log)
}

// generatePages processes snapshots concurrently. Failure of a single page
// does not stop the others, all errors are returned together.
func generatePages(ctx context.Context, kind string, sources []string, outDir string, env *state.LocalEnv, log *zap.Logger) error {
	var (
		mu   sync.Mutex
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := generatePage(kind, src, outDir, env, log); err != nil {
				log.Error("Unable to generate page", zap.String("snapshot", src), zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

func generatePage(kind, src, outDir string, env *state.LocalEnv, log *zap.Logger) error {
	snap, err := loadPage(kind, src)
	if err != nil {
		return err
	}

	id := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if err := env.Rpt.StoreCopy(filepath.ToSlash(filepath.Join("input", filepath.Base(src))), src); err != nil {
		log.Warn("Unable to store snapshot in report", zap.String("snapshot", src), zap.Error(err))
	}

	out, err := page.Generate(snap.assembler(), env.IgnoreErrors, log)
	if out != nil {
		env.Rpt.StoreData(fmt.Sprintf("outcome/%s-%s.txt", id, out.ID), []byte(debug.Outcome(out)))
	}
	if err != nil {
		return fmt.Errorf("unable to render page: %w", err)
	}

	reportFindings(out, src, log)
	if out.State == page.StateRejected {
		return fmt.Errorf("page was not generated: %w", out.Findings.Err())
	}

	data := []byte(out.Output)
	if len(outDir) == 0 {
		return writeDestination("", data)
	}

	mode := env.Cfg.Generator.OnConflict
	if env.Overwrite {
		mode = config.OutputConflictOverwrite
	}
	dst := buildOutputPath(outDir, nameValues{Kind: kind, Title: snap.title, ID: id}, env)
	written, err := writeOutput(dst, data, mode, log)
	if err != nil {
		return err
	}
	if written {
		log.Info("Page generated", zap.String("snapshot", src), zap.String("file", dst))
	}
	return nil
}

func reportFindings(out *page.Outcome, src string, log *zap.Logger) {
	for _, f := range out.Findings {
		fields := []zap.Field{zap.String("snapshot", src), zap.String("field", f.Field), zap.String("problem", f.Message)}
		if f.Severity == page.SeverityFatal {
			log.Error("Validation failed", fields...)
		} else {
			log.Warn("Validation warning", fields...)
		}
	}
	if out.RecommendCategories {
		log.Info("Category list looks stale, consider running categories command", zap.String("snapshot", src))
	}
}
