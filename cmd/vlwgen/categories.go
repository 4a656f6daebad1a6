package main

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"vlwgen/categories"
	"vlwgen/state"
)

func runCategories(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("categories")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input snapshot has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	kind, err := parseKind(cmd.String("kind"))
	if err != nil {
		return err
	}
	snap, err := loadPage(kind, src)
	if err != nil {
		return err
	}

	cats := snap.categories()
	log.Debug("Categories inferred", zap.String("snapshot", src), zap.Strings("categories", cats))

	if !cmd.Bool("update") {
		return writeDestination(dst, []byte(categories.Markup(cats)+"\n"))
	}

	if err := snap.setCategories(cats); err != nil {
		return fmt.Errorf("unable to update snapshot: %w", err)
	}
	data, err := encodeYAML(snap.form)
	if err != nil {
		return err
	}
	log.Info("Updating snapshot categories", zap.Int("count", len(cats)), zap.String("file", destinationName(dst)))
	return writeDestination(dst, data)
}
