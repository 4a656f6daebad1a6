package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"vlwgen/discography"
	"vlwgen/page"
	"vlwgen/state"
	"vlwgen/utils/debug"
)

// listing is a saved category listing: members of the main producer category
// and of each of its subcategories, as returned by the wiki API.
type listing struct {
	Main          []discography.Member            `json:"main"`
	Subcategories map[string][]discography.Member `json:"subcategories"`
}

func readListing(path string) (*discography.Discography, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read listing: %w", err)
	}
	var l listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unable to decode listing: %w", err)
	}
	return discography.Merge(l.Main, l.Subcategories)
}

func runDiscography(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("discography")

	prodcat := cmd.Args().Get(0)
	if len(prodcat) == 0 {
		return errors.New("no producer category has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	var (
		disc *discography.Discography
		err  error
	)
	if file := cmd.String("listing"); len(file) > 0 {
		disc, err = readListing(file)
	} else {
		w := &discography.Wiki{
			BaseURL: env.Cfg.Remote.Wiki,
			Client:  &http.Client{Timeout: env.Cfg.Remote.Timeout},
			Log:     log,
			Limit:   env.Cfg.Remote.Concurrency,
		}
		disc, err = w.Fetch(ctx, prodcat)
	}
	if err != nil {
		return fmt.Errorf("unable to build discography for '%s': %w", prodcat, err)
	}
	env.Rpt.StoreData("discography/"+prodcat+".txt", []byte(debug.Discography(prodcat, disc)))
	log.Info("Discography prepared", zap.String("category", prodcat), zap.Int("songs", len(disc.Songs)), zap.Int("albums", len(disc.Albums)))

	var out any = disc
	if into := cmd.String("into"); len(into) > 0 {
		form, err := readSnapshot[page.ProducerForm](into)
		if err != nil {
			return err
		}
		if len(form.ProdCategory) == 0 {
			form.ProdCategory = prodcat
		}
		form.SongList, form.AlbumList = disc.Songs, disc.Albums
		out = form
	}

	data, err := encodeYAML(out)
	if err != nil {
		return err
	}
	return writeDestination(dst, data)
}
