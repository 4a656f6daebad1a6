package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"vlwgen/page"
	"vlwgen/state"
	"vlwgen/vocadb"
)

var vocadbKinds = map[string]vocadb.Kind{
	kindSong:     vocadb.KindSong,
	kindAlbum:    vocadb.KindAlbum,
	kindProducer: vocadb.KindArtist,
}

// entryID accepts either entry page URL or bare numeric id.
func entryID(arg, kind string) (string, error) {
	if _, err := strconv.ParseUint(arg, 10, 64); err == nil {
		return arg, nil
	}
	return vocadb.PageID(arg, vocadbKinds[kind])
}

// entrySource produces VocaDB records either from the API or from previously
// saved responses.
type entrySource struct {
	client *vocadb.Client
	file   string
}

func fetchEntry[T any](ctx context.Context, src entrySource, fetch func(context.Context, string) (*T, error), id string) (*T, error) {
	if len(src.file) == 0 {
		return fetch(ctx, id)
	}
	data, err := os.ReadFile(src.file)
	if err != nil {
		return nil, fmt.Errorf("unable to read entry: %w", err)
	}
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unable to decode entry: %w", err)
	}
	return &rec, nil
}

func runPrefill(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("prefill")

	arg := cmd.Args().Get(0)
	if len(arg) == 0 {
		return errors.New("no VocaDB entry has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	kind, err := parseKind(cmd.String("kind"))
	if err != nil {
		return err
	}
	id, err := entryID(arg, kind)
	if err != nil {
		return err
	}

	lookup, err := env.Synths()
	if err != nil {
		return err
	}
	src := entrySource{
		client: &vocadb.Client{
			BaseURL: env.Cfg.Remote.VocaDB,
			Origin:  env.Cfg.Remote.Origin,
			Client:  &http.Client{Timeout: env.Cfg.Remote.Timeout},
			Log:     log,
		},
		file: cmd.String("from-file"),
	}

	log.Info("Prefilling snapshot", zap.String("kind", kind), zap.String("id", id), zap.String("url", vocadb.PageURL(vocadbKinds[kind], id)))

	form, err := prefill(ctx, kind, id, cmd.String("into"), src, vocadb.NewMapper(lookup, log))
	if err != nil {
		return err
	}
	data, err := encodeYAML(form)
	if err != nil {
		return err
	}
	env.Rpt.StoreData(fmt.Sprintf("prefill/%s-%s.yaml", kind, id), data)
	return writeDestination(dst, data)
}

// prefill maps the entry into a form, either empty or loaded from existing
// snapshot.
func prefill(ctx context.Context, kind, id, into string, src entrySource, m *vocadb.Mapper) (any, error) {
	switch kind {
	case kindSong:
		form, err := intoSnapshot[page.SongForm](into)
		if err != nil {
			return nil, err
		}
		rec, err := fetchEntry(ctx, src, src.client.Song, id)
		if err != nil {
			return nil, fmt.Errorf("unable to get song %s: %w", id, err)
		}
		m.Song(form, *rec)
		return form, nil
	case kindAlbum:
		form, err := intoSnapshot[page.AlbumForm](into)
		if err != nil {
			return nil, err
		}
		rec, err := fetchEntry(ctx, src, src.client.Album, id)
		if err != nil {
			return nil, fmt.Errorf("unable to get album %s: %w", id, err)
		}
		m.Album(form, *rec)
		return form, nil
	case kindProducer:
		form, err := intoSnapshot[page.ProducerForm](into)
		if err != nil {
			return nil, err
		}
		rec, err := fetchEntry(ctx, src, src.client.Artist, id)
		if err != nil {
			return nil, fmt.Errorf("unable to get artist %s: %w", id, err)
		}
		m.Producer(form, *rec)
		return form, nil
	}
	return nil, fmt.Errorf("unknown page kind '%s'", kind)
}

func intoSnapshot[T any](path string) (*T, error) {
	if len(path) == 0 {
		return new(T), nil
	}
	return readSnapshot[T](path)
}
