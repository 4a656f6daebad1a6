package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"vlwgen/lyrics"
	"vlwgen/model"
	"vlwgen/source"
	"vlwgen/state"
	"vlwgen/utils/debug"
)

func runLyrics(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lyrics")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input snapshot has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	form, err := readSnapshot[lyrics.EditorForm](src)
	if err != nil {
		return err
	}
	form.ForceEnglishColumn = form.ForceEnglishColumn || env.Cfg.Generator.ForceEnglishColumn

	out := form.Render()
	env.Rpt.StoreData("lyrics/"+filepath.Base(src)+".wiki", []byte(out))
	log.Debug("Lyrics rendered", zap.String("snapshot", src), zap.Int("lines", len(form.Lines())))
	return writeDestination(dst, []byte(out))
}

// extractedTable is a lyrics table found in existing wikitext along with
// editor snapshot prepared from it.
type extractedTable struct {
	Origin  string            `yaml:"origin"`
	Title   string            `yaml:"title"`
	Table   int               `yaml:"table"`
	Headers []string          `yaml:"headers"`
	Editor  lyrics.EditorForm `yaml:"editor"`
}

func runExtract(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line wins over configuration
	cp := cmd.String("force-cp")
	if len(cp) == 0 {
		cp = env.Cfg.Sources.CodePage
	}
	if err := env.SetCodePage(cp); err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
	} else if env.CodePage != nil {
		n, _ := ianaindex.IANA.Name(env.CodePage)
		log.Debug("Forcefully converting all non UTF-8 input", zap.String("charset", n))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", destinationName(dst)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	pages, err := source.NewLoader(env.CodePage, env.Cfg.Sources.Extensions, log).Load(ctx, src)
	if err != nil {
		return fmt.Errorf("unable to load source: %w", err)
	}

	tables := extractTables(pages, env, log)
	if len(tables) == 0 {
		return fmt.Errorf("no lyrics tables found in '%s'", src)
	}
	log.Info("Lyrics tables extracted", zap.Int("pages", len(pages)), zap.Int("tables", len(tables)))

	data, err := encodeYAML(tables)
	if err != nil {
		return err
	}
	return writeDestination(dst, data)
}

func extractTables(pages []source.Page, env *state.LocalEnv, log *zap.Logger) []extractedTable {
	parser := lyrics.NewParser(log)

	var res []extractedTable
	for _, p := range pages {
		for i, raw := range lyrics.FindTables(p.Text) {
			t := parser.Parse(raw)
			for _, fix := range env.Cfg.Generator.LyricsFixes {
				t.Rows = fix.Apply(t.Rows)
			}
			env.Rpt.StoreData(fmt.Sprintf("tables/%s-%d.txt", p.Title, i), []byte(debug.LyricsTable(p.Origin, t)))

			form := lyrics.EditorForm{
				LanguageIDs:        guessLanguages(t.Headers[0]),
				ForceEnglishColumn: env.Cfg.Generator.ForceEnglishColumn,
			}
			form.Load(t)
			res = append(res, extractedTable{
				Origin:  p.Origin,
				Title:   p.Title,
				Table:   i,
				Headers: t.Headers[:],
				Editor:  form,
			})
		}
	}
	return res
}

var reLanguageSeparators = regexp.MustCompile(`\s*(?:/|,|&|\band\b)\s*`)

// guessLanguages maps original column header ("Japanese", "Japanese/English")
// to language identifiers, unknown names are dropped.
func guessLanguages(header string) []int {
	var ids []int
	for _, name := range reLanguageSeparators.Split(header, -1) {
		if id := model.LanguageIDByName(name); id >= 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
