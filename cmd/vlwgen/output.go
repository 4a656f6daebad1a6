package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"vlwgen/config"
	"vlwgen/state"
)

const outputExt = ".wiki"

// nameValues are available for output name template expansion.
type nameValues struct {
	Kind  string
	Title string
	// ID is base name of the snapshot file
	ID string
}

// buildOutputPath returns output file path for generated page. User-defined
// template may produce subdirectories, every path segment is cleaned up and
// if requested transliterated.
func buildOutputPath(outDir string, v nameValues, env *state.LocalEnv) string {
	defaultFile := cleanPathSegment(defaultName(v), env) + outputExt

	if env.Cfg.Generator.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName, err := expandOutputName(env.Cfg.Generator.OutputNameTemplate, v)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}
	if strings.TrimSpace(expandedName) == "" {
		return filepath.Join(outDir, defaultFile)
	}
	return assemblePathWithSubdirs(outDir, filepath.FromSlash(expandedName), env)
}

func defaultName(v nameValues) string {
	title := v.Title
	if title == "" {
		title = v.ID
	}
	return v.Kind + "-" + title
}

func expandOutputName(field string, v nameValues) (string, error) {
	tmpl, err := template.New(string(config.OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", config.OutputNameTemplateFieldName, err)
	}

	// page titles may contain slashes, they must not produce directories
	v.Title = strings.ReplaceAll(v.Title, "/", "_")

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	pathSegments := splitPath(expandedName)
	if len(pathSegments) == 0 {
		return outDir
	}

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}
	dirParts = append(dirParts, cleanPathSegment(pathSegments[len(pathSegments)-1], env)+outputExt)
	return filepath.Join(dirParts...)
}

// splitPath breaks path into segments dropping empty ones and attempts to
// leave output directory.
func splitPath(path string) []string {
	segments := make([]string, 0, 8)
	for s := range strings.SplitSeq(path, string(os.PathSeparator)) {
		s = strings.TrimSpace(s)
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return slices.Clip(segments)
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Generator.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

var errOutputExists = errors.New("output file already exists")

// writeOutput stores generated page according to conflict resolution mode.
// It reports whether file was actually written. Existence check and file
// creation are a single step, so concurrent writers of the same path cannot
// overwrite each other unless mode allows it.
func writeOutput(path string, data []byte, mode config.OutputConflict, log *zap.Logger) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("unable to create output directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if mode == config.OutputConflictOverwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	switch {
	case errors.Is(err, fs.ErrExist) && mode == config.OutputConflictSkip:
		log.Warn("Output file exists, skipping", zap.String("file", path))
		return false, nil
	case errors.Is(err, fs.ErrExist):
		return false, fmt.Errorf("%w: '%s'", errOutputExists, path)
	case err != nil:
		return false, fmt.Errorf("unable to create output file: %w", err)
	}

	_, err = f.Write(data)
	if err = multierr.Append(err, f.Close()); err != nil {
		return false, fmt.Errorf("unable to write output file: %w", err)
	}
	return true, nil
}
