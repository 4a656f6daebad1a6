// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"vlwgen/config"
	"vlwgen/synths"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// set by subcommands from command line
	Overwrite    bool
	IgnoreErrors bool
	CodePage     encoding.Encoding

	synthsOnce  sync.Once
	synthsStore *synths.Store
	synthsErr   error

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// SetCodePage selects encoding forced for non UTF-8 input, empty name keeps
// detection.
func (e *LocalEnv) SetCodePage(name string) error {
	if len(name) == 0 {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return fmt.Errorf("unknown character set '%s': %w", name, err)
	}
	if enc == nil {
		return fmt.Errorf("unsupported character set '%s'", name)
	}
	e.CodePage = enc
	return nil
}

// Synths returns synth lookup for metadata mapping. Database is opened on
// first use, when none is configured an empty lookup is returned and synth
// links are left unresolved.
func (e *LocalEnv) Synths() (synths.Lookup, error) {
	if e.Cfg == nil || len(e.Cfg.Synths.Database) == 0 {
		return synths.Memory{}, nil
	}
	e.synthsOnce.Do(func() {
		e.synthsStore, e.synthsErr = synths.Open(e.Cfg.Synths.Database, e.Cfg.Synths.PoolSize, e.Log)
	})
	if e.synthsErr != nil {
		return nil, fmt.Errorf("unable to open synths database: %w", e.synthsErr)
	}
	return e.synthsStore, nil
}

// Close releases resources opened on demand.
func (e *LocalEnv) Close() error {
	if e.synthsStore == nil {
		return nil
	}
	err := e.synthsStore.Close()
	e.synthsStore = nil
	return err
}
