// Package state defines shared program state.
package state

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"unbound/classify"
	"unbound/config"
	"unbound/ingest"
	"unbound/manuscript"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by ingest and stats subcommands
	NoDirs    bool
	Overwrite bool
	Stdout    bool
	Title     string
	Author    string
	CodePage  encoding.Encoding

	classifier    func() *classify.Classifier
	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	e := &LocalEnv{start: time.Now()}
	e.classifier = sync.OnceValue(func() *classify.Classifier {
		if e.Cfg == nil {
			return classify.Default()
		}
		return classify.New(e.Cfg.Ingest.Vocabulary())
	})
	return e
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

// Workers returns number of manuscripts to process concurrently.
func (e *LocalEnv) Workers() int {
	if e.Cfg == nil || e.Cfg.Ingest.Workers <= 0 {
		return runtime.NumCPU()
	}
	return e.Cfg.Ingest.Workers
}

// Classifier returns heading classifier built from configured vocabulary.
// It is built once, configuration must be loaded by then.
func (e *LocalEnv) Classifier() *classify.Classifier {
	if e.classifier == nil {
		return classify.Default()
	}
	return e.classifier()
}

// NewIngester returns ingester for a single manuscript. With stable ids
// every manuscript gets its own sequence, so ingester must not be shared.
func (e *LocalEnv) NewIngester(log *zap.Logger) *ingest.Ingester {
	opts := []ingest.Option{
		ingest.WithLogger(log),
		ingest.WithClassifier(e.Classifier()),
	}
	if e.Cfg != nil {
		opts = append(opts, ingest.WithTypography(e.Cfg.Ingest.Typography))
		if e.Cfg.Output.StableIDs {
			opts = append(opts, ingest.WithIDs(manuscript.SequentialIDs("")))
		}
	}
	return ingest.New(opts...)
}

// SourceOptions returns options for reading manuscript sources.
func (e *LocalEnv) SourceOptions() ([]ingest.SourceOption, error) {
	if e.Cfg == nil {
		return nil, nil
	}
	opt, err := ingest.FallbackOption(e.Cfg.Ingest.FallbackEncoding)
	if err != nil {
		return nil, err
	}
	return []ingest.SourceOption{opt}, nil
}
