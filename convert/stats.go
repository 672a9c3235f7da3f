package convert

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"sync"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"unbound/common"
	"unbound/stats"
	"unbound/state"
	"unbound/text"
)

type statsEntry struct {
	Source       string `json:"source" yaml:"source"`
	stats.Report `yaml:",inline"`
}

// Stats is the action of stats command, it prints statistics of every
// manuscript found in the source.
func Stats(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("stats")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	format := common.OutputFmtYaml
	if cmd.String("to") == common.OutputFmtJson.String() {
		format = common.OutputFmtJson
	}

	prepareEnv(cmd, env, log)

	defer func(start time.Time) {
		log.Debug("Statistics collected", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	entries, err := collectStats(ctx, src, log)
	if len(entries) > 0 {
		stdoutMu.Lock()
		defer stdoutMu.Unlock()
		if werr := writeStats(stdout, entries, format); werr != nil {
			return werr
		}
	}
	return err
}

func collectStats(ctx context.Context, src string, log *zap.Logger) ([]statsEntry, error) {
	env := state.EnvFromContext(ctx)
	splitter := text.NewSplitter(language.Make(env.Cfg.Ingest.Language), log)

	var (
		mu      sync.Mutex
		entries []statsEntry
	)
	err := process(ctx, src, func(ctx context.Context, s *source) error {
		p, err := ingestSource(ctx, s, log.With(zap.String("source", s.name)))
		if err != nil {
			return err
		}
		// sentence tokenizer is not documented as safe for concurrent use
		mu.Lock()
		defer mu.Unlock()
		entries = append(entries, statsEntry{Source: s.name, Report: *stats.Compute(p, splitter)})
		return nil
	}, log)

	sortEntries(entries)
	return entries, err
}

func sortEntries(entries []statsEntry) {
	slices.SortStableFunc(entries, func(a, b statsEntry) int {
		return naturalCompare(a.Source, b.Source)
	})
}

func writeStats(w io.Writer, entries []statsEntry, format common.OutputFmt) error {
	if format == common.OutputFmtJson {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
