package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"unbound/common"
	"unbound/ingest"
	"unbound/manuscript"
	"unbound/state"
)

var (
	stdoutMu sync.Mutex
	stdout   io.Writer = os.Stdout
)

// ingestSource decodes and ingests single manuscript.
func ingestSource(ctx context.Context, s *source, log *zap.Logger) (*manuscript.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	opts, err := env.SourceOptions()
	if err != nil {
		return nil, err
	}
	data, err := s.read()
	if err != nil {
		return nil, &ingest.InputError{Source: s.origin, Err: fmt.Errorf("%w: %w", ingest.ErrSourceRead, err)}
	}
	text, err := ingest.DecodeText(data, s.origin, opts...)
	if err != nil {
		return nil, err
	}

	meta := ingest.Meta{Title: env.Title, Author: env.Author}
	if meta.Title == "" && env.Cfg.Ingest.TitleFromFileName {
		meta.Title = strings.TrimSuffix(filepath.Base(s.name), filepath.Ext(s.name))
	}

	in := env.NewIngester(log)
	p := in.Ingest(text, meta)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("ingested project is inconsistent: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("normalized", s.name)), []byte(in.Normalize(text)))
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("tree", s.name))+".txt", []byte(p.String()))
	}
	return p, nil
}

// processManuscript ingests single manuscript and writes the result. "dst" is
// the destination directory.
func processManuscript(ctx context.Context, s *source, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var projectID, outputName string

	log.Info("Ingestion starting", zap.String("from", s.origin))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Ingestion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("ingestion panic: %v", r)
		} else if rerr == nil {
			log.Info("Ingestion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("project_id", projectID))
		}
	}(time.Now())

	p, err := ingestSource(ctx, s, log.With(zap.String("source", s.name)))
	if err != nil {
		return err
	}
	projectID = p.ID

	if env.Stdout {
		outputName = "stdout"
		stdoutMu.Lock()
		defer stdoutMu.Unlock()
		return Generate(stdout, p, format, env.Cfg.Output.Pretty)
	}

	outputName = buildOutputPath(p, s.name, dst, format, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := writeOutput(outputName, p, format, env.Cfg.Output.Pretty); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	if err := env.Rpt.StoreCopy(filepath.ToSlash(filepath.Join("result", s.name))+format.Ext(), outputName); err != nil {
		log.Warn("Unable to store result in debug report", zap.String("file", outputName), zap.Error(err))
	}
	return nil
}

func writeOutput(name string, p *manuscript.Project, format common.OutputFmt, pretty bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := Generate(w, p, format, pretty); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
