package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/ianaindex"

	"unbound/archive"
	"unbound/common"
	"unbound/state"
)

// source is a single manuscript found in the input.
type source struct {
	// name is path relative to the input (always including file name), used
	// to build output path
	name string
	// origin is full location used in logs and error messages
	origin string
	read   func() ([]byte, error)
}

// handler processes single manuscript.
type handler func(ctx context.Context, src *source) error

// prepareEnv moves common command line options into environment.
func prepareEnv(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) {
	env.NoDirs, env.Overwrite, env.Stdout = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("stdout")
	env.Title, env.Author = cmd.String("title"), cmd.String("author")

	if cmd.Bool("stable-ids") {
		env.Cfg.Output.StableIDs = true
	}
	if cmd.Bool("typography") {
		env.Cfg.Ingest.Typography = true
	}
	if enc := cmd.String("encoding"); len(enc) > 0 {
		env.Cfg.Ingest.FallbackEncoding = enc
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		var err error
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}
}

// Run is the action of ingest command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("ingest")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if format, err = common.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, switching to configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Output.Format))
			format = env.Cfg.Output.Format
		}
	}

	prepareEnv(cmd, env, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, func(ctx context.Context, s *source) error {
		return processManuscript(ctx, s, dst, format, log)
	}, log)
}

// process determines the input type (directory, archive, single file or path
// inside archive), collects manuscripts and runs handler on each of them
// concurrently.
func process(ctx context.Context, src string, handle handler, log *zap.Logger) error {
	sources, err := collect(ctx, src, log)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		log.Debug("Nothing to process", zap.String("source", src))
		return nil
	}
	return runAll(ctx, sources, handle, log)
}

func collect(ctx context.Context, src string, log *zap.Logger) ([]*source, error) {
	env := state.EnvFromContext(ctx)

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return collectDir(ctx, head, log)
		}

		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			prefix := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			sources, err := collectArchive(ctx, head, prefix, "", log)
			if err != nil {
				return nil, fmt.Errorf("unable to process archive: %w", err)
			}
			return sources, nil
		}

		if len(tail) != 0 {
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		ok, err := isManuscriptFile(head, env.Cfg.Ingest.HasExtension)
		if err != nil {
			return nil, fmt.Errorf("unable to check file type: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("input was not recognized as manuscript (%s)", head)
		}
		return []*source{fileSource(head, filepath.Base(head))}, nil
	}
	return nil, fmt.Errorf("input source was not found (%s)", src)
}

func fileSource(path, name string) *source {
	return &source{
		name:   name,
		origin: path,
		read:   func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// collectDir walks directory tree finding manuscripts, archives are looked
// into.
func collectDir(ctx context.Context, dir string, log *zap.Logger) ([]*source, error) {
	env := state.EnvFromContext(ctx)

	var sources []*source
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			found, err := collectArchive(ctx, path, "", filepath.Dir(rel), log)
			if err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			sources = append(sources, found...)
			return nil
		}

		ok, err := isManuscriptFile(path, env.Cfg.Ingest.HasExtension)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as manuscript or archive", zap.String("file", path))
			return nil
		}
		sources = append(sources, fileSource(path, rel))
		return nil
	})
	return sources, err
}

// collectArchive finds manuscripts under "prefix" inside archive. Content is
// read eagerly since archive is closed when walk ends.
func collectArchive(ctx context.Context, path, prefix, pathOut string, log *zap.Logger) ([]*source, error) {
	env := state.EnvFromContext(ctx)

	opts := []archive.Option{archive.WithPrefix(prefix)}
	if env.CodePage != nil {
		opts = append(opts, archive.WithNameEncoding(env.CodePage))
	}

	var sources []*source
	err := archive.Walk(ctx, path, func(e *archive.Entry) error {
		ok, err := isManuscriptInArchive(e, env.Cfg.Ingest.HasExtension)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", e.Archive), zap.String("path", e.Name), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as manuscript", zap.String("archive", e.Archive), zap.String("file", e.Name))
			return nil
		}
		data, err := e.ReadAll()
		if err != nil {
			log.Error("Unable to read file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		sources = append(sources, &source{
			name:   filepath.Join(pathOut, filepath.FromSlash(e.Name)),
			origin: path + "/" + e.Name,
			read:   func() ([]byte, error) { return data, nil },
		})
		return nil
	}, opts...)
	return sources, err
}

// runAll processes sources in natural order of their names using configured
// number of workers. Failure of a single manuscript does not stop the others.
func runAll(ctx context.Context, sources []*source, handle handler, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	sortSources(sources)

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(env.Workers())
	for _, s := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := handle(gctx, s); err != nil {
				failed.Add(1)
				log.Error("Unable to process manuscript", zap.String("source", s.origin), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d manuscripts failed", n, len(sources))
	}
	return nil
}

func naturalCompare(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

func sortSources(sources []*source) {
	slices.SortStableFunc(sources, func(a, b *source) int {
		return naturalCompare(a.name, b.name)
	})
}
