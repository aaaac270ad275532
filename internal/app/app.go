// Package app implements the application layer for stamp.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config   ports.ConfigLoader
	hasher   ports.Hasher
	resolver ports.PathResolver
	sweeper  ports.Sweeper
	manifest ports.ManifestStore
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	config ports.ConfigLoader,
	hasher ports.Hasher,
	resolver ports.PathResolver,
	sweeper ports.Sweeper,
	manifest ports.ManifestStore,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		config:   config,
		hasher:   hasher,
		resolver: resolver,
		sweeper:  sweeper,
		manifest: manifest,
		logger:   log,
		tracer:   tracer,
	}
}

// Components groups everything main needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Query reads one request document from in, computes the artifact identity,
// sweeps stale archives, and writes the response document to out. On any
// failure nothing is written to out: the caller gets a complete response or
// none.
func (a *App) Query(ctx context.Context, in io.Reader, out io.Writer) error {
	var query domain.Query
	if err := json.NewDecoder(in).Decode(&query); err != nil {
		return zerr.Wrap(err, "failed to decode request document")
	}

	if strings.TrimSpace(query.SourcePath) == "" {
		return domain.ErrSourcePathRequired
	}

	buildPaths, err := query.BuildPathList()
	if err != nil {
		return err
	}

	// The module root is threaded explicitly into every file access below;
	// the working directory is never changed.
	moduleRoot, err := filepath.Abs(query.ModuleRelpath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve module root"), "module_relpath", query.ModuleRelpath)
	}

	settings, err := a.config.Load(moduleRoot)
	if err != nil {
		return err
	}

	// Hash inputs are expressed relative to the module root so the digest
	// survives relocation of the whole repository.
	ctx, span := a.tracer.Start(ctx, "query.relativize")
	source := a.resolver.Relativize(query.SourcePath, query.ModuleRelpath)
	hashPaths := make([]string, 0, len(buildPaths)+1)
	hashPaths = append(hashPaths, source)
	for _, buildPath := range buildPaths {
		hashPaths = append(hashPaths, a.resolver.Relativize(buildPath, query.ModuleRelpath))
	}
	span.End()

	ctx, span = a.tracer.Start(ctx, "query.digest")
	digest, err := a.hasher.Digest(moduleRoot, hashPaths, query.Runtime, query.BuildCommand)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	// The filename crosses the wire, so it always uses forward slashes.
	filename := path.Join(settings.BuildsDir, digest+settings.ArchiveSuffix)

	command := strings.NewReplacer(
		"$filename", filename,
		"$runtime", query.Runtime,
		"$source", source,
	).Replace(query.BuildCommand)

	buildsDir := filepath.Join(moduleRoot, settings.BuildsDir)
	if err := a.manifest.Put(buildsDir, domain.ArtifactRecord{
		Digest:    digest,
		Filename:  filename,
		Runtime:   query.Runtime,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	_, span = a.tracer.Start(ctx, "query.sweep")
	if err := a.sweepArchives(buildsDir, domain.SweepOptions{
		MaxAge: settings.Retention,
		Suffix: settings.ArchiveSuffix,
	}); err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	return writeResult(out, domain.Result{Filename: filename, BuildCommand: command})
}

// HashOptions configuration for the Hash method.
type HashOptions struct {
	Root    string
	Runtime string
	Command string
}

// Hash computes the content digest for the given paths and writes the
// lowercase hex value to out.
func (a *App) Hash(ctx context.Context, paths []string, opts HashOptions, out io.Writer) error {
	if len(paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}

	_, span := a.tracer.Start(ctx, "hash.digest")
	digest, err := a.hasher.Digest(absRoot, paths, opts.Runtime, opts.Command)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	_, err = fmt.Fprintln(out, digest)
	return err
}

// Sweep removes stale archives from dir and reports every removed name to
// out. Manifest records for removed archives are dropped as well.
func (a *App) Sweep(ctx context.Context, dir string, opts domain.SweepOptions, out io.Writer) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve archive directory"), "dir", dir)
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = domain.RetentionWindow
	}
	if opts.Suffix == "" {
		opts.Suffix = domain.ArchiveSuffix
	}

	_, span := a.tracer.Start(ctx, "sweep")
	defer span.End()

	removed, err := a.sweeper.Sweep(absDir, opts)
	if err != nil {
		span.RecordError(err)
		return err
	}

	for _, name := range removed {
		if !opts.DryRun {
			if err := a.manifest.Delete(absDir, strings.TrimSuffix(name, opts.Suffix)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

// List writes every recorded artifact in dir's manifest to out.
func (a *App) List(_ context.Context, dir string, out io.Writer) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve archive directory"), "dir", dir)
	}

	records, err := a.manifest.All(absDir)
	if err != nil {
		return err
	}

	for _, record := range records {
		_, err := fmt.Fprintf(out, "%s  %-12s  %s\n",
			record.CreatedAt.Format(time.RFC3339), record.Runtime, record.Filename)
		if err != nil {
			return err
		}
	}
	return nil
}

// sweepArchives runs the retention sweep and drops manifest records for the
// archives it removed.
func (a *App) sweepArchives(dir string, opts domain.SweepOptions) error {
	removed, err := a.sweeper.Sweep(dir, opts)
	if err != nil {
		return err
	}

	for _, name := range removed {
		if err := a.manifest.Delete(dir, strings.TrimSuffix(name, opts.Suffix)); err != nil {
			return err
		}
	}

	if len(removed) > 0 {
		a.logger.Info(fmt.Sprintf("removed %d stale archives", len(removed)))
	}
	return nil
}

func writeResult(out io.Writer, result domain.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode response document")
	}
	data = append(data, '\n')

	if _, err := out.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write response document")
	}
	return nil
}
