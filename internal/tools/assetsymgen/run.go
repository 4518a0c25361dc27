package assetsymgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/louisbranch/sgfplayer/internal/platform/assets/catalog"
	"github.com/louisbranch/sgfplayer/internal/platform/otel"
)

const tracerName = "github.com/louisbranch/sgfplayer/internal/tools/assetsymgen"

// ErrStale reports a checked-in generated file that no longer matches its catalog.
var ErrStale = errors.New("generated file is out of date")

// Run loads the catalog and writes (or, with Check, verifies) the generated files.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "assetsymgen.Run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	manifest, err := catalog.Load(cfg.Manifest)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "manifest", cfg.Manifest, "entries", len(manifest.Entries))

	source, table, err := Render(manifest, Options{
		Package:  cfg.Package,
		TypeName: cfg.TypeName,
		Source:   cfg.Manifest,
		Reserved: cfg.reservedNames(),
	})
	if err != nil {
		return fmt.Errorf("generate %s: %w", cfg.Out, err)
	}
	span.SetAttributes(
		attribute.String("assetsymgen.manifest", manifest.ID),
		attribute.Int("assetsymgen.entries", table.Len()),
		attribute.Bool("assetsymgen.check", cfg.Check),
	)

	outputs := []output{{path: cfg.Out, content: source}}
	if cfg.DocOut != "" {
		outputs = append(outputs, output{
			path:    cfg.DocOut,
			content: []byte(RenderMarkdown(manifest, table, cfg.Manifest)),
		})
	}
	for _, out := range outputs {
		if cfg.Check {
			if err := checkOutput(out); err != nil {
				return err
			}
			logger.Debug("generated file up to date", "path", out.path)
			continue
		}
		changed, err := writeOutput(out)
		if err != nil {
			return err
		}
		logger.Info("generated asset names", "path", out.path, "entries", table.Len(), "changed", changed)
	}
	return nil
}

type output struct {
	path    string
	content []byte
}

func checkOutput(out output) error {
	existing, err := os.ReadFile(out.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s is missing", ErrStale, out.path)
		}
		return fmt.Errorf("read %s: %w", out.path, err)
	}
	if !bytes.Equal(existing, out.content) {
		return fmt.Errorf("%w: %s", ErrStale, out.path)
	}
	return nil
}

// writeOutput replaces out.path atomically, leaving an identical file untouched.
func writeOutput(out output) (bool, error) {
	if existing, err := os.ReadFile(out.path); err == nil && bytes.Equal(existing, out.content) {
		return false, nil
	}
	dir := filepath.Dir(out.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(out.path)+".*")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(out.content); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("write %s: %w", out.path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("chmod %s: %w", out.path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", out.path, err)
	}
	if err := os.Rename(tmpName, out.path); err != nil {
		return false, fmt.Errorf("rename %s: %w", out.path, err)
	}
	return true, nil
}
