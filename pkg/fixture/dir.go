package fixture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"batchmock/pkg/models"
	tracing "batchmock/pkg/observability"
)

// Fixture is a loaded fixture file.
type Fixture struct {
	Path     string
	Format   models.FixtureFormat
	Response *models.BatchResponse
}

// LoadDir loads every .txt and .json fixture below dir, in lexical order.
// Files with other extensions are skipped. The first failing fixture stops
// the walk and its error is returned.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]Fixture, error) {
	ctx, span := l.tracer.Start(ctx, "fixture.LoadDir",
		trace.WithAttributes(attribute.String("fixture.dir", dir)))
	defer span.End()

	info, err := l.stat(dir)
	if err != nil || !info.IsDir() {
		err = &LoadError{Op: opWalk, Path: dir, Kind: ErrNotFound, Err: err}
		tracing.SetError(ctx, err)
		return nil, err
	}

	var fixtures []Fixture
	walk := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, err := FormatOf(p)
		if err != nil {
			l.log().Debug("Skipping non-fixture file", zap.String("path", p))
			return nil
		}
		resp, err := l.Load(ctx, p)
		if err != nil {
			return err
		}
		fixtures = append(fixtures, Fixture{Path: p, Format: format, Response: resp})
		return nil
	}

	if l.fsys != nil {
		err = fs.WalkDir(l.fsys, dir, walk)
	} else {
		err = filepath.WalkDir(dir, walk)
	}
	if err != nil {
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			err = fmt.Errorf("failed to walk fixtures in %s: %w", dir, err)
		}
		tracing.SetError(ctx, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("fixture.count", len(fixtures)))
	return fixtures, nil
}
