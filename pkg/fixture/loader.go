// Package fixture loads mock batch job results from fixture files.
//
// A fixture is either a plain text file whose whole content is the job output,
// or a JSON document of the form
//
//	{ "ExitCode": 1, "Output": "...", "Error": "File not found" }
//
// The format is picked from the file extension, ignoring case. JSON keys also
// match case-insensitively, so "exitcode" binds to ExitCode. A leading UTF-8
// byte order mark is dropped from JSON fixtures; text fixtures are kept as-is.
package fixture

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"batchmock/pkg/logger"
	"batchmock/pkg/metrics"
	"batchmock/pkg/models"
	tracing "batchmock/pkg/observability"
)

const tracerName = "batchmock/fixture"

var utf8BOM = []byte("\xef\xbb\xbf")

// Loader reads fixture files into BatchResponse records.
type Loader struct {
	fsys   fs.FS // nil reads from the OS filesystem
	logger *zap.Logger
	tracer trace.Tracer
	strict bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS reads fixtures from fsys instead of the OS filesystem. Paths must then
// be valid fs.FS paths (slash separated, unrooted).
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) { l.fsys = fsys }
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.logger = log }
}

// WithTracer sets the tracer used for load spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(l *Loader) { l.tracer = tracer }
}

// WithStrictSchema toggles the JSON shape check. It is on by default.
func WithStrictSchema(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{strict: true}
	for _, opt := range opts {
		opt(l)
	}
	if l.tracer == nil {
		l.tracer = otel.Tracer(tracerName)
	}
	return l
}

var defaultLoader = sync.OnceValue(func() *Loader { return NewLoader() })

// LoadMockResponse loads the fixture at filePath from the OS filesystem.
func LoadMockResponse(filePath string) (*models.BatchResponse, error) {
	return defaultLoader().Load(context.Background(), filePath)
}

// FormatOf resolves the fixture format from the extension of filePath.
func FormatOf(filePath string) (models.FixtureFormat, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".txt":
		return models.FixtureFormatText, nil
	case ".json":
		return models.FixtureFormatJSON, nil
	default:
		return "", &LoadError{Op: opLoad, Path: filePath, Ext: ext, Kind: ErrUnsupportedFormat}
	}
}

// Load reads the fixture at filePath. The whole file is read in one go; there
// is no caching and no retry.
func (l *Loader) Load(ctx context.Context, filePath string) (*models.BatchResponse, error) {
	ctx, span := l.tracer.Start(ctx, "fixture.Load",
		trace.WithAttributes(attribute.String("fixture.path", filePath)))
	defer span.End()

	start := time.Now()
	resp, format, err := l.load(filePath)

	label := string(format)
	if label == "" {
		label = "UNKNOWN"
	}
	tracing.SetAttributes(ctx, attribute.String("fixture.format", label))

	if err != nil {
		tracing.SetError(ctx, err)
		metrics.RecordLoad(label, outcomeOf(err), time.Since(start).Seconds())
		l.log().Warn("Failed to load mock response",
			zap.String("path", filePath),
			zap.String("trace_id", tracing.TraceID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordLoad(label, metrics.OutcomeLoaded, time.Since(start).Seconds())
	l.log().Debug("Loaded mock response",
		zap.String("path", filePath),
		zap.String("format", label),
		zap.Int("exit_code", resp.ExitCode),
		zap.Int("output_bytes", len(resp.Output)),
	)
	return resp, nil
}

func (l *Loader) load(filePath string) (*models.BatchResponse, models.FixtureFormat, error) {
	info, err := l.stat(filePath)
	if err != nil || info.IsDir() {
		return nil, "", &LoadError{Op: opLoad, Path: filePath, Kind: ErrNotFound, Err: err}
	}

	format, err := FormatOf(filePath)
	if err != nil {
		return nil, "", err
	}

	data, err := l.readFile(filePath)
	if err != nil {
		return nil, format, &LoadError{Op: opLoad, Path: filePath, Err: err}
	}

	switch format {
	case models.FixtureFormatText:
		return &models.BatchResponse{Output: string(data)}, format, nil
	default:
		resp, err := l.decodeJSON(filePath, data)
		return resp, format, err
	}
}

func (l *Loader) decodeJSON(filePath string, data []byte) (*models.BatchResponse, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var resp models.BatchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &LoadError{Op: opLoad, Path: filePath, Ext: ".json", Kind: ErrParse, Err: err}
	}

	// Unmarshal accepts a bare null and nulls for ExitCode/Output; the schema does not.
	if l.strict {
		if err := checkShape(data); err != nil {
			return nil, &LoadError{Op: opLoad, Path: filePath, Ext: ".json", Kind: ErrParse, Err: err}
		}
	}

	return &resp, nil
}

func (l *Loader) stat(name string) (fs.FileInfo, error) {
	if l.fsys != nil {
		return fs.Stat(l.fsys, name)
	}
	return os.Stat(name)
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, name)
	}
	return os.ReadFile(name)
}

func (l *Loader) log() *zap.Logger {
	if l.logger != nil {
		return l.logger
	}
	return logger.Get()
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrUnsupportedFormat):
		return metrics.OutcomeUnsupported
	case errors.Is(err, ErrParse):
		return metrics.OutcomeParseError
	default:
		return metrics.OutcomeReadError
	}
}
