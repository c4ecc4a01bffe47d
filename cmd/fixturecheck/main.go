package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	config "batchmock/configs"
	"batchmock/pkg/fixture"
	"batchmock/pkg/logger"
	"batchmock/pkg/models"
	tracing "batchmock/pkg/observability"
	"batchmock/pkg/validator"
)

// summary counts verdicts over one run.
type summary struct {
	Total   int
	Success int
	Failed  int
	Text    int
}

func main() {
	dir := flag.String("dir", "", "fixture directory (default $FIXTURE_DIR)")
	failOnFailure := flag.Bool("fail-on-failure", false, "exit 1 when a JSON fixture reports a failed batch")
	flag.Parse()

	cfg := config.LoadConfig()
	if *dir == "" {
		*dir = cfg.FixtureDir
	}

	log, err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogOutput,
		Service:    cfg.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	traceCfg := tracing.DefaultConfig(cfg.ServiceName)
	traceCfg.Enabled = cfg.TracingEnabled
	tp, err := tracing.Init(ctx, traceCfg)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer tp.Shutdown(ctx)

	loader := fixture.NewLoader(
		fixture.WithLogger(log),
		fixture.WithTracer(tp.Tracer()),
		fixture.WithStrictSchema(cfg.StrictSchema),
	)

	code := run(ctx, loader, logger.WithFields(zap.String("run_id", uuid.NewString())), *dir, *failOnFailure)
	if code != 0 {
		_ = logger.Sync()
		_ = tp.Shutdown(ctx)
		os.Exit(code)
	}
}

// run loads and validates every fixture in dir and returns the process exit code.
func run(ctx context.Context, loader *fixture.Loader, log *zap.Logger, dir string, failOnFailure bool) int {
	log.Info("Checking fixtures", zap.String("dir", dir))

	fixtures, err := loader.LoadDir(ctx, dir)
	if err != nil {
		log.Error("Fixture check aborted", zap.Error(err))
		return 1
	}

	var s summary
	for _, f := range fixtures {
		result, err := validator.Validate(f.Format, f.Response)
		if err != nil {
			log.Error("Validation failed", zap.String("path", f.Path), zap.Error(err))
			return 1
		}

		s.Total++
		status := result.Status()
		switch status {
		case models.ExecutionSuccess:
			s.Success++
		case models.ExecutionFailed:
			s.Failed++
		default:
			s.Text++
		}

		log.Info("Fixture checked",
			zap.String("path", f.Path),
			zap.String("format", string(f.Format)),
			zap.String("status", string(status)),
			zap.String("message", result.Message),
			zap.Int("output_bytes", len(result.Output)),
		)
	}

	log.Info("Fixture check complete",
		zap.Int("total", s.Total),
		zap.Int("success", s.Success),
		zap.Int("failed", s.Failed),
		zap.Int("text", s.Text),
	)

	if failOnFailure && s.Failed > 0 {
		return 1
	}
	return 0
}
