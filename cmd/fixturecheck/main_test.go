package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"batchmock/pkg/fixture"
)

const job1Root = "../../pkg/fixture/testdata/ResponseFile"

func newTestRun(t *testing.T) (*fixture.Loader, *zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	return fixture.NewLoader(fixture.WithLogger(log)), log, logs
}

func TestRun_Job1(t *testing.T) {
	loader, log, logs := newTestRun(t)

	code := run(context.Background(), loader, log, job1Root, false)

	assert.Equal(t, 0, code)
	assert.Equal(t, 4, logs.FilterMessage("Fixture checked").Len())

	done := logs.FilterMessage("Fixture check complete").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.EqualValues(t, 4, fields["total"])
	assert.EqualValues(t, 1, fields["success"])
	assert.EqualValues(t, 1, fields["failed"])
	assert.EqualValues(t, 2, fields["text"])
}

func TestRun_FailOnFailure(t *testing.T) {
	loader, log, _ := newTestRun(t)

	assert.Equal(t, 1, run(context.Background(), loader, log, job1Root, true))
}

func TestRun_AllPassingWithFailOnFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.json"), []byte(`{"ExitCode":0,"Output":"done"}`), 0644))
	loader, log, _ := newTestRun(t)

	assert.Equal(t, 0, run(context.Background(), loader, log, dir, true))
}

func TestRun_MissingDirectory(t *testing.T) {
	loader, log, logs := newTestRun(t)

	code := run(context.Background(), loader, log, filepath.Join(t.TempDir(), "absent"), false)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, logs.FilterMessage("Fixture check aborted").Len())
}

func TestRun_BadFixture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"ExitCode":"0"}`), 0644))
	loader, log, _ := newTestRun(t)

	assert.Equal(t, 1, run(context.Background(), loader, log, dir, false))
}
