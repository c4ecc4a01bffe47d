// Package batchtest wraps fixture loading and validation in testify
// assertions, so a batch job test reads as one line per expectation:
//
//	batchtest.RequireJSONSuccess(t, batchtest.Path("Job1", "Job1mockSuccess.json"))
//	batchtest.AssertOutputContains(t, batchtest.Path("Job1", "Job1mockFailure.txt"), "400 Bad Request")
package batchtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "batchmock/configs"
	"batchmock/pkg/fixture"
	"batchmock/pkg/models"
	"batchmock/pkg/validator"
)

// Path joins parts under the fixture base directory (FIXTURE_DIR).
func Path(parts ...string) string {
	return filepath.Join(append([]string{config.LoadConfig().FixtureDir}, parts...)...)
}

// LoadResponse loads a fixture and stops the test if it cannot be loaded.
func LoadResponse(t testing.TB, path string) *models.BatchResponse {
	t.Helper()
	resp, err := fixture.LoadMockResponse(path)
	require.NoError(t, err, "loading fixture %s", path)
	return resp
}

// RequireJSONSuccess asserts that a JSON fixture validates as a success.
func RequireJSONSuccess(t testing.TB, path string) *models.ValidationResult {
	t.Helper()
	result := validateJSON(t, path)
	assert.True(t, result.IsSuccess, "expected %s to succeed, got: %s", path, result.Message)
	assert.Equal(t, validator.MessageSuccess, result.Message)
	return result
}

// RequireJSONFailure asserts that a JSON fixture validates as a failure with
// wantMessage.
func RequireJSONFailure(t testing.TB, path, wantMessage string) *models.ValidationResult {
	t.Helper()
	result := validateJSON(t, path)
	assert.False(t, result.IsSuccess, "expected %s to fail", path)
	assert.Equal(t, wantMessage, result.Message)
	return result
}

// AssertOutputContains runs the text policy on a fixture and checks its
// output for substr.
func AssertOutputContains(t testing.TB, path, substr string) *models.ValidationResult {
	t.Helper()
	result, err := validator.ValidateTextLog(LoadResponse(t, path))
	require.NoError(t, err)
	assert.Contains(t, result.Output, substr)
	return result
}

func validateJSON(t testing.TB, path string) *models.ValidationResult {
	t.Helper()
	result, err := validator.ValidateJSONLog(LoadResponse(t, path))
	require.NoError(t, err)
	return result
}
