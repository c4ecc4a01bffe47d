package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	. "batchmock/pkg/metrics"
)

func TestRecordLoad_CountsOutcome(t *testing.T) {
	loaded := FixturesLoaded.WithLabelValues("JSON", OutcomeLoaded)
	parseErr := FixturesLoaded.WithLabelValues("JSON", OutcomeParseError)
	beforeLoaded := testutil.ToFloat64(loaded)
	beforeParse := testutil.ToFloat64(parseErr)

	RecordLoad("JSON", OutcomeLoaded, 0.001)
	RecordLoad("JSON", OutcomeParseError, 0.001)

	assert.Equal(t, beforeLoaded+1, testutil.ToFloat64(loaded))
	assert.Equal(t, beforeParse+1, testutil.ToFloat64(parseErr))
}

func TestRecordValidation_CountsStatus(t *testing.T) {
	c := ValidationsTotal.WithLabelValues("json", "FAILED")
	before := testutil.ToFloat64(c)

	RecordValidation("json", "FAILED")
	RecordValidation("json", "FAILED")

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}
