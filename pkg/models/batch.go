package models

// FixtureFormat defines how a fixture file is decoded.
type FixtureFormat string

const (
	FixtureFormatText FixtureFormat = "TEXT"
	FixtureFormatJSON FixtureFormat = "JSON"
)

// ExecutionStatus is the verdict of a validated batch execution.
type ExecutionStatus string

const (
	ExecutionSuccess ExecutionStatus = "SUCCESS"
	ExecutionFailed  ExecutionStatus = "FAILED"
	// ExecutionUnknown marks text results, which carry no structured verdict.
	ExecutionUnknown ExecutionStatus = "UNKNOWN"
)

// BatchResponse is the captured result of a (simulated) batch job execution.
// JSON fixtures use the field names as written here.
type BatchResponse struct {
	ExitCode int     `json:"ExitCode"`
	Output   string  `json:"Output"`
	Error    *string `json:"Error"` // nil when absent or null
}

// ErrorText returns the failure reason, or "" when none was recorded.
func (r *BatchResponse) ErrorText() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return *r.Error
}

// ValidationResult is the verdict produced for a BatchResponse.
type ValidationResult struct {
	IsSuccess bool   `json:"is_success"`
	Message   string `json:"message,omitempty"`
	Output    string `json:"output"`
}

// Status maps the result onto an ExecutionStatus. Results without a message
// come from the text policy and report ExecutionUnknown.
func (v *ValidationResult) Status() ExecutionStatus {
	switch {
	case v == nil || v.Message == "":
		return ExecutionUnknown
	case v.IsSuccess:
		return ExecutionSuccess
	default:
		return ExecutionFailed
	}
}
