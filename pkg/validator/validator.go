package validator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"batchmock/pkg/logger"
	"batchmock/pkg/metrics"
	"batchmock/pkg/models"
)

const (
	MessageSuccess = "Batch executed successfully"
	MessageFailure = "Batch execution failed"
)

// ErrInvalidArgument is returned when a validation is called without a response.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	policyJSON = "json"
	policyText = "text"
)

// ValidateJSONLog decides success from the exit code. A failed response keeps
// its own error text as the message when it has one.
func ValidateJSONLog(resp *models.BatchResponse) (*models.ValidationResult, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: response is nil", ErrInvalidArgument)
	}

	var result *models.ValidationResult
	if resp.ExitCode == 0 {
		result = &models.ValidationResult{
			IsSuccess: true,
			Message:   MessageSuccess,
			Output:    resp.Output,
		}
	} else {
		msg := resp.ErrorText()
		if msg == "" {
			msg = MessageFailure
		}
		result = &models.ValidationResult{
			IsSuccess: false,
			Message:   msg,
			Output:    resp.Output,
		}
	}

	record(policyJSON, result, zap.Int("exit_code", resp.ExitCode))
	return result, nil
}

// ValidateTextLog copies the output only. Text logs carry no structured
// verdict, so callers inspect Output themselves.
func ValidateTextLog(resp *models.BatchResponse) (*models.ValidationResult, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: response is nil", ErrInvalidArgument)
	}

	result := &models.ValidationResult{Output: resp.Output}
	record(policyText, result)
	return result, nil
}

// Validate applies the policy matching the fixture format.
func Validate(format models.FixtureFormat, resp *models.BatchResponse) (*models.ValidationResult, error) {
	switch format {
	case models.FixtureFormatJSON:
		return ValidateJSONLog(resp)
	case models.FixtureFormatText:
		return ValidateTextLog(resp)
	default:
		return nil, fmt.Errorf("%w: unknown fixture format %q", ErrInvalidArgument, format)
	}
}

func record(policy string, result *models.ValidationResult, fields ...zap.Field) {
	status := result.Status()
	metrics.RecordValidation(policy, string(status))
	logger.Get().Debug("Validated batch response", append(fields,
		zap.String("policy", policy),
		zap.String("status", string(status)),
		zap.String("message", result.Message),
	)...)
}
