package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("unexpected end of JSON input")
				return NewParseError("decode hourly forecast", cause)
			},
			expected: "PARSE_ERROR: decode hourly forecast (caused by: unexpected end of JSON input)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeGeolocation, "GEOLOCATION_ERROR"},
		{ErrorTypeExternalAPI, "EXTERNAL_API_ERROR"},
		{ErrorTypeParse, "PARSE_ERROR"},
		{ErrorTypeDelivery, "DELIVERY_ERROR"},
		{ErrorTypeConfigParse, "CONFIG_PARSE_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeChecks_FollowWrappedChain(t *testing.T) {
	parseErr := NewParseError("missing current_observation", nil)
	wrapped := fmt.Errorf("wundr conditions: %w", parseErr)

	assert.True(t, IsParseError(wrapped))
	assert.False(t, IsExternalAPIError(wrapped))
	assert.Equal(t, ParseError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewExternalAPIError("request failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestConstructors(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.True(t, IsGeolocationError(NewGeolocationError("no fix", nil)))
	assert.True(t, IsDeliveryError(NewDeliveryError("nack", nil)))
	assert.True(t, IsConfigParseError(NewConfigParseError("bad json", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("db down", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad env", nil)))
}
