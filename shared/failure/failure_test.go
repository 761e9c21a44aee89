package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"primecm/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusNotFound,
		Message: "customer not found",
	}

	if f.Error() != "customer not found" {
		t.Errorf("expected error message to be 'customer not found', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "InvalidCredentials", failure: failure.InvalidCredentials, code: http.StatusUnauthorized},
		{name: "InvalidToken", failure: failure.InvalidToken, code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("failed to decode request body")),
			code:    http.StatusBadRequest,
			message: "failed to decode request body",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("malformed form"),
			code:    http.StatusBadRequest,
			message: "malformed form",
		},
		{
			name:    "unprocessable",
			err:     failure.Unprocessable("phone_number is required"),
			code:    http.StatusUnprocessableEntity,
			message: "phone_number is required",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
		{
			name:    "not found",
			err:     failure.NotFound("customer not found"),
			code:    http.StatusNotFound,
			message: "customer not found",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("level zero required"),
			code:    http.StatusForbidden,
			message: "level zero required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil from BadRequest(nil), got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil from InternalError(nil), got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.Unprocessable("invalid"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to create customer: %w", failure.NotFound("customer not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
