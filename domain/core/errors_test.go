package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSchemaErrorMessage tests that schema errors name the record and field
func TestSchemaErrorMessage(t *testing.T) {
	err := NewSchemaError("mcp", "kafkaIndex.exitCost", "required dimension is missing")
	msg := err.Error()
	if !strings.Contains(msg, "mcp") {
		t.Errorf("Expected error message to contain slug, got: %s", msg)
	}
	if !strings.Contains(msg, "kafkaIndex.exitCost") {
		t.Errorf("Expected error message to contain field, got: %s", msg)
	}
}

// TestSchemaErrorUnwrap tests that schema errors match ErrSchema
func TestSchemaErrorUnwrap(t *testing.T) {
	err := NewSchemaError("mcp", "name", "required field is missing or empty")
	if !errors.Is(err, ErrSchema) {
		t.Error("Expected schema error to unwrap to ErrSchema")
	}
	if !IsSchemaError(err) {
		t.Error("Expected IsSchemaError to report true")
	}
	if IsNotFoundError(err) {
		t.Error("Schema error should not be a not-found error")
	}
}

// TestNotFoundError tests not-found classification
func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(Slug("nope"))
	if !IsNotFoundError(err) {
		t.Error("Expected IsNotFoundError to report true")
	}
	if !errors.Is(err, ErrProtocolNotFound) {
		t.Error("Expected error to match ErrProtocolNotFound")
	}
	if IsSchemaError(err) {
		t.Error("Not-found error should not be a schema error")
	}

	wrapped := fmt.Errorf("loading dashboard: %w", err)
	if !IsNotFoundError(wrapped) {
		t.Error("Expected wrapped not-found error to still be detected")
	}
}
