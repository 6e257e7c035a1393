package validator

import (
	"strings"
	"testing"

	"gymgrid/pkg/logger"
	"gymgrid/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.TEXT,
		Service: "test",
	}))
}

func TestValidate_ValidRequest(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(&model.BookRequest{ActorID: 7, ClassID: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	v := newTestValidator()

	err := v.Validate(&model.BookRequest{})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "ActorID") || !strings.Contains(msg, "ClassID") {
		t.Errorf("expected both fields reported, got %q", msg)
	}
}

func TestValidateCancel(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateCancel(&model.CancelRequest{ActorID: 7, ClassID: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.ValidateCancel(&model.CancelRequest{ActorID: 7}); err == nil {
		t.Error("expected a missing class id to fail")
	}
}

func TestValidate_NegativeIDs(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate(&model.BookRequest{ActorID: -1, ClassID: 5}); err == nil {
		t.Error("expected a negative actor id to fail")
	}
	if err := v.Validate(&model.BookRequest{ActorID: 7, ClassID: -2}); err == nil {
		t.Error("expected a negative class id to fail")
	}
}
