package domain

import (
	"errors"
	"testing"
)

func TestValidateRestaurant(t *testing.T) {
	if err := ValidateRestaurant(Restaurant{ID: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateRestaurant(Restaurant{Name: "No ID"})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("want ErrMissingID, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %T", err)
	}
	if verr.Field != "id" {
		t.Errorf("field: got %q", verr.Field)
	}
}

func TestValidateBatch(t *testing.T) {
	batch := []Restaurant{{ID: "1"}, {ID: "2"}, {Name: "broken"}}
	err := ValidateBatch(batch)
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("want ErrMissingID, got %v", err)
	}

	if err := ValidateBatch(nil); err != nil {
		t.Errorf("empty batch should validate, got %v", err)
	}
}

func TestValidateMessage(t *testing.T) {
	if err := ValidateMessage("where can I get biryani?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, msg := range []string{"", "   ", "\t\n"} {
		if err := ValidateMessage(msg); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("message %q: want ErrEmptyMessage, got %v", msg, err)
		}
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(ErrEmptyMessage) {
		t.Error("ErrEmptyMessage should be a client error")
	}
	if !IsClientError(NewValidationError("id", "", ErrMissingID)) {
		t.Error("wrapped ErrMissingID should be a client error")
	}
	if IsClientError(errors.New("provider exploded")) {
		t.Error("arbitrary errors are not client errors")
	}
}
