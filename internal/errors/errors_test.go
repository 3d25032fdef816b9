package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("R001")
	if err.Code != "R001" {
		t.Errorf("expected code R001, got %q", err.Code)
	}
	if err.Category != CategoryReactive {
		t.Errorf("expected reactive category, got %q", err.Category)
	}
	if err.Message == "" || err.Detail == "" {
		t.Error("registered error should carry message and detail")
	}
	if err.Error() != "R001: "+err.Message {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("Z999")
	if err.Message != "Unknown error" {
		t.Errorf("expected unknown-error fallback, got %q", err.Message)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := New("B001").Wrap(inner)
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var ge *GlintError
	if !stderrors.As(err, &ge) {
		t.Error("errors.As should find the GlintError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "B001") != nil {
		t.Error("FromError(nil) should return nil")
	}

	orig := New("M001")
	if got := FromError(orig, "B001"); got != orig {
		t.Error("FromError should pass through an existing GlintError")
	}

	wrapped := FromError(stderrors.New("boom"), "M001")
	if wrapped.Code != "M001" {
		t.Errorf("expected code M001, got %q", wrapped.Code)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryMount, "root %q not found", "#app")
	if err.Code != "" {
		t.Errorf("Newf should not assign a code, got %q", err.Code)
	}
	if err.Error() != `root "#app" not found` {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
