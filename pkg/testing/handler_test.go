package testing

import (
	"testing"

	"github.com/go-drift/swoop/pkg/errors"
)

func TestCaptureErrors(t *testing.T) {
	rec := CaptureErrors(t)

	errors.Report(&errors.SwoopError{Op: "test.op", Kind: errors.KindInput})
	errors.ReportPanic(&errors.PanicError{Op: "test.panic", Value: "boom"})

	errs := rec.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Op != "test.op" {
		t.Errorf("expected op test.op, got %q", errs[0].Op)
	}

	panics := rec.Panics()
	if len(panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(panics))
	}
	if panics[0].Value != "boom" {
		t.Errorf("expected panic value boom, got %v", panics[0].Value)
	}
}

func TestCaptureErrors_RestoresHandler(t *testing.T) {
	before := errors.DefaultHandler
	t.Run("capture", func(t *testing.T) {
		CaptureErrors(t)
		if errors.DefaultHandler == before {
			t.Error("expected handler swapped during capture")
		}
	})
	if errors.DefaultHandler != before {
		t.Error("expected handler restored after cleanup")
	}
}
