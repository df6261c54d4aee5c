package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "cursor not found")
		if err.Error() != "[NOT_FOUND] cursor not found" {
			t.Errorf("expected [NOT_FOUND] cursor not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("no such file")
		err := Wrap(original, CodeParseFailed, "parse failed")
		expected := "[PARSE_FAILED] parse failed: no such file"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
		if !errors.Is(err, original) {
			t.Error("expected wrapped error to unwrap to original")
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "invalid input")
		if !IsCode(err, CodeValidationError) {
			t.Error("expected IsCode to return true for CodeValidationError")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
	})

	t.Run("IsCodeThroughFmtWrap", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeReparseFailed, "reparse failed"))
		if !IsCode(err, CodeReparseFailed) {
			t.Error("expected IsCode to see through fmt wrapping")
		}
	})

	t.Run("AddContext", func(t *testing.T) {
		err := AddContext(New(CodeParseFailed, "parse failed"), CtxPath, "a.h")
		if !strings.Contains(err.Error(), "path=a.h") {
			t.Errorf("expected context in message, got %s", err.Error())
		}

		plain := AddContext(errors.New("boom"), CtxSession, "s1")
		if !IsCode(plain, CodeInternal) {
			t.Error("plain errors should be wrapped as internal")
		}
	})

	t.Run("CodeOf", func(t *testing.T) {
		if got := CodeOf(errors.New("plain")); got != "" {
			t.Errorf("expected empty code for plain error, got %q", got)
		}
		if got := CodeOf(Wrap(errors.New("x"), CodeClosed, "closed")); got != CodeClosed {
			t.Errorf("expected CLOSED, got %q", got)
		}
	})

	t.Run("SortedContext", func(t *testing.T) {
		err := New(CodeNotFound, "missing")
		err = AddContext(err, CtxSymbol, "Point")
		err = AddContext(err, CtxPath, "a.h")
		want := "[NOT_FOUND] missing path=a.h symbol=Point"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("LogValue", func(t *testing.T) {
		var buf strings.Builder
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		logger.Error("open failed", "error", AddContext(New(CodeParseFailed, "no unit"), CtxSession, "s1"))
		out := buf.String()
		for _, want := range []string{"error.code=PARSE_FAILED", "error.session=s1", `error.msg="no unit"`} {
			if !strings.Contains(out, want) {
				t.Errorf("log output %q missing %q", out, want)
			}
		}
	})
}
