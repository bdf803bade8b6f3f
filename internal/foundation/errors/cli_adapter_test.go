package errors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("duplicate output").Build(), expected: 2},
		{name: "config error", err: ConfigError("missing templates").Build(), expected: 7},
		{name: "content error", err: ContentError("bad post").Build(), expected: 11},
		{name: "wrapped filesystem error", err: fmt.Errorf("write: %w", FileSystemError("disk full").Build()), expected: 11},
		{name: "build error", err: BuildError("stage failed").Build(), expected: 11},
		{name: "template error", err: TemplateError("missing main.html").Build(), expected: 11},
		{name: "runtime error", err: RuntimeError("port busy").Build(), expected: 12},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	cause := errors.New("permission denied")
	err := WrapError(cause, CategoryFileSystem, "write page").WithContext("path", "site/a.html").Build()

	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
	if got := quiet.FormatError(err); got != "Error: write page (site/a.html) (use -v for details)" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(err); !strings.Contains(got, "permission denied") {
		t.Errorf("verbose FormatError() = %q, want cause", got)
	}
	if got := quiet.FormatError(errors.New("boom")); got != "Error: boom" {
		t.Errorf("unclassified FormatError() = %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := NewCLIErrorAdapter(false, logger).WithOutput(&stderr, func(c int) { code = c })

	adapter.HandleError(ConfigError("content directory not found").WithContext("path", "posts").Build())

	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
	if !strings.Contains(stderr.String(), "content directory not found (posts)") {
		t.Errorf("stderr = %q", stderr.String())
	}

	var logs bytes.Buffer
	quiet := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil))).
		WithOutput(io.Discard, func(int) {})
	quiet.HandleError(NewError(CategoryContent, "skipped draft").Build())
	if logs.Len() != 0 {
		t.Errorf("non-fatal error must not be logged when quiet, got %q", logs.String())
	}
	quiet.HandleError(ContentError("bad post").Build())
	if !strings.Contains(logs.String(), "bad post") {
		t.Errorf("fatal error must be logged, got %q", logs.String())
	}

	code = -1
	adapter.HandleError(nil)
	if code != -1 {
		t.Errorf("nil error must not exit, got %d", code)
	}
}
