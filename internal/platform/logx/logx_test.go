// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
)

func newBufferLogger(lvl Level) (*simpleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &simpleLogger{
		lvl: lvl,
		lg:  log.New(&buf, "", 0),
	}, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DBG", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"err", LevelError},
		{"  debug  ", LevelDebug},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKVPairs(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected []string
	}{
		{"empty", []any{}, []string{}},
		{"single pair", []any{"key", "value"}, []string{"key=value"}},
		{"two pairs", []any{"a", 1, "b", true}, []string{"a=1", "b=true"}},
		{"odd count", []any{"a", 1, "b"}, []string{"a=1", "b=(missing)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kvPairs(tt.input...)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d pairs, got %d", len(tt.expected), len(got))
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("pair %d: expected %q, got %q", i, want, got[i])
				}
			}
		})
	}
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	scoped := logger.With("component", "prober")
	scoped.Info("probe finished", "status", "alive")

	out := buf.String()
	for _, want := range []string{"component=prober", "status=alive", "probe finished", "INF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}

	if len(logger.scope) != 0 {
		t.Errorf("With must not mutate the parent logger, scope: %v", logger.scope)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Err(errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "DBG") || strings.Contains(out, "INF") {
		t.Errorf("debug/info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "WRN") || !strings.Contains(out, "ERR") {
		t.Errorf("warn/error should appear at warn level: %s", out)
	}
}

func TestLoggerErrNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.Err(nil, "source", "wordlist")
	if buf.String() != "" {
		t.Errorf("nil error should log nothing, got: %s", buf.String())
	}
}

func TestLoggerErrFieldsOnly(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)

	logger.Err(errors.New("dns failure"), "candidate", "http://x.com")

	out := buf.String()
	if strings.Contains(out, "  ") {
		t.Errorf("output should not contain double spaces: %s", out)
	}
	if !strings.Contains(out, "error=dns failure") {
		t.Errorf("output should contain the error field: %s", out)
	}
}

func TestLoggerConcurrent(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	var wg sync.WaitGroup
	const goroutines, iterations = 8, 50
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				logger.Info("line", "id", id, "j", j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != goroutines*iterations {
		t.Errorf("expected %d lines, got %d", goroutines*iterations, len(lines))
	}
}

func TestNewWithEnv(t *testing.T) {
	tests := []struct {
		envValue string
		expected Level
	}{
		{"debug", LevelDebug},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv("RANDOMNET_LOG_LEVEL", tt.envValue)
			impl := New().(*simpleLogger)
			if impl.lvl != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, impl.lvl)
			}
		})
	}
}
