package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	l.Infof("text", "fallback for %q", 'あ')
	l.Errorf("web", "render failed: %v", "boom")

	want := "2024-03-01T12:30:00Z [INFO] text: fallback for 'あ'\n" +
		"2024-03-01T12:30:00Z [ERROR] web: render failed: boom\n"
	if got := buf.String(); got != want {
		t.Fatalf("log output =\n%s\nwant\n%s", got, want)
	}
}

func TestFileLoggerConcurrentLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Infof("test", "line %d", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, " [INFO] test: line ") {
			t.Fatalf("interleaved line %q", line)
		}
	}
}

func TestOpenDebugLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	for i := 0; i < 2; i++ {
		l, f, err := OpenDebugLog(path)
		if err != nil {
			t.Fatal(err)
		}
		l.Infof("main", "run %d", i)
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Fatalf("expected 2 appended lines, got %d:\n%s", n, data)
	}
}

func TestOpenDebugLogError(t *testing.T) {
	if _, _, err := OpenDebugLog(filepath.Join(t.TempDir(), "missing", "debug.log")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
