package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("TAGARO_LOG_PATH", "/tmp/tagaro-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/tagaro-env-log" {
		t.Errorf("got %q, want /tmp/tagaro-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("TAGARO_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestInitCreatesFile(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(tmp, diagFileName)); err != nil {
		t.Errorf("%s not created: %v", diagFileName, err)
	}
}

func TestUnsupportedWritesFields(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	Unsupported("null", "volume", "volume control is not supported")

	data, err := os.ReadFile(filepath.Join(tmp, diagFileName))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{"WRN", "backend=null", "feature=volume", "volume control is not supported"} {
		if !strings.Contains(line, want) {
			t.Errorf("diagnostics missing %q, got: %q", want, line)
		}
	}
}

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(nil) })

	var buf bytes.Buffer
	SetOutput(&buf)
	Warnf("frame %d dropped", 7)

	if !strings.Contains(buf.String(), "frame 7 dropped") {
		t.Errorf("got %q", buf.String())
	}

	SetOutput(nil)
	buf.Reset()
	Warn("silent")
	if buf.Len() != 0 {
		t.Errorf("expected no output after SetOutput(nil), got %q", buf.String())
	}
}

func TestNoopBeforeInit(t *testing.T) {
	Close()
	// must not panic
	Info("ignored")
	Unsupported("null", "volume", "ignored")
	SessionEnd(0)
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}

// syncBuffer serializes writes from concurrent loggers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConcurrentSetOutputAndWarn(t *testing.T) {
	t.Cleanup(func() { SetOutput(nil) })

	var a, b syncBuffer
	SetOutput(&a)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetOutput(&a)
			} else {
				SetOutput(&b)
			}
		}()
		go func() {
			defer wg.Done()
			Warn("tick")
			Unsupported("null", "volume", "tick")
		}()
	}
	wg.Wait()

	a.mu.Lock()
	b.mu.Lock()
	total := strings.Count(a.buf.String(), "tick") + strings.Count(b.buf.String(), "tick")
	b.mu.Unlock()
	a.mu.Unlock()
	if total != 100 {
		t.Errorf("logged %d lines, want 100", total)
	}
}
