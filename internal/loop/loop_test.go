package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	gamecfg "github.com/tomz197/drift/internal/config"
	"github.com/tomz197/drift/internal/input"
	"github.com/tomz197/drift/internal/loop/config"
)

// syncBuffer is a bytes.Buffer safe to read while the session writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testOptions() Options {
	return Options{
		Tuning:         gamecfg.DefaultTuning(),
		Keymap:         input.DefaultKeymap(),
		Seed:           1,
		TermSize:       func() (int, int, error) { return 80, 24, nil },
		FrameTime:      time.Millisecond,
		ShutdownNotice: 20 * time.Millisecond,
	}
}

// runAsync starts a session and returns a channel receiving its result.
func runAsync(ctx context.Context, r io.Reader, w io.Writer, opts Options) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(r), w, opts)
	}()
	return done
}

func waitFor(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}
}

func waitForOutput(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("output never contained %q", want)
}

func TestRunEndsOnEOF(t *testing.T) {
	out := &syncBuffer{}
	waitFor(t, runAsync(context.Background(), strings.NewReader(""), out, testOptions()))

	if !strings.HasSuffix(out.String(), "\033[H\033[2J\033[?25h") {
		t.Error("terminal not restored on exit")
	}
}

func TestRunPlaysAndQuits(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &syncBuffer{}
	done := runAsync(context.Background(), pr, out, testOptions())

	waitForOutput(t, out, title)
	if _, err := pw.Write([]byte("1")); err != nil {
		t.Fatal(err)
	}
	waitForOutput(t, out, "Score: 0")

	if _, err := pw.Write([]byte("q")); err != nil {
		t.Fatal(err)
	}
	waitFor(t, done)
}

func TestRunShowsShutdownNotice(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, pr, out, testOptions())

	waitForOutput(t, out, title)
	cancel()
	waitFor(t, done)

	if !strings.Contains(out.String(), "SERVER SHUTTING DOWN") {
		t.Error("shutdown notice never shown")
	}
}

func TestRunDisconnectsIdleSession(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &syncBuffer{}
	opts := testOptions()
	opts.IdleWarn = 10 * time.Millisecond
	opts.IdleDisconnect = 100 * time.Millisecond

	waitFor(t, runAsync(context.Background(), pr, out, opts))
	if !strings.Contains(out.String(), "Are you still there?") {
		t.Error("inactivity warning never shown")
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   time.Duration
		want time.Duration
	}{
		{name: "normal", dt: 16 * time.Millisecond, want: 16 * time.Millisecond},
		{name: "negative", dt: -time.Millisecond, want: 0},
		{name: "stall", dt: 3 * time.Second, want: config.MaxFrameDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampDelta(tt.dt); got != tt.want {
				t.Errorf("clampDelta(%v) = %v, expected %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name             string
		cols, rows       int
		err              error
		wantCol, wantRow int
	}{
		{name: "fits", cols: 80, rows: 24, wantCol: 80, wantRow: 24},
		{name: "too_large", cols: 500, rows: 200, wantCol: config.MaxTermWidth, wantRow: config.MaxTermHeight},
		{name: "unknown", cols: 0, rows: 0, wantCol: config.ViewWidth, wantRow: config.ViewHeight / 2},
		{name: "error", cols: 80, rows: 24, err: io.EOF, wantCol: config.ViewWidth, wantRow: config.ViewHeight / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := clampTermSize(tt.cols, tt.rows, tt.err)
			if cols != tt.wantCol || rows != tt.wantRow {
				t.Errorf("clampTermSize() = (%d, %d), expected (%d, %d)", cols, rows, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestKeyNames(t *testing.T) {
	if got := keyNames([]byte{'p', '\x1b', ' '}); got != "p ESC SPACE" {
		t.Errorf("keyNames() = %q", got)
	}
}

func TestShutdownNoticeKeepsFramePace(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &syncBuffer{}
	opts := testOptions()
	opts.FrameTime = 50 * time.Millisecond
	opts.ShutdownNotice = 500 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, pr, out, opts)
	waitForOutput(t, out, title)
	cancel()
	waitFor(t, done)

	// About ten frames fit in the notice; allow generous scheduling slack.
	frames := strings.Count(out.String(), "SERVER SHUTTING DOWN")
	if frames == 0 || frames > 30 {
		t.Errorf("drew %d notice frames in 500ms at 50ms per frame", frames)
	}
}
