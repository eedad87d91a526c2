package server

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/colorctx/internal/errors"
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/demo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startHost runs a host until the test ends.
func startHost(t *testing.T, opts ...demo.Option) *Host {
	t.Helper()
	return runHost(t, Config{Logger: testLogger(), App: opts})
}

// runHost runs a host built from config until the test ends.
func runHost(t *testing.T, config Config) *Host {
	t.Helper()
	h := New(config)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return h
}

var hidPattern = regexp.MustCompile(`data-color="([a-z]+)"[^>]*data-hid="(h\d+)"`)

// hidFor returns the hydration ID of the palette square for color.
func hidFor(t *testing.T, body, color string) string {
	t.Helper()
	for _, m := range hidPattern.FindAllStringSubmatch(body, -1) {
		if m[1] == color {
			return m[2]
		}
	}
	t.Fatalf("no palette square for %q in:\n%s", color, body)
	return ""
}

func TestHostTrigger(t *testing.T) {
	h := startHost(t)
	ctx := context.Background()

	body, err := h.Body(ctx)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}

	prevented, err := h.Trigger(ctx, hidFor(t, body, colors.RainbowAt(4)), "click")
	if err != nil {
		t.Fatalf("Trigger(click): %v", err)
	}
	if prevented {
		t.Error("click should not prevent default")
	}

	prevented, err = h.Trigger(ctx, hidFor(t, body, colors.RainbowAt(6)), "contextmenu")
	if err != nil {
		t.Fatalf("Trigger(contextmenu): %v", err)
	}
	if !prevented {
		t.Error("context menu should prevent default")
	}

	st, err := h.State(ctx)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if st.Color != "green" || st.Subcolor != "indigo" {
		t.Errorf("State = %+v, want green on indigo", st)
	}

	body, _ = h.Body(ctx)
	if !regexp.MustCompile(`green on indigo`).MatchString(body) {
		t.Errorf("body not re-rendered:\n%s", body)
	}
}

func TestHostTriggerErrors(t *testing.T) {
	h := startHost(t)
	ctx := context.Background()

	if _, err := h.Trigger(ctx, "h999", "click"); !errors.HasCode(err, "E201") {
		t.Errorf("unknown hid err = %v, want E201", err)
	}
	if _, err := h.Trigger(ctx, "h1", "dblclick"); !errors.HasCode(err, "E202") {
		t.Errorf("bad type err = %v, want E202", err)
	}
}

func TestHostHandlers(t *testing.T) {
	h := startHost(t)

	keys, err := h.Handlers(context.Background())
	if err != nil {
		t.Fatalf("Handlers: %v", err)
	}
	// One click and one context menu handler per palette square.
	if len(keys) != 2*len(colors.Rainbow) {
		t.Errorf("got %d handlers, want %d", len(keys), 2*len(colors.Rainbow))
	}
}

func TestHostSerializesInteractions(t *testing.T) {
	h := startHost(t)
	ctx := context.Background()
	body, _ := h.Body(ctx)

	var wg sync.WaitGroup
	for _, c := range colors.Rainbow {
		hid := hidFor(t, body, c)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.Trigger(ctx, hid, "click"); err != nil {
				t.Errorf("Trigger: %v", err)
			}
		}()
	}
	wg.Wait()

	var version uint64
	h.Do(ctx, func() { version = h.App().Store().Version() })
	if version != uint64(len(colors.Rainbow)) {
		t.Errorf("version = %d, want %d", version, len(colors.Rainbow))
	}
}

func TestHostInteractBodyMatchesEvent(t *testing.T) {
	h := startHost(t)
	ctx := context.Background()
	body, _ := h.Body(ctx)

	var wg sync.WaitGroup
	for _, c := range colors.Rainbow {
		c := c
		hid := hidFor(t, body, c)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				_, got, err := h.interact(ctx, hid, "click")
				if err != nil {
					t.Errorf("interact: %v", err)
					return
				}
				if !strings.Contains(got, c+" on tomato") {
					t.Errorf("body for %s click does not show it", c)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHostClosed(t *testing.T) {
	h := New(Config{Logger: testLogger()})
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Run(context.Background())
	}()

	h.Close()
	<-done

	if h.Dispatch(func() {}) {
		t.Error("Dispatch should fail after Close")
	}
	if _, err := h.Body(context.Background()); !errors.HasCode(err, "E203") {
		t.Errorf("err = %v, want E203", err)
	}
	if h.App().Mounted() {
		t.Error("app should be unmounted after the loop stops")
	}
}

func TestHostPanicRecovery(t *testing.T) {
	h := startHost(t)
	ctx := context.Background()

	h.Dispatch(func() { panic("boom") })

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := h.Body(ctx); err != nil {
		t.Fatalf("loop should survive a panic: %v", err)
	}
}
