package cartoon

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStderr runs fn and returns what it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_DrawStats(t *testing.T) {
	c := NewCanvas(newRecordingSurface(), 10, 10)
	c.NewPath("empty")
	c.NewPath("line").MoveTo(0, 0).LineTo(1, 1)
	c.SetDebugMode(true)

	output := captureStderr(t, c.Draw)
	if !strings.Contains(output, "[cartoon] draw:") {
		t.Errorf("expected draw stats in stderr, got: %q", output)
	}
	if !strings.Contains(output, "items: 2") || !strings.Contains(output, "empty paths: 1") {
		t.Errorf("unexpected stats: %q", output)
	}
}

func TestDebugMode_UnknownAttribute(t *testing.T) {
	c := NewCanvas(nil, 10, 10)
	c.NewPath("a")
	c.SetDebugMode(true)
	tl := NewTimeline(c, nil)

	output := captureStderr(t, func() {
		tl.AddKeyFrame("a", time.Second, "bogus", 1.0)
		tl.AddKeyFrame("missing", time.Second, "x", 1.0)
	})
	if !strings.Contains(output, `"a" has no attribute "bogus"`) {
		t.Errorf("expected attribute diagnostic, got: %q", output)
	}
	if !strings.Contains(output, `scene has no item "missing"`) {
		t.Errorf("expected item diagnostic, got: %q", output)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	c := NewCanvas(newRecordingSurface(), 10, 10)
	c.NewPath("a")
	output := captureStderr(t, c.Draw)
	if output != "" {
		t.Errorf("expected no output, got: %q", output)
	}
}

func TestDebugMode_IsPerCanvas(t *testing.T) {
	loud := NewCanvas(nil, 10, 10)
	loud.NewPath("a")
	loud.SetDebugMode(true)
	quiet := NewCanvas(nil, 10, 10)
	quiet.NewPath("a")
	quiet.SetDebugMode(true)
	quiet.SetDebugMode(false)

	output := captureStderr(t, func() {
		NewTimeline(quiet, nil).AddKeyFrame("a", time.Second, "quiet", 1.0)
		NewTimeline(loud, nil).AddKeyFrame("a", time.Second, "loud", 1.0)
	})
	if strings.Contains(output, `"quiet"`) {
		t.Errorf("non-debug scene logged: %q", output)
	}
	if !strings.Contains(output, `"a" has no attribute "loud"`) {
		t.Errorf("debug scene silenced by another canvas: %q", output)
	}
}
