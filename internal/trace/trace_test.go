package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"": LevelOff, "phase": LevelPhase, "DETAIL": LevelDetail, "debug": LevelDebug, "error": LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelScopes(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeSection) {
		t.Fatal("phase must drop sections")
	}
	if !LevelDetail.ShouldEmit(ScopeSection) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Fatal("detail keeps sections only")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) {
		t.Fatal("debug keeps nodes")
	}
	if LevelOff.ShouldEmit(ScopeDriver) {
		t.Fatal("off keeps nothing")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	root := Begin(tr, ScopeStage, "texture", 0)
	sec := Begin(tr, ScopeSection, "section:textureSample", root.ID())
	Begin(tr, ScopeNode, "row", sec.ID()).End("")
	sec.End("3 overloads")
	root.WithExtra("functions", "2").End("")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ texture") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[2], "section:textureSample (3 overloads)") {
		t.Fatalf("unexpected section end %q", lines[2])
	}
	if !strings.Contains(lines[3], "{functions=2}") {
		t.Fatalf("missing extra in %q", lines[3])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Point(tr, ScopeDriver, "cache", "hit", 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["kind"] != "point" || got["scope"] != "driver" || got["detail"] != "hit" {
		t.Fatalf("unexpected event %v", got)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelPhase)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeStage, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Fatalf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatAuto); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("unexpected dump:\n%s", buf.String())
	}
}

func TestNewErrorLevelUsesRing(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeStream})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Ring(tr); !ok {
		t.Fatal("error level must keep a ring buffer")
	}
}

func TestNewBoth(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf, Format: FormatText})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeStage, "atomic", 0).End("")
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("expected ring in both mode")
	}
	if len(ring.Snapshot()) != 2 || strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("events not fanned out: ring=%d stream=%q", len(ring.Snapshot()), buf.String())
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop {
		t.Fatal("expected Nop without tracer")
	}
	span := Begin(FromContext(ctx), ScopeStage, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("disabled span must be inert")
	}
	r := NewRingTracer(4, LevelDebug)
	ctx = WithTracer(ctx, r)
	s := Begin(FromContext(ctx), ScopeStage, "y", 0)
	ctx = WithSpan(ctx, s)
	if CurrentSpan(ctx) != s.ID() {
		t.Fatal("span id not propagated")
	}
}
