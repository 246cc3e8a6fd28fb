package easel

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetDebugMode(true)
	defer e.SetDebugMode(false)

	parent := NewContainer("parent")
	e.Root().AddChild(parent)

	child := NewPlane("child", 1, 1)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetDebugMode(true)
	defer e.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		if !strings.Contains(fmt.Sprint(r), "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %v", r)
		}
	}()

	parent.AddChild(NewPlane("child", 1, 1))
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetDebugMode(false)

	parent := NewContainer("parent")
	child := NewPlane("child", 1, 1)
	child.Dispose()

	// Without debug mode the check is skipped.
	parent.AddChild(child)
	if parent.NumChildren() != 1 {
		t.Errorf("children = %d, want 1", parent.NumChildren())
	}
}

func TestDebugfWritesOnlyInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(nil)

	e := NewEngine(DefaultConfig())
	e.SetDebugMode(false)
	debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("release mode wrote %q", buf.String())
	}

	e.SetDebugMode(true)
	defer e.SetDebugMode(false)
	debugf("shown %d", 2)
	if got := buf.String(); got != "[easel] shown 2\n" {
		t.Errorf("debug output = %q", got)
	}
}

func TestDebugModeFromConfig(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(nil)

	cfg := DefaultConfig()
	cfg.Debug = true
	e := NewEngine(cfg)
	defer e.SetDebugMode(false)

	e.Apply(TrackingEvent(epoch, TrackingNormal, ReasonNone))
	if !strings.Contains(buf.String(), "status: ") {
		t.Errorf("expected a status line, got %q", buf.String())
	}
}

func TestDumpTree(t *testing.T) {
	e := NewEngine(DefaultConfig())
	var buf bytes.Buffer
	e.DumpTree(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], `container "root"`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `  container "grids"`) {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `  container "objects"`) {
		t.Errorf("line 2 = %q", lines[2])
	}
}
