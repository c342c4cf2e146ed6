package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tovenaar/easel/internal/config"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := config.NewDefaultConfig()
	c := New(cfg, Options{
		Input:  strings.NewReader(input),
		Output: out,
	})
	return c, out
}

func TestUnknownCommand(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("frobnicate")
	if !strings.Contains(out.String(), `unknown command "frobnicate"`) {
		t.Errorf("output = %q, want an unknown-command message", out.String())
	}
}

func TestEmptyLineIsIgnored(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("   ")
	if out.Len() != 0 {
		t.Errorf("blank input produced output: %q", out.String())
	}
}

func TestAddListFlow(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("add rect 10 20 30 40 #ff0000")
	c.Execute("list")

	got := out.String()
	if !strings.Contains(got, "+ shape #1") {
		t.Errorf("missing add notice in %q", got)
	}
	if !strings.Contains(got, "#1") || !strings.Contains(got, "(10, 20)") {
		t.Errorf("list output %q does not describe the shape", got)
	}
}

func TestCommandErrorIsPrintedNotFatal(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("move 1 2") // No selection yet
	if !strings.Contains(out.String(), "no active selection") {
		t.Errorf("output = %q, want the no-selection error", out.String())
	}

	// The loop keeps working afterwards.
	out.Reset()
	c.Execute("add rect 0 0 5 5")
	if !strings.Contains(out.String(), "+ shape") {
		t.Error("console stopped accepting commands after an error")
	}
}

func TestSelectMoveUndoFlow(t *testing.T) {
	c, _ := newTestConsole("")
	c.Execute("add rect 0 0 10 10")
	c.Execute("select 1")
	c.Execute("move 5 5")

	obj, ok := c.Editor().ObjectByID(1)
	if !ok {
		t.Fatal("object 1 missing")
	}
	if tr := obj.Transform(); tr.Left != 5 || tr.Top != 5 {
		t.Fatalf("origin = (%v, %v), want (5, 5)", tr.Left, tr.Top)
	}

	c.Execute("undo")
	if tr := obj.Transform(); tr.Left != 0 || tr.Top != 0 {
		t.Errorf("origin after undo = (%v, %v), want (0, 0)", tr.Left, tr.Top)
	}
}

func TestBadNumberArgument(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("add rect x 0 10 10")
	if !strings.Contains(out.String(), "not a number") {
		t.Errorf("output = %q, want a parse error", out.String())
	}
}

func TestTextCommandJoinsContent(t *testing.T) {
	c, _ := newTestConsole("")
	c.Execute("text 5 5 hello wide world")

	obj, ok := c.Editor().ObjectByID(1)
	if !ok {
		t.Fatal("text object missing")
	}
	state := obj.State()
	if state["text"] != "hello wide world" {
		t.Errorf("content = %v, want %q", state["text"], "hello wide world")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	c, out := newTestConsole("add rect 0 0 1 1\nquit\nadd rect 2 2 3 3\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if c.Editor().Scene().Len() != 1 {
		t.Errorf("scene has %d objects, want 1 (commands after quit must not run)", c.Editor().Scene().Len())
	}
	if !strings.Contains(out.String(), prompt) {
		t.Error("interactive run printed no prompt")
	}
}

func TestRunEndsAtEOF(t *testing.T) {
	c, _ := newTestConsole("add rect 0 0 1 1\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if c.Editor().Scene().Len() != 1 {
		t.Errorf("scene has %d objects, want 1", c.Editor().Scene().Len())
	}
}

func TestHelpListsCommands(t *testing.T) {
	c, out := newTestConsole("")
	c.Execute("help")
	got := out.String()
	for _, name := range []string{"add", "select", "undo", "redo", "quit"} {
		if !strings.Contains(got, name) {
			t.Errorf("help output lacks %q", name)
		}
	}
}
