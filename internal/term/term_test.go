package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrint_Silent(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)

	SetSilent(true)
	Print("hidden")
	Printf("also %s", "hidden")
	Println("hidden too")

	if out.Len() != 0 {
		t.Errorf("silent mode should suppress stdout output, got: %q", out.String())
	}

	SetSilent(false)
	Print("visible")
	if !strings.Contains(out.String(), "visible") {
		t.Errorf("expected output after disabling silent, got: %q", out.String())
	}
}

func TestWarnError_NotSilenced(t *testing.T) {
	defer Reset()

	var errOut bytes.Buffer
	SetErrOutput(&errOut)
	SetSilent(true)

	Warn("disk %s", "low")
	Error("it %s", "broke")

	got := errOut.String()
	if !strings.Contains(got, "Warning: disk low") {
		t.Errorf("expected warning despite silent mode, got: %q", got)
	}
	if !strings.Contains(got, "Error: it broke") {
		t.Errorf("expected error despite silent mode, got: %q", got)
	}
}

func TestIsSilent(t *testing.T) {
	defer Reset()

	if IsSilent() {
		t.Error("IsSilent should default to false")
	}
	SetSilent(true)
	if !IsSilent() {
		t.Error("IsSilent should report true after SetSilent(true)")
	}
}

func TestStdout_SilentReturnsDiscard(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)
	SetSilent(true)

	w := Stdout()
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Stdout() in silent mode should discard, got: %q", out.String())
	}
}

func TestPrintln(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)

	Println("a line")
	if out.String() != "a line\n" {
		t.Errorf("Println output = %q, want %q", out.String(), "a line\n")
	}
}

func TestDiscard(t *testing.T) {
	defer Reset()

	var out, errOut bytes.Buffer
	SetOutput(&out)
	SetErrOutput(&errOut)
	Discard()

	Print("gone")
	Error("gone too")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Error("Discard should drop all output")
	}
}

func TestIsTerminal_NotATTYInTests(t *testing.T) {
	// Test processes run with stdout redirected, so this should be false.
	// The assertion is deliberately weak: it documents the call works.
	_ = IsTerminal()
}
