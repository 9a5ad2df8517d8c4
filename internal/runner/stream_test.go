package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/xdg/runline/internal/procman"
)

// handleManager is a Manager that returns a prebuilt handle from Start,
// letting tests control stream timing directly.
type handleManager struct {
	handle procman.Handle
	err    error
}

func (m *handleManager) Start(context.Context, procman.Spec) (procman.Handle, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.handle, nil
}

func (m *handleManager) Run(context.Context, procman.Spec) (procman.Result, error) {
	return procman.Result{}, errors.New("not implemented")
}

func TestStream_Success(t *testing.T) {
	sink := &recordSink{}
	h := procman.NewFakeHandle("hello\nworld\n", "", 0)
	mgr := &handleManager{handle: h}

	err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"greet"}}, StreamOptions{}, sink)
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	got := sink.messages("status")
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Errorf("forwarded = %v, want [hello world]", got)
	}
	if !h.WaitCalled() {
		t.Error("Stream should consume the exit code")
	}
}

// TestStream_NonZeroExit verifies a CommandFailedError carrying the
// exact exit code and the literal command line.
func TestStream_NonZeroExit(t *testing.T) {
	sink := &recordSink{}
	h := procman.NewFakeHandle("", "", 2)
	mgr := &handleManager{handle: h}
	spec := procman.Spec{Argv: []string{"make", "all"}, Dir: "/work"}

	err := Stream(context.Background(), mgr, spec, StreamOptions{}, sink)

	var failed *CommandFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected CommandFailedError, got %T: %v", err, err)
	}
	if failed.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", failed.ExitCode)
	}
	if failed.Dir != "/work" {
		t.Errorf("Dir = %q, want %q", failed.Dir, "/work")
	}
	if !strings.Contains(err.Error(), "make all") {
		t.Errorf("error message should carry the command line, got: %q", err.Error())
	}
	if code, ok := ExitCode(err); !ok || code != 2 {
		t.Errorf("ExitCode(err) = (%d, %v), want (2, true)", code, ok)
	}
}

func TestStream_LaunchError(t *testing.T) {
	sink := &recordSink{}
	launchErr := &procman.LaunchError{Argv: []string{"nope"}, Err: errors.New("not found")}
	mgr := &handleManager{err: launchErr}

	err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"nope"}}, StreamOptions{}, sink)
	if !errors.Is(err, launchErr) {
		t.Errorf("Stream() error = %v, want the launch error", err)
	}
	if got := sink.messages("status"); len(got) != 0 {
		t.Errorf("no lines should be forwarded on launch failure, got %v", got)
	}
}

// TestStream_InterleavedOrder runs 1000 lines split across both streams
// and verifies each stream's subsequence arrives in original order.
func TestStream_InterleavedOrder(t *testing.T) {
	const perStream = 500

	var outB, errB strings.Builder
	for i := 0; i < perStream; i++ {
		fmt.Fprintf(&outB, "out %04d\n", i)
		fmt.Fprintf(&errB, "err %04d\n", i)
	}

	sink := &recordSink{}
	h := procman.NewFakeHandle(outB.String(), errB.String(), 0)
	mgr := &handleManager{handle: h}

	opts := StreamOptions{
		Stdout: PipeConfig{Prefix: "O|"},
		Stderr: PipeConfig{Prefix: "E|"},
	}
	if err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"big"}}, opts, sink); err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	all := sink.messages("status")
	if len(all) != 2*perStream {
		t.Fatalf("forwarded %d lines, want %d", len(all), 2*perStream)
	}

	var outSeen, errSeen int
	for _, msg := range all {
		switch {
		case strings.HasPrefix(msg, "O|"):
			want := fmt.Sprintf("O|out %04d", outSeen)
			if msg != want {
				t.Fatalf("stdout subsequence out of order: got %q, want %q", msg, want)
			}
			outSeen++
		case strings.HasPrefix(msg, "E|"):
			want := fmt.Sprintf("E|err %04d", errSeen)
			if msg != want {
				t.Fatalf("stderr subsequence out of order: got %q, want %q", msg, want)
			}
			errSeen++
		default:
			t.Fatalf("unexpected line %q", msg)
		}
	}
	if outSeen != perStream || errSeen != perStream {
		t.Errorf("saw %d stdout and %d stderr lines, want %d each", outSeen, errSeen, perStream)
	}
}

// TestStream_ExitCodeAfterBothStreams delays stderr closure and verifies
// the exit code is observed only after the slow stream has drained.
func TestStream_ExitCodeAfterBothStreams(t *testing.T) {
	errR, errW := io.Pipe()
	h := procman.NewFakeHandleStreams(strings.NewReader("fast\n"), errR, 0)

	stderrClosed := make(chan struct{})
	waitedTooEarly := make(chan struct{}, 1)
	h.OnWait = func() {
		select {
		case <-stderrClosed:
			// exit code read after stderr drained, as required
		default:
			waitedTooEarly <- struct{}{}
		}
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = errW.Write([]byte("slow\n"))
		close(stderrClosed)
		_ = errW.Close()
	}()

	sink := &recordSink{}
	mgr := &handleManager{handle: h}
	if err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"slowpipe"}}, StreamOptions{}, sink); err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	select {
	case <-waitedTooEarly:
		t.Fatal("exit code was read before stderr finished draining")
	default:
	}

	got := sink.messages("status")
	if len(got) != 2 {
		t.Fatalf("forwarded = %v, want both lines", got)
	}
}

// TestStream_DropAllStillResolves verifies the joiner does not hang when
// every line is dropped by the mapping function.
func TestStream_DropAllStillResolves(t *testing.T) {
	sink := &recordSink{}
	h := procman.NewFakeHandle("a\nb\nc\n", "x\ny\n", 0)
	mgr := &handleManager{handle: h}

	drop := func(string) (string, bool) { return "", false }
	opts := StreamOptions{
		Stdout: PipeConfig{Map: drop},
		Stderr: PipeConfig{Map: drop},
	}

	done := make(chan error, 1)
	go func() {
		done <- Stream(context.Background(), mgr, procman.Spec{Argv: []string{"quiet"}}, opts, sink)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stream() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stream() did not resolve")
	}

	if got := sink.messages("status"); len(got) != 0 {
		t.Errorf("forwarded = %v, want none", got)
	}
}

// TestStream_PipelineErrorAfterJoin verifies a decode failure on one
// stream is reported only after the other stream has drained and the
// process has been reaped.
func TestStream_PipelineErrorAfterJoin(t *testing.T) {
	sink := &recordSink{}
	h := procman.NewFakeHandle("ok line\n", "bad\xffline\n", 0)
	mgr := &handleManager{handle: h}

	opts := StreamOptions{Stderr: PipeConfig{StrictDecode: true}}
	err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"mixed"}}, opts, sink)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if !h.WaitCalled() {
		t.Error("process should be reaped even when a pipeline fails")
	}
	if got := sink.messages("status"); len(got) != 1 || got[0] != "ok line" {
		t.Errorf("healthy stream output = %v, want [ok line]", got)
	}
}

// TestStream_SeverityPerStream verifies per-stream severity routing.
func TestStream_SeverityPerStream(t *testing.T) {
	sink := &recordSink{}
	h := procman.NewFakeHandle("normal\n", "noisy\n", 0)
	mgr := &handleManager{handle: h}

	opts := StreamOptions{Stderr: PipeConfig{Trace: true}}
	if err := Stream(context.Background(), mgr, procman.Spec{Argv: []string{"mix"}}, opts, sink); err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	if got := sink.messages("status"); len(got) != 1 || got[0] != "normal" {
		t.Errorf("status messages = %v, want [normal]", got)
	}
	traces := sink.messages("trace")
	var sawNoisy bool
	for _, msg := range traces {
		if msg == "noisy" {
			sawNoisy = true
		}
	}
	if !sawNoisy {
		t.Errorf("trace messages = %v, want to include the stderr line", traces)
	}
}

// TestStream_RealProcess runs a real shell command end to end.
func TestStream_RealProcess(t *testing.T) {
	sink := &recordSink{}
	mgr := procman.NewOSManager()
	spec := procman.Spec{Argv: []string{"sh", "-c", "echo one; echo two; echo oops >&2"}}

	if err := Stream(context.Background(), mgr, spec, StreamOptions{Stderr: PipeConfig{Prefix: "! "}}, sink); err != nil {
		t.Fatalf("Stream() error: %v", err)
	}

	got := sink.messages("status")
	var stdoutLines, stderrLines []string
	for _, msg := range got {
		if strings.HasPrefix(msg, "! ") {
			stderrLines = append(stderrLines, msg)
		} else {
			stdoutLines = append(stdoutLines, msg)
		}
	}
	if len(stdoutLines) != 2 || stdoutLines[0] != "one" || stdoutLines[1] != "two" {
		t.Errorf("stdout lines = %v, want [one two]", stdoutLines)
	}
	if len(stderrLines) != 1 || stderrLines[0] != "! oops" {
		t.Errorf("stderr lines = %v, want [! oops]", stderrLines)
	}
}

// TestStream_RealProcessExitCode verifies exit code propagation from a
// real process.
func TestStream_RealProcessExitCode(t *testing.T) {
	sink := &recordSink{}
	mgr := procman.NewOSManager()
	spec := procman.Spec{Argv: []string{"sh", "-c", "exit 2"}}

	err := Stream(context.Background(), mgr, spec, StreamOptions{}, sink)
	var failed *CommandFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected CommandFailedError, got %T: %v", err, err)
	}
	if failed.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", failed.ExitCode)
	}
}
