package procman

import (
	"context"
	"io"
	"strings"
	"sync"
)

// FakeResult scripts one response from a FakeManager.
type FakeResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // returned from Start/Run instead of a handle/result
}

// FakeManager is a scripted Manager for tests. Each Start or Run call
// consumes the next scripted result; when the script is exhausted the
// last result repeats. The zero value succeeds with empty output.
type FakeManager struct {
	mu      sync.Mutex
	Results []FakeResult
	Calls   []Spec
	next    int
}

// Start returns a FakeHandle playing back the next scripted result.
func (m *FakeManager) Start(_ context.Context, spec Spec) (Handle, error) {
	res := m.record(spec)
	if res.Err != nil {
		return nil, res.Err
	}
	return NewFakeHandle(res.Stdout, res.Stderr, res.ExitCode), nil
}

// Run returns the next scripted result directly.
func (m *FakeManager) Run(_ context.Context, spec Spec) (Result, error) {
	res := m.record(spec)
	if res.Err != nil {
		return Result{}, res.Err
	}
	return Result{ExitCode: res.ExitCode, Stdout: res.Stdout, Stderr: res.Stderr}, nil
}

func (m *FakeManager) record(spec Spec) FakeResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, spec)
	if len(m.Results) == 0 {
		return FakeResult{}
	}
	res := m.Results[m.next]
	if m.next < len(m.Results)-1 {
		m.next++
	}
	return res
}

// FakeHandle is a Handle backed by in-memory streams.
type FakeHandle struct {
	out  io.Reader
	errs io.Reader
	code int

	mu         sync.Mutex
	waitCalled bool

	// OnWait, if set, runs inside the first Wait call. Tests use it to
	// observe when the exit code is read relative to stream draining.
	OnWait func()
}

// NewFakeHandle creates a FakeHandle whose streams replay the given
// strings and whose Wait returns code.
func NewFakeHandle(stdout, stderr string, code int) *FakeHandle {
	return &FakeHandle{
		out:  strings.NewReader(stdout),
		errs: strings.NewReader(stderr),
		code: code,
	}
}

// NewFakeHandleStreams creates a FakeHandle reading from arbitrary
// readers, for tests that need to control stream timing.
func NewFakeHandleStreams(stdout, stderr io.Reader, code int) *FakeHandle {
	return &FakeHandle{out: stdout, errs: stderr, code: code}
}

func (h *FakeHandle) Stdout() io.Reader {
	return h.out
}

func (h *FakeHandle) Stderr() io.Reader {
	return h.errs
}

func (h *FakeHandle) Wait() (int, error) {
	h.mu.Lock()
	first := !h.waitCalled
	h.waitCalled = true
	fn := h.OnWait
	h.mu.Unlock()

	if first && fn != nil {
		fn()
	}
	return h.code, nil
}

// WaitCalled reports whether Wait has been invoked.
func (h *FakeHandle) WaitCalled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.waitCalled
}
