package translation

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

const DefaultTimeout = 3 * time.Second

// StatusCallback is invoked synchronously on every status transition. The
// result argument is non-nil only when a transition carries one.
type StatusCallback func(status Status, result *Result)

// CompletionCallback is invoked at most once per request, and only if the
// request was still in flight (not timed out, not cancelled) when the
// worker finished successfully.
type CompletionCallback func(result *Result)

// Manager owns the translation state machine:
//
//	Idle -> Translating -> {Completed | TimedOut | Error} -> Idle
//
// At most one request is in flight at any time. Triggers arriving while a
// request is translating are ignored, as are triggers whose text matches the
// most recently submitted request. The worker writes results only through
// the dispatcher and deliver(); status and lastSubmitted are guarded by mu
// because the trigger path, the worker path and the consumer all touch them.
type Manager struct {
	backend Backend

	mu            sync.Mutex
	timeout       time.Duration
	status        Status
	lastSubmitted string
	current       *Result
	submittedAt   time.Time
	reqSeq        uint64
	cancelCurrent context.CancelFunc
	pending       *Pending
	done          chan struct{}
	doneClosed    bool

	dispatcher *Dispatcher

	statusCallback     StatusCallback
	completionCallback CompletionCallback
}

func NewManager(backend Backend, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{
		backend:    backend,
		timeout:    timeout,
		status:     StatusIdle,
		dispatcher: NewDispatcher(),
	}
}

func (m *Manager) SetStatusCallback(cb StatusCallback) {
	m.mu.Lock()
	m.statusCallback = cb
	m.mu.Unlock()
}

func (m *Manager) SetCompletionCallback(cb CompletionCallback) {
	m.mu.Lock()
	m.completionCallback = cb
	m.mu.Unlock()
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// LastResult returns the result of the most recently finished request, or
// nil if none has finished since the last reset.
func (m *Manager) LastResult() *Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Dispatcher exposes the result hand-off for consumers that poll on their
// own schedule instead of calling WaitForCompletion.
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}

// SetTimeout changes the default timeout used by WaitForCompletion and
// TranslateSync. Applies from the next request on.
func (m *Manager) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	m.mu.Lock()
	m.timeout = timeout
	m.mu.Unlock()
}

// Pending is a handle to one accepted request, pinned to it for its whole
// lifetime: waiting on the handle after the manager has moved on to a newer
// request still yields this request's outcome instead of attaching to the
// newer one.
type Pending struct {
	m           *Manager
	id          uint64
	done        chan struct{}
	submittedAt time.Time

	// guarded by m.mu
	result   *Result
	timedOut bool
}

// TranslateAsync submits text for translation and returns immediately with a
// handle to the accepted request. It returns nil when a request is already in
// flight, when the text is empty or whitespace-only, or when the text matches
// the most recently submitted request (unchanged clipboard content).
func (m *Manager) TranslateAsync(text, targetLang, sourceLang string) *Pending {
	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("[TRANS] Ignoring empty translation request")
		return nil
	}

	m.mu.Lock()
	if m.status == StatusTranslating {
		log.Printf("[TRANS] Translation already in progress, ignoring trigger")
		m.mu.Unlock()
		return nil
	}
	if text == m.lastSubmitted {
		log.Printf("[TRANS] Clipboard text unchanged (%d chars), ignoring trigger", len(text))
		m.mu.Unlock()
		return nil
	}

	m.status = StatusTranslating
	m.submittedAt = time.Now()
	m.lastSubmitted = text
	m.current = nil
	m.reqSeq++
	id := m.reqSeq

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCurrent = cancel
	m.done = make(chan struct{})
	m.doneClosed = false
	pending := &Pending{
		m:           m,
		id:          id,
		done:        m.done,
		submittedAt: m.submittedAt,
	}
	m.pending = pending

	req := Request{
		Text:        text,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		SubmittedAt: m.submittedAt,
	}
	m.mu.Unlock()

	log.Printf("[TRANS] Translation started: %d chars -> %s", len(text), targetLang)
	m.emitStatus(StatusTranslating, nil)

	go m.worker(ctx, id, req)
	return pending
}

// WaitForCompletion blocks the calling goroutine (never the hook goroutine)
// until the in-flight request finishes or the deadline measured from
// submission expires. It attaches to whatever request is current at call
// time; callers that already hold the request's Pending should wait on that
// instead.
func (m *Manager) WaitForCompletion(timeout time.Duration) *Result {
	m.mu.Lock()
	if m.status != StatusTranslating || m.pending == nil {
		result := m.current
		m.mu.Unlock()
		return result
	}
	pending := m.pending
	m.mu.Unlock()

	return pending.Wait(timeout)
}

// Wait blocks until the request finishes or the deadline measured from its
// submission expires. On timeout it declares TimedOut, signals best-effort
// cancellation to the worker, and returns nil. A worker result arriving
// after that is logged and published but never reverts the TimedOut status.
// Wait also returns nil when the request was cancelled before finishing.
func (p *Pending) Wait(timeout time.Duration) *Result {
	m := p.m
	m.mu.Lock()
	if timeout <= 0 {
		timeout = m.timeout
	}
	m.mu.Unlock()

	timer := time.NewTimer(time.Until(p.submittedAt.Add(timeout)))
	defer timer.Stop()

	select {
	case <-p.done:
		m.mu.Lock()
		result := p.result
		m.mu.Unlock()
		return result
	case <-timer.C:
	}

	m.mu.Lock()
	select {
	case <-p.done:
		// Finished during the race window.
		result := p.result
		m.mu.Unlock()
		return result
	default:
	}
	if p.id != m.reqSeq || m.status != StatusTranslating {
		m.mu.Unlock()
		return nil
	}
	m.status = StatusTimedOut
	p.timedOut = true
	m.cancelCurrent()
	m.closeDoneLocked()
	m.mu.Unlock()

	log.Printf("[TRANS] Translation timed out after %v", timeout)
	m.emitStatus(StatusTimedOut, nil)
	return nil
}

// TimedOut reports whether Wait declared this request timed out, which lets
// a waiter distinguish a timeout from a cancellation.
func (p *Pending) TimedOut() bool {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.timedOut
}

// CancelTranslation raises the cooperative cancellation flag for the
// in-flight worker. The HTTP call cannot be aborted mid-flight beyond what
// the context does, so cancellation primarily suppresses the completion
// callback and prevents the late result from overwriting the status.
func (m *Manager) CancelTranslation() {
	m.mu.Lock()
	if m.status != StatusTranslating {
		m.mu.Unlock()
		return
	}
	log.Printf("[TRANS] Cancelling in-flight translation")
	m.cancelCurrent()
	m.reqSeq++ // the in-flight worker's result is stale from here on
	m.status = StatusIdle
	m.closeDoneLocked()
	m.mu.Unlock()

	m.emitStatus(StatusIdle, nil)
}

// Reset cancels any in-flight work and clears all request state, including
// the dedupe text, so the same clipboard content can be submitted again.
func (m *Manager) Reset() {
	m.CancelTranslation()

	m.mu.Lock()
	m.current = nil
	m.lastSubmitted = ""
	m.status = StatusIdle
	m.mu.Unlock()
	log.Printf("[TRANS] Manager state reset")
}

// TranslateSync performs a blocking translation on the calling goroutine,
// bypassing the async plumbing but sharing the same result construction and
// error taxonomy. Intended for one-shot CLI use and tests.
func (m *Manager) TranslateSync(text, targetLang, sourceLang string) *Result {
	m.mu.Lock()
	timeout := m.timeout
	m.mu.Unlock()

	req := Request{
		Text:        strings.TrimSpace(text),
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		SubmittedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return m.execute(ctx, req)
}

// deliver is the only path by which a worker outcome reaches the manager.
// The result is always published to the dispatcher; whether it becomes the
// current result depends on the request still being in flight.
func (m *Manager) deliver(ctx context.Context, id uint64, result *Result) {
	m.dispatcher.Publish(result)

	m.mu.Lock()
	if id != m.reqSeq || m.status != StatusTranslating {
		status := m.status
		m.mu.Unlock()
		if ctx.Err() != nil {
			log.Printf("[TRANS] Discarding result of cancelled request (worker status=%s)", result.Status)
		} else {
			log.Printf("[TRANS] Late result after %s, authoritative status unchanged (worker status=%s)",
				status, result.Status)
		}
		return
	}

	m.current = result
	if m.pending != nil && m.pending.id == id {
		m.pending.result = result
	}
	if result.Status == StatusCompleted {
		m.status = StatusCompleted
	} else {
		m.status = StatusError
	}
	status := m.status
	completion := m.completionCallback
	m.closeDoneLocked()
	m.mu.Unlock()

	m.emitStatus(status, result)
	if status == StatusCompleted && completion != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[TRANS] Completion callback panic: %v", r)
				}
			}()
			completion(result)
		}()
	}
}

func (m *Manager) closeDoneLocked() {
	if m.done != nil && !m.doneClosed {
		close(m.done)
		m.doneClosed = true
	}
}

// emitStatus fires the status callback synchronously. Callback panics are
// caught and logged so they cannot corrupt manager state.
func (m *Manager) emitStatus(status Status, result *Result) {
	m.mu.Lock()
	cb := m.statusCallback
	m.mu.Unlock()
	if cb == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[TRANS] Status callback panic: %v", r)
		}
	}()
	cb(status, result)
}
