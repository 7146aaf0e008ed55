package translation

import (
	"context"
	"fmt"
	"log"
	"time"
)

// worker runs one request on its own goroutine. Whatever happens inside the
// backend call, the outcome crosses back to the manager as a Result; a panic
// is converted to an error result rather than escaping the goroutine.
func (m *Manager) worker(ctx context.Context, id uint64, req Request) {
	result := func() (result *Result) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[TRANS] Worker panic recovered: %v", r)
				result = errorResult(req, fmt.Sprintf("internal error: %v", r), 0)
			}
		}()
		return m.execute(ctx, req)
	}()

	if ctx.Err() != nil {
		// Cancellation checkpoint: the request was abandoned while the
		// backend call was in flight.
		log.Printf("[TRANS] Request finished after cancellation (%d chars)", len(req.Text))
	}
	m.deliver(ctx, id, result)
}

// execute performs the backend call and builds the result. ProcessingTime
// brackets only the call itself; queuing delay is excluded.
func (m *Manager) execute(ctx context.Context, req Request) *Result {
	if req.Text == "" {
		return errorResult(req, "no text to translate", 0)
	}

	start := time.Now()
	backendResult, err := m.backend.Translate(ctx, req.Text, req.TargetLang, req.SourceLang)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[TRANS] Backend error after %v: %v", elapsed.Round(time.Millisecond), err)
		return errorResult(req, err.Error(), elapsed)
	}

	log.Printf("[TRANS] Translation finished in %v (%s -> %s)",
		elapsed.Round(time.Millisecond), backendResult.DetectedLang, req.TargetLang)

	return &Result{
		SourceText:     req.Text,
		TranslatedText: backendResult.TranslatedText,
		SourceLang:     backendResult.DetectedLang,
		TargetLang:     req.TargetLang,
		Status:         StatusCompleted,
		SubmittedAt:    req.SubmittedAt,
		CompletedAt:    time.Now(),
		ProcessingTime: elapsed,
	}
}

func errorResult(req Request, message string, elapsed time.Duration) *Result {
	return &Result{
		SourceText:     req.Text,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		Status:         StatusError,
		SubmittedAt:    req.SubmittedAt,
		CompletedAt:    time.Now(),
		ProcessingTime: elapsed,
		ErrorMessage:   message,
	}
}
