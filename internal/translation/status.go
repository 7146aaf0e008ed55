package translation

import "time"

// Status tracks where the current translation request is in its lifecycle.
// Idle and Translating are the armed states; Completed, TimedOut and Error
// are terminal until the next accepted trigger re-arms the manager.
type Status int

const (
	StatusIdle Status = iota
	StatusTranslating
	StatusCompleted
	StatusTimedOut
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusTranslating:
		return "translating"
	case StatusCompleted:
		return "completed"
	case StatusTimedOut:
		return "timeout"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Request is a single accepted translation job. It is owned by the manager
// from submission until a result lands or the request times out.
type Request struct {
	Text        string
	SourceLang  string
	TargetLang  string
	SubmittedAt time.Time
}

// Result is the outcome of one request. It is immutable once the worker has
// built it; failures are carried as data (StatusError + ErrorMessage), never
// as a panic across the worker boundary. SourceText always carries the exact
// submitted text so consumers can correlate results under status changes.
type Result struct {
	SourceText     string
	TranslatedText string
	SourceLang     string // detected source language
	TargetLang     string
	Status         Status
	SubmittedAt    time.Time
	CompletedAt    time.Time
	ProcessingTime time.Duration
	ErrorMessage   string
}
