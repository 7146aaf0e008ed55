package translation

import "context"

// BackendResult is what a translation backend returns on success.
type BackendResult struct {
	TranslatedText string
	DetectedLang   string
}

// Backend is the external translation service. Implementations must be safe
// for use from the worker goroutine and should honor ctx cancellation where
// the underlying transport allows it.
type Backend interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (BackendResult, error)
}
