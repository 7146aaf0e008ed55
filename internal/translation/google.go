package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yterada/cctrans/internal/language"
)

// googleEndpoint is the unofficial Google Translate web endpoint. It is not
// the Cloud Translation API and is unsuitable for bulk traffic, but it needs
// no API key, which fits a personal resident utility.
const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

const userAgent = "cctrans/1.0"

// GoogleBackend translates text via the Google Translate web endpoint.
// Safe for concurrent use; http.Client handles its own connection pooling.
type GoogleBackend struct {
	endpoint  string
	client    *http.Client
	languages *language.Table
}

func NewGoogleBackend(languages *language.Table) *GoogleBackend {
	return &GoogleBackend{
		endpoint:  googleEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		languages: languages,
	}
}

// NewGoogleBackendWithEndpoint exists for tests that point the client at a
// local httptest server.
func NewGoogleBackendWithEndpoint(endpoint string, languages *language.Table) *GoogleBackend {
	b := NewGoogleBackend(languages)
	b.endpoint = endpoint
	return b
}

type googleResponse struct {
	Sentences []struct {
		Trans string `json:"trans"`
		Orig  string `json:"orig"`
	} `json:"sentences"`
	Src string `json:"src"`
}

func (b *GoogleBackend) Translate(ctx context.Context, text, targetLang, sourceLang string) (BackendResult, error) {
	if sourceLang == "" {
		sourceLang = language.Auto
	}
	if err := b.validateLanguages(targetLang, sourceLang); err != nil {
		return BackendResult{}, err
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("dj", "1")
	query.Set("source", "input")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return BackendResult{}, fmt.Errorf("building translation request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return BackendResult{}, fmt.Errorf("translation request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return BackendResult{}, fmt.Errorf("translation service returned HTTP %d", resp.StatusCode)
	}

	var payload googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return BackendResult{}, fmt.Errorf("parsing translation response: %v", err)
	}

	var sb strings.Builder
	for _, sentence := range payload.Sentences {
		sb.WriteString(sentence.Trans)
	}
	translated := sb.String()
	if translated == "" {
		return BackendResult{}, fmt.Errorf("translation service returned an empty result")
	}

	detected := payload.Src
	if detected == "" {
		detected = sourceLang
	}

	return BackendResult{
		TranslatedText: translated,
		DetectedLang:   detected,
	}, nil
}

func (b *GoogleBackend) validateLanguages(targetLang, sourceLang string) error {
	if b.languages == nil {
		return nil
	}
	if targetLang == language.Auto || !b.languages.IsSupported(targetLang) {
		return fmt.Errorf("unsupported target language %q", targetLang)
	}
	if sourceLang != language.Auto && !b.languages.IsSupported(sourceLang) {
		return fmt.Errorf("unsupported source language %q", sourceLang)
	}
	return nil
}
