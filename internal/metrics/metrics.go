package metrics

import (
	"strings"
	"time"
)

type SessionMetrics struct {
	Timestamp      time.Time     `json:"timestamp"`
	CharCount      int           `json:"char_count"`
	WordCount      int           `json:"word_count"`
	ProcessingTime time.Duration `json:"processing_time"`
	SourceLang     string        `json:"source_lang"`
	TargetLang     string        `json:"target_lang"`
	Status         string        `json:"status"`
}

type DailyMetrics struct {
	Date         string           `json:"date"`
	Sessions     []SessionMetrics `json:"sessions"`
	TotalChars   int              `json:"total_chars"`
	TotalWords   int              `json:"total_words"`
	TotalTime    time.Duration    `json:"total_time"`
	SessionCount int              `json:"session_count"`
	ErrorCount   int              `json:"error_count"`
}

type MetricsManager struct {
	storage *Storage
}

func NewMetricsManager(storagePath string) (*MetricsManager, error) {
	storage, err := NewStorage(storagePath)
	if err != nil {
		return nil, err
	}

	return &MetricsManager{
		storage: storage,
	}, nil
}

// RecordSession persists one finished translation. Failed and timed-out
// sessions are recorded too; they carry their status and count toward the
// daily error total.
func (mm *MetricsManager) RecordSession(sourceText string, processingTime time.Duration, sourceLang, targetLang, status string) (*SessionMetrics, error) {
	session := &SessionMetrics{
		Timestamp:      time.Now(),
		CharCount:      len([]rune(sourceText)),
		WordCount:      countWords(sourceText),
		ProcessingTime: processingTime,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		Status:         status,
	}

	if err := mm.storage.SaveSession(session); err != nil {
		return session, err
	}

	return session, nil
}

func (mm *MetricsManager) GetTodayMetrics() (*DailyMetrics, error) {
	today := time.Now().Format("2006-01-02")
	return mm.storage.GetDailyMetrics(today)
}

func (mm *MetricsManager) GetTotalMetrics() (*TotalMetrics, error) {
	return mm.storage.GetTotalMetrics()
}

func (mm *MetricsManager) GetRecentDays(days int) ([]*DailyMetrics, error) {
	return mm.storage.GetRecentDays(days)
}

func (mm *MetricsManager) ClearAllMetrics() error {
	return mm.storage.ClearAllMetrics()
}

func countWords(text string) int {
	if text == "" {
		return 0
	}

	fields := strings.Fields(strings.TrimSpace(text))
	return len(fields)
}

type TotalMetrics struct {
	TotalChars         int           `json:"total_chars"`
	TotalWords         int           `json:"total_words"`
	TotalSessions      int           `json:"total_sessions"`
	TotalErrors        int           `json:"total_errors"`
	TotalTime          time.Duration `json:"total_time"`
	AvgCharsPerSession int           `json:"avg_chars_per_session"`
	AvgTimePerSession  time.Duration `json:"avg_time_per_session"`
}
