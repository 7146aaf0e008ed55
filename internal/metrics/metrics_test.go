package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *MetricsManager {
	t.Helper()
	mm, err := NewMetricsManager(t.TempDir())
	require.NoError(t, err)
	return mm
}

func TestRecordSession(t *testing.T) {
	mm := newTestManager(t)

	session, err := mm.RecordSession("hello world", 250*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)
	assert.Equal(t, 11, session.CharCount)
	assert.Equal(t, 2, session.WordCount)
	assert.Equal(t, "en", session.SourceLang)
	assert.Equal(t, "ja", session.TargetLang)

	today, err := mm.GetTodayMetrics()
	require.NoError(t, err)
	assert.Equal(t, 1, today.SessionCount)
	assert.Equal(t, 11, today.TotalChars)
	assert.Equal(t, 2, today.TotalWords)
	assert.Equal(t, 0, today.ErrorCount)
}

func TestRecordSessionCountsMultibyteRunes(t *testing.T) {
	mm := newTestManager(t)

	session, err := mm.RecordSession("こんにちは", 100*time.Millisecond, "ja", "en", "completed")
	require.NoError(t, err)
	assert.Equal(t, 5, session.CharCount)
}

func TestFailedSessionsCountAsErrors(t *testing.T) {
	mm := newTestManager(t)

	_, err := mm.RecordSession("ok", 100*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)
	_, err = mm.RecordSession("bad", 3*time.Second, "en", "ja", "timeout")
	require.NoError(t, err)
	_, err = mm.RecordSession("worse", 50*time.Millisecond, "en", "ja", "error")
	require.NoError(t, err)

	today, err := mm.GetTodayMetrics()
	require.NoError(t, err)
	assert.Equal(t, 3, today.SessionCount)
	assert.Equal(t, 2, today.ErrorCount)
}

func TestGetTotalMetrics(t *testing.T) {
	mm := newTestManager(t)

	_, err := mm.RecordSession("one two three", 100*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)
	_, err = mm.RecordSession("four", 300*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)

	total, err := mm.GetTotalMetrics()
	require.NoError(t, err)
	assert.Equal(t, 2, total.TotalSessions)
	assert.Equal(t, 17, total.TotalChars)
	assert.Equal(t, 4, total.TotalWords)
	assert.Equal(t, 400*time.Millisecond, total.TotalTime)
	assert.Equal(t, 8, total.AvgCharsPerSession)
	assert.Equal(t, 200*time.Millisecond, total.AvgTimePerSession)
}

func TestGetTotalMetricsEmpty(t *testing.T) {
	mm := newTestManager(t)

	total, err := mm.GetTotalMetrics()
	require.NoError(t, err)
	assert.Equal(t, 0, total.TotalSessions)
	assert.Equal(t, 0, total.AvgCharsPerSession)
}

func TestClearAllMetrics(t *testing.T) {
	mm := newTestManager(t)

	_, err := mm.RecordSession("hello", 100*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)
	require.NoError(t, mm.ClearAllMetrics())

	total, err := mm.GetTotalMetrics()
	require.NoError(t, err)
	assert.Equal(t, 0, total.TotalSessions)
}

func TestGetRecentDaysIncludesEmptyDays(t *testing.T) {
	mm := newTestManager(t)

	_, err := mm.RecordSession("hello", 100*time.Millisecond, "en", "ja", "completed")
	require.NoError(t, err)

	days, err := mm.GetRecentDays(7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, 1, days[6].SessionCount)
	assert.Equal(t, 0, days[0].SessionCount)
}

func TestFormatTotalStats(t *testing.T) {
	formatter := NewStatsFormatter()

	empty := formatter.FormatTotalStats(&TotalMetrics{})
	assert.Contains(t, empty, "No usage statistics yet")

	stats := formatter.FormatTotalStats(&TotalMetrics{
		TotalSessions:      3,
		TotalChars:         120,
		TotalWords:         20,
		TotalErrors:        1,
		TotalTime:          time.Second,
		AvgCharsPerSession: 40,
	})
	assert.Contains(t, stats, "Translations: 3")
	assert.Contains(t, stats, "Characters translated: 120")
	assert.Contains(t, stats, "Failed or timed out: 1")
}

func TestFormatSessionSummaryLines(t *testing.T) {
	formatter := NewStatsFormatter()
	session := &SessionMetrics{
		CharCount:      12,
		ProcessingTime: 800 * time.Millisecond,
		SourceLang:     "en",
		TargetLang:     "ja",
	}

	lines := formatter.FormatSessionSummaryLines(session, nil)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "12 chars")
	assert.Contains(t, lines[0], "en → ja")

	lines = formatter.FormatSessionSummaryLines(session, &DailyMetrics{SessionCount: 4, TotalChars: 99})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "4 translations")
}

func TestTimeFormatterShort(t *testing.T) {
	tf := NewTimeFormatter()
	assert.Equal(t, "0s", tf.FormatDurationShort(0))
	assert.Equal(t, "450ms", tf.FormatDurationShort(450*time.Millisecond))
	assert.Equal(t, "2.5s", tf.FormatDurationShort(2500*time.Millisecond))
	assert.Equal(t, "1m 5s", tf.FormatDurationShort(65*time.Second))
	assert.Equal(t, "1h 10m", tf.FormatDurationShort(70*time.Minute))
}
