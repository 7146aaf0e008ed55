package metrics

import (
	"fmt"
	"time"
)

type TimeFormatter struct{}

func NewTimeFormatter() *TimeFormatter {
	return &TimeFormatter{}
}

func (tf *TimeFormatter) FormatDuration(duration time.Duration) string {
	if duration == 0 {
		return "0 seconds"
	}

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%d hours %d minutes", hours, minutes)
		}
		return fmt.Sprintf("%d hours", hours)
	}

	if minutes > 0 {
		if seconds > 0 {
			return fmt.Sprintf("%d minutes %d seconds", minutes, seconds)
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	return fmt.Sprintf("%d seconds", seconds)
}

func (tf *TimeFormatter) FormatDurationShort(duration time.Duration) string {
	if duration == 0 {
		return "0s"
	}

	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}

	if minutes > 0 {
		if seconds > 0 {
			return fmt.Sprintf("%dm %ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	return fmt.Sprintf("%.1fs", duration.Seconds())
}

type StatsFormatter struct {
	timeFormatter *TimeFormatter
}

func NewStatsFormatter() *StatsFormatter {
	return &StatsFormatter{
		timeFormatter: NewTimeFormatter(),
	}
}

func (sf *StatsFormatter) FormatSessionSummaryLines(session *SessionMetrics, todayMetrics *DailyMetrics) []string {
	lines := []string{
		fmt.Sprintf("✅ Translated %d chars (%s → %s) in %s",
			session.CharCount,
			session.SourceLang,
			session.TargetLang,
			sf.timeFormatter.FormatDurationShort(session.ProcessingTime)),
	}

	if todayMetrics != nil && todayMetrics.SessionCount > 0 {
		lines = append(lines, fmt.Sprintf("📈 Today: %d translations, %d chars",
			todayMetrics.SessionCount, todayMetrics.TotalChars))
	}

	return lines
}

func (sf *StatsFormatter) FormatTotalStats(totalMetrics *TotalMetrics) string {
	if totalMetrics.TotalSessions == 0 {
		return "📊 No usage statistics yet. Double-copy some text to get started!"
	}

	stats := "📊 Total Statistics:\n"
	stats += fmt.Sprintf("   Translations: %d\n", totalMetrics.TotalSessions)
	stats += fmt.Sprintf("   Characters translated: %d\n", totalMetrics.TotalChars)
	stats += fmt.Sprintf("   Words translated: %d\n", totalMetrics.TotalWords)
	stats += fmt.Sprintf("   Failed or timed out: %d\n", totalMetrics.TotalErrors)
	stats += fmt.Sprintf("   Time translating: %s\n", sf.timeFormatter.FormatDuration(totalMetrics.TotalTime))
	stats += fmt.Sprintf("   Avg chars/translation: %d\n", totalMetrics.AvgCharsPerSession)
	stats += fmt.Sprintf("   Avg time/translation: %s", sf.timeFormatter.FormatDurationShort(totalMetrics.AvgTimePerSession))

	return stats
}

func (sf *StatsFormatter) FormatRecentStats(recentMetrics []*DailyMetrics) string {
	if len(recentMetrics) == 0 {
		return "📅 No recent data available yet."
	}

	totalChars := 0
	totalSessions := 0
	totalErrors := 0
	activeDays := 0

	for _, day := range recentMetrics {
		if day.SessionCount > 0 {
			activeDays++
			totalChars += day.TotalChars
			totalSessions += day.SessionCount
			totalErrors += day.ErrorCount
		}
	}

	if activeDays == 0 {
		return "📅 No activity this week yet."
	}

	stats := fmt.Sprintf("📅 Last %d Days:\n", len(recentMetrics))
	stats += fmt.Sprintf("   Active days: %d/%d\n", activeDays, len(recentMetrics))
	stats += fmt.Sprintf("   Translations: %d\n", totalSessions)
	stats += fmt.Sprintf("   Characters: %d\n", totalChars)
	stats += fmt.Sprintf("   Failed or timed out: %d", totalErrors)

	return stats
}
