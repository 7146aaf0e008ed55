package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type Storage struct {
	baseDir string
}

const dailyMetricsDir = "daily"

func NewStorage(baseDir string) (*Storage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create metrics directory: %v", err)
	}

	dailyDir := filepath.Join(baseDir, dailyMetricsDir)
	if err := os.MkdirAll(dailyDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create daily metrics directory: %v", err)
	}

	return &Storage{
		baseDir: baseDir,
	}, nil
}

func (s *Storage) SaveSession(session *SessionMetrics) error {
	date := session.Timestamp.Format("2006-01-02")

	// Load or create daily metrics
	dailyMetrics, err := s.GetDailyMetrics(date)
	if err != nil {
		dailyMetrics = &DailyMetrics{
			Date:     date,
			Sessions: []SessionMetrics{},
		}
	}

	dailyMetrics.Sessions = append(dailyMetrics.Sessions, *session)

	// Update daily totals
	dailyMetrics.TotalChars += session.CharCount
	dailyMetrics.TotalWords += session.WordCount
	dailyMetrics.TotalTime += session.ProcessingTime
	dailyMetrics.SessionCount = len(dailyMetrics.Sessions)
	if session.Status != "completed" {
		dailyMetrics.ErrorCount++
	}

	return s.saveDailyMetrics(dailyMetrics)
}

func (s *Storage) GetDailyMetrics(date string) (*DailyMetrics, error) {
	filePath := filepath.Join(s.baseDir, dailyMetricsDir, fmt.Sprintf("%s.json", date))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return &DailyMetrics{
			Date:     date,
			Sessions: []SessionMetrics{},
		}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var dailyMetrics DailyMetrics
	if err := json.Unmarshal(data, &dailyMetrics); err != nil {
		return nil, err
	}

	return &dailyMetrics, nil
}

func (s *Storage) saveDailyMetrics(metrics *DailyMetrics) error {
	filePath := filepath.Join(s.baseDir, dailyMetricsDir, fmt.Sprintf("%s.json", metrics.Date))

	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

func (s *Storage) GetTotalMetrics() (*TotalMetrics, error) {
	dailyDir := filepath.Join(s.baseDir, dailyMetricsDir)

	files, err := os.ReadDir(dailyDir)
	if err != nil {
		return &TotalMetrics{}, nil // Return empty metrics if directory doesn't exist
	}

	totalMetrics := &TotalMetrics{}

	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			filePath := filepath.Join(dailyDir, file.Name())

			data, err := os.ReadFile(filePath)
			if err != nil {
				continue // Skip problematic files
			}

			var dailyMetrics DailyMetrics
			if err := json.Unmarshal(data, &dailyMetrics); err != nil {
				continue // Skip problematic files
			}

			totalMetrics.TotalChars += dailyMetrics.TotalChars
			totalMetrics.TotalWords += dailyMetrics.TotalWords
			totalMetrics.TotalSessions += dailyMetrics.SessionCount
			totalMetrics.TotalErrors += dailyMetrics.ErrorCount
			totalMetrics.TotalTime += dailyMetrics.TotalTime
		}
	}

	// Calculate averages
	if totalMetrics.TotalSessions > 0 {
		totalMetrics.AvgCharsPerSession = totalMetrics.TotalChars / totalMetrics.TotalSessions
		totalMetrics.AvgTimePerSession = totalMetrics.TotalTime / time.Duration(totalMetrics.TotalSessions)
	}

	return totalMetrics, nil
}

func (s *Storage) GetRecentDays(days int) ([]*DailyMetrics, error) {
	var recentMetrics []*DailyMetrics

	for i := days - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		dailyMetrics, err := s.GetDailyMetrics(date)
		if err != nil {
			continue // Skip problematic days
		}
		recentMetrics = append(recentMetrics, dailyMetrics)
	}

	return recentMetrics, nil
}

func (s *Storage) ClearAllMetrics() error {
	dailyDir := filepath.Join(s.baseDir, dailyMetricsDir)

	files, err := os.ReadDir(dailyDir)
	if err != nil {
		return nil // Directory doesn't exist, nothing to clear
	}

	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			filePath := filepath.Join(dailyDir, file.Name())
			if err := os.Remove(filePath); err != nil {
				return fmt.Errorf("failed to remove %s: %v", file.Name(), err)
			}
		}
	}

	return nil
}

func (s *Storage) GetAllDailyMetrics() ([]*DailyMetrics, error) {
	dailyDir := filepath.Join(s.baseDir, dailyMetricsDir)

	files, err := os.ReadDir(dailyDir)
	if err != nil {
		return []*DailyMetrics{}, nil
	}

	var allMetrics []*DailyMetrics
	var fileNames []string

	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			fileNames = append(fileNames, file.Name())
		}
	}

	// Sort file names to get chronological order
	sort.Strings(fileNames)

	for _, fileName := range fileNames {
		filePath := filepath.Join(dailyDir, fileName)

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var dailyMetrics DailyMetrics
		if err := json.Unmarshal(data, &dailyMetrics); err != nil {
			continue
		}

		allMetrics = append(allMetrics, &dailyMetrics)
	}

	return allMetrics, nil
}
