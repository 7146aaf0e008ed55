package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yterada/cctrans/internal/app"
	"github.com/yterada/cctrans/internal/config"
	"github.com/yterada/cctrans/internal/language"
	"github.com/yterada/cctrans/internal/metrics"
	"github.com/yterada/cctrans/internal/translation"
	"github.com/yterada/cctrans/internal/version"
)

func main() {
	isValid, newVersion := version.CheckVersion()
	if !isValid {
		fmt.Printf(`The newest version of cctrans is %v but the installed version on your system is %v.

%v
`, newVersion, version.VERSION, version.UPDATE_MESSAGE)
		return
	}

	var (
		showConfig    = flag.Bool("show-config", false, "Show current configuration location and contents")
		showVersion   = flag.Bool("version", false, "Show current version")
		showStats     = flag.Bool("stats", false, "Show usage statistics")
		resetStats    = flag.Bool("reset-stats", false, "Clear all usage statistics")
		showLanguages = flag.Bool("languages", false, "List supported language codes")
		once          = flag.String("once", "", "Translate the given text once and exit")
		target        = flag.String("target", "", "Override the target language (e.g., --target=en)")
		source        = flag.String("source", "", "Override the source language (default: auto-detect)")
	)
	flag.Parse()

	if *showVersion {
		handleShowVersion()
		return
	}

	if *showConfig {
		handleShowConfig()
		return
	}

	if *showStats {
		handleShowStats()
		return
	}

	if *resetStats {
		handleResetStats()
		return
	}

	if *showLanguages {
		handleShowLanguages()
		return
	}

	if *once != "" {
		handleTranslateOnce(*once, *target, *source)
		return
	}

	if *target != "" || *source != "" {
		applyLanguageOverrides(*target, *source)
	}

	daemon := app.NewDaemon()
	if err := daemon.Initialize(); err != nil {
		log.Fatalf("Failed to initialize daemon: %v", err)
	}

	if err := daemon.Run(); err != nil {
		log.Fatalf("Daemon error: %v", err)
	}
}

func handleShowVersion() {
	fmt.Printf("cctrans (Double-Copy Translator) %s\n", version.VERSION)
}

func handleShowConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		fmt.Printf("❌ Error getting config path: %v\n", err)
		os.Exit(1)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("📝 Config file does not exist yet, defaults are in effect")
	} else {
		fmt.Printf("📁 Config file location: %s\n", configPath)
		fmt.Println()
		fmt.Println("📋 Config file contents:")

		content, err := os.ReadFile(configPath)
		if err != nil {
			fmt.Printf("❌ Error reading config file: %v\n", err)
			return
		}

		fmt.Println(string(content))
	}
}

func handleShowStats() {
	metricsDir, err := config.GetMetricsDir()
	if err != nil {
		fmt.Printf("❌ Error getting metrics directory: %v\n", err)
		os.Exit(1)
	}

	metricsManager, err := metrics.NewMetricsManager(metricsDir)
	if err != nil {
		fmt.Printf("❌ Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	totalMetrics, err := metricsManager.GetTotalMetrics()
	if err != nil {
		fmt.Printf("❌ Error getting total metrics: %v\n", err)
		os.Exit(1)
	}

	recentDays, err := metricsManager.GetRecentDays(7)
	if err != nil {
		fmt.Printf("⚠️  Warning: Failed to get recent metrics: %v\n", err)
	}

	formatter := metrics.NewStatsFormatter()

	fmt.Println(formatter.FormatTotalStats(totalMetrics))
	fmt.Println()

	if len(recentDays) > 0 {
		fmt.Println(formatter.FormatRecentStats(recentDays))
	}
}

func handleResetStats() {
	metricsDir, err := config.GetMetricsDir()
	if err != nil {
		fmt.Printf("❌ Error getting metrics directory: %v\n", err)
		os.Exit(1)
	}

	metricsManager, err := metrics.NewMetricsManager(metricsDir)
	if err != nil {
		fmt.Printf("❌ Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	if err := metricsManager.ClearAllMetrics(); err != nil {
		fmt.Printf("❌ Error clearing metrics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🗑️  All usage statistics have been cleared")
}

func handleShowLanguages() {
	table, err := loadLanguageTable()
	if err != nil {
		fmt.Printf("❌ Error loading language table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🌐 Supported languages:")
	for _, code := range table.Codes() {
		fmt.Printf("   %-6s %s\n", code, table.Name(code))
	}
}

// handleTranslateOnce translates a single text synchronously, without the
// keyboard hook or the daemon. Useful for scripting and for checking
// connectivity.
func handleTranslateOnce(text, target, source string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}
	if target == "" {
		target = cfg.TargetLanguage
	}
	if source == "" {
		source = cfg.SourceLanguage
	}

	table, err := loadLanguageTable()
	if err != nil {
		fmt.Printf("❌ Error loading language table: %v\n", err)
		os.Exit(1)
	}

	manager := translation.NewManager(translation.NewGoogleBackend(table), cfg.Timeout())
	result := manager.TranslateSync(text, target, source)
	if result.Status != translation.StatusCompleted {
		fmt.Printf("❌ Translation failed: %s\n", result.ErrorMessage)
		os.Exit(1)
	}

	fmt.Println(result.TranslatedText)
}

// applyLanguageOverrides persists --target/--source before the daemon loads
// the config, so overrides behave the same as editing the config file.
func applyLanguageOverrides(target, source string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	if target != "" {
		cfg.TargetLanguage = language.Normalize(target)
	}
	if source != "" {
		cfg.SourceLanguage = language.Normalize(source)
	}

	if err := config.SaveConfig(cfg); err != nil {
		fmt.Printf("❌ Error saving config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Languages set: %s → %s\n", cfg.SourceLanguage, cfg.TargetLanguage)
}

func loadLanguageTable() (*language.Table, error) {
	languagesPath, err := config.GetLanguagesPath()
	if err != nil {
		return nil, err
	}
	return language.LoadTable(languagesPath)
}
