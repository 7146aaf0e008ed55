package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/yterada/cctrans/internal/clipboard"
	"github.com/yterada/cctrans/internal/config"
	"github.com/yterada/cctrans/internal/hotkeys"
	"github.com/yterada/cctrans/internal/instance"
	"github.com/yterada/cctrans/internal/language"
	"github.com/yterada/cctrans/internal/metrics"
	"github.com/yterada/cctrans/internal/notify"
	"github.com/yterada/cctrans/internal/terminal"
	"github.com/yterada/cctrans/internal/translation"
)

type Daemon struct {
	config          *config.Config
	languages       *language.Table
	translator      *translation.Manager
	hotkeyManager   *hotkeys.Manager
	clip            *clipboard.SystemClipboard
	notifier        *notify.Notifier
	metricsManager  *metrics.MetricsManager
	terminalControl *terminal.Control
	lock            *instance.Lock
}

func NewDaemon() *Daemon {
	return &Daemon{}
}

func (d *Daemon) Initialize() error {
	var err error
	d.config, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	lockPath, err := config.GetLockPath()
	if err != nil {
		return fmt.Errorf("failed to resolve lock path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	d.lock = instance.NewLock(lockPath)
	if err := d.lock.Acquire(); err != nil {
		return err
	}

	languagesPath, err := config.GetLanguagesPath()
	if err != nil {
		return fmt.Errorf("failed to resolve languages path: %v", err)
	}
	d.languages, err = language.LoadTable(languagesPath)
	if err != nil {
		return fmt.Errorf("failed to load language table: %v", err)
	}
	if !d.languages.IsSupported(d.config.TargetLanguage) {
		return fmt.Errorf("unsupported target language %q", d.config.TargetLanguage)
	}

	backend := translation.NewGoogleBackend(d.languages)
	d.translator = translation.NewManager(backend, d.config.Timeout())
	d.translator.SetStatusCallback(func(status translation.Status, _ *translation.Result) {
		log.Printf("[APP] Translation status: %s", status)
	})

	d.clip = clipboard.NewSystemClipboard()
	d.notifier = notify.NewNotifier(d.config.Notifications)

	metricsDir, err := config.GetMetricsDir()
	if err != nil {
		return fmt.Errorf("failed to get metrics directory: %v", err)
	}
	d.metricsManager, err = metrics.NewMetricsManager(metricsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics manager: %v", err)
	}

	d.terminalControl = terminal.NewControl()

	d.hotkeyManager = hotkeys.NewManager(hotkeys.NewGohookSource(), d.config.Interval(), d.handleTrigger)

	return nil
}

func (d *Daemon) Run() error {
	if err := d.hotkeyManager.Start(); err != nil {
		return fmt.Errorf("failed to start keyboard hook: %v", err)
	}

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	fmt.Println("🌐 cctrans - Double-Copy Translation Daemon Started")
	fmt.Printf("📋 Press Ctrl+C twice within %.1fs to translate the clipboard to %s\n",
		d.config.Interval().Seconds(), d.languages.Name(d.config.TargetLanguage))
	fmt.Println("🛑 Press Ctrl+C in this terminal to exit")
	fmt.Println()

	// Wait for shutdown signal
	<-c
	fmt.Println("\n🛑 Shutting down...")
	d.Cleanup()
	return nil
}

func (d *Daemon) Cleanup() {
	if d.hotkeyManager != nil {
		d.hotkeyManager.Stop()
	}
	if d.translator != nil {
		d.translator.Reset()
	}
	if d.lock != nil {
		d.lock.Release()
	}
}

// handleTrigger runs on the hook goroutine, so it only reads the clipboard
// and submits; waiting happens on a separate goroutine.
func (d *Daemon) handleTrigger() {
	text, ok := d.clip.TextForTranslation()
	if !ok {
		return
	}

	pending := d.translator.TranslateAsync(text, d.config.TargetLanguage, d.config.SourceLanguage)
	if pending == nil {
		return
	}

	d.notifier.Beep()
	d.terminalControl.Done()
	d.terminalControl.Render([]string{
		fmt.Sprintf("🔄 Translating %d chars → %s...", len([]rune(text)), d.config.TargetLanguage),
	})

	go d.awaitResult(text, pending)
}

// awaitResult waits on the request handle captured at submission, so a
// slow-to-schedule waiter can never attach to a later request.
func (d *Daemon) awaitResult(text string, pending *translation.Pending) {
	result := pending.Wait(0)
	if result == nil {
		if pending.TimedOut() {
			d.handleTimeout(text)
		} else {
			log.Printf("[APP] Translation cancelled before completion")
		}
		return
	}

	switch result.Status {
	case translation.StatusCompleted:
		d.handleCompleted(result)
	default:
		d.handleFailed(result)
	}
}

func (d *Daemon) handleCompleted(result *translation.Result) {
	session, err := d.metricsManager.RecordSession(
		result.SourceText, result.ProcessingTime, result.SourceLang, result.TargetLang, result.Status.String())
	if err != nil {
		log.Printf("[APP] Failed to record session metrics: %v", err)
	}

	lines := []string{fmt.Sprintf("🌐 %s", result.TranslatedText)}
	if copyErr := d.clip.SetText(result.TranslatedText); copyErr != nil {
		log.Printf("[APP] Failed to copy translation to clipboard: %v", copyErr)
	} else {
		lines = append(lines, "📋 Translation copied to clipboard")
	}
	if session != nil && err == nil {
		todayMetrics, terr := d.metricsManager.GetTodayMetrics()
		if terr != nil {
			todayMetrics = nil
		}
		lines = append(lines, metrics.NewStatsFormatter().FormatSessionSummaryLines(session, todayMetrics)...)
	}
	d.terminalControl.Render(lines)
	d.terminalControl.Done()

	d.notifier.Result(result.SourceText, result.TranslatedText)
}

func (d *Daemon) handleFailed(result *translation.Result) {
	if _, err := d.metricsManager.RecordSession(
		result.SourceText, result.ProcessingTime, result.SourceLang, result.TargetLang, result.Status.String()); err != nil {
		log.Printf("[APP] Failed to record session metrics: %v", err)
	}

	d.terminalControl.Render([]string{fmt.Sprintf("❌ Translation failed: %s", result.ErrorMessage)})
	d.terminalControl.Done()
	d.notifier.Error("Translation failed: " + result.ErrorMessage)
}

func (d *Daemon) handleTimeout(text string) {
	timeout := d.config.Timeout()
	if _, err := d.metricsManager.RecordSession(
		text, timeout, d.config.SourceLanguage, d.config.TargetLanguage, translation.StatusTimedOut.String()); err != nil {
		log.Printf("[APP] Failed to record session metrics: %v", err)
	}

	d.terminalControl.Render([]string{fmt.Sprintf("⏱️  Translation timed out after %.1fs", timeout.Seconds())})
	d.terminalControl.Done()
	d.notifier.Error(fmt.Sprintf("Translation timed out after %.1fs", timeout.Seconds()))
}
