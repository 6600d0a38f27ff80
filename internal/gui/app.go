// Package gui is the Fyne front-end: file pickers, a progress bar driven by
// the pipeline's progress callback, and a results summary.
package gui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/jspark1st/excel-translate/internal"
	"github.com/jspark1st/excel-translate/internal/classify"
	"github.com/jspark1st/excel-translate/internal/memory"
	"github.com/jspark1st/excel-translate/internal/pipeline"
	"github.com/jspark1st/excel-translate/internal/translation"
	"github.com/jspark1st/excel-translate/internal/xlsx"
)

// Config holds GUI application configuration.
type Config struct {
	Provider        string
	APIKey          string
	Model           string
	MaxAttempts     int
	RetryDelay      time.Duration
	Pace            time.Duration
	KoreanThreshold float64
	MemoryDB        string
	Logger          *slog.Logger
}

// Application represents the main GUI application.
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	inputEntry      *widget.Entry
	outputEntry     *widget.Entry
	browseInputBtn  *ttwidget.Button
	browseOutputBtn *ttwidget.Button
	startButton     *ttwidget.Button
	cancelButton    *ttwidget.Button
	progressBar     *widget.ProgressBar
	statusLabel     *widget.Label
	logEntry        *widget.Entry

	// Configuration
	config *Config
	logger *slog.Logger

	// Background processing
	mu        sync.Mutex
	running   bool
	cancelRun context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a new GUI application.
func New(config *Config) *Application {
	if config == nil {
		config = &Config{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	myApp := app.NewWithID("com.github.jspark1st.excel-translate")

	a := &Application{
		app:    myApp,
		config: config,
		logger: config.Logger,
	}

	a.setupUI()

	return a
}

// setupUI creates the main user interface.
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Excel Translate v%s - Korean Spreadsheet Translator", internal.Version))

	a.inputEntry = widget.NewEntry()
	a.inputEntry.SetPlaceHolder("Input spreadsheet (.xlsx)")
	a.outputEntry = widget.NewEntry()
	a.outputEntry.SetPlaceHolder("Output file (default: <input>_translated.xlsx)")

	a.browseInputBtn = ttwidget.NewButtonWithIcon("", theme.FolderOpenIcon(), a.onBrowseInput)
	a.browseOutputBtn = ttwidget.NewButtonWithIcon("", theme.DocumentSaveIcon(), a.onBrowseOutput)

	a.startButton = ttwidget.NewButtonWithIcon("Translate", theme.MediaPlayIcon(), a.onStart)
	a.startButton.Importance = widget.HighImportance

	a.cancelButton = ttwidget.NewButtonWithIcon("Cancel", theme.CancelIcon(), a.onCancel)
	a.cancelButton.Disable()

	a.progressBar = widget.NewProgressBar()
	a.statusLabel = widget.NewLabel("Pick an input file to get started.")

	a.logEntry = widget.NewMultiLineEntry()
	a.logEntry.Wrapping = fyne.TextWrapWord
	a.logEntry.Disable()

	a.setupTooltips()

	inputRow := container.NewBorder(nil, nil, widget.NewLabel("Input:"), a.browseInputBtn, a.inputEntry)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel("Output:"), a.browseOutputBtn, a.outputEntry)
	buttonRow := container.NewHBox(a.startButton, a.cancelButton)

	top := container.NewVBox(
		inputRow,
		outputRow,
		buttonRow,
		a.progressBar,
		a.statusLabel,
	)

	content := container.NewBorder(top, nil, nil, nil, a.logEntry)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.window.Resize(fyne.NewSize(700, 550))
	a.window.CenterOnScreen()

	a.window.SetCloseIntercept(func() {
		a.onCancel()
		a.wg.Wait()
		a.window.Close()
	})
}

func (a *Application) setupTooltips() {
	a.browseInputBtn.SetToolTip("Pick the spreadsheet to translate")
	a.browseOutputBtn.SetToolTip("Pick where to save the translated file")
	a.startButton.SetToolTip("Translate every text cell to Korean")
	a.cancelButton.SetToolTip("Stop after the current cell")
}

// Run starts the GUI application.
func (a *Application) Run() {
	a.window.ShowAndRun()
}

func (a *Application) onBrowseInput() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		a.inputEntry.SetText(path)
		if strings.TrimSpace(a.outputEntry.Text) == "" {
			a.outputEntry.SetText(xlsx.DefaultOutputPath(path))
		}
		a.statusLabel.SetText(fmt.Sprintf("Selected %s", path))
	}, a.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".xlsm"}))
	fileDialog.Show()
}

func (a *Application) onBrowseOutput() {
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		a.outputEntry.SetText(path)
	}, a.window)
	fileDialog.SetFileName("translated.xlsx")
	fileDialog.Show()
}

// onStart validates the inputs and kicks off a translation run in the
// background so the UI stays responsive.
func (a *Application) onStart() {
	inputPath := strings.TrimSpace(a.inputEntry.Text)
	if inputPath == "" {
		dialog.ShowInformation("No input file", "Pick an input spreadsheet first.", a.window)
		return
	}
	if _, err := os.Stat(inputPath); err != nil {
		dialog.ShowError(fmt.Errorf("input file not found: %s", inputPath), a.window)
		return
	}

	outputPath := strings.TrimSpace(a.outputEntry.Text)
	if outputPath == "" {
		outputPath = xlsx.DefaultOutputPath(inputPath)
		a.outputEntry.SetText(outputPath)
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		dialog.ShowInformation("Busy", "A translation is already running.", a.window)
		return
	}
	a.running = true
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelRun = cancel
	a.mu.Unlock()

	a.setRunning(true)
	a.clearLog()
	a.progressBar.SetValue(0)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.translateInBackground(ctx, inputPath, outputPath)
	}()
}

// onCancel requests cancellation; the pipeline stops at the next cell.
func (a *Application) onCancel() {
	a.mu.Lock()
	if a.cancelRun != nil {
		a.cancelRun()
	}
	a.mu.Unlock()
}

func (a *Application) translateInBackground(ctx context.Context, inputPath, outputPath string) {
	defer func() {
		a.mu.Lock()
		a.running = false
		a.cancelRun = nil
		a.mu.Unlock()
		fyne.Do(func() {
			a.setRunning(false)
		})
	}()

	a.appendLog(fmt.Sprintf("Input file: %s", inputPath))
	a.appendLog(fmt.Sprintf("Output file: %s", outputPath))

	service, err := translation.NewService(ctx, a.config.Provider, a.config.APIKey, a.config.Model)
	if err != nil {
		a.showFatal(err)
		return
	}

	opts := translation.Options{
		MaxAttempts: a.config.MaxAttempts,
		BaseDelay:   a.config.RetryDelay,
		Pace:        a.config.Pace,
		Logger:      a.logger,
	}
	if a.config.MemoryDB != "" {
		store, err := memory.Open(a.config.MemoryDB)
		if err != nil {
			a.logger.Warn("translation memory unavailable", "error", err)
		} else {
			defer store.Close()
			opts.Memory = store
		}
	}
	client := translation.NewClient(service, opts)

	wb, err := xlsx.Load(inputPath)
	if err != nil {
		a.showFatal(err)
		return
	}
	a.appendLog(fmt.Sprintf("Found %d sheet(s), %d cell(s)", len(wb.Sheets), wb.CellCount()))

	p := pipeline.New(classify.New(a.config.KoreanThreshold), client, pipeline.Options{
		Logger: a.logger,
		OnSheet: func(index, count int, sheet *xlsx.Sheet) {
			a.appendLog(fmt.Sprintf("[%d/%d] Translating sheet %q...", index+1, count, sheet.Name))
		},
		Progress: func(done, total int) {
			fyne.Do(func() {
				a.progressBar.SetValue(float64(done) / float64(total))
				a.statusLabel.SetText(fmt.Sprintf("Translating... %d/%d cells", done, total))
			})
		},
	})

	out, stats, err := p.Run(ctx, wb)
	if errors.Is(err, context.Canceled) {
		// No partial file is written on cancellation.
		a.appendLog(fmt.Sprintf("Cancelled after %d of %d cells; no file written.",
			stats.TotalCells, wb.CellCount()))
		a.updateStatus("Translation cancelled.")
		return
	}

	if err := xlsx.Write(out, outputPath); err != nil {
		a.showFatal(err)
		return
	}

	a.appendLog("Translation complete!")
	a.appendLog(a.formatStats(stats))
	a.updateStatus(fmt.Sprintf("Done: %s", outputPath))

	fyne.Do(func() {
		dialog.ShowInformation("Translation complete",
			fmt.Sprintf("Output file: %s\n\n%s", outputPath, a.formatStats(stats)),
			a.window)
	})
}

func (a *Application) formatStats(stats *pipeline.Stats) string {
	lines := []string{
		fmt.Sprintf("Cells: %d total", stats.TotalCells),
		fmt.Sprintf("Translated: %d", stats.TranslatedCells),
		fmt.Sprintf("Skipped: %d (%d empty, %d numbers, %d already Korean)",
			stats.SkippedCells, stats.SkippedEmpty, stats.SkippedNumbers, stats.SkippedKorean),
	}
	if stats.ErrorCells > 0 {
		lines = append(lines, fmt.Sprintf("Errors: %d (original text kept)", stats.ErrorCells))
	}
	lines = append(lines, fmt.Sprintf("Elapsed: %s", stats.Elapsed.Round(time.Millisecond)))
	return strings.Join(lines, "\n")
}

func (a *Application) showFatal(err error) {
	a.logger.Error("translation run failed", "error", err)
	a.appendLog(fmt.Sprintf("Error: %v", err))
	fyne.Do(func() {
		dialog.ShowError(err, a.window)
		a.statusLabel.SetText("Translation failed.")
	})
}

// setRunning toggles the controls for an active run. Must be called on the
// Fyne thread.
func (a *Application) setRunning(running bool) {
	if running {
		a.startButton.Disable()
		a.startButton.SetText("Translating...")
		a.cancelButton.Enable()
		a.inputEntry.Disable()
		a.outputEntry.Disable()
	} else {
		a.startButton.Enable()
		a.startButton.SetText("Translate")
		a.cancelButton.Disable()
		a.inputEntry.Enable()
		a.outputEntry.Enable()
	}
}

func (a *Application) updateStatus(message string) {
	fyne.Do(func() {
		a.statusLabel.SetText(message)
	})
}

func (a *Application) appendLog(message string) {
	fyne.Do(func() {
		text := a.logEntry.Text
		if text != "" {
			text += "\n"
		}
		a.logEntry.SetText(text + message)
		a.logEntry.CursorRow = len(strings.Split(a.logEntry.Text, "\n")) - 1
	})
}

func (a *Application) clearLog() {
	a.logEntry.SetText("")
}
