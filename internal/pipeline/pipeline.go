package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/jspark1st/excel-translate/internal/classify"
	"github.com/jspark1st/excel-translate/internal/translation"
	"github.com/jspark1st/excel-translate/internal/xlsx"
)

// ProgressFunc reports progress to the driving shell. Called after every
// cell: (1, 40), (2, 40), ...
type ProgressFunc func(done, total int)

// SheetFunc is called before each sheet is processed, for shells that
// narrate per-sheet progress.
type SheetFunc func(index, count int, sheet *xlsx.Sheet)

// Translator is the cell-level translation contract the pipeline depends on.
type Translator interface {
	Translate(ctx context.Context, text string) translation.Outcome
}

// Options configures the optional pipeline collaborators.
type Options struct {
	Progress ProgressFunc
	OnSheet  SheetFunc
	Logger   *slog.Logger
}

// Pipeline orchestrates one full translation pass over a workbook.
type Pipeline struct {
	classifier *classify.Classifier
	translator Translator
	opts       Options
}

// New creates a pipeline from a classifier and a translation client.
func New(classifier *classify.Classifier, translator Translator, opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Pipeline{classifier: classifier, translator: translator, opts: opts}
}

// Run processes the workbook sheet by sheet in row-major order and returns
// the output workbook alongside the run statistics. Cell-level translation
// failures never abort the run; they fall back to the original text and
// count as error cells.
//
// Cancellation is checked at every cell boundary. On cancellation Run
// returns the partially translated workbook, the statistics collected so
// far, and ctx.Err(); untouched cells keep their original values.
func (p *Pipeline) Run(ctx context.Context, wb *xlsx.Workbook) (*xlsx.Workbook, *Stats, error) {
	start := time.Now()
	total := wb.CellCount()
	stats := &Stats{}
	out := copyWorkbook(wb)

	p.opts.Logger.Info("translation run started",
		"sheets", len(wb.Sheets),
		"cells", total)

	done := 0
	for sheetIdx := range out.Sheets {
		sheet := &out.Sheets[sheetIdx]
		if p.opts.OnSheet != nil {
			p.opts.OnSheet(sheetIdx, len(out.Sheets), sheet)
		}
		p.opts.Logger.Debug("processing sheet",
			"sheet", sheet.Name,
			"rows", len(sheet.Rows))

		for rowIdx := range sheet.Rows {
			for colIdx := range sheet.Rows[rowIdx] {
				if err := ctx.Err(); err != nil {
					stats.Elapsed = time.Since(start)
					p.opts.Logger.Info("translation run cancelled",
						"processed", done,
						"total", total)
					return out, stats, err
				}

				p.processCell(ctx, &sheet.Rows[rowIdx][colIdx], stats)
				done++
				if p.opts.Progress != nil {
					p.opts.Progress(done, total)
				}
			}
		}
	}

	stats.Elapsed = time.Since(start)
	p.opts.Logger.Info("translation run finished",
		"total", stats.TotalCells,
		"translated", stats.TranslatedCells,
		"skipped", stats.SkippedCells,
		"errors", stats.ErrorCells,
		"elapsed", stats.Elapsed)

	return out, stats, nil
}

func (p *Pipeline) processCell(ctx context.Context, cell *xlsx.Cell, stats *Stats) {
	stats.TotalCells++

	switch p.classifier.Classify(*cell) {
	case classify.SkipEmpty:
		stats.SkippedCells++
		stats.SkippedEmpty++
	case classify.SkipNumber:
		stats.SkippedCells++
		stats.SkippedNumbers++
	case classify.SkipKorean:
		stats.SkippedCells++
		stats.SkippedKorean++
	case classify.Translate:
		outcome := p.translator.Translate(ctx, cell.Text)
		if outcome.Fallback {
			// Original text stays in place.
			stats.ErrorCells++
		} else {
			*cell = xlsx.TextCell(outcome.Text)
			stats.TranslatedCells++
		}
	}
}

// copyWorkbook deep-copies the sheet grids so the input workbook is never
// mutated and a cancelled run still has every untouched cell in place.
func copyWorkbook(wb *xlsx.Workbook) *xlsx.Workbook {
	out := &xlsx.Workbook{Sheets: make([]xlsx.Sheet, len(wb.Sheets))}
	for i := range wb.Sheets {
		src := &wb.Sheets[i]
		dst := xlsx.Sheet{Name: src.Name, Rows: make([][]xlsx.Cell, len(src.Rows))}
		for r := range src.Rows {
			dst.Rows[r] = append([]xlsx.Cell(nil), src.Rows[r]...)
		}
		out.Sheets[i] = dst
	}
	return out
}
