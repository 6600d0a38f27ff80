// Package classify decides, per spreadsheet cell, whether the value needs
// translation or should pass through unchanged.
package classify

import (
	"strings"
	"unicode"

	"github.com/jspark1st/excel-translate/internal/xlsx"
)

// Result is the classification outcome for a single cell.
type Result int

const (
	SkipEmpty Result = iota
	SkipNumber
	SkipKorean
	Translate
)

func (r Result) String() string {
	switch r {
	case SkipEmpty:
		return "skip-empty"
	case SkipNumber:
		return "skip-number"
	case SkipKorean:
		return "skip-korean"
	case Translate:
		return "translate"
	default:
		return "unknown"
	}
}

// Classifier maps cell values to translation decisions. The zero value
// skips any text containing at least one Hangul rune.
type Classifier struct {
	// KoreanThreshold is the Hangul-to-letter ratio above which text counts
	// as already Korean. 0 means any Hangul rune skips the cell.
	KoreanThreshold float64
}

// New returns a classifier with the given Korean detection threshold.
func New(koreanThreshold float64) *Classifier {
	return &Classifier{KoreanThreshold: koreanThreshold}
}

// Classify is a pure function of the cell value: no I/O, no mutation.
func (c *Classifier) Classify(cell xlsx.Cell) Result {
	switch cell.Kind {
	case xlsx.KindEmpty:
		return SkipEmpty
	case xlsx.KindNumber:
		return SkipNumber
	}

	text := strings.TrimSpace(cell.Text)
	if text == "" {
		// Whitespace-only text counts as empty.
		return SkipEmpty
	}

	if c.isKorean(text) {
		return SkipKorean
	}
	return Translate
}

// isKorean reports whether the text is already predominantly Korean per the
// configured threshold. Mixed-script text is governed by the same rule, not
// by a language-detection model.
func (c *Classifier) isKorean(text string) bool {
	hangul, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if isHangul(r) {
			hangul++
		}
	}
	if letters == 0 || hangul == 0 {
		return false
	}
	return float64(hangul)/float64(letters) > c.KoreanThreshold
}

func isHangul(r rune) bool {
	return unicode.In(r, unicode.Hangul)
}
