// Package pipeline walks every cell of a loaded workbook, translates the
// text cells, and assembles the output grid together with run statistics.
package pipeline
