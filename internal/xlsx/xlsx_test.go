package xlsx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"report.xlsx", "report_translated.xlsx"},
		{"/data/in/sales.xlsx", "/data/in/sales_translated.xlsx"},
		{"no_extension", "no_extension_translated.xlsx"},
		{"dir.v2/file.xlsm", "dir.v2/file_translated.xlsm"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.input); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCellValue(t *testing.T) {
	if got := EmptyCell().Value(); got != nil {
		t.Errorf("EmptyCell().Value() = %v, want nil", got)
	}
	if got := NumberCell(42).Value(); got != float64(42) {
		t.Errorf("NumberCell(42).Value() = %v, want 42", got)
	}
	if got := TextCell("hello").Value(); got != "hello" {
		t.Errorf("TextCell(hello).Value() = %v, want hello", got)
	}
}

func TestCellString(t *testing.T) {
	if got := NumberCell(3.5).String(); got != "3.5" {
		t.Errorf("NumberCell(3.5).String() = %q, want 3.5", got)
	}
	if got := TextCell("안녕").String(); got != "안녕" {
		t.Errorf("TextCell(안녕).String() = %q", got)
	}
	if got := EmptyCell().String(); got != "" {
		t.Errorf("EmptyCell().String() = %q, want empty", got)
	}
}

func TestWorkbookCellCount(t *testing.T) {
	wb := &Workbook{
		Sheets: []Sheet{
			{Name: "A", Rows: [][]Cell{{TextCell("x"), EmptyCell()}}},
			{Name: "B", Rows: [][]Cell{{NumberCell(1)}, {NumberCell(2)}}},
		},
	}
	if got := wb.CellCount(); got != 4 {
		t.Errorf("CellCount() = %d, want 4", got)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.xlsx")
	if err := os.WriteFile(path, []byte("this is not a workbook"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unparseable file")
	}
}

func TestWrite_BadDestination(t *testing.T) {
	wb := &Workbook{Sheets: []Sheet{{Name: "Sheet1", Rows: [][]Cell{{TextCell("x")}}}}}
	if err := Write(wb, "/nonexistent/dir/out.xlsx"); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.xlsx")

	in := &Workbook{
		Sheets: []Sheet{
			{
				Name: "Data",
				Rows: [][]Cell{
					{TextCell("Hello"), NumberCell(42)},
					{TextCell("안녕"), TextCell("World")},
				},
			},
			{
				Name: "Notes",
				Rows: [][]Cell{
					{TextCell("only cell")},
				},
			},
		},
	}

	if err := Write(in, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(out.Sheets) != len(in.Sheets) {
		t.Fatalf("sheet count = %d, want %d", len(out.Sheets), len(in.Sheets))
	}
	for i := range in.Sheets {
		if out.Sheets[i].Name != in.Sheets[i].Name {
			t.Errorf("sheet %d name = %q, want %q", i, out.Sheets[i].Name, in.Sheets[i].Name)
		}
		if len(out.Sheets[i].Rows) != len(in.Sheets[i].Rows) {
			t.Fatalf("sheet %q row count = %d, want %d",
				in.Sheets[i].Name, len(out.Sheets[i].Rows), len(in.Sheets[i].Rows))
		}
		for r, row := range in.Sheets[i].Rows {
			for c, want := range row {
				got := out.Sheets[i].Rows[r][c]
				if got != want {
					t.Errorf("sheet %q cell (%d,%d) = %+v, want %+v",
						in.Sheets[i].Name, r, c, got, want)
				}
			}
		}
	}
}

// TestRoundTrip_NumericLookingText checks that a text cell containing digits
// stays a text cell across write and load.
func TestRoundTrip_NumericLookingText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numtext.xlsx")

	in := &Workbook{
		Sheets: []Sheet{
			{Name: "Sheet1", Rows: [][]Cell{{TextCell("42"), NumberCell(42)}}},
		},
	}

	if err := Write(in, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := out.Sheets[0].Rows[0]
	if got[0].Kind != KindText || got[0].Text != "42" {
		t.Errorf("cell (0,0) = %+v, want text 42", got[0])
	}
	if got[1].Kind != KindNumber || got[1].Number != 42 {
		t.Errorf("cell (0,1) = %+v, want number 42", got[1])
	}
}
