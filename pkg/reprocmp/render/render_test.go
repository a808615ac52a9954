package render

import (
	"testing"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/aggregate"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

func testPaper() models.Paper {
	return models.Paper{
		ID: "p",
		Tables: models.NewTableSet(models.Table{
			Key:   "t",
			Title: "Scores",
			Columns: map[string]models.Column{
				"f1":   {Name: "F1", Type: models.ColumnNumeric, Best: models.BestHighest},
				"note": {Name: "Note", Type: models.ColumnText, Best: models.BestHighest},
			},
			ColumnOrder: []string{"f1", "note"},
			Rows:        map[string]models.Row{"r": {Name: "Dev"}},
			RowOrder:    []string{"r"},
			Values:      models.Values{"r": {"f1": 0.8, "note": "orig"}},
		}),
	}
}

func TestProject(t *testing.T) {
	paper := testPaper()
	reprods := []models.Reproduction{
		{ID: "a", Title: "Rerun A", Tables: models.TableValues{"t": {"r": {"f1": 0.85}}}},
		{ID: "b", Tables: models.TableValues{"other": {}}},
		{ID: "c", Tables: models.TableValues{"t": {}}},
	}
	best := aggregate.ForPaper(paper, reprods)

	views := Project(paper, reprods, best)
	if len(views) != 1 {
		t.Fatalf("Expected 1 view, got %d", len(views))
	}
	view := views[0]
	if view.Title != "Scores" || len(view.Columns) != 2 {
		t.Fatalf("Unexpected view header %+v", view)
	}
	if view.Columns[1].Best != "" {
		t.Errorf("Expected no policy on text column, got %q", view.Columns[1].Best)
	}

	lines := view.Rows[0].Lines
	if len(lines) != 3 {
		t.Fatalf("Expected paper, a and c lines, got %d", len(lines))
	}
	if lines[0].Label != PaperLabel || lines[1].Label != "Rerun A" || lines[2].Label != "c" {
		t.Errorf("Unexpected labels %q %q %q", lines[0].Label, lines[1].Label, lines[2].Label)
	}
	if lines[0].Cells[0].Best || !lines[1].Cells[0].Best || lines[2].Cells[0].Best {
		t.Errorf("Expected only reproduction a to be best, got %+v %+v %+v", lines[0].Cells[0], lines[1].Cells[0], lines[2].Cells[0])
	}
	if lines[1].Cells[0].Display != "0.85" {
		t.Errorf("Expected 0.85, got %q", lines[1].Cells[0].Display)
	}
	if !lines[2].Cells[0].Missing || lines[2].Cells[0].Display != "" {
		t.Errorf("Expected missing cell for c, got %+v", lines[2].Cells[0])
	}
	for _, l := range lines {
		if l.Cells[1].Best {
			t.Errorf("Text cell of %s marked best", l.Contributor)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"x", "x"},
		{12.0, "12"},
		{0.125, "0.125"},
		{int64(3), "3"},
	}

	for _, tt := range tests {
		if result := Format(tt.input); result != tt.expected {
			t.Errorf("Format(%#v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
