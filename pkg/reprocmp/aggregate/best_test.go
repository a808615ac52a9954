package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// oneCell builds a paper with a single table "t" holding one row "r" and one
// column "c" with the given type and policy.
func oneCell(colType models.ColumnType, best models.BestPolicy, paperValue any) models.Paper {
	values := models.Values{"r": {}}
	if paperValue != nil {
		values["r"]["c"] = paperValue
	}
	return models.Paper{
		ID: "paper",
		Tables: models.NewTableSet(models.Table{
			Key:         "t",
			Title:       "T",
			Columns:     map[string]models.Column{"c": {Name: "C", Type: colType, Best: best}},
			ColumnOrder: []string{"c"},
			Rows:        map[string]models.Row{"r": {Name: "R"}},
			RowOrder:    []string{"r"},
			Values:      values,
		}),
	}
}

func repro(id string, value any) models.Reproduction {
	return models.Reproduction{ID: id, Tables: models.TableValues{"t": {"r": {"c": value}}}}
}

func TestCellKey(t *testing.T) {
	if got := CellKey("t1", "r2", "c3", "p4"); got != "t1_r2_c3_p4" {
		t.Errorf("CellKey = %q, expected t1_r2_c3_p4", got)
	}
}

func TestComputeBestCells(t *testing.T) {
	tests := []struct {
		name    string
		paper   models.Paper
		reprods []models.Reproduction
		want    []CellContributorKey
	}{
		{
			name:    "tie goes to the paper",
			paper:   oneCell(models.ColumnNumeric, models.BestHighest, 5.0),
			reprods: []models.Reproduction{repro("a", 5.0), repro("b", 5.0)},
			want:    []CellContributorKey{"t_r_c_paper"},
		},
		{
			name:  "missing cell never wins",
			paper: oneCell(models.ColumnNumeric, models.BestHighest, 3.0),
			reprods: []models.Reproduction{
				repro("a", 7.0),
				{ID: "b", Tables: models.TableValues{"t": {"r": {}}}},
			},
			want: []CellContributorKey{"t_r_c_a"},
		},
		{
			name:    "lowest wins",
			paper:   oneCell(models.ColumnNumeric, models.BestLowest, 10.0),
			reprods: []models.Reproduction{repro("repro1", 2.0), repro("repro2", 8.0)},
			want:    []CellContributorKey{"t_r_c_repro1"},
		},
		{
			name:    "text column excluded",
			paper:   oneCell(models.ColumnText, models.BestHighest, "99"),
			reprods: []models.Reproduction{repro("a", "100")},
			want:    []CellContributorKey{},
		},
		{
			name:    "no reproductions",
			paper:   oneCell(models.ColumnNumeric, models.BestHighest, 1.0),
			reprods: nil,
			want:    []CellContributorKey{"t_r_c_paper"},
		},
		{
			name:    "all unparseable picks the earliest",
			paper:   oneCell(models.ColumnNumeric, models.BestLowest, "n/a"),
			reprods: []models.Reproduction{repro("a", "??"), repro("b", "")},
			want:    []CellContributorKey{"t_r_c_paper"},
		},
		{
			name:    "unparseable paper loses to any number",
			paper:   oneCell(models.ColumnNumeric, models.BestHighest, "n/a"),
			reprods: []models.Reproduction{repro("a", -1e9)},
			want:    []CellContributorKey{"t_r_c_a"},
		},
		{
			name:    "string values are parsed",
			paper:   oneCell(models.ColumnNumeric, models.BestHighest, "10"),
			reprods: []models.Reproduction{repro("a", " 10.5 ")},
			want:    []CellContributorKey{"t_r_c_a"},
		},
		{
			name:  "reproduction without the table is not a candidate",
			paper: oneCell(models.ColumnNumeric, models.BestHighest, nil),
			reprods: []models.Reproduction{
				{ID: "a", Tables: models.TableValues{"other": {"r": {"c": 100.0}}}},
			},
			want: []CellContributorKey{"t_r_c_paper"},
		},
		{
			name:    "later strictly better value wins",
			paper:   oneCell(models.ColumnNumeric, models.BestHighest, 1.0),
			reprods: []models.Reproduction{repro("a", 2.0), repro("b", 3.0), repro("c", 3.0)},
			want:    []CellContributorKey{"t_r_c_b"},
		},
	}

	for _, tt := range tests {
		got := ForPaper(tt.paper, tt.reprods).Keys()
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: best cells mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestComputeBestCellsIgnoresOrphans(t *testing.T) {
	paper := oneCell(models.ColumnNumeric, models.BestHighest, 1.0)
	reprods := []models.Reproduction{{
		ID: "a",
		Tables: models.TableValues{"t": {
			"r":       {"c": 0.5, "removed-col": 1000.0},
			"removed": {"c": 1000.0},
		}},
	}}

	got := ForPaper(paper, reprods).Keys()
	if diff := cmp.Diff([]CellContributorKey{"t_r_c_paper"}, got); diff != "" {
		t.Errorf("Best cells mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBestCellsPerCell(t *testing.T) {
	table := models.Table{
		Key:   "t",
		Title: "T",
		Columns: map[string]models.Column{
			"hi":  {Name: "hi", Type: models.ColumnNumeric, Best: models.BestHighest},
			"lo":  {Name: "lo", Type: models.ColumnNumeric, Best: models.BestLowest},
			"txt": {Name: "txt", Type: models.ColumnText},
		},
		ColumnOrder: []string{"hi", "lo", "txt"},
		Rows:        map[string]models.Row{"r1": {Name: "1"}, "r2": {Name: "2"}},
		RowOrder:    []string{"r1", "r2"},
	}
	paperValues := models.TableValues{"t": {
		"r1": {"hi": 1.0, "lo": 1.0, "txt": "a"},
		"r2": {"hi": 9.0, "lo": 9.0, "txt": "b"},
	}}
	contributions := []Contribution{
		{ID: "x", Tables: models.TableValues{"t": {
			"r1": {"hi": 5.0, "lo": 5.0},
			"r2": {"hi": 5.0, "lo": 5.0},
		}}},
	}

	got := ComputeBestCells(models.NewTableSet(table), paperValues, contributions, "p")
	want := []CellContributorKey{"t_r1_hi_x", "t_r1_lo_p", "t_r2_hi_p", "t_r2_lo_x"}
	if diff := cmp.Diff(want, got.Keys()); diff != "" {
		t.Errorf("Best cells mismatch (-want +got):\n%s", diff)
	}
	if !got.IsBest("t", "r1", "hi", "x") || got.IsBest("t", "r1", "hi", "p") {
		t.Error("IsBest disagrees with the key set")
	}
}

func TestComputeBestCellsDeterministic(t *testing.T) {
	paper := oneCell(models.ColumnNumeric, models.BestHighest, 4.0)
	var reprods []models.Reproduction
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		reprods = append(reprods, repro(id, 4.0))
	}

	first := ForPaper(paper, reprods).Keys()
	for i := 0; i < 50; i++ {
		if diff := cmp.Diff(first, ForPaper(paper, reprods).Keys()); diff != "" {
			t.Fatalf("Run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestComputeBestCellsEmptyTable(t *testing.T) {
	paper := models.Paper{ID: "p", Tables: models.NewTableSet(models.Table{Key: "t", Title: "Empty"})}
	if got := ForPaper(paper, []models.Reproduction{repro("a", 1.0)}); len(got) != 0 {
		t.Errorf("Expected no best cells, got %v", got.Keys())
	}
}
