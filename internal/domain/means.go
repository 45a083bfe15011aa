package domain

import "fmt"

// CategoryMean is the mean item score of one response in one category.
type CategoryMean struct {
	ResponseID string  `db:"response_id" json:"response_id"`
	Category   string  `db:"category" json:"category"`
	MeanScore  float64 `db:"mean_score" json:"mean_score"`
}

// MeansTable is the wide form of category means: one row per response, one
// column per category acronym. Absent cells are nulls.
type MeansTable struct {
	rows    []string
	columns []string
	cells   map[string]map[string]float64
}

// PivotCategoryMeans pivots long-form means into a MeansTable. Row and column
// order follow first appearance in records.
func PivotCategoryMeans(records []CategoryMean) *MeansTable {
	t := &MeansTable{cells: make(map[string]map[string]float64)}
	seenCol := make(map[string]bool)
	for _, rec := range records {
		col := CategoryAcronym(rec.Category)
		row, ok := t.cells[rec.ResponseID]
		if !ok {
			row = make(map[string]float64)
			t.cells[rec.ResponseID] = row
			t.rows = append(t.rows, rec.ResponseID)
		}
		if !seenCol[col] {
			seenCol[col] = true
			t.columns = append(t.columns, col)
		}
		row[col] = rec.MeanScore
	}
	return t
}

// Rows returns the response ids in row order.
func (t *MeansTable) Rows() []string {
	return append([]string(nil), t.rows...)
}

// Columns returns the column names in column order.
func (t *MeansTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether any row has a value for col.
func (t *MeansTable) HasColumn(col string) bool {
	return containsString(t.columns, col)
}

// Value returns the cell at (responseID, col); ok is false for a null cell.
func (t *MeansTable) Value(responseID, col string) (float64, bool) {
	row, ok := t.cells[responseID]
	if !ok {
		return 0, false
	}
	v, ok := row[col]
	return v, ok
}

// PairwiseComplete returns the two columns restricted to rows where both cells
// are present, in row order.
func (t *MeansTable) PairwiseComplete(colA, colB string) ([]float64, []float64, error) {
	for _, col := range []string{colA, colB} {
		if !t.HasColumn(col) {
			return nil, nil, NewNotFoundError(fmt.Sprintf("column %s is not in the means table", col))
		}
	}
	var xs, ys []float64
	for _, id := range t.rows {
		x, okA := t.cells[id][colA]
		y, okB := t.cells[id][colB]
		if okA && okB {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys, nil
}
