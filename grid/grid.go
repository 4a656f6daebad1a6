// Package grid coerces loosely typed spreadsheet cells into the values the
// page generators work with.
//
// Cells arrive from the grid widget (or from a YAML/JSON snapshot of it) as
// one of string, number, bool or nil. Everything here is forgiving: missing
// cells and nils become empty strings, numbers are printed the shortest way.
package grid

import (
	"math"
	"strconv"
	"strings"
)

// Row is a single grid row.
type Row []any

// Rows is a whole grid snapshot.
type Rows []Row

// FromCells converts decoded snapshot data into Rows.
func FromCells(cells [][]any) Rows {
	rows := make(Rows, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, Row(c))
	}
	return rows
}

// Cell returns cell i or nil when the row is too short.
func (r Row) Cell(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

// String returns cell i as a string without trimming.
func (r Row) String(i int) string {
	return String(r.Cell(i))
}

// Trimmed returns cell i as a trimmed string.
func (r Row) Trimmed(i int) string {
	return strings.TrimSpace(r.String(i))
}

// Bool returns cell i using tri-state coercion, see Bool.
func (r Row) Bool(i int) bool {
	return Bool(r.Cell(i))
}

// Empty reports whether every cell of the row is blank.
func (r Row) Empty() bool {
	for i := range r {
		if r.Trimmed(i) != "" {
			return false
		}
	}
	return true
}

// String converts a single cell to string. nil becomes "".
func String(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Bool implements the grid's tri-state boolean convention: the strings
// "false" and "" are false, any other string (including "true") is true,
// nil and numeric zero are false.
func Bool(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}

// IsNumeric reports whether s would be accepted as a number by the grid:
// blank strings count as numeric (zero).
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
