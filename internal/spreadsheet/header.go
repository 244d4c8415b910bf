package spreadsheet

import "strings"

// Column label synonyms recognised on roster sheets. Matching is
// case-insensitive substring, not whole-word, so "ktđk" also hits
// "Điểm KTĐK cuối kỳ".
var (
	nameKeys  = []string{"họ tên", "họ và tên", "tên học sinh"}
	levelKeys = []string{"mức đạt được", "mức đạt", "xếp loại"}
	scoreKeys = []string{"điểm ktđk", "ktđk", "điểm kiểm tra"}
)

// DefaultHeaderScanRows caps how many leading rows LocateHeader inspects.
const DefaultHeaderScanRows = 15

// HeaderLocation points at the header row and the recognised columns.
// Columns are 0-based; -1 marks a column that was not found.
type HeaderLocation struct {
	Row      int
	NameCol  int
	LevelCol int
	ScoreCol int
}

// Found reports whether a usable header row was located. Only the name
// column is mandatory; level and score are optional.
func (l HeaderLocation) Found() bool {
	return l.NameCol >= 0
}

// LocateHeader scans at most maxRows leading rows for a row containing a
// name column label. The first row with a name match wins, even if a later
// row would match more columns. Level and score columns are searched
// independently within that same row.
func LocateHeader(rows [][]string, maxRows int) HeaderLocation {
	if maxRows <= 0 {
		maxRows = DefaultHeaderScanRows
	}
	for r := 0; r < len(rows) && r < maxRows; r++ {
		cells := make([]string, len(rows[r]))
		for i, cell := range rows[r] {
			cells[i] = strings.ToLower(strings.TrimSpace(cell))
		}
		nameCol := findColumn(cells, nameKeys)
		if nameCol == -1 {
			continue
		}
		return HeaderLocation{
			Row:      r,
			NameCol:  nameCol,
			LevelCol: findColumn(cells, levelKeys),
			ScoreCol: findColumn(cells, scoreKeys),
		}
	}
	return HeaderLocation{Row: -1, NameCol: -1, LevelCol: -1, ScoreCol: -1}
}

func findColumn(cells []string, keys []string) int {
	for i, cell := range cells {
		for _, key := range keys {
			if strings.Contains(cell, key) {
				return i
			}
		}
	}
	return -1
}
