package entities

// OriginalColumn is the reserved name of the key column of a Table.
const OriginalColumn = "original"

// Row is one original string and its translations keyed by language. A
// language missing from Cells has no translation.
type Row struct {
	Original string
	Cells    map[string]string
}

// Table is the flattened original x language matrix. Rows and languages keep
// the order in which they were first seen.
type Table struct {
	languages []string
	langIndex map[string]struct{}
	rows      []*Row
	rowIndex  map[string]*Row
}

// NewTable returns an empty table with the given language columns.
func NewTable(languages ...string) *Table {
	t := &Table{
		langIndex: make(map[string]struct{}),
		rowIndex:  make(map[string]*Row),
	}
	for _, l := range languages {
		t.AddLanguage(l)
	}
	return t
}

// AddLanguage appends a language column unless it is already present.
// It reports whether the column was added.
func (t *Table) AddLanguage(language string) bool {
	if _, ok := t.langIndex[language]; ok {
		return false
	}
	t.langIndex[language] = struct{}{}
	t.languages = append(t.languages, language)
	return true
}

// Languages returns the language columns in order, without OriginalColumn.
func (t *Table) Languages() []string {
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// Header returns the full header row: OriginalColumn followed by the languages.
func (t *Table) Header() []string {
	return append([]string{OriginalColumn}, t.languages...)
}

// EnsureRow returns the row for original, appending an empty one if needed.
func (t *Table) EnsureRow(original string) *Row {
	if r, ok := t.rowIndex[original]; ok {
		return r
	}
	r := &Row{Original: original, Cells: make(map[string]string)}
	t.rowIndex[original] = r
	t.rows = append(t.rows, r)
	return r
}

// SetCell stores value for (original, language), creating the row and the
// column when they do not exist yet.
func (t *Table) SetCell(original, language, value string) {
	t.AddLanguage(language)
	t.EnsureRow(original).Cells[language] = value
}

// GetCell returns the value of (original, language) and whether one is stored.
func (t *Table) GetCell(original, language string) (string, bool) {
	r, ok := t.rowIndex[original]
	if !ok {
		return "", false
	}
	v, ok := r.Cells[language]
	return v, ok
}

// ClearCell removes the value of (original, language). The row stays.
func (t *Table) ClearCell(original, language string) {
	if r, ok := t.rowIndex[original]; ok {
		delete(r.Cells, language)
	}
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}
