package models

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column key")
	ErrColumnMismatch  = errors.New("row/column count mismatch")
	ErrMissingColumn   = errors.New("missing column")
	ErrNonNumeric      = errors.New("non-numeric cell")
)

// ItemKind tags the value held by an Item
type ItemKind int

const (
	KindText ItemKind = iota
	KindNumber
)

// String returns a human-readable representation of the item kind
func (k ItemKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	default:
		return "Unknown"
	}
}

// Item is a single parsed cell. Text always holds the trimmed source text,
// Number is only meaningful when Kind is KindNumber.
type Item struct {
	Kind   ItemKind
	Number float64
	Text   string
}

// NewTextItem creates a string-typed item
func NewTextItem(text string) Item {
	return Item{Kind: KindText, Text: text}
}

// NewNumberItem creates a numeric item, keeping the text it was parsed from
func NewNumberItem(value float64, text string) Item {
	return Item{Kind: KindNumber, Number: value, Text: text}
}

// IsNumber reports whether the item holds a decimal value
func (i Item) IsNumber() bool {
	return i.Kind == KindNumber
}

func (i Item) String() string {
	if i.IsNumber() {
		return strconv.FormatFloat(i.Number, 'f', -1, 64)
	}
	return i.Text
}

// Dialect is the line quoting convention of a producing platform
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectQuoted
	DialectUnquoted
)

func (d Dialect) String() string {
	switch d {
	case DialectQuoted:
		return "Quoted"
	case DialectUnquoted:
		return "Unquoted"
	default:
		return "Unknown"
	}
}

// Table holds the sampled time-series section: column keys in header order
// and one item sequence per column. All columns always have the same length.
type Table struct {
	keys    []string
	columns map[string][]Item
	rows    int
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		keys:    make([]string, 0),
		columns: make(map[string][]Item),
	}
}

// AddColumn registers a column key. Columns can only be added before the
// first row.
func (t *Table) AddColumn(key string) error {
	if _, exists := t.columns[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, key)
	}
	if t.rows > 0 {
		return fmt.Errorf("cannot add column %q after %d rows", key, t.rows)
	}
	t.keys = append(t.keys, key)
	t.columns[key] = make([]Item, 0)
	return nil
}

// AppendRow appends one item to every column, by position
func (t *Table) AppendRow(items []Item) error {
	if len(items) != len(t.keys) {
		return fmt.Errorf("%w: got %d items, want %d", ErrColumnMismatch, len(items), len(t.keys))
	}
	for i, key := range t.keys {
		t.columns[key] = append(t.columns[key], items[i])
	}
	t.rows++
	return nil
}

// Keys returns the column keys in the order they were first encountered
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Rows returns the number of data rows
func (t *Table) Rows() int {
	return t.rows
}

// Column returns the items of a column
func (t *Table) Column(key string) ([]Item, bool) {
	items, ok := t.columns[key]
	return items, ok
}

// NumericColumn returns a column as decimal values. It fails if the column
// does not exist or any of its cells is text.
func (t *Table) NumericColumn(key string) ([]float64, error) {
	items, ok := t.columns[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, key)
	}
	values := make([]float64, len(items))
	for i, item := range items {
		if !item.IsNumber() {
			return nil, fmt.Errorf("%w: column %q row %d: %q", ErrNonNumeric, key, i+1, item.Text)
		}
		values[i] = item.Number
	}
	return values, nil
}

// Summary holds the scalar key/value section in insertion order
type Summary struct {
	keys   []string
	values map[string]float64
}

// NewSummary creates an empty summary map
func NewSummary() *Summary {
	return &Summary{
		keys:   make([]string, 0),
		values: make(map[string]float64),
	}
}

// Set stores a value. A repeated key overwrites the value but keeps its
// original position.
func (s *Summary) Set(key string, value float64) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Keys returns the summary keys in insertion order
func (s *Summary) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of distinct keys
func (s *Summary) Len() int {
	return len(s.keys)
}

// Lookup returns the value for key and whether it was present
func (s *Summary) Lookup(key string) (float64, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Get returns the value for key, or zero when absent
func (s *Summary) Get(key string) float64 {
	return s.values[key]
}

// PowerLog is a fully parsed log file
type PowerLog struct {
	Source  string  // file name, empty when parsed from a reader
	Dialect Dialect // dialect of the header line
	Table   *Table
	Summary *Summary
}

// NewPowerLog creates an empty log for source
func NewPowerLog(source string) *PowerLog {
	return &PowerLog{
		Source:  source,
		Table:   NewTable(),
		Summary: NewSummary(),
	}
}
