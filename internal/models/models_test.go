package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAppendRow(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a"))
	require.NoError(t, table.AddColumn("b"))

	require.NoError(t, table.AppendRow([]Item{NewTextItem("x"), NewNumberItem(1, "1")}))
	require.NoError(t, table.AppendRow([]Item{NewTextItem("y"), NewNumberItem(2, "2")}))

	assert.Equal(t, []string{"a", "b"}, table.Keys())
	assert.Equal(t, 2, table.Rows())

	col, ok := table.Column("b")
	require.True(t, ok)
	assert.Len(t, col, 2)

	err := table.AppendRow([]Item{NewTextItem("z")})
	assert.ErrorIs(t, err, ErrColumnMismatch)
	assert.Equal(t, 2, table.Rows(), "a rejected row must not be partially applied")
}

func TestTableAddColumn(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a"))
	assert.ErrorIs(t, table.AddColumn("a"), ErrDuplicateColumn)

	require.NoError(t, table.AppendRow([]Item{NewNumberItem(1, "1")}))
	assert.Error(t, table.AddColumn("late"))
}

func TestTableKeysIsACopy(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a"))
	keys := table.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, table.Keys())
}

func TestNumericColumn(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("num"))
	require.NoError(t, table.AddColumn("mixed"))
	require.NoError(t, table.AppendRow([]Item{NewNumberItem(1.5, "1.5"), NewNumberItem(3, "3")}))
	require.NoError(t, table.AppendRow([]Item{NewNumberItem(2.5, "2.5"), NewTextItem("n/a")}))

	values, err := table.NumericColumn("num")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, values)

	_, err = table.NumericColumn("mixed")
	assert.ErrorIs(t, err, ErrNonNumeric)

	_, err = table.NumericColumn("absent")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestSummaryOrder(t *testing.T) {
	s := NewSummary()
	s.Set("first", 1)
	s.Set("second", 2)
	s.Set("first", 10)

	assert.Equal(t, []string{"first", "second"}, s.Keys())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 10.0, s.Get("first"))

	_, ok := s.Lookup("third")
	assert.False(t, ok)
	assert.Zero(t, s.Get("third"))
}

func TestItemString(t *testing.T) {
	testCases := []struct {
		name     string
		item     Item
		expected string
	}{
		{name: "text", item: NewTextItem("12:00:01"), expected: "12:00:01"},
		{name: "integer", item: NewNumberItem(100, "100.000"), expected: "100"},
		{name: "fraction", item: NewNumberItem(12.3, "  12.3"), expected: "12.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.item.String())
		})
	}
}

func TestKindAndDialectString(t *testing.T) {
	assert.Equal(t, "Number", KindNumber.String())
	assert.Equal(t, "Text", KindText.String())
	assert.Equal(t, "Quoted", DialectQuoted.String())
	assert.Equal(t, "Unquoted", DialectUnquoted.String())
	assert.Equal(t, "Unknown", DialectUnknown.String())
}
