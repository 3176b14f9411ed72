package parser

import (
	"fmt"
	"strings"

	"power-gadget/internal/models"
)

// Tokenizer splits one non-blank line into typed items
type Tokenizer interface {
	// Tokenize returns the items of line in order
	Tokenize(line string) ([]models.Item, error)

	// Dialect returns the quoting convention this tokenizer reads
	Dialect() models.Dialect
}

// QuotedTokenizer reads lines like `"col a","  12.3"`. Commas inside quotes
// are part of the item.
type QuotedTokenizer struct{}

func (QuotedTokenizer) Dialect() models.Dialect {
	return models.DialectQuoted
}

func (QuotedTokenizer) Tokenize(line string) ([]models.Item, error) {
	items := make([]models.Item, 0)
	i := 0
	for {
		if i >= len(line) || line[i] != quote {
			return nil, fmt.Errorf("%w at offset %d", ErrMissingQuote, i)
		}
		start := i + 1
		end := strings.IndexByte(line[start:], quote)
		if end == -1 {
			return nil, fmt.Errorf("%w at offset %d", ErrUnterminatedQuote, i)
		}
		end += start
		items = append(items, CoerceItem(line[start:end]))

		i = end + 1
		if i == len(line) {
			return items, nil
		}
		if line[i] != ',' {
			return nil, fmt.Errorf("%w at offset %d", ErrMissingSeparator, i)
		}
		i++
	}
}

// UnquotedTokenizer reads plain comma-separated lines. Embedded commas cannot
// be escaped.
type UnquotedTokenizer struct{}

func (UnquotedTokenizer) Dialect() models.Dialect {
	return models.DialectUnquoted
}

func (UnquotedTokenizer) Tokenize(line string) ([]models.Item, error) {
	fields := strings.Split(line, ",")
	items := make([]models.Item, len(fields))
	for i, field := range fields {
		items[i] = CoerceItem(field)
	}
	return items, nil
}

// TokenizerFor picks the tokenizer for a line by its first character
func TokenizerFor(line string) Tokenizer {
	if IsQuoted(line) {
		return QuotedTokenizer{}
	}
	return UnquotedTokenizer{}
}

// ParseItems tokenizes a line in whichever dialect it is written in.
// E.g. `"item 1","    12.3"` => ["item 1", 12.3]
func ParseItems(line string) ([]models.Item, error) {
	return TokenizerFor(line).Tokenize(line)
}
