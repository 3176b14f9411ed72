package parser

import (
	"fmt"
	"strings"
)

// SummaryHandler reads "<key> = <value>" lines. Once entered it is never
// left except on error.
type SummaryHandler struct{}

func (h *SummaryHandler) Name() string {
	return "Summary"
}

func (h *SummaryHandler) Enter(ctx *ParserContext) {
	// Nothing special needed
}

func (h *SummaryHandler) ProcessLine(ctx *ParserContext, line string) (ParserState, error) {
	if IsBlank(line) {
		return StateSummary, nil
	}

	items, err := ctx.tokenize(line)
	if err != nil {
		return StateSummary, err
	}
	if len(items) != 1 {
		return StateSummary, fmt.Errorf("%w: got %d", ErrSummaryItems, len(items))
	}

	key, raw, ok := SplitSummary(items[0].Text)
	if !ok {
		return StateSummary, fmt.Errorf("%w: %q", ErrSummarySeparator, items[0].Text)
	}
	value, err := ParseFloat(strings.TrimSpace(raw))
	if err != nil {
		return StateSummary, fmt.Errorf("%w: %q", ErrSummaryValue, raw)
	}
	ctx.Log.Summary.Set(key, value)

	return StateSummary, nil
}

func (h *SummaryHandler) Exit(ctx *ParserContext) {
	ctx.Logger.Debug("parsed summary", "keys", ctx.Log.Summary.Len())
}
