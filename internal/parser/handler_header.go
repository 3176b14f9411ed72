package parser

// HeaderHandler waits for the first non-blank line and turns its items into
// the column keys
type HeaderHandler struct{}

func (h *HeaderHandler) Name() string {
	return "Header"
}

func (h *HeaderHandler) Enter(ctx *ParserContext) {
	// Nothing special needed
}

func (h *HeaderHandler) ProcessLine(ctx *ParserContext, line string) (ParserState, error) {
	// Blank lines before the header do not start the summary
	if IsBlank(line) {
		return StateHeader, nil
	}

	items, err := ctx.tokenize(line)
	if err != nil {
		return StateHeader, err
	}
	for _, item := range items {
		if err := ctx.Log.Table.AddColumn(item.Text); err != nil {
			return StateHeader, err
		}
	}
	ctx.Log.Dialect = ctx.LastDialect

	return StateTable, nil
}

func (h *HeaderHandler) Exit(ctx *ParserContext) {
	ctx.Logger.Debug("parsed header",
		"columns", len(ctx.Log.Table.Keys()), "dialect", ctx.Log.Dialect)
}
