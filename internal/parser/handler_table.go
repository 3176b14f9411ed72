package parser

// TableHandler appends sample rows until the blank line that ends the table
type TableHandler struct{}

func (h *TableHandler) Name() string {
	return "Table"
}

func (h *TableHandler) Enter(ctx *ParserContext) {
	// Nothing special needed
}

func (h *TableHandler) ProcessLine(ctx *ParserContext, line string) (ParserState, error) {
	if IsBlank(line) {
		return StateSummary, nil
	}

	items, err := ctx.tokenize(line)
	if err != nil {
		return StateTable, err
	}
	if err := ctx.Log.Table.AppendRow(items); err != nil {
		return StateTable, err
	}

	return StateTable, nil
}

func (h *TableHandler) Exit(ctx *ParserContext) {
	ctx.Logger.Debug("parsed table", "rows", ctx.Log.Table.Rows())
}
