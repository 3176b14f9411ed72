package parser

// ErrorHandler holds the machine after a structural error. Parsing is never
// resumed.
type ErrorHandler struct{}

func (h *ErrorHandler) Name() string {
	return "Error"
}

func (h *ErrorHandler) Enter(ctx *ParserContext) {
	ctx.Logger.Debug("parser stopped", "error", ctx.Err)
}

func (h *ErrorHandler) ProcessLine(ctx *ParserContext, line string) (ParserState, error) {
	return StateError, ctx.Err
}

func (h *ErrorHandler) Exit(ctx *ParserContext) {
	// Nothing special needed
}
