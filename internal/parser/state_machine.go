package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"power-gadget/internal/models"
)

// ParserState represents the current state of the power log parser
type ParserState int

const (
	StateHeader ParserState = iota
	StateTable
	StateSummary
	StateError
)

// String returns a human-readable representation of the parser state
func (s ParserState) String() string {
	switch s {
	case StateHeader:
		return "Header"
	case StateTable:
		return "Table"
	case StateSummary:
		return "Summary"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ParserContext holds the context data for the state machine
type ParserContext struct {
	// Current state
	State ParserState

	// 1-based number of the line being processed
	LineNumber int

	// Dialect and item count of the last tokenized line
	LastDialect models.Dialect
	LastItems   int

	// First error seen; the machine refuses further input after it
	Err error

	// The log being built
	Log *models.PowerLog

	Logger *slog.Logger
}

// NewParserContext creates a new parser context
func NewParserContext(source string, logger *slog.Logger) *ParserContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserContext{
		State:  StateHeader,
		Log:    models.NewPowerLog(source),
		Logger: logger,
	}
}

// tokenize runs the line through the tokenizer of its dialect and records
// what it saw
func (ctx *ParserContext) tokenize(line string) ([]models.Item, error) {
	tokenizer := TokenizerFor(line)
	ctx.LastDialect = tokenizer.Dialect()
	items, err := tokenizer.Tokenize(line)
	ctx.LastItems = len(items)
	return items, err
}

// StateHandler interface for handling different parser states
type StateHandler interface {
	// ProcessLine processes a trimmed line in this state and returns the next state
	ProcessLine(ctx *ParserContext, line string) (ParserState, error)

	// Enter is called when entering this state
	Enter(ctx *ParserContext)

	// Exit is called when leaving this state
	Exit(ctx *ParserContext)

	// Name returns the name of this state handler
	Name() string
}

// StateMachine manages the parsing state transitions
type StateMachine struct {
	handlers map[ParserState]StateHandler
	context  *ParserContext
}

// NewStateMachine creates a new state machine with all handlers
func NewStateMachine(source string, logger *slog.Logger) *StateMachine {
	sm := &StateMachine{
		handlers: make(map[ParserState]StateHandler),
		context:  NewParserContext(source, logger),
	}

	sm.RegisterHandler(StateHeader, &HeaderHandler{})
	sm.RegisterHandler(StateTable, &TableHandler{})
	sm.RegisterHandler(StateSummary, &SummaryHandler{})
	sm.RegisterHandler(StateError, &ErrorHandler{})

	return sm
}

// RegisterHandler registers a state handler
func (sm *StateMachine) RegisterHandler(state ParserState, handler StateHandler) {
	sm.handlers[state] = handler
}

// ProcessLine processes a single raw line and manages state transitions
func (sm *StateMachine) ProcessLine(line string) error {
	ctx := sm.context
	ctx.LineNumber++
	ctx.LastDialect = models.DialectUnknown
	ctx.LastItems = 0

	handler, exists := sm.handlers[ctx.State]
	if !exists {
		return fmt.Errorf("no handler for state %s", ctx.State)
	}

	nextState, err := handler.ProcessLine(ctx, strings.TrimSpace(line))
	if err != nil {
		if ctx.State == StateError {
			return err
		}
		perr := &ParseError{Line: ctx.LineNumber, State: ctx.State, Err: err}
		ctx.Err = perr
		if terr := sm.TransitionTo(StateError); terr != nil {
			return terr
		}
		return perr
	}

	if nextState != ctx.State {
		return sm.TransitionTo(nextState)
	}
	return nil
}

// TransitionTo transitions to a new state
func (sm *StateMachine) TransitionTo(newState ParserState) error {
	from := sm.context.State.String()
	if currentHandler, exists := sm.handlers[sm.context.State]; exists {
		currentHandler.Exit(sm.context)
		from = currentHandler.Name()
	}

	newHandler, exists := sm.handlers[newState]
	if !exists {
		return fmt.Errorf("no handler for state %s", newState)
	}

	sm.context.Logger.Debug("parser state transition",
		"line", sm.context.LineNumber, "from", from, "to", newHandler.Name())
	sm.context.State = newState
	newHandler.Enter(sm.context)
	return nil
}

// GetContext returns the current parser context
func (sm *StateMachine) GetContext() *ParserContext {
	return sm.context
}

// Finalize calls Exit on the current state and returns the parsed log, or
// the error that stopped parsing
func (sm *StateMachine) Finalize() (*models.PowerLog, error) {
	ctx := sm.context
	if ctx.Err != nil {
		return nil, ctx.Err
	}
	if handler, exists := sm.handlers[ctx.State]; exists {
		handler.Exit(ctx)
	}
	return ctx.Log, nil
}
