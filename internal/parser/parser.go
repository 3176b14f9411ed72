package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"power-gadget/internal/models"
)

// maxLineSize bounds a single log line. Wide logs with per-core columns
// exceed bufio's default.
const maxLineSize = 512 * 1024

// Parser turns power log text into a models.PowerLog
type Parser struct {
	log *slog.Logger
}

// New creates a parser that reports progress to log. A nil logger uses
// slog.Default().
func New(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// ParseFile opens path and parses it. The file is closed on every return.
func (p *Parser) ParseFile(path string) (*models.PowerLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open power log: %w", err)
	}
	defer file.Close()

	return p.Parse(file, path)
}

// Parse reads every line of r. Any structural error aborts the parse and no
// partial log is returned.
func (p *Parser) Parse(r io.Reader, source string) (*models.PowerLog, error) {
	start := time.Now()
	sm := NewStateMachine(source, p.log)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for scanner.Scan() {
		if err := sm.ProcessLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read power log: %w", err)
	}

	powerLog, err := sm.Finalize()
	if err != nil {
		return nil, err
	}

	p.log.Debug("parsed power log",
		"source", source,
		"lines", sm.GetContext().LineNumber,
		"columns", len(powerLog.Table.Keys()),
		"rows", powerLog.Table.Rows(),
		"summary_keys", powerLog.Summary.Len(),
		"elapsed", time.Since(start))

	return powerLog, nil
}

// ParseFile parses path with the default logger
func ParseFile(path string) (*models.PowerLog, error) {
	return New(nil).ParseFile(path)
}

// Parse parses r with the default logger
func Parse(r io.Reader) (*models.PowerLog, error) {
	return New(nil).Parse(r, "")
}
