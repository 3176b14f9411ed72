package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"power-gadget/internal/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: debug_parser <power-log-file>")
		os.Exit(2)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening power log: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Println("=== Power Log Parser Trace ===")
	fmt.Println(os.Args[1])
	fmt.Println()

	if err := trace(file, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		file.Close()
		os.Exit(1)
	}
}

// trace feeds r through the parser state machine one line at a time and
// prints the state, dialect and item count seen for each line. It stops at
// the first parse error.
func trace(r io.Reader, w io.Writer) error {
	sm := parser.NewStateMachine("", nil)
	ctx := sm.GetContext()

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 512*1024)
	scanner.Buffer(buf, 512*1024)

	transitions := 0
	for scanner.Scan() {
		line := scanner.Text()
		before := ctx.State

		err := sm.ProcessLine(line)

		items := "-"
		if ctx.LastItems > 0 {
			items = fmt.Sprintf("%d", ctx.LastItems)
		}
		fmt.Fprintf(w, "%5d  %-8s %-9s %4s  %s\n",
			ctx.LineNumber, before, ctx.LastDialect, items, preview(line, 48))

		if err != nil {
			return err
		}
		if ctx.State != before {
			transitions++
			fmt.Fprintf(w, "       -> %s\n", ctx.State)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading power log: %w", err)
	}

	powerLog, err := sm.Finalize()
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Dialect:      %s\n", powerLog.Dialect)
	fmt.Fprintf(w, "Columns:      %d\n", len(powerLog.Table.Keys()))
	fmt.Fprintf(w, "Rows:         %d\n", powerLog.Table.Rows())
	fmt.Fprintf(w, "Summary keys: %d\n", powerLog.Summary.Len())
	fmt.Fprintf(w, "Transitions:  %d\n", transitions)
	return nil
}

func preview(line string, width int) string {
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line
}
