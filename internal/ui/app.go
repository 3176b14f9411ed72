package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"power-gadget/internal/models"
)

// redrawInterval is how often the loop repaints the screen
const redrawInterval = 100 * time.Millisecond

// App is the interactive viewer over one parsed log
type App struct {
	screen   tcell.Screen
	log      *slog.Logger
	powerLog *models.PowerLog
	stats    *models.Statistics
	columns  []ColumnView

	currentView ViewType
	showHelp    bool
	offsets     [ViewCount]int
}

// NewApp prepares a viewer drawing to an initialized screen
func NewApp(screen tcell.Screen, powerLog *models.PowerLog, stats *models.Statistics, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	columns, err := BuildColumnViews(powerLog.Table)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:   screen,
		log:      logger,
		powerLog: powerLog,
		stats:    stats,
		columns:  columns,
		showHelp: true,
	}, nil
}

// CurrentView returns the view being shown
func (a *App) CurrentView() ViewType {
	return a.currentView
}

// ShowHelp reports whether descriptions are shown
func (a *App) ShowHelp() bool {
	return a.showHelp
}

// Offset returns the scroll position of the current view
func (a *App) Offset() int {
	return a.offsets[a.currentView]
}

// HandleEvent applies one terminal event and reports whether the viewer
// should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyTab:
			a.switchTo((a.currentView + 1) % ViewCount)
		case tcell.KeyBacktab:
			a.switchTo((a.currentView + ViewCount - 1) % ViewCount)
		case tcell.KeyDown:
			a.scroll(1)
		case tcell.KeyUp:
			a.scroll(-1)
		case tcell.KeyPgDn:
			a.scroll(10)
		case tcell.KeyPgUp:
			a.scroll(-10)
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q' || r == 'Q':
				return true
			case r == 'h' || r == 'H' || r == '?':
				a.showHelp = !a.showHelp
			case r == 'j':
				a.scroll(1)
			case r == 'k':
				a.scroll(-1)
			case r >= '1' && r < '1'+rune(ViewCount):
				a.switchTo(ViewType(r - '1'))
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) switchTo(view ViewType) {
	if view != a.currentView {
		a.log.Debug("switch view", "from", a.currentView, "to", view)
	}
	a.currentView = view
}

// scroll moves the current view by delta lines, clamped to its content
func (a *App) scroll(delta int) {
	last := 0
	switch a.currentView {
	case ViewTable:
		last = len(a.columns) - 1
	case ViewSummary:
		last = a.powerLog.Summary.Len() - 1
	}
	if last < 0 {
		last = 0
	}

	offset := a.offsets[a.currentView] + delta
	if offset > last {
		offset = last
	}
	if offset < 0 {
		offset = 0
	}
	a.offsets[a.currentView] = offset
}

// focused is the metric whose description goes in the help line
func (a *App) focused() string {
	offset := a.offsets[a.currentView]
	switch a.currentView {
	case ViewTable:
		if offset < len(a.columns) {
			return a.columns[offset].Key
		}
	case ViewSummary:
		if keys := a.powerLog.Summary.Keys(); offset < len(keys) {
			return keys[offset]
		}
	}
	return ""
}

// Draw repaints the whole screen
func (a *App) Draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	title := "Power Gadget"
	if a.powerLog.Source != "" {
		title = fmt.Sprintf("Power Gadget - %s (%s)", a.powerLog.Source, a.powerLog.Dialect)
	}
	startY := DrawCompactMenuBar(a.screen, width, title, a.currentView)

	offset := a.offsets[a.currentView]
	switch a.currentView {
	case ViewStatistics:
		DrawStatisticsView(a.screen, a.stats, width, height, a.showHelp, startY)
	case ViewTable:
		DrawTableView(a.screen, a.columns, a.powerLog.Table.Rows(), width, height, startY, offset)
	case ViewSummary:
		DrawSummaryView(a.screen, a.powerLog.Summary, width, height, startY, offset)
	}

	if a.showHelp {
		DrawHelpFooter(a.screen, width, height, a.focused())
	}
	DrawFooter(a.screen, width, height, a.currentView, a.showHelp)

	a.screen.Show()
}

// Loop polls events on a separate goroutine and redraws on a ticker until
// the user quits
func (a *App) Loop() {
	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case ev := <-eventChan:
			if a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}

// Run opens the terminal, shows the viewer and restores the terminal on
// exit
func Run(powerLog *models.PowerLog, stats *models.Statistics, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	defer screen.Fini()

	app, err := NewApp(screen, powerLog, stats, logger)
	if err != nil {
		return err
	}
	app.Loop()
	return nil
}
