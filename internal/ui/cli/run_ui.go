package cli

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// runUI drives the watch loop behind a terminal UI. The runtime stays on
// this goroutine; the program only ever receives detached snapshots.
func runUI(ctx context.Context, rt *runtime, cfgPath string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(initialModel(rt.cfg.SourcePath()), tea.WithAltScreen(), tea.WithContext(ctx))

	rt.onSnapshot = func(s uiSnapshot) {
		p.Send(updateMsg{snapshot: s})
	}
	rt.onFailure = func(err error) {
		p.Send(failureMsg{err: err})
	}

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		// Quitting the UI ends the watch loop.
		cancel()
		done <- err
	}()

	rt.report(ctx)
	code := rt.watch(ctx, cfgPath)
	p.Quit()

	if err := <-done; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("failed to run UI", "error", err)
		return 1
	}
	return code
}
