package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/newsdeck/internal/app"
)

const loadTimeout = 5 * time.Second

type Service interface {
	Load(ctx context.Context) (app.Snapshot, error)
}

type SnapshotLoadedMsg struct {
	Snapshot app.Snapshot
	Duration time.Duration
}

type SnapshotErrorMsg struct {
	Err      error
	Duration time.Duration
}

// ClearStatusMsg carries the status sequence number it was scheduled for, so
// a newer status is not wiped by an older timer.
type ClearStatusMsg struct {
	Seq int
}

type URLActionSuccessMsg struct {
	Status string
	Opened bool
}

type URLActionErrorMsg struct {
	Err error
}

func LoadSnapshotCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		start := time.Now()

		snapshot, err := service.Load(ctx)
		if err != nil {
			return SnapshotErrorMsg{Err: err, Duration: time.Since(start)}
		}
		return SnapshotLoadedMsg{Snapshot: snapshot, Duration: time.Since(start)}
	}
}

func ClearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return URLActionSuccessMsg{Status: "Opened image in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return URLActionSuccessMsg{Status: "Could not open browser, image link copied to clipboard"}
			}
		}
		return URLActionErrorMsg{Err: fmt.Errorf("could not open image or copy its link")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return URLActionSuccessMsg{Status: "Image link copied to clipboard"}
			}
		}
		return URLActionErrorMsg{Err: fmt.Errorf("could not copy image link to clipboard")}
	}
}
