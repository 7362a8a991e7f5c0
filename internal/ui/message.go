package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/phx/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgProgressUpdate MsgKind = iota
	MsgLookupComplete
)

type lookupComplete struct {
	result *tasks.LookupResult
	err    error
}

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update tasks.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// lookupCompleteMsg is the constructor for [MsgLookupComplete]
func lookupCompleteMsg(result *tasks.LookupResult, err error) Msg {
	return Msg{kind: MsgLookupComplete, data: lookupComplete{result, err}}
}
