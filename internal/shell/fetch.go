package shell

import (
	"time"

	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// ConnectionStatus is derived from the outcome of the last completed fetch.
type ConnectionStatus int

const (
	StatusConnected ConnectionStatus = iota
	StatusDisconnected
)

func (s ConnectionStatus) String() string {
	if s == StatusDisconnected {
		return "disconnected"
	}

	return "connected"
}

// FetchState tracks the configuration tree and the progress of fetching it.
type FetchState struct {
	Loading  bool
	Config   vyos.Tree
	Err      error
	LoadedAt time.Time
	// InFlight counts started fetches that have not completed yet. Completions are applied in
	// arrival order regardless of when they started.
	InFlight int
}

func NewFetchState() FetchState {
	return FetchState{Config: vyos.Tree{}}
}

// Begin marks a fetch as started.
func (s FetchState) Begin() FetchState {
	s.Loading = true
	s.InFlight++

	return s
}

// Complete applies a fetch result. Loading is cleared on every outcome. A failure keeps the
// previously loaded tree, a success replaces it wholesale.
func (s FetchState) Complete(tree vyos.Tree, err error, now time.Time) FetchState {
	s.Loading = false
	if s.InFlight > 0 {
		s.InFlight--
	}

	if err != nil {
		s.Err = err

		return s
	}

	if tree == nil {
		tree = vyos.Tree{}
	}

	s.Err = nil
	s.Config = tree
	s.LoadedAt = now

	return s
}

func (s FetchState) Status() ConnectionStatus {
	if s.Err != nil {
		return StatusDisconnected
	}

	return StatusConnected
}
