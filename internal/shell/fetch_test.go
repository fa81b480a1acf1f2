package shell_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
	"github.com/stretchr/testify/require"
)

func TestFetchStateSuccess(t *testing.T) {
	now := time.Now()
	state := shell.NewFetchState().Begin()
	require.True(t, state.Loading)

	tree := vyos.Tree{"system": map[string]any{"host-name": "r1"}}
	state = state.Complete(tree, nil, now)
	require.False(t, state.Loading)
	require.Equal(t, shell.StatusConnected, state.Status())
	require.Equal(t, "r1", vyos.Hostname(state.Config))
	require.Equal(t, now, state.LoadedAt)
}

func TestFetchStateFailureKeepsConfig(t *testing.T) {
	previous := vyos.Tree{"system": map[string]any{"host-name": "r1"}}
	state := shell.NewFetchState().Begin().Complete(previous, nil, time.Now())

	state = state.Begin().Complete(nil, &vyos.APIError{Kind: vyos.KindHTTP, Message: "Server error: 500 Internal Server Error"}, time.Now())
	require.False(t, state.Loading)
	require.Equal(t, shell.StatusDisconnected, state.Status())
	require.Equal(t, "disconnected", state.Status().String())
	require.Equal(t, previous, state.Config)

	state = state.Begin().Complete(vyos.Tree{}, nil, time.Now())
	require.Equal(t, shell.StatusConnected, state.Status())
	require.Empty(t, state.Config)
}

func TestFetchStateOverlapping(t *testing.T) {
	first := vyos.Tree{"system": map[string]any{"host-name": "first"}}
	second := vyos.Tree{"system": map[string]any{"host-name": "second"}}

	state := shell.NewFetchState().Begin().Begin()
	require.Equal(t, 2, state.InFlight)

	// The second request lands first, the first request lands last and wins.
	state = state.Complete(second, nil, time.Now())
	state = state.Complete(first, nil, time.Now())
	require.Equal(t, "first", vyos.Hostname(state.Config))
	require.Zero(t, state.InFlight)

	state = state.Begin().Complete(nil, errors.New("boom"), time.Now())
	require.Equal(t, "first", vyos.Hostname(state.Config))
}
