package main

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	mu   sync.Mutex
	msgs []tea.Msg
	quit chan struct{}
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.msgs = append(f.msgs, msg)
}

func (f *fakeUI) Run() error {
	<-f.quit

	return nil
}

func (f *fakeUI) received() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]tea.Msg(nil), f.msgs...)
}

func TestAppForwardsConfig(t *testing.T) {
	updates := make(chan config.Config)
	fake := &fakeUI{quit: make(chan struct{})}

	app := NewApp(config.Config{FPS: 60}, updates)
	app.ui = fake

	done := make(chan error, 1)
	go func() { done <- app.Start(context.Background()) }()

	reloaded := config.Config{FPS: 30, MarkdownStyle: "dark"}
	updates <- reloaded

	require.Eventually(t, func() bool { return len(fake.received()) == 2 }, time.Second, time.Millisecond)
	require.Equal(t, reloaded, fake.received()[0])
	require.Equal(t, command.StatusMsg{Message: "Config reloaded"}, fake.received()[1])

	close(fake.quit)
	require.NoError(t, <-done)
	require.Equal(t, reloaded, app.config)
}

func TestAppStopsWithContext(t *testing.T) {
	fake := &fakeUI{quit: make(chan struct{})}
	app := NewApp(config.Config{}, make(chan config.Config))
	app.ui = fake

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Start(ctx) }()

	cancel()
	// The forwarder returns on cancel, the ui keeps running until it quits.
	close(fake.quit)

	require.NoError(t, <-done)
	require.Empty(t, fake.received())
}
