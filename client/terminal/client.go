package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/gdamore/tcell/v2"
)

// Client is a terminal shell around a game manager. It turns key events into
// commands and redraws the latest snapshot on every frame.
type Client struct {
	screen        tcell.Screen
	commandQueue  queue.Queue[types.Command]
	stateStore    state.SnapshotStore
	frameInterval time.Duration
	logger        *log.Logger
}

type NewClientOptions struct {
	// Screen defaults to the terminal screen.
	Screen        tcell.Screen
	CommandQueue  queue.Queue[types.Command]
	StateStore    state.SnapshotStore
	FrameInterval time.Duration
	Logger        *log.Logger
}

// NewClient initializes the screen. Close must be called to restore the terminal.
func NewClient(opts NewClientOptions) (*Client, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %v", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %v", err)
	}
	screen.HideCursor()

	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = constants.FrameInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger().Named("terminal")
	}

	return &Client{
		screen:        screen,
		commandQueue:  opts.CommandQueue,
		stateStore:    opts.StateStore,
		frameInterval: frameInterval,
		logger:        logger,
	}, nil
}

// Run polls key events and redraws until the context is done.
func (c *Client) Run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(c.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handleEvent(ev)
		case <-ticker.C:
			Draw(c.screen, c.stateStore.Get())
		}
	}
}

func (c *Client) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := CommandForKey(ev.Key(), ev.Rune())
		if !ok {
			return
		}
		if err := c.commandQueue.Enqueue(cmd); err != nil {
			c.logger.Warn("Dropped command %s: %v", cmd, err)
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
}

// Close restores the terminal.
func (c *Client) Close() {
	c.screen.Fini()
}
