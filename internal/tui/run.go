package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Run drives the form on an initialised screen until the user quits or ctx
// ends. Run finalises the screen before returning.
func Run(ctx context.Context, screen tcell.Screen, m *Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	g, gctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once the screen is finalised.
	g.Go(func() error {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		defer screen.Fini()

		Draw(screen, m)
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if m.HandleKey(ev) {
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			case u := <-m.sess.Updates():
				m.Apply(u)
			}
			Draw(screen, m)
		}
	})

	return g.Wait()
}
