package loop

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs independent loops together.
type Group struct {
	loops []*Loop
}

func NewGroup(loops ...*Loop) *Group {
	return &Group{loops: loops}
}

func (g *Group) Add(lp *Loop) { g.loops = append(g.loops, lp) }

// Run starts every loop on its own goroutine and waits for all of them.
// Cancelling ctx or any loop failing stops the rest. A group whose loops
// were all stopped through Stop returns nil.
func (g *Group) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, lp := range g.loops {
		eg.Go(func() error {
			return lp.Run(ctx)
		})
	}
	return eg.Wait()
}

// Stop stops every loop in the group.
func (g *Group) Stop() {
	for _, lp := range g.loops {
		lp.Stop()
	}
}

func (g *Group) Pause() {
	for _, lp := range g.loops {
		lp.Pause()
	}
}

func (g *Group) Resume() {
	for _, lp := range g.loops {
		lp.Resume()
	}
}
