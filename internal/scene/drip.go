package scene

import "context"

// Drip is a running instruction sequence of one user
type Drip struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func newDrip(cancel context.CancelFunc) *Drip {
	return &Drip{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// finishedDrip is returned when the whole sequence was sent without a ticker
func finishedDrip() *Drip {
	d := newDrip(func() {})
	close(d.done)
	return d
}

// Stop cancels the drip. Instructions not yet sent are dropped.
func (d *Drip) Stop() {
	d.cancel()
}

// Done is closed once the drip has stopped and released its ticker
func (d *Drip) Done() <-chan struct{} {
	return d.done
}
