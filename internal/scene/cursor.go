package scene

// instructionCursor tracks which instruction goes out on the next tick.
// Index 0 is sent before the ticker starts, so the cursor begins at 1.
type instructionCursor struct {
	cursor int
	total  int
	done   bool
}

func newInstructionCursor(total int) *instructionCursor {
	return &instructionCursor{
		cursor: 1,
		total:  total,
		done:   total <= 1,
	}
}

// Advance returns the index to send on this tick and whether it is the last one
func (c *instructionCursor) Advance() (int, bool) {
	if c.done {
		return -1, true
	}

	index := c.cursor
	c.cursor++
	if c.cursor >= c.total {
		c.done = true
	}
	return index, c.done
}

// Done reports whether every instruction has been handed out
func (c *instructionCursor) Done() bool {
	return c.done
}
