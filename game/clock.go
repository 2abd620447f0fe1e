package game

// roundClock is the countdown for one drawing turn. It only holds the
// counter; the session actor drives it from its one-second tick and routes
// the broadcast/expiry effects.
type roundClock struct {
	timeLeft int
	running  bool
}

// arm (re)starts the countdown. Any previous countdown is replaced, so at
// most one is outstanding.
func (c *roundClock) arm(seconds int) {
	c.timeLeft = seconds
	c.running = true
}

// cancel stops the countdown without firing expiry.
func (c *roundClock) cancel() {
	c.running = false
	c.timeLeft = 0
}

func (c *roundClock) remaining() int {
	return c.timeLeft
}

// tick advances one step: the returned remaining value is broadcast first,
// then either expiry fires (exactly once) or the counter decrements. The
// clock never goes negative.
func (c *roundClock) tick() (remaining int, expired bool) {
	if !c.running {
		return 0, false
	}
	remaining = c.timeLeft
	if c.timeLeft == 0 {
		c.running = false
		return remaining, true
	}
	c.timeLeft--
	return remaining, false
}
