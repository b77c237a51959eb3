package render

// PresetCursor indexes the preset table and wraps at its length.
type PresetCursor struct {
	index, n int
}

func NewPresetCursor(start, n int) PresetCursor {
	if n <= 0 {
		return PresetCursor{}
	}
	return PresetCursor{index: ((start % n) + n) % n, n: n}
}

func (c PresetCursor) Index() int { return c.index }

// Advance moves to the next preset and returns its index.
func (c *PresetCursor) Advance() int {
	if c.n > 0 {
		c.index = (c.index + 1) % c.n
	}
	return c.index
}

// NameTimer gates the preset name label. Reset starts a countdown; the
// label hides once, when the countdown crosses zero.
type NameTimer struct {
	remaining float64
	visible   bool
}

func (t *NameTimer) Reset(seconds float64) {
	t.remaining = seconds
	t.visible = seconds > 0
}

// Tick consumes dt seconds and reports whether the label was hidden by
// this call.
func (t *NameTimer) Tick(dt float64) bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.visible = false
		return true
	}
	return false
}

func (t NameTimer) Visible() bool      { return t.visible }
func (t NameTimer) Remaining() float64 { return t.remaining }
