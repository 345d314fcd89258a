package outline

// Cursor is a selection index into the current row projection. It does not
// follow task identity: after the projection changes it is clamped, not
// re-resolved.
type Cursor struct {
	i int
}

func (c Cursor) Index() int { return c.i }

func (c *Cursor) Up() {
	if c.i > 0 {
		c.i--
	}
}

// Down moves towards n-1 and is a no-op on an empty projection.
func (c *Cursor) Down(n int) {
	if c.i+1 < n {
		c.i++
	}
}

// Clamp pulls the cursor back into [0, n-1] (0 when n is 0).
func (c *Cursor) Clamp(n int) {
	if c.i >= n {
		c.i = n - 1
	}
	if c.i < 0 {
		c.i = 0
	}
}

// Set places the cursor at i, clamped to n rows.
func (c *Cursor) Set(i, n int) {
	c.i = i
	c.Clamp(n)
}

// Current returns the selected row, or false if rows is empty.
func (c Cursor) Current(rows []Row) (Row, bool) {
	if len(rows) == 0 {
		return Row{}, false
	}
	i := c.i
	if i >= len(rows) {
		i = len(rows) - 1
	}
	if i < 0 {
		i = 0
	}
	return rows[i], true
}
