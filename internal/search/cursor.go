package search

// Cursor tracks the active position within a match list. Navigation wraps
// circularly; when the match list changed underneath the cursor and the
// position is out of range, it resets to the first match in the direction
// of travel instead of erroring.
type Cursor struct {
	pos int
}

// NewCursor returns an unset cursor.
func NewCursor() *Cursor {
	return &Cursor{pos: -1}
}

// Pos returns the current position within the match list, or -1 when unset.
func (c *Cursor) Pos() int { return c.pos }

// Reset clears the cursor, e.g. when the query changes.
func (c *Cursor) Reset() { c.pos = -1 }

// Next advances to the next of matchCount matches, wrapping to the first.
// It reports false when there are no matches.
func (c *Cursor) Next(matchCount int) (int, bool) {
	if matchCount <= 0 {
		c.pos = -1
		return 0, false
	}
	if c.pos < 0 || c.pos >= matchCount {
		c.pos = 0
		return c.pos, true
	}
	c.pos = (c.pos + 1) % matchCount
	return c.pos, true
}

// Prev steps to the previous match, wrapping to the last.
func (c *Cursor) Prev(matchCount int) (int, bool) {
	if matchCount <= 0 {
		c.pos = -1
		return 0, false
	}
	if c.pos < 0 || c.pos >= matchCount {
		c.pos = matchCount - 1
		return c.pos, true
	}
	c.pos = (c.pos - 1 + matchCount) % matchCount
	return c.pos, true
}
