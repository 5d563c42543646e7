package lending

// DayCounter is the session's day count. Nothing in the contract logic reads it.
type DayCounter struct {
	current int
}

// Advance moves the counter forward by one day and returns the new value.
func (d *DayCounter) Advance() int {
	d.current++
	return d.current
}

func (d *DayCounter) Current() int { return d.current }

// Set overrides the counter, e.g. to resume at a configured start day.
func (d *DayCounter) Set(day int) { d.current = day }
