package services

import "time"

// idGenerator hands out strictly increasing ids derived from the wall clock in
// milliseconds. Two ids requested within the same millisecond, or after the
// clock went backwards, still differ.
type idGenerator struct {
	last int64
	now  func() time.Time
}

func (g *idGenerator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure future ids sort after id.
func (g *idGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
