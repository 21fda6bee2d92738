package entity

// DefaultCoinValue is the number of points a coin is worth
const DefaultCoinValue = 10

// Coin is a one-shot pickup.
type Coin struct {
	Pos    Vec2
	W, H   float64
	Value  int
	Active bool
}

// NewCoin creates an active coin
func NewCoin(pos Vec2, w, h float64, value int) Coin {
	return Coin{Pos: pos, W: w, H: h, Value: value, Active: true}
}

// Box returns the coin's bounding box
func (c *Coin) Box() AABB {
	return AABB{X: c.Pos.X, Y: c.Pos.Y, W: c.W, H: c.H}
}

// Collect deactivates the coin and returns its value.
// An inactive coin is worth nothing.
func (c *Coin) Collect() int {
	if !c.Active {
		return 0
	}
	c.Active = false
	return c.Value
}

// CoinRoster is a fixed-capacity slot array of coins.
type CoinRoster struct {
	slots []Coin
}

// NewCoinRoster creates a roster with capacity inactive slots
func NewCoinRoster(capacity int) *CoinRoster {
	return &CoinRoster{slots: make([]Coin, capacity)}
}

// Spawn places c in the first inactive slot, or returns false if full.
func (r *CoinRoster) Spawn(c Coin) (int, bool) {
	for i := range r.slots {
		if !r.slots[i].Active {
			c.Active = true
			r.slots[i] = c
			return i, true
		}
	}
	return -1, false
}

// At returns the slot at index i
func (r *CoinRoster) At(i int) *Coin {
	return &r.slots[i]
}

// Cap returns the number of slots
func (r *CoinRoster) Cap() int {
	return len(r.slots)
}

// ActiveCount returns the number of coins still in the level
func (r *CoinRoster) ActiveCount() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].Active {
			n++
		}
	}
	return n
}
