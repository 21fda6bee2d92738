package entity

// DefaultHistoryFrames is three seconds of positions at 60 frames per second.
const DefaultHistoryFrames = 180

// HistoryBuffer is a fixed-size ring of past player positions.
//
// Until the ring has wrapped once, reads that reach past the first write
// return whatever the slot was initialised with (zero, or the value passed
// to Fill).
type HistoryBuffer struct {
	slots  []Vec2
	cursor int
	writes int
}

// NewHistoryBuffer creates a ring with the given capacity.
// Capacities below 1 are raised to 1.
func NewHistoryBuffer(capacity int) *HistoryBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &HistoryBuffer{slots: make([]Vec2, capacity)}
}

// Record stores p at the cursor and advances it.
func (h *HistoryBuffer) Record(p Vec2) {
	h.slots[h.cursor] = p
	h.cursor = (h.cursor + 1) % len(h.slots)
	h.writes++
}

// PositionNFramesAgo returns the slot n entries behind the cursor.
// n=1 is the most recent write; n=Cap() is the oldest retained one.
func (h *HistoryBuffer) PositionNFramesAgo(n int) Vec2 {
	c := len(h.slots)
	idx := ((h.cursor-n)%c + c) % c
	return h.slots[idx]
}

// Oldest returns the position Cap() frames ago, the soft-reset point.
func (h *HistoryBuffer) Oldest() Vec2 {
	return h.PositionNFramesAgo(len(h.slots))
}

// Fill overwrites every slot with p without moving the cursor.
func (h *HistoryBuffer) Fill(p Vec2) {
	for i := range h.slots {
		h.slots[i] = p
	}
}

// Cap returns the ring capacity.
func (h *HistoryBuffer) Cap() int {
	return len(h.slots)
}

// Len returns the number of valid entries (at most Cap()).
func (h *HistoryBuffer) Len() int {
	return min(h.writes, len(h.slots))
}

// Cursor returns the next write index.
func (h *HistoryBuffer) Cursor() int {
	return h.cursor
}
