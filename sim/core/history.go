package core

import "github.com/automoto/scroller/shared/intent"

const historySize = 64

// FrameRecord stores the input of a step alongside its outcome.
type FrameRecord struct {
	Input intent.Intent
	State RenderState
}

// History is a ring buffer of the most recent frames, used by the debug
// overlay and by replays. Frame numbers start at 1, so a zero record is empty.
type History struct {
	records [historySize]FrameRecord
	latest  uint64
}

// Store saves a step's input and result.
func (h *History) Store(in intent.Intent, state RenderState) {
	h.records[state.Frame%historySize] = FrameRecord{Input: in, State: state}
	if state.Frame > h.latest {
		h.latest = state.Frame
	}
}

// Get retrieves a stored record by frame number. Returns false if not found
// or if the slot has been overwritten.
func (h *History) Get(frame uint64) (FrameRecord, bool) {
	if frame == 0 {
		return FrameRecord{}, false
	}
	rec := h.records[frame%historySize]
	if rec.State.Frame != frame {
		return FrameRecord{}, false
	}
	return rec, true
}

// Latest returns the newest stored frame number, or 0 if empty.
func (h *History) Latest() uint64 {
	return h.latest
}

// Since returns the records after frame, oldest first, limited to what the
// buffer still holds.
func (h *History) Since(frame uint64) []FrameRecord {
	var out []FrameRecord
	first := frame + 1
	if h.latest >= historySize && first <= h.latest-historySize {
		first = h.latest - historySize + 1
	}
	for f := first; f <= h.latest; f++ {
		if rec, ok := h.Get(f); ok {
			out = append(out, rec)
		}
	}
	return out
}

// CountContacts counts contacts against the given side among stored frames.
func (h *History) CountContacts(side Side) int {
	n := 0
	for _, rec := range h.records {
		for _, c := range rec.State.Contacts {
			if c.Side == side {
				n++
			}
		}
	}
	return n
}
