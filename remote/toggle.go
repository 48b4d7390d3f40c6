package remote

// ToggleTracker turns RC-5/RC-6's raw per-frame toggle bit into a
// repeat/new-press distinction, resolving the Open Question of whether the
// decoder or the remote-control layer owns that decision (surface-raw from
// the decoder, diff here): a frame is a repeat of the previous button press
// exactly when the address is unchanged and the toggle bit is unchanged
// from the last frame seen.
type ToggleTracker struct {
	have        bool
	lastAddress uint16
	lastToggle  bool
}

// Observe records one frame's (address, toggle) pair and reports whether it
// is a repeat of the immediately preceding frame tracked by this
// ToggleTracker.
func (t *ToggleTracker) Observe(address uint16, toggle bool) (isRepeat bool) {
	isRepeat = t.have && t.lastAddress == address && t.lastToggle == toggle
	t.have = true
	t.lastAddress = address
	t.lastToggle = toggle
	return isRepeat
}

// Reset discards any tracked state, so the next Observe is never a repeat.
func (t *ToggleTracker) Reset() {
	t.have = false
}
