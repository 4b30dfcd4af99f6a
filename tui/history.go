package tui

// History keeps recent commands for up-arrow recall. Recall position
// is tracked as a distance back from the newest entry, so pushing a
// command always restarts recall from the end.
type History struct {
	cmds  []string
	limit int
	back  int // 0 = not recalling, n = n entries back from the newest
}

// NewHistory creates an empty history holding at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a command. Repeating the newest entry adds nothing;
// the oldest entry falls off once the limit is reached.
func (h *History) Push(cmd string) {
	if n := len(h.cmds); n > 0 && h.cmds[n-1] == cmd {
		return
	}
	h.cmds = append(h.cmds, cmd)
	if len(h.cmds) > h.limit {
		h.cmds = h.cmds[1:]
	}
	h.back = 0
}

// Prev steps one entry further into the past and returns it. Once at
// the oldest entry it stays there. Reports false only when the history
// is empty.
func (h *History) Prev() (string, bool) {
	if len(h.cmds) == 0 {
		return "", false
	}
	if h.back < len(h.cmds) {
		h.back++
	}
	return h.cmds[len(h.cmds)-h.back], true
}

// Next steps back toward the present. Reports false when recall has
// returned to fresh input.
func (h *History) Next() (string, bool) {
	if h.back == 0 {
		return "", false
	}
	h.back--
	if h.back == 0 {
		return "", false
	}
	return h.cmds[len(h.cmds)-h.back], true
}

// ResetCursor leaves recall mode.
func (h *History) ResetCursor() {
	h.back = 0
}
