// Package quest tracks quest progress: prerequisites, ordered
// objectives advanced by world events, and one-shot reward payout.
package quest

import (
	"fmt"
	"sort"

	"github.com/nathoo/shmoopland/types"
)

// Completion records a quest finishing, with its reward bundle.
type Completion struct {
	ID      string
	Title   string
	Rewards types.Reward
}

// Log owns the quest lifecycle for one session: definitions are
// read-only content, active quests are mutable copies, completed quest
// IDs form a set that is never re-entered.
type Log struct {
	defs      map[string]types.Quest
	active    map[string]*types.Quest
	completed map[string]bool
}

// NewLog creates a quest log over the given definitions.
func NewLog(defs map[string]types.Quest) *Log {
	if defs == nil {
		defs = map[string]types.Quest{}
	}
	return &Log{
		defs:      defs,
		active:    map[string]*types.Quest{},
		completed: map[string]bool{},
	}
}

// Available returns the sorted IDs of quests whose prerequisites are
// all completed and which are neither active nor completed.
func (l *Log) Available() []string {
	var ids []string
	for id, def := range l.defs {
		if l.active[id] != nil || l.completed[id] {
			continue
		}
		ok := true
		for _, pre := range def.Prerequisites {
			if !l.completed[pre] {
				ok = false
				break
			}
		}
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Start activates a quest. Unknown, already-active, already-completed,
// and prerequisite-gated quests are rejected.
func (l *Log) Start(id string) (*types.Quest, error) {
	def, ok := l.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown quest %q", id)
	}
	if l.active[id] != nil {
		return nil, fmt.Errorf("quest %q already active", id)
	}
	if l.completed[id] {
		return nil, fmt.Errorf("quest %q already completed", id)
	}
	for _, pre := range def.Prerequisites {
		if !l.completed[pre] {
			return nil, fmt.Errorf("quest %q requires %q first", id, pre)
		}
	}

	// Copy the definition so objective progress never mutates content.
	q := def
	q.ID = id
	q.Objectives = append([]types.Objective{}, def.Objectives...)
	l.active[id] = &q
	return &q, nil
}

// Advance marks matching objectives completed for a world event and
// returns the quests that finished as a result. A quest completes
// exactly once: it moves to the completed set and yields its rewards
// here and never again.
func (l *Log) Advance(eventType, target string) []Completion {
	var done []Completion

	ids := make([]string, 0, len(l.active))
	for id := range l.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		q := l.active[id]
		updated := false
		for i := range q.Objectives {
			obj := &q.Objectives[i]
			if !obj.Completed && obj.Type == eventType && obj.Target == target {
				obj.Completed = true
				updated = true
			}
		}
		if !updated {
			continue
		}
		if allCompleted(q.Objectives) {
			q.Completed = true
			l.completed[id] = true
			delete(l.active, id)
			done = append(done, Completion{ID: id, Title: q.Title, Rewards: q.Rewards})
		}
	}
	return done
}

// Status returns the active quest for an ID, if any.
func (l *Log) Status(id string) (*types.Quest, bool) {
	q, ok := l.active[id]
	return q, ok
}

// Active returns the sorted IDs of quests in progress.
func (l *Log) Active() []string {
	ids := make([]string, 0, len(l.active))
	for id := range l.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsCompleted reports whether a quest has finished.
func (l *Log) IsCompleted(id string) bool {
	return l.completed[id]
}

// Completed returns the sorted IDs of finished quests.
func (l *Log) Completed() []string {
	ids := make([]string, 0, len(l.completed))
	for id := range l.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Progress is the serializable quest state for save files. Active
// quests are keyed by ID because the Quest ID field itself is not
// serialized.
type Progress struct {
	Active    map[string]types.Quest `json:"active"`
	Completed []string               `json:"completed"`
}

// Progress snapshots active quests and the completed set.
func (l *Log) Progress() Progress {
	p := Progress{
		Active:    map[string]types.Quest{},
		Completed: l.Completed(),
	}
	for _, id := range l.Active() {
		q := *l.active[id]
		q.Objectives = append([]types.Objective{}, l.active[id].Objectives...)
		p.Active[id] = q
	}
	return p
}

// RestoreProgress replaces the log's state with a saved snapshot.
func (l *Log) RestoreProgress(p Progress) {
	l.active = map[string]*types.Quest{}
	l.completed = map[string]bool{}
	for _, id := range p.Completed {
		l.completed[id] = true
	}
	for id, q := range p.Active {
		q.ID = id
		copied := q
		copied.Objectives = append([]types.Objective{}, q.Objectives...)
		l.active[id] = &copied
	}
}

func allCompleted(objectives []types.Objective) bool {
	for _, obj := range objectives {
		if !obj.Completed {
			return false
		}
	}
	return true
}
