// Package workout holds the authoritative workout collection: a reducer over
// tagged actions wrapped in a store that loads from and persists to the
// key-value storage layer. In-memory state is the source of truth for reads;
// persistence happens on a serialized write queue (one in-flight write,
// latest snapshot wins) so a quick add-then-delete cannot leave storage on
// the older snapshot.
package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/stats"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
)

type Store struct {
	kv  storage.KV
	log *logrus.Entry

	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int

	// write queue: a single pending snapshot slot plus one worker goroutine.
	qmu        sync.Mutex
	qcond      *sync.Cond
	pending    []model.Workout
	hasPending bool
	writing    bool
	closed     bool
	workerDone chan struct{}

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewStore(kv storage.KV) *Store {
	s := &Store{
		kv:         kv,
		log:        logrus.WithField("component", "workout_store"),
		state:      State{Loading: true},
		subs:       map[int]func(State){},
		workerDone: make(chan struct{}),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	s.qcond = sync.NewCond(&s.qmu)
	go s.writeLoop()
	return s
}

// Load replaces the collection with the persisted records. An absent key is
// an empty collection; read or parse failures land in the error state and
// leave the collection empty.
func (s *Store) Load(ctx context.Context) {
	raw, found, err := s.kv.Get(ctx, storage.WorkoutsKey)
	if err != nil {
		s.log.WithError(err).Error("load workouts")
		s.dispatch(LoadError{Message: fmt.Sprintf("failed to load workouts: %v", err)})
		return
	}
	if !found {
		s.dispatch(Loaded{})
		return
	}
	var workouts []model.Workout
	if err := json.Unmarshal(raw, &workouts); err != nil {
		s.log.WithError(err).Error("parse stored workouts")
		s.dispatch(LoadError{Message: fmt.Sprintf("failed to load workouts: %v", err)})
		return
	}
	s.log.WithField("count", len(workouts)).Debug("workouts loaded")
	s.dispatch(Loaded{Workouts: workouts})
}

// Add assigns a new id and creation timestamp and appends the workout in
// insertion order.
func (s *Store) Add(in model.WorkoutInput) model.Workout {
	w := model.Workout{
		ID:        s.newID(),
		Date:      in.Date,
		Type:      in.Type,
		Duration:  in.Duration,
		Notes:     in.Notes,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	s.dispatch(Add{Workout: w})
	s.enqueuePersist()
	return w
}

// Update replaces the mutable fields of the matching record, preserving its
// id and creation timestamp. Unknown ids are a no-op.
func (s *Store) Update(id string, in model.WorkoutInput) bool {
	s.mu.RLock()
	var existing *model.Workout
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == id {
			existing = &s.state.Workouts[i]
			break
		}
	}
	if existing == nil {
		s.mu.RUnlock()
		return false
	}
	w := model.Workout{
		ID:        id,
		Date:      in.Date,
		Type:      in.Type,
		Duration:  in.Duration,
		Notes:     in.Notes,
		CreatedAt: existing.CreatedAt,
	}
	s.mu.RUnlock()

	s.dispatch(Update{Workout: w})
	s.enqueuePersist()
	return true
}

// Delete removes the matching record. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.RLock()
	found := false
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == id {
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return false
	}
	s.dispatch(Delete{ID: id})
	s.enqueuePersist()
	return true
}

// Import installs externally supplied records. With merge set, records whose
// id already exists are skipped and the rest are appended; otherwise the
// collection is replaced wholesale. Records without an id or creation
// timestamp get them assigned. Returns the number of records taken in.
func (s *Store) Import(records []model.Workout, merge bool) int {
	s.mu.RLock()
	existing := make(map[string]bool, len(s.state.Workouts))
	for _, w := range s.state.Workouts {
		existing[w.ID] = true
	}
	current := make([]model.Workout, len(s.state.Workouts))
	copy(current, s.state.Workouts)
	s.mu.RUnlock()

	next := make([]model.Workout, 0, len(records))
	if merge {
		next = append(next, current...)
	}
	seen := map[string]bool{}
	taken := 0
	for _, r := range records {
		if r.ID == "" {
			r.ID = s.newID()
		}
		if seen[r.ID] || (merge && existing[r.ID]) {
			continue
		}
		if r.CreatedAt == "" {
			r.CreatedAt = s.now().Format(time.RFC3339)
		}
		seen[r.ID] = true
		next = append(next, r)
		taken++
	}
	s.dispatch(Loaded{Workouts: next})
	s.enqueuePersist()
	return taken
}

// Reset clears the collection and purges all durable state, the theme
// preference included. Destructive and irreversible.
func (s *Store) Reset(ctx context.Context) error {
	s.Flush()
	if err := s.kv.Remove(ctx, storage.WorkoutsKey); err != nil {
		return fmt.Errorf("reset workouts: %w", err)
	}
	if err := s.kv.Remove(ctx, storage.ThemeKey); err != nil {
		return fmt.Errorf("reset theme: %w", err)
	}
	s.dispatch(Reset{})
	s.log.Warn("all data reset")
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyStateLocked()
}

// ByDate lists the records logged on one date, preserving insertion order.
func (s *Store) ByDate(date string) []model.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.FilterByDate(s.state.Workouts, date)
}

// Today lists the records logged on the current local date.
func (s *Store) Today() []model.Workout {
	return s.ByDate(dateutil.ToDateString(s.now()))
}

// Subscribe registers a change listener and returns its unsubscribe
// function. The listener receives a state copy after every transition.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Flush blocks until no persistence write is pending or in flight.
func (s *Store) Flush() {
	s.qmu.Lock()
	for s.hasPending || s.writing {
		s.qcond.Wait()
	}
	s.qmu.Unlock()
}

// Close flushes pending writes and stops the write worker. The underlying
// storage is not closed; the caller owns it.
func (s *Store) Close() {
	s.qmu.Lock()
	if s.closed {
		s.qmu.Unlock()
		return
	}
	s.closed = true
	s.qcond.Broadcast()
	s.qmu.Unlock()
	<-s.workerDone
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snapshot := s.copyStateLocked()
	listeners := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s *Store) copyStateLocked() State {
	out := s.state
	out.Workouts = make([]model.Workout, len(s.state.Workouts))
	copy(out.Workouts, s.state.Workouts)
	return out
}

// enqueuePersist places the current collection in the pending slot,
// replacing any snapshot that has not been written yet.
func (s *Store) enqueuePersist() {
	s.mu.RLock()
	snapshot := make([]model.Workout, len(s.state.Workouts))
	copy(snapshot, s.state.Workouts)
	s.mu.RUnlock()

	s.qmu.Lock()
	if !s.closed {
		s.pending = snapshot
		s.hasPending = true
		s.qcond.Broadcast()
	}
	s.qmu.Unlock()
}

func (s *Store) writeLoop() {
	defer close(s.workerDone)
	for {
		s.qmu.Lock()
		for !s.hasPending && !s.closed {
			s.qcond.Wait()
		}
		if !s.hasPending && s.closed {
			s.qmu.Unlock()
			return
		}
		snapshot := s.pending
		s.pending = nil
		s.hasPending = false
		s.writing = true
		s.qmu.Unlock()

		s.persist(snapshot)

		s.qmu.Lock()
		s.writing = false
		s.qcond.Broadcast()
		s.qmu.Unlock()
	}
}

func (s *Store) persist(workouts []model.Workout) {
	if workouts == nil {
		workouts = []model.Workout{}
	}
	raw, err := json.Marshal(workouts)
	if err != nil {
		s.log.WithError(err).Error("encode workouts")
		s.dispatch(SaveError{Message: fmt.Sprintf("failed to save workouts: %v", err)})
		return
	}
	if err := s.kv.Set(context.Background(), storage.WorkoutsKey, raw); err != nil {
		s.log.WithError(err).Error("save workouts")
		s.dispatch(SaveError{Message: fmt.Sprintf("failed to save workouts: %v", err)})
	}
}
