package workout

import "github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"

// State is the store's single entity: the workout collection plus the
// loading/error flags the UI layer renders from.
type State struct {
	Workouts []model.Workout
	Loading  bool
	Err      string
}

// Action is the tagged union of state transitions. The reducer is the only
// place state changes; everything else dispatches.
type Action interface {
	isAction()
}

type Loaded struct {
	Workouts []model.Workout
}

type LoadError struct {
	Message string
}

type SaveError struct {
	Message string
}

type Add struct {
	Workout model.Workout
}

type Update struct {
	Workout model.Workout
}

type Delete struct {
	ID string
}

type Reset struct{}

func (Loaded) isAction()    {}
func (LoadError) isAction() {}
func (SaveError) isAction() {}
func (Add) isAction()       {}
func (Update) isAction()    {}
func (Delete) isAction()    {}
func (Reset) isAction()     {}

// reduce applies one action to the state. Pure: the input state is not
// modified, collections are copied on write.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		s.Workouts = a.Workouts
		s.Loading = false
		s.Err = ""
	case LoadError:
		s.Loading = false
		s.Err = a.Message
	case SaveError:
		// The in-memory mutation already happened and stays; only the error
		// channel is updated.
		s.Err = a.Message
	case Add:
		next := make([]model.Workout, 0, len(s.Workouts)+1)
		next = append(next, s.Workouts...)
		s.Workouts = append(next, a.Workout)
	case Update:
		next := make([]model.Workout, len(s.Workouts))
		copy(next, s.Workouts)
		for i := range next {
			if next[i].ID == a.Workout.ID {
				next[i] = a.Workout
			}
		}
		s.Workouts = next
	case Delete:
		next := make([]model.Workout, 0, len(s.Workouts))
		for _, w := range s.Workouts {
			if w.ID != a.ID {
				next = append(next, w)
			}
		}
		s.Workouts = next
	case Reset:
		s.Workouts = nil
		s.Err = ""
	}
	return s
}
