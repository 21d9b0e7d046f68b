package subtask

import "task-calendar/internal/model"

// State is a snapshot of the subtask collection and the next id to assign.
// The functions in this package never mutate a State in place; they return a new one.
type State struct {
	Subtasks []model.Subtask `json:"subtasks"`
	Counter  int             `json:"counter"`
}

// NewState returns an empty collection whose first id will be 1.
func NewState() State {
	return State{Subtasks: []model.Subtask{}, Counter: 1}
}

// NextID hands out the current counter value and returns the advanced state.
func (s State) NextID() (int, State) {
	if s.Counter < 1 {
		s.Counter = 1
	}
	id := s.Counter
	s.Counter++
	return id, s
}

// Find returns the subtask with the given id.
func (s State) Find(id int) (model.Subtask, bool) {
	for _, t := range s.Subtasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Subtask{}, false
}

// Append returns a state holding a fresh slice with tasks added at the end.
func (s State) Append(tasks ...model.Subtask) State {
	out := make([]model.Subtask, 0, len(s.Subtasks)+len(tasks))
	out = append(out, s.Subtasks...)
	out = append(out, tasks...)
	s.Subtasks = out
	return s
}

// Normalize repairs a loaded state: a nil collection becomes empty and the
// counter is raised above every stored id so ids are never reused.
func Normalize(s State) State {
	if s.Subtasks == nil {
		s.Subtasks = []model.Subtask{}
	}
	if s.Counter < 1 {
		s.Counter = 1
	}
	for _, t := range s.Subtasks {
		if t.ID >= s.Counter {
			s.Counter = t.ID + 1
		}
	}
	return s
}

func (s State) filter(keep func(model.Subtask) bool) State {
	out := make([]model.Subtask, 0, len(s.Subtasks))
	for _, t := range s.Subtasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	s.Subtasks = out
	return s
}
