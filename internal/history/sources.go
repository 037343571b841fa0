package history

import "fmt"

// Sources manages one or more named history Views, mirroring the
// teacher's multi-history support: a shell binds a default history
// plus optional extra ones (e.g. a separate search history), switched
// between with a dedicated widget without disturbing the others.
type Sources struct {
	views    map[string]*View
	names    []string
	selected int
}

// NewSources returns a manager with a single "default" view wrapping
// provider.
func NewSources(provider Source) *Sources {
	s := &Sources{views: make(map[string]*View)}
	s.Add("default", NewView(provider))

	return s
}

// Add registers a named view, appending it after any existing ones.
func (s *Sources) Add(name string, view *View) {
	if _, exists := s.views[name]; !exists {
		s.names = append(s.names, name)
	}

	s.views[name] = view
}

// AddFromFile registers a file-backed history under name.
func (s *Sources) AddFromFile(name, path string) error {
	file, err := NewFile(path)
	if err != nil {
		return err
	}

	s.Add(name, NewView(file))

	return nil
}

// Delete removes a named view, resetting the selection to the first
// remaining one if the deleted view was selected.
func (s *Sources) Delete(name string) {
	if _, ok := s.views[name]; !ok {
		return
	}

	current := s.Name()

	delete(s.views, name)

	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}

	if current == name {
		s.selected = 0
	}
}

// Get returns the named view, if any.
func (s *Sources) Get(name string) (*View, bool) {
	v, ok := s.views[name]
	return v, ok
}

// Current returns the currently selected view, or nil if none remain.
func (s *Sources) Current() *View {
	if len(s.names) == 0 {
		return nil
	}

	return s.views[s.names[s.selected]]
}

// Name returns the currently selected view's name.
func (s *Sources) Name() string {
	if len(s.names) == 0 {
		return ""
	}

	return s.names[s.selected]
}

// Cycle switches to the next registered history in declaration order,
// wrapping around, and returns its name.
func (s *Sources) Cycle() string {
	if len(s.names) == 0 {
		return ""
	}

	s.selected = (s.selected + 1) % len(s.names)

	return s.names[s.selected]
}

// Select switches to the named history.
func (s *Sources) Select(name string) error {
	for i, n := range s.names {
		if n == name {
			s.selected = i
			return nil
		}
	}

	return fmt.Errorf("history: no such source %q", name)
}

// Walk calls fn for every registered view in declaration order.
func (s *Sources) Walk(fn func(name string, view *View)) {
	for _, name := range s.names {
		fn(name, s.views[name])
	}
}
