// Package focus cycles keyboard focus through the controls of whatever
// container is currently visible.
package focus

// Scope reports the focusable controls of a visible container, in tab order.
type Scope interface {
	Focusable() []string
}

// Controls is a fixed Scope.
type Controls []string

func (c Controls) Focusable() []string { return c }

// Trap holds focus inside a Scope. Moving past either end wraps around.
type Trap struct {
	controls []string
	index    int
}

func NewTrap(scope Scope) Trap {
	var controls []string
	if scope != nil {
		controls = append(controls, scope.Focusable()...)
	}
	return Trap{controls: controls}
}

func (t Trap) Next() Trap {
	if len(t.controls) == 0 {
		return t
	}
	t.index = (t.index + 1) % len(t.controls)
	return t
}

func (t Trap) Prev() Trap {
	if len(t.controls) == 0 {
		return t
	}
	t.index = (t.index - 1 + len(t.controls)) % len(t.controls)
	return t
}

// Focus moves to the named control; unknown names leave focus where it is.
func (t Trap) Focus(name string) Trap {
	for i, c := range t.controls {
		if c == name {
			t.index = i
			return t
		}
	}
	return t
}

// Current is the focused control, or "" for an empty scope.
func (t Trap) Current() string {
	if len(t.controls) == 0 {
		return ""
	}
	return t.controls[t.index]
}

func (t Trap) Is(name string) bool {
	return name != "" && t.Current() == name
}

func (t Trap) Len() int {
	return len(t.controls)
}
