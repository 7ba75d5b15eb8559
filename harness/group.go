package harness

// A Group prefixes its name onto every case registered through it, joined
// with "::". It is purely a naming convenience: it owns no cases and holds
// no state beyond the name and the target registry.
type Group struct {
	name string
	reg  *Registry
}

// Group returns a group bound to r.
func (r *Registry) Group(name string) *Group {
	return &Group{name: name, reg: r}
}

// NewGroup returns a group bound to the default registry.
func NewGroup(name string) *Group {
	return Default.Group(name)
}

// Add registers action under "{group}::{name}" and returns the group so
// registrations can be chained.
func (g *Group) Add(name string, action Action) *Group {
	g.reg.Add(g.name+"::"+name, action)
	return g
}
