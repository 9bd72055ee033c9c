// Package agents maintains the ordered descriptor lists for native init
// libraries and agents. The engine records descriptors and their list
// membership; loading the native code and flipping descriptors to valid is
// the loader collaborator's job.
package agents

// State tracks whether the loader has confirmed a descriptor.
type State int

const (
	// Invalid is the initial state of every descriptor.
	Invalid State = iota
	// Valid is set only after the loader confirms a successful load.
	Valid
)

// Library describes one native library or agent registration.
type Library struct {
	Name         string
	Options      string
	AbsolutePath bool
	StaticLib    bool

	// Handle is the loaded native unit. It is owned by the loader
	// collaborator; a nil handle does not imply invalidity since statically
	// linked units may carry a zero handle.
	Handle any

	state State
}

// NewLibrary returns a descriptor in the Invalid state.
func NewLibrary(name, options string, absolutePath bool, handle any) *Library {
	return &Library{
		Name:         name,
		Options:      options,
		AbsolutePath: absolutePath,
		Handle:       handle,
	}
}

// Valid reports whether the loader confirmed this descriptor.
func (l *Library) Valid() bool { return l.state == Valid }

// SetValid marks the descriptor loaded.
func (l *Library) SetValid() { l.state = Valid }

// SetInvalid resets the descriptor to unloaded.
func (l *Library) SetInvalid() { l.state = Invalid }

// list is an order-of-entry descriptor list with tail append and
// scan-remove.
type list struct {
	items []*Library
}

func (s *list) add(l *Library) {
	s.items = append(s.items, l)
}

// remove takes l out of the list by identity, preserving order. It reports
// whether l was present.
func (s *list) remove(l *Library) bool {
	for i, cur := range s.items {
		if cur == l {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *list) empty() bool { return len(s.items) == 0 }

// Registry holds the two descriptor lists. A descriptor lives in exactly
// one list at a time.
type Registry struct {
	libraries list
	agents    list
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddInitLibrary records a legacy init library registration.
func (r *Registry) AddInitLibrary(name, options string) {
	r.libraries.add(NewLibrary(name, options, false, nil))
}

// AddInitAgent records an agent registration from the option stream.
func (r *Registry) AddInitAgent(name, options string, absolutePath bool) {
	r.agents.add(NewLibrary(name, options, absolutePath, nil))
}

// AddLoadedAgent records a late-bound agent the loader has already resolved.
func (r *Registry) AddLoadedAgent(l *Library) {
	r.agents.add(l)
}

// ConvertLibraryToAgent moves a descriptor from the library list to the
// agent list without copying it. The descriptor must be in the library
// list; anything else is a programming error.
func (r *Registry) ConvertLibraryToAgent(l *Library) {
	if !r.libraries.remove(l) {
		panic("agents: descriptor is not in the library list")
	}
	r.agents.add(l)
}

// Libraries returns the init library descriptors in registration order.
func (r *Registry) Libraries() []*Library { return r.libraries.items }

// Agents returns the agent descriptors in registration order.
func (r *Registry) Agents() []*Library { return r.agents.items }

// InitLibrariesAtStartup reports whether any init libraries are registered.
func (r *Registry) InitLibrariesAtStartup() bool { return !r.libraries.empty() }

// InitAgentsAtStartup reports whether any agents are registered.
func (r *Registry) InitAgentsAtStartup() bool { return !r.agents.empty() }
