package session

// Event is an abstract input decoded by the front end. The set is closed:
// BeginEdit, Quit, BufferChanged, Cancel and Submit.
type Event interface {
	event()
	// Name is a stable identifier used in logs and metric labels.
	Name() string
}

// BeginEdit switches from Normal to Editing with an empty buffer.
type BeginEdit struct{}

// Quit ends the session from Normal mode.
type Quit struct{}

// BufferChanged replaces the edit buffer with Text and places the cursor at
// Cursor, counted in runes.
type BufferChanged struct {
	Text   string
	Cursor int
}

// Cancel discards the buffer and returns to Normal mode.
type Cancel struct{}

// Submit offers the buffer as a guess.
type Submit struct{}

func (BeginEdit) event()     {}
func (Quit) event()          {}
func (BufferChanged) event() {}
func (Cancel) event()        {}
func (Submit) event()        {}

func (BeginEdit) Name() string     { return "begin_edit" }
func (Quit) Name() string          { return "quit" }
func (BufferChanged) Name() string { return "buffer_changed" }
func (Cancel) Name() string        { return "cancel" }
func (Submit) Name() string        { return "submit" }
