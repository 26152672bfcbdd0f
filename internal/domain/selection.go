package domain

import "fmt"

// Selection is the emphasis state shared by a chart and its detail panel.
// The zero value is Idle. A Selection is a value: every transition returns a
// new Selection and leaves the receiver untouched.
type Selection struct {
	ActiveID string // Empty when Idle
}

// IdleSelection returns the state with nothing emphasized
func IdleSelection() Selection {
	return Selection{}
}

// ActiveSelection returns the state with id emphasized
func ActiveSelection(id string) Selection {
	return Selection{ActiveID: id}
}

// IsIdle reports whether nothing is emphasized
func (s Selection) IsIdle() bool {
	return s.ActiveID == ""
}

// IsActive reports whether id is the emphasized element
func (s Selection) IsActive(id string) bool {
	return id != "" && s.ActiveID == id
}

// HoverEnter emphasizes id regardless of the previous state
func (s Selection) HoverEnter(id string) Selection {
	if id == "" {
		return s
	}
	return ActiveSelection(id)
}

// HoverLeave clears the emphasis only when id is the active element.
// Leave events for any other id are stale (overlapping shapes fire them out
// of order) and are ignored.
func (s Selection) HoverLeave(id string) Selection {
	if s.IsActive(id) {
		return IdleSelection()
	}
	return s
}

// Click toggles id
func (s Selection) Click(id string) Selection {
	if id == "" {
		return s
	}
	if s.IsActive(id) {
		return IdleSelection()
	}
	return ActiveSelection(id)
}

// Select emphasizes id without toggling; clicking the active element keeps it
func (s Selection) Select(id string) Selection {
	return s.HoverEnter(id)
}

// Reset returns to Idle, used when the pointer leaves the whole chart
func (s Selection) Reset() Selection {
	return IdleSelection()
}

// SelectionEventType is the kind of UI input driving a Selection
type SelectionEventType string

const (
	SelectionEventHoverEnter SelectionEventType = "HOVER_ENTER"
	SelectionEventHoverLeave SelectionEventType = "HOVER_LEAVE"
	SelectionEventClick      SelectionEventType = "CLICK"
	SelectionEventSelect     SelectionEventType = "SELECT"
	SelectionEventReset      SelectionEventType = "RESET"
)

// SelectionEvent is one pointer event reported by the rendering layer
type SelectionEvent struct {
	Type SelectionEventType
	ID   string // Ignored for RESET
}

// Validate ensures the event can be applied
func (e SelectionEvent) Validate() error {
	switch e.Type {
	case SelectionEventReset:
		return nil
	case SelectionEventHoverEnter, SelectionEventHoverLeave, SelectionEventClick, SelectionEventSelect:
		if e.ID == "" {
			return fmt.Errorf("%w: %s requires an id", ErrInvalidSelectionEvent, e.Type)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSelectionEvent, e.Type)
	}
}

// Apply dispatches the event to its transition.
// Events that fail Validate leave the state unchanged.
func (s Selection) Apply(e SelectionEvent) Selection {
	switch e.Type {
	case SelectionEventHoverEnter:
		return s.HoverEnter(e.ID)
	case SelectionEventHoverLeave:
		return s.HoverLeave(e.ID)
	case SelectionEventClick:
		return s.Click(e.ID)
	case SelectionEventSelect:
		return s.Select(e.ID)
	case SelectionEventReset:
		return s.Reset()
	default:
		return s
	}
}
