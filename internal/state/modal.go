package state

import "github.com/five82/ptable/internal/catalog"

// Modal is the detail overlay. There is only ever one; Open replaces its content.
type Modal struct {
	Open   bool
	Active *catalog.Element

	// BackgroundLocked suspends grid movement behind the overlay.
	BackgroundLocked bool
}

// Element returns the element on display, if any.
func (m Modal) Element() (catalog.Element, bool) {
	if !m.Open || m.Active == nil {
		return catalog.Element{}, false
	}
	return *m.Active, true
}

func (m *Modal) show(el catalog.Element) {
	if m.Active == nil {
		m.Active = new(catalog.Element)
	}
	*m.Active = el
	m.Open = true
	m.BackgroundLocked = true
}

func (m *Modal) hide() {
	m.Open = false
	m.BackgroundLocked = false
}
