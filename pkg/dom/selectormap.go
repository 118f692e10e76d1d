package dom

// SelectorMap is an ordered mapping from integer element id to Element.
// Iteration order is insertion order, which is also the draw order: later
// elements draw on top of earlier ones.
type SelectorMap struct {
	ids      []int
	elements map[int]*Element
}

func NewSelectorMap() *SelectorMap {
	return &SelectorMap{elements: make(map[int]*Element)}
}

// Set adds or replaces the element for id. A replaced id keeps its
// original position in the draw order.
func (m *SelectorMap) Set(id int, el *Element) {
	if _, ok := m.elements[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.elements[id] = el
}

func (m *SelectorMap) Get(id int) (*Element, bool) {
	el, ok := m.elements[id]
	return el, ok
}

func (m *SelectorMap) Len() int {
	return len(m.ids)
}

// Each calls fn for every (id, element) pair in insertion order.
func (m *SelectorMap) Each(fn func(id int, el *Element)) {
	for _, id := range m.ids {
		fn(id, m.elements[id])
	}
}
