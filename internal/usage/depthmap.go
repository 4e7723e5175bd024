package usage

// DepthMap is an insertion-ordered mapping from fragment name to spread
// depth. Iteration order is discovery order and determines the order of the
// planner's external-fragment output.
type DepthMap struct {
	names  []string
	depths map[string]int
}

// NewDepthMap returns an empty depth map.
func NewDepthMap() *DepthMap {
	return &DepthMap{depths: make(map[string]int)}
}

// Set records depth for name. A name keeps its first-discovery position;
// setting it again only updates the depth.
func (m *DepthMap) Set(name string, depth int) {
	if _, ok := m.depths[name]; !ok {
		m.names = append(m.names, name)
	}

	m.depths[name] = depth
}

// Depth returns the recorded depth for name.
func (m *DepthMap) Depth(name string) (int, bool) {
	d, ok := m.depths[name]
	return d, ok
}

// Names returns the recorded names in discovery order.
func (m *DepthMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Len returns the number of recorded names.
func (m *DepthMap) Len() int {
	return len(m.names)
}
