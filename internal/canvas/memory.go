package canvas

import "sync"

// Default view over Egypt, where the directory's places live.
var defaultCenter = LatLng{Lat: 28.1099, Lng: 30.7503}

const defaultZoom = 7

// InMemoryCanvas keeps the marker registry in insertion order plus a key index
// so renders stay deterministic. Mutations only ever come from the marker
// manager on the handling goroutine, but the lock keeps concurrent reads safe.
type InMemoryCanvas struct {
	mu       sync.RWMutex
	markers  []Marker
	index    map[string]int
	viewport Viewport
}

func NewInMemoryCanvas() *InMemoryCanvas {
	return &InMemoryCanvas{
		index:    make(map[string]int),
		viewport: Viewport{Center: defaultCenter, Zoom: defaultZoom},
	}
}

func (c *InMemoryCanvas) AddMarker(m Marker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if at, ok := c.index[m.Key]; ok {
		c.markers[at] = m
		return
	}
	c.index[m.Key] = len(c.markers)
	c.markers = append(c.markers, m)
}

func (c *InMemoryCanvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = nil
	c.index = make(map[string]int)
}

func (c *InMemoryCanvas) Markers() []Marker {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Marker, len(c.markers))
	copy(out, c.markers)
	return out
}

func (c *InMemoryCanvas) MarkerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.markers)
}

func (c *InMemoryCanvas) FitBounds(b Bounds) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bounds := b
	c.viewport.Bounds = &bounds
	c.viewport.Center = LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

func (c *InMemoryCanvas) SetView(center LatLng, zoom int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = Viewport{Center: center, Zoom: zoom}
}

func (c *InMemoryCanvas) Viewport() Viewport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewport
}
