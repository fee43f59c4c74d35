package canvas

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Icon string

const (
	IconAccessible          Icon = "accessible"
	IconPartiallyAccessible Icon = "partially-accessible"
	IconNotAccessible       Icon = "not-accessible"
	IconSearchedPlace       Icon = "searched-place"
)

type Marker struct {
	Key      string `json:"key"`
	Position LatLng `json:"position"`
	Icon     Icon   `json:"icon"`
	Alt      string `json:"alt"`
	IsBranch bool   `json:"isBranch"`
}

type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

type Viewport struct {
	Center LatLng  `json:"center"`
	Zoom   int     `json:"zoom"`
	Bounds *Bounds `json:"bounds,omitempty"`
}

// MapCanvas is the surface the marker lifecycle manager draws on. The manager
// only ever clears everything and re-adds; an incremental implementation can
// be swapped in behind this interface without touching the filter engine.
type MapCanvas interface {
	AddMarker(m Marker)
	Clear()
	Markers() []Marker
	MarkerCount() int
	FitBounds(b Bounds)
	SetView(center LatLng, zoom int)
	Viewport() Viewport
}
