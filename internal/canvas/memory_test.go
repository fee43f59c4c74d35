package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMarkerReplacesByKey(t *testing.T) {
	cv := NewInMemoryCanvas()

	cv.AddMarker(Marker{Key: "1", Icon: IconNotAccessible})
	cv.AddMarker(Marker{Key: "2", Icon: IconAccessible})
	cv.AddMarker(Marker{Key: "1", Icon: IconAccessible})

	require.Equal(t, 2, cv.MarkerCount())
	markers := cv.Markers()
	assert.Equal(t, "1", markers[0].Key)
	assert.Equal(t, IconAccessible, markers[0].Icon)
	assert.Equal(t, "2", markers[1].Key)
}

func TestClearEmptiesRegistry(t *testing.T) {
	cv := NewInMemoryCanvas()
	cv.AddMarker(Marker{Key: "1"})
	cv.Clear()

	assert.Zero(t, cv.MarkerCount())
	cv.AddMarker(Marker{Key: "1"})
	assert.Equal(t, 1, cv.MarkerCount())
}

func TestFitBoundsCentersViewport(t *testing.T) {
	cv := NewInMemoryCanvas()

	cv.FitBounds(Bounds{
		SouthWest: LatLng{Lat: 26, Lng: 29},
		NorthEast: LatLng{Lat: 30, Lng: 31},
	})

	vp := cv.Viewport()
	require.NotNil(t, vp.Bounds)
	assert.InDelta(t, 28, vp.Center.Lat, 1e-9)
	assert.InDelta(t, 30, vp.Center.Lng, 1e-9)
}

func TestSetViewResetsBounds(t *testing.T) {
	cv := NewInMemoryCanvas()
	cv.FitBounds(Bounds{SouthWest: LatLng{Lat: 26, Lng: 29}, NorthEast: LatLng{Lat: 30, Lng: 31}})

	cv.SetView(LatLng{Lat: 30.05, Lng: 31.25}, 13)

	vp := cv.Viewport()
	assert.Nil(t, vp.Bounds)
	assert.Equal(t, 13, vp.Zoom)
	assert.InDelta(t, 30.05, vp.Center.Lat, 1e-9)
}

func TestDefaultViewport(t *testing.T) {
	vp := NewInMemoryCanvas().Viewport()
	assert.Equal(t, 7, vp.Zoom)
	assert.Nil(t, vp.Bounds)
	assert.InDelta(t, 28.1099, vp.Center.Lat, 1e-6)
	assert.InDelta(t, 30.7503, vp.Center.Lng, 1e-6)
}
