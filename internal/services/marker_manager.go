package services

import (
	"fmt"
	"log"

	"github.com/golang/geo/s2"

	"trustmap/internal/canvas"
	"trustmap/internal/models/api_models"
)

// MarkerLifecycleManagerInterface reconciles a visible set against a map
// canvas. The strategy is destroy-all/recreate-all on every render; the
// interface exists so an incremental-diff implementation can replace it
// without touching the filter engine.
type MarkerLifecycleManagerInterface interface {
	Render(cv canvas.MapCanvas, items []api_models.CombinedItem) int
}

type markerManager struct{}

func NewMarkerLifecycleManager() MarkerLifecycleManagerInterface {
	return markerManager{}
}

// Render clears the canvas and re-creates one marker per visible item. Items
// with missing or out-of-range coordinates are skipped with a log line, never
// an error. When anything rendered, the viewport is fit to the bounding box
// of all markers; that happens on every render, unconditionally.
func (markerManager) Render(cv canvas.MapCanvas, items []api_models.CombinedItem) int {
	cv.Clear()

	rendered := 0
	for _, item := range items {
		marker, ok := buildMarker(item)
		if !ok {
			continue
		}
		cv.AddMarker(marker)
		rendered++
	}

	if rendered > 0 {
		cv.FitBounds(boundsOf(cv.Markers()))
	}
	return rendered
}

func buildMarker(item api_models.CombinedItem) (canvas.Marker, bool) {
	var lat, lng float64
	var icon canvas.Icon
	var alt string

	switch {
	case item.Branch != nil:
		b := item.Branch
		if !b.HasCoordinates() {
			log.Printf("Invalid coordinates for item %s: missing", item.Key())
			return canvas.Marker{}, false
		}
		lat = b.Place.Latitude.Value()
		lng = b.Place.Longitude.Value()
		// Re-derived from the feature count rather than trusting the stored
		// tier, in case the record went stale between loads.
		tier := api_models.ClassifyFeatures(b.FeatureCount())
		icon = iconForTier(tier)
		alt = fmt.Sprintf("%s - %s", item.DisplayName(), tier)
	case item.SearchedPlace != nil:
		lat = item.SearchedPlace.Lat
		lng = item.SearchedPlace.Lon
		icon = canvas.IconSearchedPlace
		alt = fmt.Sprintf("%s - searched place", item.DisplayName())
	default:
		return canvas.Marker{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		log.Printf("Invalid coordinates for item %s: lat=%v lng=%v", item.Key(), lat, lng)
		return canvas.Marker{}, false
	}

	return canvas.Marker{
		Key:      item.Key(),
		Position: canvas.LatLng{Lat: lat, Lng: lng},
		Icon:     icon,
		Alt:      alt,
		IsBranch: item.IsBranch(),
	}, true
}

func iconForTier(tier string) canvas.Icon {
	switch tier {
	case api_models.LevelAccessible:
		return canvas.IconAccessible
	case api_models.LevelPartiallyAccessible:
		return canvas.IconPartiallyAccessible
	default:
		return canvas.IconNotAccessible
	}
}

func boundsOf(markers []canvas.Marker) canvas.Bounds {
	rect := s2.EmptyRect()
	for _, m := range markers {
		rect = rect.AddPoint(s2.LatLngFromDegrees(m.Position.Lat, m.Position.Lng))
	}
	lo := rect.Lo()
	hi := rect.Hi()
	return canvas.Bounds{
		SouthWest: canvas.LatLng{Lat: lo.Lat.Degrees(), Lng: lo.Lng.Degrees()},
		NorthEast: canvas.LatLng{Lat: hi.Lat.Degrees(), Lng: hi.Lng.Degrees()},
	}
}
