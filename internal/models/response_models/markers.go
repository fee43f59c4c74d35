package response_models

import "trustmap/internal/canvas"

// MarkerView is what a render of the visible set looks like over the wire:
// every marker currently on the canvas plus the viewport that was fit to them.
type MarkerView struct {
	Markers  []canvas.Marker `json:"markers"`
	Viewport canvas.Viewport `json:"viewport"`
	Rendered int             `json:"rendered"`
	Skipped  int             `json:"skipped"`
}
