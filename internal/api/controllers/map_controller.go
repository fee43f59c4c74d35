package controllers

import (
	"github.com/gin-gonic/gin"

	"trustmap/internal/canvas"
	"trustmap/internal/geocoder"
	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
	"trustmap/internal/models/response_models"
	"trustmap/internal/services"
	"trustmap/internal/session"
	"trustmap/pkg/middleware"
	"trustmap/pkg/utils"
)

// Zoom applied when a geocode search recenters the map on its result.
const searchZoom = 13

type MapController struct {
	store     services.LocationStoreInterface
	engine    services.FilterEngineInterface
	markers   services.MarkerLifecycleManagerInterface
	selection services.SelectionServiceInterface
	geocoder  geocoder.Client
	sessions  *session.Registry
}

func NewMapController(
	store services.LocationStoreInterface,
	engine services.FilterEngineInterface,
	markers services.MarkerLifecycleManagerInterface,
	selection services.SelectionServiceInterface,
	geo geocoder.Client,
	sessions *session.Registry) *MapController {

	return &MapController{
		store:     store,
		engine:    engine,
		markers:   markers,
		selection: selection,
		geocoder:  geo,
		sessions:  sessions,
	}
}

func (m *MapController) session(c *gin.Context) *session.Session {
	return m.sessions.Acquire(middleware.SessionKey(c))
}

// Load populates the location store: one bulk fetch plus the per-branch
// enrichment fan-out. This is the only refresh path; records are never
// invalidated individually.
func (m *MapController) Load(c *gin.Context) {
	branches, err := m.store.LoadAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result := response_models.LoadResult{Total: len(branches)}
	for _, b := range branches {
		if b.HoursError != "" {
			result.HoursErrors++
		}
		if b.PhotosError != "" {
			result.PhotoErrors++
		}
	}
	utils.RespondSuccess(c, result, "Branches loaded")
}

// Markers recomputes the visible set from the requested filters and rebuilds
// every marker on the session's canvas.
func (m *MapController) Markers(c *gin.Context) {
	var filters request_models.FilterState
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondError(c, 400, "Invalid filter parameters")
		return
	}

	sess := m.session(c)
	sess.SetFilters(filters)

	view := m.render(sess, filters)
	utils.RespondSuccess(c, view, "Markers rendered")
}

func (m *MapController) render(sess *session.Session, filters request_models.FilterState) response_models.MarkerView {
	branches := m.store.Branches()
	if filters.FavoritesOnly {
		branches = m.engine.FilterByFavorites(branches, sess.FavoriteIDs())
	}
	if filters.SearchTerm != "" {
		branches = m.engine.FilterByText(branches, filters.SearchTerm)
	}

	visible := m.engine.ComputeVisibleSet(branches, sess.SearchedPlaces(), filters)
	rendered := m.markers.Render(sess.Canvas(), visible)
	middleware.CountMarkerRender()

	return response_models.MarkerView{
		Markers:  sess.Canvas().Markers(),
		Viewport: sess.Canvas().Viewport(),
		Rendered: rendered,
		Skipped:  len(visible) - rendered,
	}
}

// Search geocodes a free-text query, appends the result to the session's
// searched places and recenters on it. Searched places accumulate for the
// whole session and are never filtered away.
func (m *MapController) Search(c *gin.Context) {
	var req request_models.PlaceSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Please enter a place to search")
		return
	}

	place, err := m.geocoder.Search(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sess := m.session(c)
	sess.AddSearchedPlace(place)

	view := m.render(sess, sess.Filters())
	// Recenter on the fresh result after the fit-bounds of the render.
	sess.Canvas().SetView(canvas.LatLng{Lat: place.Lat, Lng: place.Lon}, searchZoom)
	view.Viewport = sess.Canvas().Viewport()

	utils.RespondSuccess(c, gin.H{"place": place, "view": view}, "Place added to map")
}

// Select moves the state machine to Selected(item) and returns the item's
// secondary details (hours, photos, reviews).
func (m *MapController) Select(c *gin.Context) {
	key := c.Param("id")
	if key == "" {
		utils.RespondError(c, 400, "Location ID is required")
		return
	}

	sess := m.session(c)

	var item api_models.CombinedItem
	if branch, ok := m.store.GetBranch(key); ok {
		item = api_models.BranchItem(branch)
	} else if place, ok := sess.SearchedPlace(key); ok {
		item = api_models.PlaceItem(&place)
	} else {
		utils.HandleServiceError(c, utils.ErrLocationNotFound)
		return
	}

	details, err := m.selection.Select(sess, item, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Location selected")
}

func (m *MapController) Deselect(c *gin.Context) {
	m.selection.Deselect(m.session(c))
	utils.RespondSuccess(c, nil, "Selection cleared")
}

func (m *MapController) CurrentSelection(c *gin.Context) {
	details, err := m.selection.Current(m.session(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Current selection")
}
