package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustmap/internal/canvas"
	"trustmap/internal/models/api_models"
)

func TestRenderSkipsInvalidCoordinates(t *testing.T) {
	valid := testBranch("1", "Cairo Diner", "1", 3)
	outOfRange := testBranch("2", "Broken Pin", "1", 1)
	outOfRange.Place.Latitude = ff(-90)
	outOfRange.Place.Longitude = ff(200)
	missing := testBranch("3", "No Pin", "1", 1)
	missing.Place.Latitude = nil

	items := []api_models.CombinedItem{
		api_models.BranchItem(&valid),
		api_models.BranchItem(&outOfRange),
		api_models.BranchItem(&missing),
	}

	cv := canvas.NewInMemoryCanvas()
	rendered := NewMarkerLifecycleManager().Render(cv, items)

	assert.Equal(t, 1, rendered)
	require.Equal(t, 1, cv.MarkerCount())
	m := cv.Markers()[0]
	assert.Equal(t, "1", m.Key)
	assert.Equal(t, canvas.IconAccessible, m.Icon)
	assert.Equal(t, "Cairo Diner - accessible", m.Alt)
	assert.True(t, m.IsBranch)
}

func TestRenderIconPerTier(t *testing.T) {
	cases := []struct {
		featureCount int
		icon         canvas.Icon
	}{
		{0, canvas.IconNotAccessible},
		{1, canvas.IconPartiallyAccessible},
		{2, canvas.IconPartiallyAccessible},
		{3, canvas.IconAccessible},
	}
	manager := NewMarkerLifecycleManager()

	for _, tc := range cases {
		b := testBranch("1", "Cairo Diner", "1", tc.featureCount)
		cv := canvas.NewInMemoryCanvas()
		manager.Render(cv, []api_models.CombinedItem{api_models.BranchItem(&b)})
		require.Equal(t, 1, cv.MarkerCount())
		assert.Equal(t, tc.icon, cv.Markers()[0].Icon, "feature count %d", tc.featureCount)
	}
}

func TestRenderSearchedPlaceMarker(t *testing.T) {
	place := api_models.SearchedPlace{ID: "searched_42", DisplayName: "Khan el-Khalili", Lat: 30.04, Lon: 31.26}

	cv := canvas.NewInMemoryCanvas()
	rendered := NewMarkerLifecycleManager().Render(cv, []api_models.CombinedItem{api_models.PlaceItem(&place)})

	assert.Equal(t, 1, rendered)
	m := cv.Markers()[0]
	assert.Equal(t, "searched_42", m.Key)
	assert.Equal(t, canvas.IconSearchedPlace, m.Icon)
	assert.Equal(t, "Khan el-Khalili - searched place", m.Alt)
	assert.False(t, m.IsBranch)
}

func TestRenderDestroysPreviousMarkers(t *testing.T) {
	first := testBranch("1", "Cairo Diner", "1", 3)
	second := testBranch("2", "Giza Gym", "3", 1)
	manager := NewMarkerLifecycleManager()
	cv := canvas.NewInMemoryCanvas()

	manager.Render(cv, []api_models.CombinedItem{
		api_models.BranchItem(&first),
		api_models.BranchItem(&second),
	})
	require.Equal(t, 2, cv.MarkerCount())

	manager.Render(cv, []api_models.CombinedItem{api_models.BranchItem(&second)})
	require.Equal(t, 1, cv.MarkerCount())
	assert.Equal(t, "2", cv.Markers()[0].Key)
}

func TestRenderFitsBoundsToMarkers(t *testing.T) {
	north := testBranch("1", "North", "1", 0)
	north.Place.Latitude = ff(30)
	north.Place.Longitude = ff(31)
	south := testBranch("2", "South", "1", 0)
	south.Place.Latitude = ff(26)
	south.Place.Longitude = ff(29)

	cv := canvas.NewInMemoryCanvas()
	NewMarkerLifecycleManager().Render(cv, []api_models.CombinedItem{
		api_models.BranchItem(&north),
		api_models.BranchItem(&south),
	})

	vp := cv.Viewport()
	require.NotNil(t, vp.Bounds)
	assert.InDelta(t, 26, vp.Bounds.SouthWest.Lat, 1e-6)
	assert.InDelta(t, 29, vp.Bounds.SouthWest.Lng, 1e-6)
	assert.InDelta(t, 30, vp.Bounds.NorthEast.Lat, 1e-6)
	assert.InDelta(t, 31, vp.Bounds.NorthEast.Lng, 1e-6)
	assert.InDelta(t, 28, vp.Center.Lat, 1e-6)
	assert.InDelta(t, 30, vp.Center.Lng, 1e-6)
}

func TestRenderEmptySetKeepsViewport(t *testing.T) {
	cv := canvas.NewInMemoryCanvas()
	before := cv.Viewport()

	rendered := NewMarkerLifecycleManager().Render(cv, nil)

	assert.Zero(t, rendered)
	assert.Equal(t, before, cv.Viewport())
}
