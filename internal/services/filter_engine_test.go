package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
)

func testBranch(id, name, categoryID string, featureCount int) api_models.Branch {
	features := make([]api_models.Feature, featureCount)
	for i := range features {
		features[i] = api_models.Feature{ID: api_models.FlexID(string(rune('a' + i))), FeatureName: "Wheelchair ramp"}
	}
	b := api_models.Branch{
		ID:      api_models.FlexID(id),
		Address: name + " street",
		Place: &api_models.Place{
			Name:       name,
			CategoryID: api_models.FlexID(categoryID),
			Latitude:   ff(30.0),
			Longitude:  ff(31.0),
			Features:   features,
		},
	}
	b.Classify()
	return b
}

func TestComputeVisibleSetCategoryAndAccessibility(t *testing.T) {
	branches := []api_models.Branch{
		testBranch("1", "Cairo Diner", "1", 3),
		testBranch("2", "Giza Gym", "3", 1),
		testBranch("3", "Nile Cafe", "1", 0),
		testBranch("4", "Alex Clinic", "6", 4),
		testBranch("5", "Luxor Shop", "2", 2),
	}
	engine := NewFilterEngine()

	got := engine.ComputeVisibleSet(branches, nil, request_models.FilterState{SelectedCategoryID: "1"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Key())
	assert.Equal(t, "3", got[1].Key())

	got = engine.ComputeVisibleSet(branches, nil, request_models.FilterState{
		AccessibilityLevels: []string{api_models.LevelAccessible},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Key())
	assert.Equal(t, "4", got[1].Key())

	got = engine.ComputeVisibleSet(branches, nil, request_models.FilterState{
		SelectedCategoryID:  "1",
		AccessibilityLevels: []string{api_models.LevelNotAccessible},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Key())

	got = engine.ComputeVisibleSet(branches, nil, request_models.FilterState{})
	assert.Len(t, got, 5)
}

func TestComputeVisibleSetUnknownCategoryMatchesMissing(t *testing.T) {
	withCategory := testBranch("1", "Cairo Diner", "1", 0)
	noCategory := testBranch("2", "Mystery Spot", "", 0)
	noPlace := api_models.Branch{ID: "3", Address: "Nowhere"}
	noPlace.Classify()

	engine := NewFilterEngine()
	got := engine.ComputeVisibleSet([]api_models.Branch{withCategory, noCategory, noPlace}, nil,
		request_models.FilterState{SelectedCategoryID: api_models.UnknownCategoryID})

	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].Key())
	assert.Equal(t, "3", got[1].Key())
}

func TestComputeVisibleSetMissingLevelCountsAsNotAccessible(t *testing.T) {
	unclassified := api_models.Branch{ID: "1", Address: "Somewhere"}

	engine := NewFilterEngine()
	got := engine.ComputeVisibleSet([]api_models.Branch{unclassified}, nil, request_models.FilterState{
		AccessibilityLevels: []string{"Not Accessible"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Key())
}

func TestComputeVisibleSetSearchedPlacesBypassFilters(t *testing.T) {
	branches := []api_models.Branch{testBranch("1", "Cairo Diner", "1", 3)}
	searched := []api_models.SearchedPlace{
		{ID: "searched_10", DisplayName: "Khan el-Khalili", Lat: 30.04, Lon: 31.26},
		{ID: "searched_10", DisplayName: "Khan el-Khalili", Lat: 30.04, Lon: 31.26},
	}
	engine := NewFilterEngine()

	// A filter that excludes every branch still shows every searched place,
	// duplicates included.
	got := engine.ComputeVisibleSet(branches, searched, request_models.FilterState{SelectedCategoryID: "99"})
	require.Len(t, got, 2)
	assert.False(t, got[0].IsBranch())
	assert.Equal(t, "searched_10", got[0].Key())
	assert.Equal(t, "searched_10", got[1].Key())
}

func TestComputeVisibleSetDoesNotMutateInputs(t *testing.T) {
	branches := []api_models.Branch{
		testBranch("1", "Cairo Diner", "1", 3),
		testBranch("2", "Giza Gym", "3", 0),
	}
	searched := []api_models.SearchedPlace{{ID: "searched_1", DisplayName: "Spot"}}
	branchesBefore := make([]api_models.Branch, len(branches))
	copy(branchesBefore, branches)

	engine := NewFilterEngine()
	engine.ComputeVisibleSet(branches, searched, request_models.FilterState{SelectedCategoryID: "1"})

	assert.Equal(t, branchesBefore, branches)
	assert.Len(t, searched, 1)
}

func TestFilterByText(t *testing.T) {
	branches := []api_models.Branch{
		testBranch("1", "Cairo Diner", "1", 1),
		testBranch("2", "Giza Gym", "3", 0),
	}
	branches[1].Place.Details = "Best diner-adjacent gym"
	engine := NewFilterEngine()

	got := engine.FilterByText(branches, "diner")
	require.Len(t, got, 2)

	got = engine.FilterByText(branches, "CAIRO")
	require.Len(t, got, 1)
	assert.Equal(t, api_models.FlexID("1"), got[0].ID)

	got = engine.FilterByText(branches, "wheelchair")
	require.Len(t, got, 1)
	assert.Equal(t, api_models.FlexID("1"), got[0].ID)

	got = engine.FilterByText(branches, "  ")
	assert.Len(t, got, 2)

	got = engine.FilterByText(branches, "nothing matches this")
	assert.Empty(t, got)
}

func TestFilterByFavorites(t *testing.T) {
	branches := []api_models.Branch{
		testBranch("1", "Cairo Diner", "1", 1),
		testBranch("2", "Giza Gym", "3", 0),
	}
	engine := NewFilterEngine()

	got := engine.FilterByFavorites(branches, map[string]struct{}{"2": {}, "999": {}})
	require.Len(t, got, 1)
	assert.Equal(t, api_models.FlexID("2"), got[0].ID)

	assert.Empty(t, engine.FilterByFavorites(branches, nil))
}
