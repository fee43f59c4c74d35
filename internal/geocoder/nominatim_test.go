package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustmap/pkg/utils"
)

func TestSearchUsesFirstResultOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "khan el-khalili", r.URL.Query().Get("q"))
		w.Write([]byte(`[
			{"lat":"30.0478","lon":"31.2622","display_name":"Khan el-Khalili, Cairo","osm_id":123456},
			{"lat":"29.9","lon":"31.1","display_name":"Somewhere else","osm_id":"789"}
		]`))
	}))
	defer srv.Close()

	place, err := NewClient(srv.URL).Search(context.Background(), "khan el-khalili")
	require.NoError(t, err)
	assert.Equal(t, "searched_123456", place.ID)
	assert.InDelta(t, 30.0478, place.Lat, 1e-6)
	assert.InDelta(t, 31.2622, place.Lon, 1e-6)
	assert.Equal(t, "Khan el-Khalili, Cairo", place.DisplayName)
	assert.Equal(t, "Khan el-Khalili, Cairo", place.Address)
}

func TestSearchStringOSMID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"30.0","lon":"31.0","display_name":"Spot","osm_id":"node-42"}]`))
	}))
	defer srv.Close()

	place, err := NewClient(srv.URL).Search(context.Background(), "spot")
	require.NoError(t, err)
	assert.Equal(t, "searched_node-42", place.ID)
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "atlantis")
	assert.ErrorIs(t, err, utils.ErrNoGeocodeResults)
}

func TestSearchEmptyTerm(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrEmptySearchTerm)
	assert.False(t, called)
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "cairo")
	assert.ErrorIs(t, err, utils.ErrGeocoderFailure)
}
