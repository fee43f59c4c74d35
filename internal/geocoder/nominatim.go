package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trustmap/internal/models/api_models"
	"trustmap/pkg/utils"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client resolves free-text place searches. Only the first result is ever
// used; zero results is ErrNoGeocodeResults, not an empty place.
type Client interface {
	Search(ctx context.Context, query string) (api_models.SearchedPlace, error)
}

type nominatimResult struct {
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	DisplayName string          `json:"display_name"`
	OSMID       json.RawMessage `json:"osm_id"`
}

type nominatimClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func InitClient() Client {
	baseURL := os.Getenv("GEOCODER_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewClient(baseURL)
}

func NewClient(baseURL string) Client {
	return &nominatimClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		// Nominatim's usage policy caps anonymous clients at one request
		// per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (c *nominatimClient) Search(ctx context.Context, query string) (api_models.SearchedPlace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return api_models.SearchedPlace{}, utils.ErrEmptySearchTerm
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return api_models.SearchedPlace{}, err
	}

	target := c.baseURL + "/search?format=json&q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return api_models.SearchedPlace{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Geocode request failed for %q: %v", query, err)
		return api_models.SearchedPlace{}, fmt.Errorf("%w: %v", utils.ErrGeocoderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Geocode request for %q returned %d", query, resp.StatusCode)
		return api_models.SearchedPlace{}, fmt.Errorf("%w: status %d", utils.ErrGeocoderFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api_models.SearchedPlace{}, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return api_models.SearchedPlace{}, fmt.Errorf("%w: %v", utils.ErrGeocoderFailure, err)
	}
	if len(results) == 0 {
		return api_models.SearchedPlace{}, utils.ErrNoGeocodeResults
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return api_models.SearchedPlace{}, fmt.Errorf("%w: bad latitude %q", utils.ErrGeocoderFailure, first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return api_models.SearchedPlace{}, fmt.Errorf("%w: bad longitude %q", utils.ErrGeocoderFailure, first.Lon)
	}

	return api_models.SearchedPlace{
		ID:          api_models.SearchedPlaceKeyPrefix + utils.NormalizeID(decodeOSMID(first.OSMID)),
		Lat:         lat,
		Lon:         lon,
		DisplayName: first.DisplayName,
		// The geocoder has no street address field; display_name stands in.
		Address: first.DisplayName,
	}, nil
}

func decodeOSMID(raw json.RawMessage) interface{} {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	return v
}
