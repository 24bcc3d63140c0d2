package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// --------- In-memory cache keyed by lowercased city name ---------

type geocodeCacheEntry struct {
	Location  domain_models.CityLocation
	ExpiresAt time.Time
}

type GeocodeCache interface {
	Get(city string) (domain_models.CityLocation, bool)
	Set(city string, loc domain_models.CityLocation, ttl time.Duration)
}

type inMemoryGeocodeCache struct {
	mu    sync.RWMutex
	store map[string]geocodeCacheEntry
}

func NewInMemoryGeocodeCache() GeocodeCache {
	return &inMemoryGeocodeCache{store: make(map[string]geocodeCacheEntry)}
}

func (c *inMemoryGeocodeCache) Get(city string) (domain_models.CityLocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[city]
	if !ok || time.Now().After(it.ExpiresAt) {
		return domain_models.CityLocation{}, false
	}
	return it.Location, true
}

func (c *inMemoryGeocodeCache) Set(city string, loc domain_models.CityLocation, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[city] = geocodeCacheEntry{Location: loc, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Nominatim geocoding client ---------------

type GeocodeServiceInterface interface {
	GeocodeCity(ctx context.Context, city string) (domain_models.CityLocation, error)
}

type NominatimClient struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	Cache      GeocodeCache
	DefaultTTL time.Duration
	logger     *zap.Logger
}

func NewNominatimClient(cache GeocodeCache) *NominatimClient {
	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &NominatimClient{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		UserAgent:  userAgentFromEnv(),
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
		logger:     utils.GetLogger(),
	}
}

func userAgentFromEnv() string {
	if ua := os.Getenv("USER_AGENT"); ua != "" {
		return ua
	}
	return "wayfare/1.0"
}

func (c *NominatimClient) GeocodeCity(ctx context.Context, city string) (domain_models.CityLocation, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return domain_models.CityLocation{}, fmt.Errorf("%w: city is required", utils.ErrInvalidInput)
	}

	if loc, ok := c.Cache.Get(key); ok {
		return loc, nil
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim decode: %w", err)
	}

	c.logger.Debug("geocoded city", zap.String("city", city), zap.Int("results", len(payload)))
	if len(payload) == 0 {
		return domain_models.CityLocation{}, utils.ErrCityNotFound
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim bad latitude %q: %w", payload[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return domain_models.CityLocation{}, fmt.Errorf("nominatim bad longitude %q: %w", payload[0].Lon, err)
	}

	displayName := payload[0].DisplayName
	if displayName == "" {
		displayName = city
	}

	loc := domain_models.CityLocation{
		Coordinate:  domain_models.Coordinate{Latitude: lat, Longitude: lon},
		DisplayName: displayName,
	}
	c.Cache.Set(key, loc, c.DefaultTTL)

	return loc, nil
}
