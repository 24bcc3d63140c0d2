package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"
)

// Public Overpass servers tried in order until one answers.
var defaultOverpassServers = []string{
	"https://overpass.kumi.systems/api/interpreter",
	"https://overpass-api.de/api/interpreter",
	"https://maps.mail.ru/osm/tools/overpass/api/interpreter",
}

var interestToOSMTags = map[string][]string{
	"museums":       {"tourism=museum"},
	"history":       {"tourism=museum", "historic=monument", "historic=castle"},
	"culture":       {"tourism=museum", "tourism=gallery", "tourism=theatre"},
	"art":           {"tourism=gallery", "tourism=artwork"},
	"nature":        {"leisure=park", "leisure=garden", "natural=beach"},
	"parks":         {"leisure=park", "leisure=garden"},
	"outdoor":       {"leisure=park", "natural=peak", "tourism=viewpoint"},
	"food":          {"amenity=restaurant", "amenity=cafe", "amenity=bar"},
	"restaurants":   {"amenity=restaurant", "amenity=cafe"},
	"architecture":  {"tourism=attraction", "historic=building", "building=cathedral"},
	"religion":      {"amenity=place_of_worship", "building=church", "building=mosque"},
	"sport":         {"leisure=sports_centre", "leisure=stadium"},
	"shopping":      {"shop=mall", "shop=department_store"},
	"entertainment": {"tourism=attraction", "leisure=amusement_arcade"},
	"amusements":    {"tourism=theme_park", "leisure=amusement_arcade"},
}

const defaultTimeNeededMinutes = 60

type POIServiceInterface interface {
	FetchPOIs(ctx context.Context, center domain_models.Coordinate, radiusMeters int, interests []string, limit int) ([]domain_models.Place, error)
}

type OverpassClient struct {
	HTTP      *http.Client
	Servers   []string
	UserAgent string
	logger    *zap.Logger
}

func NewOverpassClient() *OverpassClient {
	return &OverpassClient{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		Servers:   defaultOverpassServers,
		UserAgent: userAgentFromEnv(),
		logger:    utils.GetLogger(),
	}
}

type overpassElement struct {
	Type   string            `json:"type"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c *OverpassClient) FetchPOIs(
	ctx context.Context,
	center domain_models.Coordinate,
	radiusMeters int,
	interests []string,
	limit int,
) ([]domain_models.Place, error) {

	tags := mapInterestsToTags(interests)
	query := buildOverpassQuery(center, radiusMeters, tags)

	var elements []overpassElement
	var lastErr error
	for _, server := range c.Servers {
		elements, lastErr = c.runQuery(ctx, server, query)
		if lastErr == nil {
			break
		}
		c.logger.Warn("overpass server failed", zap.String("server", server), zap.Error(lastErr))
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPOIProviderUnavailable, lastErr)
	}

	places := make([]domain_models.Place, 0, limit)
	for _, element := range elements {
		if len(places) >= limit {
			break
		}
		if place, ok := parseElement(element); ok {
			places = append(places, place)
		}
	}

	c.logger.Debug("fetched pois",
		zap.Float64("lat", center.Latitude),
		zap.Float64("lon", center.Longitude),
		zap.Int("elements", len(elements)),
		zap.Int("parsed", len(places)))

	return places, nil
}

func (c *OverpassClient) runQuery(ctx context.Context, server, query string) ([]overpassElement, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("overpass bad status: %s", resp.Status)
	}

	var payload struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("overpass decode: %w", err)
	}

	return payload.Elements, nil
}

func mapInterestsToTags(interests []string) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, interest := range interests {
		for _, tag := range interestToOSMTags[strings.ToLower(interest)] {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	if len(tags) == 0 {
		if len(interests) == 0 {
			return []string{"tourism=museum", "amenity=restaurant", "leisure=park"}
		}
		return []string{"tourism=attraction"}
	}
	return tags
}

// buildOverpassQuery limits to the first 3 tags and node elements to keep the
// public servers from timing out.
func buildOverpassQuery(center domain_models.Coordinate, radiusMeters int, tags []string) string {
	if len(tags) > 3 {
		tags = tags[:3]
	}

	var b strings.Builder
	b.WriteString("[out:json][timeout:10];\n(\n")
	for _, tag := range tags {
		parts := strings.SplitN(tag, "=", 2)
		if len(parts) != 2 {
			continue
		}
		fmt.Fprintf(&b, "  node[%q=%q](around:%d,%f,%f);\n",
			parts[0], parts[1], radiusMeters, center.Latitude, center.Longitude)
	}
	b.WriteString(");\nout body 50;")
	return b.String()
}

func parseElement(element overpassElement) (domain_models.Place, bool) {
	tags := element.Tags

	name := tags["name"]
	if name == "" {
		name = tags["name:en"]
	}
	if name == "" {
		name = tags["official_name"]
	}
	if name == "" {
		return domain_models.Place{}, false
	}

	var lat, lon float64
	switch {
	case element.Type == "node" && element.Lat != nil && element.Lon != nil:
		lat, lon = *element.Lat, *element.Lon
	case element.Center != nil:
		lat, lon = element.Center.Lat, element.Center.Lon
	default:
		return domain_models.Place{}, false
	}

	category := determineCategory(tags)

	place := domain_models.Place{
		Name:          name,
		Category:      category,
		Latitude:      lat,
		Longitude:     lon,
		EstimatedCost: estimateCost(category, tags),
		TimeNeeded:    estimateTimeNeeded(category),
	}

	if hours := tags["opening_hours"]; hours != "" {
		place.Hours = &hours
	}
	if description := tags["description"]; description != "" {
		place.Description = &description
	} else if wiki := tags["wikipedia"]; wiki != "" {
		place.Description = &wiki
	}
	if street := tags["addr:street"]; street != "" {
		place.Address = &street
	}
	// OSM carries no ratings; Rating stays nil.

	return place, true
}

func determineCategory(tags map[string]string) string {
	switch {
	case tags["tourism"] == "museum":
		return "museum"
	case tags["tourism"] == "gallery":
		return "art_gallery"
	case tags["tourism"] == "attraction":
		return "attraction"
	case tags["tourism"] == "viewpoint":
		return "viewpoint"
	case tags["amenity"] == "restaurant":
		return "restaurant"
	case tags["amenity"] == "cafe":
		return "cafe"
	case tags["amenity"] == "place_of_worship":
		return "religious_site"
	case tags["leisure"] == "park":
		return "park"
	case tags["leisure"] == "garden":
		return "garden"
	case tags["historic"] != "":
		return "historic_" + tags["historic"]
	case tags["shop"] != "":
		return "shopping"
	default:
		return "attraction"
	}
}

var categoryCosts = []struct {
	key  string
	cost float64
}{
	{"museum", 15},
	{"art_gallery", 12},
	{"park", 0},
	{"garden", 5},
	{"restaurant", 25},
	{"cafe", 15},
	{"religious_site", 0},
	{"historic", 10},
	{"attraction", 10},
	{"shopping", 20},
	{"viewpoint", 0},
}

func estimateCost(category string, tags map[string]string) float64 {
	if strings.EqualFold(tags["fee"], "no") {
		return 0
	}
	lower := strings.ToLower(category)
	for _, entry := range categoryCosts {
		if strings.Contains(lower, entry.key) {
			return entry.cost
		}
	}
	return 10
}

var categoryTimes = []struct {
	key     string
	minutes int
}{
	{"museum", 120},
	{"art_gallery", 90},
	{"park", 60},
	{"garden", 45},
	{"restaurant", 90},
	{"cafe", 45},
	{"religious", 45},
	{"historic", 60},
	{"attraction", 90},
	{"shopping", 90},
	{"viewpoint", 30},
}

func estimateTimeNeeded(category string) int {
	lower := strings.ToLower(category)
	for _, entry := range categoryTimes {
		if strings.Contains(lower, entry.key) {
			return entry.minutes
		}
	}
	return defaultTimeNeededMinutes
}
