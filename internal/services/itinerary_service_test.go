package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/domain_models"
	"wayfare/internal/models/request_models"
	"wayfare/pkg/utils"
)

// Hand-written doubles: set only the function fields a test needs.

type stubGeocoder struct {
	geocode func(ctx context.Context, city string) (domain_models.CityLocation, error)
}

func (s *stubGeocoder) GeocodeCity(ctx context.Context, city string) (domain_models.CityLocation, error) {
	return s.geocode(ctx, city)
}

type stubPOISource struct {
	fetch func(ctx context.Context, center domain_models.Coordinate, radiusMeters int, interests []string, limit int) ([]domain_models.Place, error)
}

func (s *stubPOISource) FetchPOIs(ctx context.Context, center domain_models.Coordinate, radiusMeters int, interests []string, limit int) ([]domain_models.Place, error) {
	return s.fetch(ctx, center, radiusMeters, interests, limit)
}

type stubAdvisor struct {
	suggest func(ctx context.Context, itinerary domain_models.Itinerary) (string, error)
}

func (s *stubAdvisor) SuggestTripNotes(ctx context.Context, itinerary domain_models.Itinerary) (string, error) {
	return s.suggest(ctx, itinerary)
}

var _ GeocodeServiceInterface = (*stubGeocoder)(nil)
var _ POIServiceInterface = (*stubPOISource)(nil)
var _ AdvisorServiceInterface = (*stubAdvisor)(nil)

func parisGeocoder() *stubGeocoder {
	return &stubGeocoder{
		geocode: func(_ context.Context, _ string) (domain_models.CityLocation, error) {
			return domain_models.CityLocation{
				Coordinate:  parisCenter,
				DisplayName: "Paris, France",
			}, nil
		},
	}
}

func disabledStubAdvisor() *stubAdvisor {
	return &stubAdvisor{
		suggest: func(_ context.Context, _ domain_models.Itinerary) (string, error) {
			return "", utils.ErrAdvisorDisabled
		},
	}
}

func validRequest() request_models.CreateItineraryRequest {
	return request_models.CreateItineraryRequest{
		City:      "Paris",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Budget:    400,
		Interests: []string{"museums"},
		Pace:      "moderate",
		GroupSize: 2,
	}
}

func TestPlanTrip_BuildsFullResponse(t *testing.T) {
	pois := &stubPOISource{
		fetch: func(_ context.Context, center domain_models.Coordinate, radiusMeters int, interests []string, limit int) ([]domain_models.Place, error) {
			assert.Equal(t, parisCenter, center)
			assert.Equal(t, 10000, radiusMeters)
			assert.Equal(t, []string{"museums"}, interests)
			assert.Equal(t, 50, limit)
			return []domain_models.Place{
				placeNear("City Museum", "museum", 15, 0.009),
				placeNear("Riverside Park", "park", 0, 0.018),
			}, nil
		},
	}

	service := NewItineraryService(parisGeocoder(), pois, NewPlannerService(), disabledStubAdvisor())

	resp, err := service.PlanTrip(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Paris", resp.City)
	assert.Equal(t, "Paris, France", resp.DisplayName)
	assert.Equal(t, "2025-06-01", resp.StartDate)
	assert.Equal(t, "moderate", resp.Pace)
	assert.Equal(t, 2, resp.GroupSize)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2025-06-01", resp.Days[0].Date)
	assert.Equal(t, "2025-06-02", resp.Days[1].Date)
	assert.Equal(t, 2, resp.TotalPlaces)
	assert.InDelta(t, resp.Budget-resp.TotalCost, resp.BudgetRemaining, 1e-9)
	assert.Empty(t, resp.TravelTips)
	assert.NotEmpty(t, resp.CreatedAt)
}

func TestPlanTrip_BadDatesRejected(t *testing.T) {
	service := NewItineraryService(parisGeocoder(), nil, NewPlannerService(), disabledStubAdvisor())

	request := validRequest()
	request.StartDate = "01/06/2025"

	_, err := service.PlanTrip(context.Background(), request)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlanTrip_CityNotFoundPropagates(t *testing.T) {
	geocoder := &stubGeocoder{
		geocode: func(_ context.Context, _ string) (domain_models.CityLocation, error) {
			return domain_models.CityLocation{}, utils.ErrCityNotFound
		},
	}

	service := NewItineraryService(geocoder, nil, NewPlannerService(), disabledStubAdvisor())

	_, err := service.PlanTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestPlanTrip_POIFailureDegradesToEmptyDays(t *testing.T) {
	pois := &stubPOISource{
		fetch: func(_ context.Context, _ domain_models.Coordinate, _ int, _ []string, _ int) ([]domain_models.Place, error) {
			return nil, utils.ErrPOIProviderUnavailable
		},
	}

	service := NewItineraryService(parisGeocoder(), pois, NewPlannerService(), disabledStubAdvisor())

	resp, err := service.PlanTrip(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, 0, resp.TotalPlaces)
	// Meals and transport for two travelers, two days.
	assert.InDelta(t, 220, resp.TotalCost, 1e-9)
}

func TestPlanTrip_AdvisorTipsAttachedWhenAvailable(t *testing.T) {
	pois := &stubPOISource{
		fetch: func(_ context.Context, _ domain_models.Coordinate, _ int, _ []string, _ int) ([]domain_models.Place, error) {
			return []domain_models.Place{placeNear("City Museum", "museum", 15, 0.009)}, nil
		},
	}
	advisor := &stubAdvisor{
		suggest: func(_ context.Context, itinerary domain_models.Itinerary) (string, error) {
			assert.NotEmpty(t, itinerary.Days)
			return "Book the museum ahead.", nil
		},
	}

	service := NewItineraryService(parisGeocoder(), pois, NewPlannerService(), advisor)

	resp, err := service.PlanTrip(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Book the museum ahead.", resp.TravelTips)
}

func TestPlanTrip_AdvisorErrorKeepsRuleBasedNotes(t *testing.T) {
	pois := &stubPOISource{
		fetch: func(_ context.Context, _ domain_models.Coordinate, _ int, _ []string, _ int) ([]domain_models.Place, error) {
			return nil, nil
		},
	}
	advisor := &stubAdvisor{
		suggest: func(_ context.Context, _ domain_models.Itinerary) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	service := NewItineraryService(parisGeocoder(), pois, NewPlannerService(), advisor)

	resp, err := service.PlanTrip(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.TravelTips)
	assert.Contains(t, resp.Notes, "moderate pace")
}

func TestPlanTrip_ZeroGroupSizeDefaultsToOne(t *testing.T) {
	pois := &stubPOISource{
		fetch: func(_ context.Context, _ domain_models.Coordinate, _ int, _ []string, _ int) ([]domain_models.Place, error) {
			return nil, nil
		},
	}

	service := NewItineraryService(parisGeocoder(), pois, NewPlannerService(), disabledStubAdvisor())

	request := validRequest()
	request.GroupSize = 0

	resp, err := service.PlanTrip(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.GroupSize)
}
