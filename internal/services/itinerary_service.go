package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wayfare/internal/models/domain_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

const (
	poiSearchRadiusMeters = 10000
	poiFetchLimit         = 50
)

type ItineraryServiceInterface interface {
	PlanTrip(ctx context.Context, request request_models.CreateItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	geocoder GeocodeServiceInterface
	pois     POIServiceInterface
	planner  PlannerServiceInterface
	advisor  AdvisorServiceInterface
	logger   *zap.Logger
}

func NewItineraryService(
	geocoder GeocodeServiceInterface,
	pois POIServiceInterface,
	planner PlannerServiceInterface,
	advisor AdvisorServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		geocoder: geocoder,
		pois:     pois,
		planner:  planner,
		advisor:  advisor,
		logger:   utils.GetLogger(),
	}
}

func (s *ItineraryService) PlanTrip(
	ctx context.Context,
	request request_models.CreateItineraryRequest,
) (*response_models.ItineraryResponse, error) {

	trip, err := buildTripRequest(request)
	if err != nil {
		return nil, err
	}

	location, err := s.geocoder.GeocodeCity(ctx, trip.City)
	if err != nil {
		return nil, err
	}

	// The POI source contract degrades to an empty list when unavailable;
	// the planner still emits every day with meal and transport allowances.
	places, err := s.pois.FetchPOIs(ctx, location.Coordinate, poiSearchRadiusMeters, trip.Interests, poiFetchLimit)
	if err != nil {
		s.logger.Warn("poi fetch failed, planning without places",
			zap.String("city", trip.City), zap.Error(err))
		places = []domain_models.Place{}
	}

	itinerary := s.planner.CreateItinerary(trip, places, location.Coordinate)

	tips := ""
	if s.advisor != nil {
		tips, err = s.advisor.SuggestTripNotes(ctx, itinerary)
		if err != nil && !errors.Is(err, utils.ErrAdvisorDisabled) {
			s.logger.Warn("advisor failed, keeping rule-based notes", zap.Error(err))
		}
	}

	return buildItineraryResponse(itinerary, location, tips), nil
}

func buildTripRequest(request request_models.CreateItineraryRequest) (domain_models.TripRequest, error) {
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return domain_models.TripRequest{}, fmt.Errorf("%w: start_date must be %s", utils.ErrInvalidInput, utils.DateLayout)
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return domain_models.TripRequest{}, fmt.Errorf("%w: end_date must be %s", utils.ErrInvalidInput, utils.DateLayout)
	}

	groupSize := request.GroupSize
	if groupSize == 0 {
		groupSize = 1
	}

	return domain_models.NewTripRequest(
		request.City,
		startDate,
		endDate,
		request.Budget,
		request.Interests,
		request.Pace,
		groupSize,
	)
}

func buildItineraryResponse(
	itinerary domain_models.Itinerary,
	location domain_models.CityLocation,
	tips string,
) *response_models.ItineraryResponse {

	trip := itinerary.TripRequest

	days := make([]response_models.DayPlanResponse, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		places := make([]response_models.PlaceResponse, 0, len(day.Places))
		for _, place := range day.Places {
			places = append(places, response_models.PlaceResponse{
				Name:          place.Name,
				Category:      place.Category,
				Latitude:      place.Latitude,
				Longitude:     place.Longitude,
				EstimatedCost: place.EstimatedCost,
				Hours:         place.Hours,
				Description:   place.Description,
				Rating:        place.Rating,
				TimeNeeded:    place.TimeNeeded,
				Address:       place.Address,
			})
		}

		days = append(days, response_models.DayPlanResponse{
			Day:        day.DayIndex,
			Date:       utils.FormatDate(day.Date),
			Places:     places,
			TotalCost:  day.TotalCost,
			TotalTime:  day.TotalTime(),
			PlaceCount: day.PlaceCount(),
			Notes:      day.Notes,
		})
	}

	return &response_models.ItineraryResponse{
		ID:                uuid.New().String(),
		City:              trip.City,
		DisplayName:       location.DisplayName,
		StartDate:         utils.FormatDate(trip.StartDate),
		EndDate:           utils.FormatDate(trip.EndDate),
		Pace:              string(trip.Pace),
		GroupSize:         trip.GroupSize,
		Days:              days,
		TotalPlaces:       itinerary.TotalPlaces(),
		TotalCost:         itinerary.TotalCost,
		Budget:            trip.Budget,
		BudgetRemaining:   itinerary.BudgetRemaining(),
		BudgetUsedPercent: itinerary.BudgetUsedPercent(),
		Notes:             itinerary.Notes,
		TravelTips:        tips,
		CreatedAt:         itinerary.CreatedAt.Format(time.RFC3339),
	}
}
