package services

import (
	"fmt"
	"time"

	"wayfare/internal/models/domain_models"
)

// PlannerServiceInterface builds a complete itinerary from a trip request,
// candidate places, and the geocoded city center. It is a pure function of
// its inputs apart from the CreatedAt timestamp: no I/O, no shared state,
// safe for concurrent use.
type PlannerServiceInterface interface {
	CreateItinerary(
		trip domain_models.TripRequest,
		places []domain_models.Place,
		center domain_models.Coordinate,
	) domain_models.Itinerary
}

type PlannerService struct{}

func NewPlannerService() PlannerServiceInterface {
	return &PlannerService{}
}

func (p *PlannerService) CreateItinerary(
	trip domain_models.TripRequest,
	places []domain_models.Place,
	center domain_models.Coordinate,
) domain_models.Itinerary {

	ranked := RankPlacesByRelevance(trip, places, center)
	days := AllocatePlacesToDays(trip, ranked)

	totalCost := 0.0
	for _, day := range days {
		totalCost += day.TotalCost
	}
	totalCost = roundToCents(totalCost)

	budgetStatus := "within budget"
	if totalCost > trip.Budget {
		budgetStatus = "slightly over budget"
	}
	notes := fmt.Sprintf("Itinerary created for %d days with %s pace. Total cost is %s.",
		trip.NumDays(), trip.Pace, budgetStatus)

	return domain_models.Itinerary{
		TripRequest: trip,
		Days:        days,
		TotalCost:   totalCost,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}
}
