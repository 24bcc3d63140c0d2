package services

import (
	"sort"
	"strings"

	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"
)

const (
	interestMatchScore  = 5.0
	budgetFriendlyBonus = 2.0
)

type scoredPlace struct {
	place domain_models.Place
	score float64
}

// RankPlacesByRelevance sorts candidate places by descending relevance to the
// trip. The result is a new slice holding the same places; nothing is
// filtered. Ties keep their input order so ranking stays deterministic.
func RankPlacesByRelevance(
	trip domain_models.TripRequest,
	places []domain_models.Place,
	center domain_models.Coordinate,
) []domain_models.Place {

	scored := make([]scoredPlace, 0, len(places))
	for _, place := range places {
		scored = append(scored, scoredPlace{
			place: place,
			score: relevanceScore(trip, place, center),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain_models.Place, 0, len(scored))
	for _, sp := range scored {
		ranked = append(ranked, sp.place)
	}
	return ranked
}

// relevanceScore is additive: interest matches, proximity to the city
// center, rating when present, and a flat bonus for cheap places.
func relevanceScore(
	trip domain_models.TripRequest,
	place domain_models.Place,
	center domain_models.Coordinate,
) float64 {

	score := 0.0

	category := strings.ToLower(place.Category)
	name := strings.ToLower(place.Name)
	for _, interest := range trip.Interests {
		needle := strings.ToLower(interest)
		if needle == "" {
			continue
		}
		if strings.Contains(category, needle) || strings.Contains(name, needle) {
			score += interestMatchScore
		}
	}

	distanceKm := utils.HaversineKm(center.Latitude, center.Longitude, place.Latitude, place.Longitude)
	if proximity := 5 - distanceKm/2; proximity > 0 {
		score += proximity
	}

	if place.Rating != nil {
		score += *place.Rating
	}

	if place.EstimatedCost < trip.DailyBudget()/3 {
		score += budgetFriendlyBonus
	}

	return score
}
