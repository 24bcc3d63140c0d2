package planner_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(
	providePlannerService, provideAdvisorService, provideItineraryService)

func providePlannerService() services.PlannerServiceInterface {
	return services.NewPlannerService()
}

func provideAdvisorService() services.AdvisorServiceInterface {
	return services.NewAdvisorFromEnv()
}

func provideItineraryService(
	geocoder services.GeocodeServiceInterface,
	pois services.POIServiceInterface,
	planner services.PlannerServiceInterface,
	advisor services.AdvisorServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(geocoder, pois, planner, advisor)
}
