package geo_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideGeocodeCache, provideGeocoder, providePOISource)

func provideGeocodeCache() services.GeocodeCache {
	return services.NewInMemoryGeocodeCache()
}

func provideGeocoder(cache services.GeocodeCache) services.GeocodeServiceInterface {
	return services.NewNominatimClient(cache)
}

func providePOISource() services.POIServiceInterface {
	return services.NewOverpassClient()
}
