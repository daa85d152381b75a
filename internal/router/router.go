package router // package router defines how HTTP routes are registered for the API

import (
	"log/slog" // slog is the structured logger shared with the middlewares

	"github.com/labstack/echo/v4"                   // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // echo's bundled middlewares (recover, request id)
	"github.com/redis/go-redis/v9"                  // redis backs the cache and rate limiter

	"github.com/iliyamo/hbnb-api/internal/config"     // feature configuration for cache and rate limit
	"github.com/iliyamo/hbnb-api/internal/handler"    // import the handlers that implement the endpoints
	"github.com/iliyamo/hbnb-api/internal/middleware" // request logging, response cache and rate limit
)

// Prefix is the mount point of the entity API.
const Prefix = "/api/v1"

// RegisterRoutes registers the health check on the provided Echo instance.
// It sits outside the API group so that probes are never cached or
// rate limited.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.
	e.GET("/healthz", handler.Health)
}

// Use installs the global middleware chain: panic recovery, request ids and
// structured request logging.
func Use(e *echo.Echo, logger *slog.Logger) {
	e.HTTPErrorHandler = handler.ErrorHandler(e)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
}

// RegisterAPI registers every entity endpoint under /api/v1.  The group is
// wrapped by the rate limiter first and the response cache second, so a
// throttled request never reaches the cache.  PATCH is accepted wherever
// PUT is, and the legacy alias paths map to the same handlers.
func RegisterAPI(e *echo.Echo, h *handler.Handler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, logger *slog.Logger) {
	g := e.Group(Prefix)
	g.Use(middleware.NewTokenBucket(rlCfg, rdb, logger))
	g.Use(middleware.NewRedisCache(cacheCfg, rdb, logger))

	// Users
	g.GET("/users", h.ListUsers)
	g.POST("/users", h.CreateUser)
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id", h.UpdateUser)
	g.PATCH("/users/:id", h.UpdateUser)
	g.GET("/users/:id/places", h.UserPlaces)
	g.GET("/users/:id/reviews", h.UserReviews)

	// Countries are addressed by country code
	g.GET("/countries", h.ListCountries)
	g.POST("/countries", h.CreateCountry)
	g.GET("/countries/:code", h.GetCountry)
	g.PUT("/countries/:code", h.UpdateCountry)
	g.PATCH("/countries/:code", h.UpdateCountry)
	g.GET("/countries/:code/cities", h.CountryCities)

	// Cities
	g.GET("/cities", h.ListCities)
	g.POST("/cities", h.CreateCity)
	g.GET("/cities/:id", h.GetCity)
	g.PUT("/cities/:id", h.UpdateCity)
	g.PATCH("/cities/:id", h.UpdateCity)
	g.GET("/cities/:id/country", h.CityCountry)
	g.GET("/cities/:id/places", h.CityPlaces)

	// Amenities
	g.GET("/amenities", h.ListAmenities)
	g.POST("/amenities", h.CreateAmenity)
	g.GET("/amenities/:id", h.GetAmenity)
	g.PUT("/amenities/:id", h.UpdateAmenity)
	g.PATCH("/amenities/:id", h.UpdateAmenity)
	g.GET("/amenities/:id/places", h.AmenityPlaces)

	// Places
	g.GET("/places", h.ListPlaces)
	g.POST("/places", h.CreatePlace)
	g.GET("/places/:id", h.GetPlace)
	g.PUT("/places/:id", h.UpdatePlace)
	g.PATCH("/places/:id", h.UpdatePlace)
	g.GET("/places/:id/user", h.PlaceHost)
	g.GET("/places/:id/city", h.PlaceCity)
	g.GET("/places/:id/reviews", h.PlaceReviews)
	g.GET("/places/:id/review", h.PlaceReviews)
	g.GET("/places/:id/amenities", h.PlaceAmenities)
	g.GET("/places/:id/places_amenities", h.PlaceAmenities)
	g.POST("/places/:id/amenities/:amenity_id", h.AddPlaceAmenity)

	// Reviews
	g.GET("/reviews", h.ListReviews)
	g.POST("/reviews", h.CreateReview)
	g.GET("/reviews/:id", h.GetReview)
	g.PUT("/reviews/:id", h.UpdateReview)
	g.PATCH("/reviews/:id", h.UpdateReview)
	g.GET("/reviews/:id/user", h.ReviewUser)
	g.GET("/reviews/:id/users", h.ReviewUser)
	g.GET("/reviews/:id/place", h.ReviewPlace)
	g.GET("/reviews/:id/places", h.ReviewPlace)
}
