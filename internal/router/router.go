package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/docusmart/docusmart-server/internal/handler"    // import the handlers that implement business logic
    "github.com/docusmart/docusmart-server/internal/middleware" // import middleware for token authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication and
// carry no rate limiting or caching.  Currently it exposes only a health
// check, used by load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration and login.  Both are unauthenticated
// by nature and sit behind the Redis token bucket to slow down credential
// stuffing; limit is a no-op middleware when Redis is unavailable.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
    e.POST("/registro", a.Register, limit)
    e.POST("/login", a.Login, limit)
}

// RegisterPublic registers the unauthenticated catalog reads: genre
// reference data, documentary detail and comment listings.  These are the
// only routes fronted by the response cache; everything authenticated
// bypasses it.  The flat /comentarios/:documentalId path is the original
// API's shape and is kept as an alias of the nested route.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler, cm *handler.CommentHandler, cache echo.MiddlewareFunc) {
    e.GET("/generos", cat.ListGenres, cache)
    e.GET("/documental/:id", cat.GetDocumentary, cache)
    e.GET("/documental/:id/comentarios", cm.ListByDocumentary, cache)
    e.GET("/comentarios/:documentalId", cm.ListByDocumentary, cache)
}

// RegisterUser registers every route acting on behalf of an authenticated
// user.  The acting user id is always taken from the verified token; none
// of these routes accept a user id from the client.  Both roles pass the
// gate — any valid account may use its own profile, reactions and
// recommendations.
func RegisterUser(e *echo.Echo, p *handler.ProfileHandler, cat *handler.CatalogHandler, cm *handler.CommentHandler, rx *handler.ReactionHandler, jwtSecret string) {
    g := e.Group("", middleware.BearerAuth(jwtSecret))

    g.GET("/perfil", p.GetProfile)
    g.PUT("/perfil", p.UpdatePreferences)
    g.GET("/recomendaciones", cat.Recommendations)
    g.POST("/comentarios", cm.Create)
    g.POST("/reaccion", rx.Upsert)
    g.GET("/reaccion/:documentalId", rx.Get)
    g.DELETE("/reaccion/:documentalId", rx.Delete)
    g.POST("/visualizacion", rx.RecordView)
}
