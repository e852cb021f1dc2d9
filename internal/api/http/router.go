package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/api/http/handlers"
	"github.com/markethub/marketplace-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Token          *handlers.TokenHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	Reviews        *handlers.ReviewsHandler
	Coupons        *handlers.CouponsHandler
	Payments       *handlers.PaymentsHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Auth placement mirrors the original
// contract: several mutation routes are deliberately open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authed := cfg.AuthMiddleware.Handle

	app.Get("/", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Token.Issue)

	app.Get("/users", authed, cfg.Users.List)
	app.Get("/users/admin/:email", authed, auth.RequireSelf(), cfg.Users.CheckAdmin)
	app.Get("/users/moderator/:email", authed, auth.RequireSelf(), cfg.Users.CheckModerator)
	app.Post("/users", cfg.Users.Create)
	app.Patch("/users/moderator/:id", cfg.Users.MakeModerator)
	app.Patch("/users/admin/:id", cfg.Users.MakeAdmin)
	app.Delete("/users/:id", cfg.Users.Delete)

	app.Post("/products", cfg.Products.Create)
	app.Get("/products", cfg.Products.List)
	app.Get("/myProducts", cfg.Products.ListMine)
	app.Get("/products/:id", cfg.Products.Get)
	app.Patch("/products/:id", cfg.Products.Update)
	app.Delete("/products/:id", cfg.Products.Delete)

	app.Get("/api/acceptedProducts", cfg.Products.ListAccepted)
	app.Get("/api/featuredProducts", cfg.Products.ListFeatured)
	app.Get("/searchProducts/:search", cfg.Products.Search)

	app.Patch("/api/status/:productId", cfg.Products.SetStatus)
	app.Patch("/api/featured/:productId", cfg.Products.SetFeatured)
	app.Patch("/api/report/:productId", cfg.Products.SetReport)
	app.Patch("/api/upvote/:productId", cfg.Products.SetVote)

	app.Get("/api/reportedProducts", authed, cfg.Products.ListReported)
	app.Delete("/api/reportedProduct/:productId", authed, cfg.Products.Delete)

	app.Post("/api/reviews", cfg.Reviews.Create)
	app.Get("/api/reviews/:id", cfg.Reviews.ListByProduct)

	app.Get("/adminStatistic", authed, cfg.Stats.Statistics)

	app.Post("/api/validate-coupon", authed, cfg.Coupons.Validate)
	app.Get("/coupons", authed, cfg.Coupons.List)
	app.Delete("/coupons/:id", cfg.Coupons.Delete)

	app.Post("/create-payment-intent", cfg.Payments.CreateIntent)
	app.Get("/payments/:email", authed, auth.RequireSelf(), cfg.Payments.CheckSubscription)
	app.Post("/payments", cfg.Payments.Record)
}
