package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/http/handlers"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Members        *handlers.MembersHandler
	Assets         *handlers.AssetsHandler
	Posts          *handlers.PostsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every protected group runs the auth
// gate first; admin-only groups add the role gate on top of it.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/sunday-school")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Patch("/update-me", cfg.Auth.UpdateMe)
	authProtected.Patch("/change-password", cfg.Auth.ChangePassword)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	users.Get("/", cfg.Members.List)
	users.Post("/", cfg.Members.Create)
	users.Put("/:id", cfg.Members.Update)
	users.Delete("/:id", cfg.Members.Delete)

	assets := api.Group("/assets", cfg.AuthMiddleware.Handle)
	assets.Get("/", cfg.Assets.List)
	assetWrites := assets.Group("", auth.RequireRole(domain.RoleAdmin))
	assetWrites.Post("/", cfg.Assets.Create)
	assetWrites.Put("/:id", cfg.Assets.Update)
	assetWrites.Delete("/:id", cfg.Assets.Delete)

	posts := api.Group("/posts", cfg.AuthMiddleware.Handle)
	posts.Get("/", cfg.Posts.List)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Post("/", cfg.Posts.Create)
	posts.Put("/:id", cfg.Posts.Update)
	posts.Delete("/:id", cfg.Posts.Delete)
	posts.Post("/:id/like", cfg.Posts.Like)

	comments := api.Group("/comments", cfg.AuthMiddleware.Handle)
	comments.Get("/post/:postId", cfg.Comments.ListByPost)
	comments.Post("/", cfg.Comments.Create)
	comments.Post("/:id/like", cfg.Comments.Like)
}
