package http

import (
	"net/http"
	"slices"

	"github.com/game-admin-api/internal/application/audit"
	"github.com/game-admin-api/internal/application/auth"
	"github.com/game-admin-api/internal/application/cascade"
	"github.com/game-admin-api/internal/application/catalog"
	"github.com/game-admin-api/internal/application/gamedata"
	"github.com/game-admin-api/internal/application/itemimage"
	"github.com/game-admin-api/internal/application/otp"
	"github.com/game-admin-api/internal/application/report"
	"github.com/game-admin-api/internal/config"
	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/infrastructure/postgres"
	"github.com/game-admin-api/internal/transport/http/handler"
	appmiddleware "github.com/game-admin-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: !slices.Contains(cfg.AllowedOrigins, "*"),
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 on the credential endpoints.
	sensitiveRL := deps.RateLimiter
	if sensitiveRL == nil {
		sensitiveRL = appmiddleware.NewRateLimiter(rate.Limit(5), 10)
	}

	trail := audit.NewTrail(deps.AuditSink)
	deleter := cascade.NewService(postgres.NewCascadeStore(deps.DB), trail)

	playerRepo := postgres.NewPlayerRepo(deps.DB)
	itemRepo := postgres.NewItemRepo(deps.DB)

	authSvc := auth.NewService(playerRepo, otp.NewService(deps.OTPStore), deps.Mailer, deps.JWTProvider, cfg.OTPLifetime)
	players := catalog.NewService[domain.Player, *domain.Player]("player", playerRepo, deleter, trail, catalog.PlayerHooks()...)
	items := catalog.NewService[domain.Item, *domain.Item]("item", itemRepo, deleter, trail)
	gameSvc := gamedata.NewService(postgres.NewGameData(deps.DB), items, authSvc, cfg.WeaponTypeName)
	reportSvc := report.NewService(postgres.NewReports(deps.DB), trail)
	imageSvc := itemimage.NewService(deps.Objects, itemRepo, trail)

	healthH := handler.NewHealthHandler(deps.DB)
	authH := handler.NewAuthHandler(authSvc, cfg.JWTExpiry, cfg.CookieSecure)
	gameH := handler.NewGameHandler(gameSvc)
	reportH := handler.NewReportHandler(reportSvc)
	imageH := handler.NewItemImageHandler(imageSvc)

	authMw := appmiddleware.Auth(deps.JWTProvider)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Route("/auth", func(r chi.Router) {
			r.Use(sensitiveRL.Limit)
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)
			r.Post("/password-reset/{action}", authH.PasswordReset)
		})
		r.With(sensitiveRL.Limit).Post("/admin/session", authH.CreateAdminSession)
		r.Delete("/admin/session", authH.DeleteAdminSession)

		// ── Signed-in players ────────────────────────────────────────────────
		r.Route("/game", func(r chi.Router) {
			r.Use(authMw)
			gameH.Routes(r)
		})

		// ── Admin console ────────────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/admin/dashboard", reportH.Dashboard)
			r.Get("/admin/reports", reportH.Reports)
			r.Get("/admin/audit-logs", reportH.AuditLogs)

			r.Route("/admin/players", handler.NewCatalogHandler[domain.Player, *domain.Player](players).Routes)
			r.Route("/admin/items", func(r chi.Router) {
				handler.NewCatalogHandler[domain.Item, *domain.Item](items).Routes(r)
				r.Post("/{id}/image", imageH.Upload)
			})
			mountCatalog[domain.ItemType](r, "item-types", "item-type", postgres.ItemTypesSpec, deps, deleter, trail)
			mountCatalog[domain.Quest](r, "quests", "quest", postgres.QuestsSpec, deps, deleter, trail)
			mountCatalog[domain.Monster](r, "monsters", "monster", postgres.MonstersSpec, deps, deleter, trail)
			mountCatalog[domain.Vehicle](r, "vehicles", "vehicle", postgres.VehiclesSpec, deps, deleter, trail)
			mountCatalog[domain.Resource](r, "resources", "resource", postgres.ResourcesSpec, deps, deleter, trail)
			mountCatalog[domain.Character](r, "characters", "character", postgres.CharactersSpec, deps, deleter, trail)
			mountCatalog[domain.GameMode](r, "game-modes", "game-mode", postgres.GameModesSpec, deps, deleter, trail)
		})
	})

	return r
}

// mountCatalog wires a table gateway, a catalog service and its handler under
// /admin/<plural>.
func mountCatalog[T any, PT interface {
	*T
	domain.Entity
}](r chi.Router, plural, kind string, spec postgres.TableSpec, deps *Deps, deleter cascade.Service, trail *audit.Trail) {
	repo := postgres.NewTable[T, PT](deps.DB, spec)
	svc := catalog.NewService[T, PT](kind, repo, deleter, trail)
	r.Route("/admin/"+plural, handler.NewCatalogHandler[T, PT](svc).Routes)
}
