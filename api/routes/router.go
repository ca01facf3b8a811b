package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/controllers"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/middleware"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/auth"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/booking"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/catalog"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/faq"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/leads"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/menu"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/packages"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/auth/session"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/metrics"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/redis"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	Session      *session.Manager
	Metrics      *metrics.HTTPMetrics
	PromGatherer prometheus.Gatherer

	Auth     auth.Service
	Catalog  catalog.Service
	Menu     menu.Service
	Packages packages.Service
	FAQ      faq.Service
	Leads    leads.Service
	Booking  booking.Service
}

// NewRouter assembles the HTTP surface.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.Metrics),
	)

	leadPolicy := middleware.NewIntakeRateLimitPolicy(
		"lead",
		cfg.RateLimit.LeadWindow,
		cfg.RateLimit.LeadIPLimit,
		cfg.RateLimit.LeadEmailLimit,
	)
	loginPolicy := middleware.NewIntakeRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		cfg.RateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.PromGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit, deps.Redis, logg))

		r.Get("/items", controllers.ListItems(deps.Catalog, logg))
		r.Get("/items/{idOrSlug}", controllers.GetItem(deps.Catalog, logg))
		r.Get("/categories", controllers.ListCategories(deps.Catalog, logg))
		r.Get("/menu", controllers.ListMenu(deps.Menu, logg))
		r.Get("/packages", controllers.ListPackages(deps.Packages, logg))
		r.Get("/packages/{idOrSlug}", controllers.GetPackage(deps.Packages, logg))
		r.Get("/faq", controllers.ListFAQ(deps.FAQ, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Booking, logg))
			r.Delete("/", controllers.ClearCart(deps.Booking, logg))
			r.Post("/items", controllers.AddCartItem(deps.Booking, logg))
			r.Put("/items/{itemId}", controllers.SetCartQuantity(deps.Booking, logg))
			r.Delete("/items/{itemId}", controllers.RemoveCartItem(deps.Booking, logg))
		})

		r.With(middleware.IntakeRateLimit(leadPolicy, deps.Redis, logg)).
			Post("/leads", controllers.SubmitLead(deps.Leads, logg))

		r.With(middleware.IntakeRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/auth/login", controllers.AuthLogin(deps.Auth, cfg, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Session, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Post("/auth/logout", controllers.AuthLogout(deps.Auth, cfg, logg))
		r.Get("/auth/me", controllers.AuthMe(deps.Auth, logg))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateItem(deps.Catalog, logg))
			r.Put("/{itemId}", controllers.AdminUpdateItem(deps.Catalog, logg))
			r.Delete("/{itemId}", controllers.AdminDeleteItem(deps.Catalog, logg))
		})

		r.Route("/menu", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateMenuItem(deps.Menu, logg))
			r.Put("/{menuItemId}", controllers.AdminUpdateMenuItem(deps.Menu, logg))
			r.Delete("/{menuItemId}", controllers.AdminDeleteMenuItem(deps.Menu, logg))
		})

		r.Route("/packages", func(r chi.Router) {
			r.Post("/", controllers.AdminCreatePackage(deps.Packages, logg))
			r.Put("/{packageId}", controllers.AdminUpdatePackage(deps.Packages, logg))
			r.Delete("/{packageId}", controllers.AdminDeletePackage(deps.Packages, logg))
		})

		r.Route("/faq", func(r chi.Router) {
			r.Get("/", controllers.AdminListFAQ(deps.FAQ, logg))
			r.Post("/", controllers.AdminCreateFAQ(deps.FAQ, logg))
			r.Put("/{faqId}", controllers.AdminUpdateFAQ(deps.FAQ, logg))
			r.Delete("/{faqId}", controllers.AdminDeleteFAQ(deps.FAQ, logg))
		})

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", controllers.AdminListLeads(deps.Leads, logg))
			r.Get("/{leadId}", controllers.AdminGetLead(deps.Leads, logg))
			r.Put("/{leadId}", controllers.AdminUpdateLead(deps.Leads, logg))
			r.Patch("/{leadId}/status", controllers.AdminUpdateLeadStatus(deps.Leads, logg))
			r.Delete("/{leadId}", controllers.AdminDeleteLead(deps.Leads, logg))
		})
	})

	return r
}
