package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"remoteready/internal/api/blogpost"
	"remoteready/internal/api/company"
	"remoteready/internal/api/health"
	"remoteready/internal/api/user"
	"remoteready/internal/api/userpost"
	"remoteready/internal/domain"
	"remoteready/internal/pkg/cache"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/middleware"
)

// Handlers reúne os handlers já construídos por injeção de dependências.
type Handlers struct {
	User     *user.Handler
	Company  *company.Handler
	BlogPost *blogpost.Handler
	UserPost *userpost.Handler
	Health   *health.Handler
}

// Options controla os componentes transversais do roteador.
type Options struct {
	Tokens         middleware.TokenValidator
	RateCounter    cache.WindowCounter
	RateLimit      middleware.RateLimitPolicy
	SwaggerEnabled bool
	Logger         logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(middleware.HTTPMetrics)
	r.Use(chimw.Recoverer)

	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	if opts.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	authenticated := middleware.NewAuthMiddleware(opts.Tokens)
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimiter(opts.RateCounter, opts.RateLimit, opts.Logger))

		r.Route("/usuario", func(r chi.Router) {
			r.Post("/autenticar", h.User.Authenticate)
			r.Post("/", h.User.Create)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.GetByID)

				r.With(adminOnly).Put("/{id}", h.User.Update)
				r.With(adminOnly).Delete("/{id}", h.User.Delete)
			})
		})

		r.Route("/empresa", func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/", h.Company.List)
			r.Get("/contratando", h.Company.ListHiring)
			r.Get("/area/{area}", h.Company.ListByArea)
			r.Get("/{id}", h.Company.GetByID)

			r.With(adminOnly).Post("/", h.Company.Create)
			r.With(adminOnly).Put("/{id}", h.Company.Update)
			r.With(adminOnly).Delete("/{id}", h.Company.Delete)
		})

		r.Route("/blogpost", func(r chi.Router) {
			r.Get("/", h.BlogPost.List)
			r.Get("/recentes", h.BlogPost.ListRecent)
			r.Get("/tag/{tag}", h.BlogPost.ListByTag)
			r.Get("/{id}", h.BlogPost.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(authenticated, adminOnly)
				r.Post("/", h.BlogPost.Create)
				r.Put("/{id}", h.BlogPost.Update)
				r.Delete("/{id}", h.BlogPost.Delete)
			})
		})

		r.Route("/userpost", func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/marcar-lido", h.UserPost.MarkAsRead)
			r.Get("/usuario/{idUsuario}", h.UserPost.ListByUser)
			r.Get("/progresso/{idUsuario}", h.UserPost.Progress)
			r.Get("/certificado/{idUsuario}", h.UserPost.Certificate)
			r.Get("/{id}", h.UserPost.GetByID)

			r.With(adminOnly).Get("/", h.UserPost.List)
			r.With(adminOnly).Put("/{id}", h.UserPost.UpdateStatus)
			r.With(adminOnly).Delete("/{id}", h.UserPost.Delete)
		})
	})

	return r
}
