package wire

import (
	"net/http"

	"airline-backoffice/internal/adaptor"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/middleware"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards are the middlewares protecting write routes. Both pass requests
// through when auth is disabled.
type guards struct {
	staff func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, db adaptor.Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	authenticate := middleware.AuthSession(repo.Session, repo.Staff, logger)
	admin := middleware.Admin(logger)
	g := guards{
		staff: middleware.When(config.Auth.Enabled, authenticate),
		admin: middleware.When(config.Auth.Enabled, authenticate, admin),
	}

	r.Get("/health", handler.Health.Check)

	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth, authenticate, admin)
		wireAirline(r, handler.Airline, g)
		wireAirport(r, handler.Airport, g)
		wireAircraft(r, handler.Aircraft, g)
		wireFlight(r, handler.Flight, g)
		wirePassenger(r, handler.Passenger, g)
		wireBooking(r, handler.Booking, g)
		wireCrew(r, handler.Crew, g)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
