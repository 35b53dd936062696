package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/failure"
	"airline-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Auth      *AuthHandler
	Airline   *AirlineHandler
	Airport   *AirportHandler
	Aircraft  *AircraftHandler
	Flight    *FlightHandler
	Passenger *PassengerHandler
	Booking   *BookingHandler
	Crew      *CrewHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Airline:   NewAirlineHandler(service.Airline, log),
		Airport:   NewAirportHandler(service.Airport, log),
		Aircraft:  NewAircraftHandler(service.Aircraft, log),
		Flight:    NewFlightHandler(service.Flight, log),
		Passenger: NewPassengerHandler(service.Passenger, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Crew:      NewCrewHandler(service.Crew, log),
		Health:    NewHealthHandler(db, log),
	}
}

// decodeAndValidate reads a JSON body into dst and writes the 400 response
// itself when that fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// handleServiceError writes the status carried by err. Internal errors are
// logged and reported without detail.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError {
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.Int("status", code))

	utils.ResponseError(w, code, err.Error())
}
