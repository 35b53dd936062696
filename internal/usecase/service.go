package usecase

import (
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Airline   AirlineService
	Airport   AirportService
	Aircraft  AircraftService
	Flight    FlightService
	Passenger PassengerService
	Booking   BookingService
	Crew      CrewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Airline:   NewAirlineService(repo.Airline, log),
		Airport:   NewAirportService(repo.Airport, log),
		Aircraft:  NewAircraftService(repo.Aircraft, log),
		Flight:    NewFlightService(repo, seatmap.Default, log),
		Passenger: NewPassengerService(repo, log),
		Booking:   NewBookingService(repo, seatmap.Default, log),
		Crew:      NewCrewService(repo, log),
	}
}
