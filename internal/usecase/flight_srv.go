package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/dto/response"
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// searchableStatuses are the flights a passenger can still be booked onto from search.
var searchableStatuses = []entity.FlightStatus{entity.FlightStatusScheduled, entity.FlightStatusBoarding}

type FlightService interface {
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error)
	Search(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error)
	Stats(ctx context.Context) (*response.FlightStatsResponse, error)
	GetByID(ctx context.Context, id string) (*response.FlightDetailResponse, error)
	GetSeatMap(ctx context.Context, id string) (*response.FlightSeatMapResponse, error)
	Create(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateFlightRequest) (*response.FlightResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateFlightStatusRequest) (*response.FlightResponse, error)
	Delete(ctx context.Context, id string) error
}

type flightService struct {
	repo  *repository.Repository
	seats seatmap.Map
	now   func() time.Time
	log   *zap.Logger
}

func NewFlightService(repo *repository.Repository, seats seatmap.Map, log *zap.Logger) FlightService {
	return &flightService{
		repo:  repo,
		seats: seats,
		now:   time.Now,
		log:   log.With(zap.String("service", "flight")),
	}
}

// checkSchedule enforces the route and timing rules and derives the duration.
func checkSchedule(f *entity.Flight) error {
	if f.OriginAirportID == f.DestinationAirportID {
		return failure.BadRequest("origin and destination must be different airports")
	}

	duration := entity.DurationBetween(f.DepartureTime, f.ArrivalTime)
	if duration <= 0 {
		return failure.BadRequest("arrival time must be after departure time")
	}

	f.DurationMinutes = duration
	return nil
}

func (s *flightService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error) {
	flights, err := s.repo.Flight.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get flights: %w", err)
	}

	total, err := s.repo.Flight.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}

	return response.NewPaginatedResponse(response.FlightViewsToResponse(flights), req.Page, req.Limit(), total), nil
}

func (s *flightService) Search(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	filter := repository.FlightFilter{Statuses: searchableStatuses}

	var err error
	if filter.OriginID, err = parseOptionalID("origin airport", &req.Origin); err != nil {
		return nil, err
	}
	if filter.DestinationID, err = parseOptionalID("destination airport", &req.Destination); err != nil {
		return nil, err
	}
	if req.Date != "" {
		day, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			return nil, failure.BadRequest("date must use the YYYY-MM-DD format")
		}
		until := day.AddDate(0, 0, 1)
		filter.DepartFrom, filter.DepartUntil = &day, &until
	}

	flights, err := s.repo.Flight.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}

	ids := make([]uuid.UUID, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}
	booked, err := s.repo.Booking.CountActiveByFlights(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count booked seats: %w", err)
	}

	class := entity.SeatClass(req.SeatClass)
	results := make([]response.FlightResponse, 0, len(flights))
	for _, f := range flights {
		available := f.Aircraft.Capacities().Sub(booked[f.ID])
		if class.Valid() && available.Get(class) <= 0 {
			continue
		}

		resp := response.FlightViewToResponse(f)
		resp.AvailableSeats = &available
		results = append(results, resp)
	}

	return results, nil
}

func (s *flightService) Stats(ctx context.Context) (*response.FlightStatsResponse, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.repo.Flight.Stats(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("flight stats: %w", err)
	}

	counts := make(map[string]int, len(stats.StatusCounts))
	for status, n := range stats.StatusCounts {
		counts[string(status)] = n
	}

	return &response.FlightStatsResponse{
		Total:        stats.Total,
		StatusCounts: counts,
		TodayCount:   stats.TodayCount,
	}, nil
}

func (s *flightService) find(ctx context.Context, id uuid.UUID) (*entity.FlightView, error) {
	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if flight == nil {
		return nil, failure.NotFound("flight %s not found", id)
	}
	return flight, nil
}

func (s *flightService) respond(ctx context.Context, id uuid.UUID) (*response.FlightResponse, error) {
	flight, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.FlightViewToResponse(flight)
	return &resp, nil
}

func (s *flightService) GetByID(ctx context.Context, id string) (*response.FlightDetailResponse, error) {
	flightID, err := parseID("flight", id)
	if err != nil {
		return nil, err
	}

	flight, err := s.find(ctx, flightID)
	if err != nil {
		return nil, err
	}

	crew, err := s.repo.FlightCrew.FindByFlightID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("get flight crew: %w", err)
	}

	booked, err := s.repo.Booking.CountActiveByFlights(ctx, []uuid.UUID{flightID})
	if err != nil {
		return nil, fmt.Errorf("count booked seats: %w", err)
	}

	return &response.FlightDetailResponse{
		FlightResponse: response.FlightViewToResponse(flight),
		Crew:           response.FlightCrewViewsToResponse(crew),
		TakenSeats:     booked[flightID],
	}, nil
}

func (s *flightService) GetSeatMap(ctx context.Context, id string) (*response.FlightSeatMapResponse, error) {
	flightID, err := parseID("flight", id)
	if err != nil {
		return nil, err
	}

	flight, err := s.find(ctx, flightID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.Booking.FindTakenSeats(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("get taken seats: %w", err)
	}

	resp := &response.FlightSeatMapResponse{
		FlightID:     flight.ID.String(),
		FlightNumber: flight.FlightNumber,
		Sections:     make([]seatmap.Occupancy, 0, len(entity.SeatClasses)),
	}
	for _, class := range entity.SeatClasses {
		occ, err := s.seats.Occupancy(class, taken)
		if err != nil {
			return nil, fmt.Errorf("seat map for %s: %w", class, err)
		}
		resp.Sections = append(resp.Sections, occ)
	}

	return resp, nil
}

func (s *flightService) Create(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	flight := &entity.Flight{
		FlightNumber:    strings.ToUpper(strings.TrimSpace(req.FlightNumber)),
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		EconomyPrice:    req.EconomyPrice,
		BusinessPrice:   req.BusinessPrice,
		FirstClassPrice: req.FirstClassPrice,
		Gate:            req.Gate,
		Terminal:        req.Terminal,
		Status:          entity.FlightStatusScheduled,
	}
	if req.Status != "" {
		flight.Status = entity.FlightStatus(req.Status)
	}

	var err error
	if flight.AirlineID, err = parseID("airline", req.AirlineID); err != nil {
		return nil, err
	}
	if flight.AircraftID, err = parseID("aircraft", req.AircraftID); err != nil {
		return nil, err
	}
	if flight.OriginAirportID, err = parseID("origin airport", req.OriginAirportID); err != nil {
		return nil, err
	}
	if flight.DestinationAirportID, err = parseID("destination airport", req.DestinationAirportID); err != nil {
		return nil, err
	}
	if err := checkSchedule(flight); err != nil {
		return nil, err
	}

	now := time.Now()
	flight.Base = entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, failure.FromPg(err, "flight")
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("flight_number", flight.FlightNumber),
		zap.Time("departure_time", flight.DepartureTime),
	)

	return s.respond(ctx, flight.ID)
}

func (s *flightService) Update(ctx context.Context, id string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	flightID, err := parseID("flight", id)
	if err != nil {
		return nil, err
	}

	current, err := s.find(ctx, flightID)
	if err != nil {
		return nil, err
	}
	flight := current.Flight

	if req.FlightNumber != nil {
		flight.FlightNumber = strings.ToUpper(strings.TrimSpace(*req.FlightNumber))
	}
	if req.AirlineID != nil {
		if flight.AirlineID, err = parseID("airline", *req.AirlineID); err != nil {
			return nil, err
		}
	}
	if req.AircraftID != nil {
		if flight.AircraftID, err = parseID("aircraft", *req.AircraftID); err != nil {
			return nil, err
		}
	}
	if req.OriginAirportID != nil {
		if flight.OriginAirportID, err = parseID("origin airport", *req.OriginAirportID); err != nil {
			return nil, err
		}
	}
	if req.DestinationAirportID != nil {
		if flight.DestinationAirportID, err = parseID("destination airport", *req.DestinationAirportID); err != nil {
			return nil, err
		}
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}
	if req.EconomyPrice != nil {
		flight.EconomyPrice = *req.EconomyPrice
	}
	if req.BusinessPrice != nil {
		flight.BusinessPrice = *req.BusinessPrice
	}
	if req.FirstClassPrice != nil {
		flight.FirstClassPrice = *req.FirstClassPrice
	}
	if req.Gate != nil {
		flight.Gate = req.Gate
	}
	if req.Terminal != nil {
		flight.Terminal = req.Terminal
	}
	if req.Status != nil {
		flight.Status = entity.FlightStatus(*req.Status)
	}
	if err := checkSchedule(&flight); err != nil {
		return nil, err
	}
	flight.UpdatedAt = time.Now()

	if err := s.repo.Flight.Update(ctx, &flight); err != nil {
		return nil, writeError(err, "flight", flight.ID)
	}

	return s.respond(ctx, flight.ID)
}

func (s *flightService) UpdateStatus(ctx context.Context, id string, req *request.UpdateFlightStatusRequest) (*response.FlightResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	flightID, err := parseID("flight", id)
	if err != nil {
		return nil, err
	}

	delay := 0
	if req.DelayMinutes != nil {
		delay = *req.DelayMinutes
	}

	status := entity.FlightStatus(req.Status)
	if err := s.repo.Flight.UpdateStatus(ctx, flightID, status, delay); err != nil {
		return nil, writeError(err, "flight", flightID)
	}

	s.log.Info("Flight status changed",
		zap.String("flight_id", id),
		zap.String("status", req.Status),
		zap.Int("delay_minutes", delay),
	)

	return s.respond(ctx, flightID)
}

func (s *flightService) Delete(ctx context.Context, id string) error {
	flightID, err := parseID("flight", id)
	if err != nil {
		return err
	}

	if err := s.repo.Flight.Delete(ctx, flightID); err != nil {
		return writeError(err, "flight", flightID)
	}
	return nil
}
