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
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PassengerService interface {
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error)
	Search(ctx context.Context, term string) ([]response.PassengerResponse, error)
	GetByID(ctx context.Context, id string) (*response.PassengerDetailResponse, error)
	Create(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error)
	Update(ctx context.Context, id string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error)
	Delete(ctx context.Context, id string) error
}

type passengerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPassengerService(repo *repository.Repository, log *zap.Logger) PassengerService {
	return &passengerService{
		repo: repo,
		log:  log.With(zap.String("service", "passenger")),
	}
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *value, time.UTC)
	if err != nil {
		return nil, failure.BadRequest("%s must use the YYYY-MM-DD format", field)
	}
	return &t, nil
}

func (s *passengerService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error) {
	passengers, err := s.repo.Passenger.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get passengers: %w", err)
	}

	total, err := s.repo.Passenger.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count passengers: %w", err)
	}

	data := make([]response.PassengerResponse, len(passengers))
	for i, p := range passengers {
		data[i] = response.PassengerViewToResponse(p)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *passengerService) Search(ctx context.Context, term string) ([]response.PassengerResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []response.PassengerResponse{}, nil
	}

	passengers, err := s.repo.Passenger.Search(ctx, term, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search passengers: %w", err)
	}
	return response.PassengersToResponse(passengers), nil
}

func (s *passengerService) find(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger: %w", err)
	}
	if passenger == nil {
		return nil, failure.NotFound("passenger %s not found", id)
	}
	return passenger, nil
}

func (s *passengerService) GetByID(ctx context.Context, id string) (*response.PassengerDetailResponse, error) {
	passengerID, err := parseID("passenger", id)
	if err != nil {
		return nil, err
	}

	passenger, err := s.find(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByPassengerID(ctx, passengerID)
	if err != nil {
		return nil, fmt.Errorf("get passenger bookings: %w", err)
	}

	return &response.PassengerDetailResponse{
		PassengerResponse: response.PassengerToResponse(passenger),
		Bookings:          response.BookingViewsToResponse(bookings),
	}, nil
}

func (s *passengerService) Create(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	passenger := &entity.Passenger{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
		DateOfBirth:    dob,
	}

	if err := s.repo.Passenger.Create(ctx, passenger); err != nil {
		return nil, failure.FromPg(err, "passenger")
	}

	s.log.Info("Passenger created", zap.String("passenger_id", passenger.ID.String()))

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

func (s *passengerService) Update(ctx context.Context, id string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	passengerID, err := parseID("passenger", id)
	if err != nil {
		return nil, err
	}

	passenger, err := s.find(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		passenger.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		passenger.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		passenger.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		passenger.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.PassportNumber != nil {
		passenger.PassportNumber = req.PassportNumber
	}
	if req.Nationality != nil {
		passenger.Nationality = req.Nationality
	}
	if req.DateOfBirth != nil {
		if passenger.DateOfBirth, err = parseDate("date_of_birth", req.DateOfBirth); err != nil {
			return nil, err
		}
	}
	passenger.UpdatedAt = time.Now()

	if err := s.repo.Passenger.Update(ctx, passenger); err != nil {
		return nil, writeError(err, "passenger", passengerID)
	}

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

// Delete refuses while the passenger still holds active bookings.
func (s *passengerService) Delete(ctx context.Context, id string) error {
	passengerID, err := parseID("passenger", id)
	if err != nil {
		return err
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, passengerID)
	if err != nil {
		return fmt.Errorf("get passenger: %w", err)
	}
	if passenger == nil {
		return failure.NotFound("passenger %s not found", passengerID)
	}

	count, err := s.repo.Booking.CountActiveByPassenger(ctx, passengerID)
	if err != nil {
		return fmt.Errorf("count passenger bookings: %w", err)
	}
	if count > 0 {
		return failure.BadRequest("Cannot delete passenger with active bookings")
	}

	if err := s.repo.Passenger.Delete(ctx, passengerID); err != nil {
		return writeError(err, "passenger", passengerID)
	}

	s.log.Info("Passenger deleted", zap.String("passenger_id", id))
	return nil
}
