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

type AircraftService interface {
	GetAll(ctx context.Context) ([]response.AircraftResponse, error)
	GetByAirline(ctx context.Context, airlineID string) ([]response.AircraftResponse, error)
	GetByID(ctx context.Context, id string) (*response.AircraftResponse, error)
	Create(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateAircraftRequest) (*response.AircraftResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateAircraftStatusRequest) (*response.AircraftResponse, error)
	Delete(ctx context.Context, id string) error
}

type aircraftService struct {
	repo repository.AircraftRepository
	log  *zap.Logger
}

func NewAircraftService(repo repository.AircraftRepository, log *zap.Logger) AircraftService {
	return &aircraftService{
		repo: repo,
		log:  log.With(zap.String("service", "aircraft")),
	}
}

// applySeatLayout checks the per-class counts and derives the total.
func applySeatLayout(a *entity.Aircraft) error {
	if a.EconomySeats < 0 || a.BusinessSeats < 0 || a.FirstClassSeats < 0 {
		return failure.BadRequest("seat counts must not be negative")
	}

	total := a.EconomySeats + a.BusinessSeats + a.FirstClassSeats
	if total <= 0 {
		return failure.BadRequest("aircraft must have at least one seat")
	}

	a.TotalSeats = total
	return nil
}

func (s *aircraftService) GetAll(ctx context.Context) ([]response.AircraftResponse, error) {
	fleet, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	return response.AircraftViewsToResponse(fleet), nil
}

func (s *aircraftService) GetByAirline(ctx context.Context, airlineID string) ([]response.AircraftResponse, error) {
	id, err := parseID("airline", airlineID)
	if err != nil {
		return nil, err
	}

	fleet, err := s.repo.FindByAirlineID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aircraft by airline: %w", err)
	}
	return response.AircraftViewsToResponse(fleet), nil
}

func (s *aircraftService) find(ctx context.Context, id uuid.UUID) (*entity.AircraftView, error) {
	aircraft, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	if aircraft == nil {
		return nil, failure.NotFound("aircraft %s not found", id)
	}
	return aircraft, nil
}

func (s *aircraftService) respond(ctx context.Context, id uuid.UUID) (*response.AircraftResponse, error) {
	aircraft, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.AircraftViewToResponse(aircraft)
	return &resp, nil
}

func (s *aircraftService) GetByID(ctx context.Context, id string) (*response.AircraftResponse, error) {
	aircraftID, err := parseID("aircraft", id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, aircraftID)
}

func (s *aircraftService) Create(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	airlineID, err := parseID("airline", req.AirlineID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	aircraft := &entity.Aircraft{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AirlineID:       airlineID,
		Model:           strings.TrimSpace(req.Model),
		Registration:    strings.ToUpper(strings.TrimSpace(req.Registration)),
		EconomySeats:    req.EconomySeats,
		BusinessSeats:   req.BusinessSeats,
		FirstClassSeats: req.FirstClassSeats,
		Status:          entity.AircraftStatusActive,
	}
	if req.Status != "" {
		aircraft.Status = entity.AircraftStatus(req.Status)
	}
	if err := applySeatLayout(aircraft); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, aircraft); err != nil {
		return nil, failure.FromPg(err, "aircraft")
	}

	s.log.Info("Aircraft created",
		zap.String("aircraft_id", aircraft.ID.String()),
		zap.String("registration", aircraft.Registration),
		zap.Int("total_seats", aircraft.TotalSeats),
	)

	return s.respond(ctx, aircraft.ID)
}

func (s *aircraftService) Update(ctx context.Context, id string, req *request.UpdateAircraftRequest) (*response.AircraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	aircraftID, err := parseID("aircraft", id)
	if err != nil {
		return nil, err
	}

	current, err := s.find(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	aircraft := current.Aircraft

	if req.AirlineID != nil {
		if aircraft.AirlineID, err = parseID("airline", *req.AirlineID); err != nil {
			return nil, err
		}
	}
	if req.Model != nil {
		aircraft.Model = strings.TrimSpace(*req.Model)
	}
	if req.Registration != nil {
		aircraft.Registration = strings.ToUpper(strings.TrimSpace(*req.Registration))
	}
	if req.EconomySeats != nil {
		aircraft.EconomySeats = *req.EconomySeats
	}
	if req.BusinessSeats != nil {
		aircraft.BusinessSeats = *req.BusinessSeats
	}
	if req.FirstClassSeats != nil {
		aircraft.FirstClassSeats = *req.FirstClassSeats
	}
	if req.Status != nil {
		aircraft.Status = entity.AircraftStatus(*req.Status)
	}
	if err := applySeatLayout(&aircraft); err != nil {
		return nil, err
	}
	aircraft.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &aircraft); err != nil {
		return nil, writeError(err, "aircraft", aircraft.ID)
	}

	return s.respond(ctx, aircraft.ID)
}

func (s *aircraftService) UpdateStatus(ctx context.Context, id string, req *request.UpdateAircraftStatusRequest) (*response.AircraftResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	aircraftID, err := parseID("aircraft", id)
	if err != nil {
		return nil, err
	}

	status := entity.AircraftStatus(req.Status)
	if err := s.repo.UpdateStatus(ctx, aircraftID, status); err != nil {
		return nil, writeError(err, "aircraft", aircraftID)
	}

	s.log.Info("Aircraft status changed",
		zap.String("aircraft_id", id),
		zap.String("status", req.Status),
	)

	return s.respond(ctx, aircraftID)
}

func (s *aircraftService) Delete(ctx context.Context, id string) error {
	aircraftID, err := parseID("aircraft", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, aircraftID); err != nil {
		return writeError(err, "aircraft", aircraftID)
	}
	return nil
}
