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

type AirlineService interface {
	GetAll(ctx context.Context) ([]response.AirlineResponse, error)
	GetByID(ctx context.Context, id string) (*response.AirlineResponse, error)
	Create(ctx context.Context, req *request.CreateAirlineRequest) (*response.AirlineResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateAirlineRequest) (*response.AirlineResponse, error)
	ToggleActive(ctx context.Context, id string) (*response.AirlineResponse, error)
	Delete(ctx context.Context, id string) error
}

type airlineService struct {
	repo repository.AirlineRepository
	log  *zap.Logger
}

func NewAirlineService(repo repository.AirlineRepository, log *zap.Logger) AirlineService {
	return &airlineService{
		repo: repo,
		log:  log.With(zap.String("service", "airline")),
	}
}

func (s *airlineService) GetAll(ctx context.Context) ([]response.AirlineResponse, error) {
	airlines, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airlines: %w", err)
	}

	out := make([]response.AirlineResponse, len(airlines))
	for i, a := range airlines {
		out[i] = response.AirlineToResponse(a)
	}
	return out, nil
}

func (s *airlineService) find(ctx context.Context, id string) (*entity.Airline, error) {
	airlineID, err := parseID("airline", id)
	if err != nil {
		return nil, err
	}

	airline, err := s.repo.FindByID(ctx, airlineID)
	if err != nil {
		return nil, fmt.Errorf("get airline: %w", err)
	}
	if airline == nil {
		return nil, failure.NotFound("airline %s not found", id)
	}
	return airline, nil
}

func (s *airlineService) GetByID(ctx context.Context, id string) (*response.AirlineResponse, error) {
	airline, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) Create(ctx context.Context, req *request.CreateAirlineRequest) (*response.AirlineResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	airline := &entity.Airline{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     strings.TrimSpace(req.Name),
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Logo:     req.Logo,
		Country:  strings.TrimSpace(req.Country),
		IsActive: true,
	}
	if req.IsActive != nil {
		airline.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, airline); err != nil {
		return nil, failure.FromPg(err, "airline")
	}

	s.log.Info("Airline created",
		zap.String("airline_id", airline.ID.String()),
		zap.String("code", airline.Code),
	)

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) Update(ctx context.Context, id string, req *request.UpdateAirlineRequest) (*response.AirlineResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	airline, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		airline.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		airline.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Logo != nil {
		airline.Logo = req.Logo
	}
	if req.Country != nil {
		airline.Country = strings.TrimSpace(*req.Country)
	}
	if req.IsActive != nil {
		airline.IsActive = *req.IsActive
	}
	airline.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, airline); err != nil {
		return nil, writeError(err, "airline", airline.ID)
	}

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) ToggleActive(ctx context.Context, id string) (*response.AirlineResponse, error) {
	airlineID, err := parseID("airline", id)
	if err != nil {
		return nil, err
	}

	airline, err := s.repo.ToggleActive(ctx, airlineID)
	if err != nil {
		return nil, fmt.Errorf("toggle airline: %w", err)
	}
	if airline == nil {
		return nil, failure.NotFound("airline %s not found", id)
	}

	s.log.Info("Airline toggled",
		zap.String("airline_id", airline.ID.String()),
		zap.Bool("is_active", airline.IsActive),
	)

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) Delete(ctx context.Context, id string) error {
	airlineID, err := parseID("airline", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, airlineID); err != nil {
		return writeError(err, "airline", airlineID)
	}
	return nil
}
