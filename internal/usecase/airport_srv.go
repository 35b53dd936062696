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

type AirportService interface {
	GetAll(ctx context.Context) ([]response.AirportResponse, error)
	Search(ctx context.Context, term string) ([]response.AirportResponse, error)
	GetByID(ctx context.Context, id string) (*response.AirportResponse, error)
	Create(ctx context.Context, req *request.CreateAirportRequest) (*response.AirportResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateAirportRequest) (*response.AirportResponse, error)
	Delete(ctx context.Context, id string) error
}

type airportService struct {
	repo repository.AirportRepository
	log  *zap.Logger
}

func NewAirportService(repo repository.AirportRepository, log *zap.Logger) AirportService {
	return &airportService{
		repo: repo,
		log:  log.With(zap.String("service", "airport")),
	}
}

func airportsToResponse(airports []*entity.Airport) []response.AirportResponse {
	out := make([]response.AirportResponse, len(airports))
	for i, a := range airports {
		out[i] = response.AirportToResponse(a)
	}
	return out
}

func (s *airportService) GetAll(ctx context.Context) ([]response.AirportResponse, error) {
	airports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airports: %w", err)
	}
	return airportsToResponse(airports), nil
}

// Search returns at most ten airports. An empty term matches nothing.
func (s *airportService) Search(ctx context.Context, term string) ([]response.AirportResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []response.AirportResponse{}, nil
	}

	airports, err := s.repo.Search(ctx, term, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search airports: %w", err)
	}
	return airportsToResponse(airports), nil
}

func (s *airportService) find(ctx context.Context, id string) (*entity.Airport, error) {
	airportID, err := parseID("airport", id)
	if err != nil {
		return nil, err
	}

	airport, err := s.repo.FindByID(ctx, airportID)
	if err != nil {
		return nil, fmt.Errorf("get airport: %w", err)
	}
	if airport == nil {
		return nil, failure.NotFound("airport %s not found", id)
	}
	return airport, nil
}

func (s *airportService) GetByID(ctx context.Context, id string) (*response.AirportResponse, error) {
	airport, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) Create(ctx context.Context, req *request.CreateAirportRequest) (*response.AirportResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	airport := &entity.Airport{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     strings.TrimSpace(req.Name),
		Code:     strings.ToUpper(req.Code),
		City:     strings.TrimSpace(req.City),
		Country:  strings.TrimSpace(req.Country),
		Timezone: req.Timezone,
	}

	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, failure.FromPg(err, "airport")
	}

	s.log.Info("Airport created",
		zap.String("airport_id", airport.ID.String()),
		zap.String("code", airport.Code),
	)

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) Update(ctx context.Context, id string, req *request.UpdateAirportRequest) (*response.AirportResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	airport, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		airport.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		airport.Code = strings.ToUpper(*req.Code)
	}
	if req.City != nil {
		airport.City = strings.TrimSpace(*req.City)
	}
	if req.Country != nil {
		airport.Country = strings.TrimSpace(*req.Country)
	}
	if req.Timezone != nil {
		airport.Timezone = *req.Timezone
	}
	airport.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, airport); err != nil {
		return nil, writeError(err, "airport", airport.ID)
	}

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) Delete(ctx context.Context, id string) error {
	airportID, err := parseID("airport", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, airportID); err != nil {
		return writeError(err, "airport", airportID)
	}
	return nil
}
