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

type CrewService interface {
	GetAll(ctx context.Context) ([]response.CrewResponse, error)
	GetAvailable(ctx context.Context) ([]response.CrewResponse, error)
	GetByFlight(ctx context.Context, flightID string) ([]response.FlightCrewResponse, error)
	GetByID(ctx context.Context, id string) (*response.CrewDetailResponse, error)
	Create(ctx context.Context, req *request.CreateCrewRequest) (*response.CrewResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateCrewRequest) (*response.CrewResponse, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, req *request.AssignCrewRequest) (*response.FlightCrewResponse, error)
	Unassign(ctx context.Context, assignmentID string) error
}

type crewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCrewService(repo *repository.Repository, log *zap.Logger) CrewService {
	return &crewService{
		repo: repo,
		log:  log.With(zap.String("service", "crew")),
	}
}

func (s *crewService) GetAll(ctx context.Context) ([]response.CrewResponse, error) {
	members, err := s.repo.Crew.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get crew: %w", err)
	}
	return response.CrewViewsToResponse(members), nil
}

func (s *crewService) GetAvailable(ctx context.Context) ([]response.CrewResponse, error) {
	members, err := s.repo.Crew.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available crew: %w", err)
	}
	return response.CrewViewsToResponse(members), nil
}

func (s *crewService) GetByFlight(ctx context.Context, flightID string) ([]response.FlightCrewResponse, error) {
	id, err := parseID("flight", flightID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.FlightCrew.FindByFlightID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight crew: %w", err)
	}
	return response.FlightCrewViewsToResponse(assignments), nil
}

func (s *crewService) find(ctx context.Context, id uuid.UUID) (*entity.CrewView, error) {
	member, err := s.repo.Crew.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get crew member: %w", err)
	}
	if member == nil {
		return nil, failure.NotFound("crew member %s not found", id)
	}
	return member, nil
}

func (s *crewService) respond(ctx context.Context, id uuid.UUID) (*response.CrewResponse, error) {
	member, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CrewViewToResponse(member)
	return &resp, nil
}

func (s *crewService) GetByID(ctx context.Context, id string) (*response.CrewDetailResponse, error) {
	crewID, err := parseID("crew member", id)
	if err != nil {
		return nil, err
	}

	member, err := s.find(ctx, crewID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.FlightCrew.FindByCrewID(ctx, crewID)
	if err != nil {
		return nil, fmt.Errorf("get crew assignments: %w", err)
	}

	return &response.CrewDetailResponse{
		CrewResponse: response.CrewViewToResponse(member),
		Assignments:  response.FlightCrewViewsToResponse(assignments),
	}, nil
}

func (s *crewService) Create(ctx context.Context, req *request.CreateCrewRequest) (*response.CrewResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	airlineID, err := parseOptionalID("airline", req.AirlineID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := &entity.Crew{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		AirlineID:     airlineID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Role:          entity.CrewRole(req.Role),
		EmployeeID:    strings.TrimSpace(req.EmployeeID),
		LicenseNumber: req.LicenseNumber,
		IsAvailable:   true,
	}
	if req.IsAvailable != nil {
		member.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Crew.Create(ctx, member); err != nil {
		return nil, failure.FromPg(err, "crew member")
	}

	s.log.Info("Crew member created",
		zap.String("crew_id", member.ID.String()),
		zap.String("employee_id", member.EmployeeID),
	)

	return s.respond(ctx, member.ID)
}

func (s *crewService) Update(ctx context.Context, id string, req *request.UpdateCrewRequest) (*response.CrewResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	crewID, err := parseID("crew member", id)
	if err != nil {
		return nil, err
	}

	current, err := s.find(ctx, crewID)
	if err != nil {
		return nil, err
	}
	member := current.Crew

	if req.AirlineID != nil {
		if member.AirlineID, err = parseOptionalID("airline", req.AirlineID); err != nil {
			return nil, err
		}
	}
	if req.FirstName != nil {
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		member.Role = entity.CrewRole(*req.Role)
	}
	if req.EmployeeID != nil {
		member.EmployeeID = strings.TrimSpace(*req.EmployeeID)
	}
	if req.LicenseNumber != nil {
		member.LicenseNumber = req.LicenseNumber
	}
	if req.IsAvailable != nil {
		member.IsAvailable = *req.IsAvailable
	}
	member.UpdatedAt = time.Now()

	if err := s.repo.Crew.Update(ctx, &member); err != nil {
		return nil, writeError(err, "crew member", crewID)
	}

	return s.respond(ctx, crewID)
}

func (s *crewService) Delete(ctx context.Context, id string) error {
	crewID, err := parseID("crew member", id)
	if err != nil {
		return err
	}

	if err := s.repo.Crew.Delete(ctx, crewID); err != nil {
		return writeError(err, "crew member", crewID)
	}
	return nil
}

// Assign puts an available crew member on a flight once.
func (s *crewService) Assign(ctx context.Context, req *request.AssignCrewRequest) (*response.FlightCrewResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	flightID, err := parseID("flight", req.FlightID)
	if err != nil {
		return nil, err
	}
	crewID, err := parseID("crew member", req.CrewID)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if flight == nil {
		return nil, failure.NotFound("flight %s not found", flightID)
	}

	member, err := s.find(ctx, crewID)
	if err != nil {
		return nil, err
	}
	if !member.IsAvailable {
		return nil, failure.BadRequest("Crew member is not available")
	}

	assigned, err := s.repo.FlightCrew.Exists(ctx, flightID, crewID)
	if err != nil {
		return nil, fmt.Errorf("check crew assignment: %w", err)
	}
	if assigned {
		return nil, failure.BadRequest("Crew member is already assigned to this flight")
	}

	assignment := &entity.FlightCrew{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FlightID:     flightID,
		CrewID:       crewID,
		RoleOnFlight: strings.TrimSpace(req.RoleOnFlight),
	}

	if err := s.repo.FlightCrew.Create(ctx, assignment); err != nil {
		if failure.IsUniqueViolation(err, repository.FlightCrewConstraint) {
			return nil, failure.BadRequest("Crew member is already assigned to this flight")
		}
		return nil, failure.FromPg(err, "crew assignment")
	}

	s.log.Info("Crew assigned",
		zap.String("flight_id", req.FlightID),
		zap.String("crew_id", req.CrewID),
		zap.String("role_on_flight", assignment.RoleOnFlight),
	)

	resp := response.FlightCrewToResponse(assignment)
	return &resp, nil
}

func (s *crewService) Unassign(ctx context.Context, assignmentID string) error {
	id, err := parseID("crew assignment", assignmentID)
	if err != nil {
		return err
	}

	if err := s.repo.FlightCrew.Delete(ctx, id); err != nil {
		return writeError(err, "crew assignment", id)
	}

	s.log.Info("Crew unassigned", zap.String("assignment_id", assignmentID))
	return nil
}
