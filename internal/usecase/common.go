package usecase

import (
	"errors"

	"airline-backoffice/internal/data/repository"
	"airline-backoffice/pkg/failure"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
)

const searchLimit = 10

func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, failure.InvalidID(kind, id)
	}
	return parsed, nil
}

func parseOptionalID(kind string, id *string) (*uuid.UUID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	parsed, err := parseID(kind, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return failure.BadRequest("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return nil
}

// writeError turns a repository write error into a client failure where one applies.
func writeError(err error, kind string, id uuid.UUID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound("%s %s not found", kind, id)
	}
	return failure.FromPg(err, kind)
}
