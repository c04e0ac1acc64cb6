package usecase

import (
	"context"

	"job-skill-api/internal/hropen"
)

// AssertionUsecase resolves a JEDx object identifier to its HR-Open skill
// assertions.
type AssertionUsecase interface {
	SkillAssertions(ctx context.Context, identifier string) (hropen.SkillsResponse, error)
}

type Assertions struct {
	reader JobReader
}

func NewAssertionUsecase(reader JobReader) *Assertions {
	return &Assertions{reader: reader}
}

// SkillAssertions accepts either a bare position ID or a URI whose last
// path segment is the position ID.
func (u *Assertions) SkillAssertions(_ context.Context, identifier string) (hropen.SkillsResponse, error) {
	positionID := hropen.ParsePositionID(identifier)
	j, ok := u.reader.JobByPositionID(positionID)
	if !ok {
		return hropen.SkillsResponse{}, ErrNotFound
	}
	return hropen.ToSkillsResponse(j), nil
}
