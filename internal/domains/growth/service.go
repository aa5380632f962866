package growth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/google/uuid"
)

var ErrMissingImage = errors.New("a crop photo is required")

// GrowthRepository persists analyzed crop scans.
type GrowthRepository interface {
	Create(ctx context.Context, r *types.GrowthRecord) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]types.GrowthRecord, error)
}

// GrowthService analyzes crop photos and keeps the append-only scan
// timeline per profile.
type GrowthService interface {
	RecordScan(ctx context.Context, prof *profile.Profile, image, cropType string) (*types.GrowthRecord, error)
	History(ctx context.Context, profileID uuid.UUID) ([]types.GrowthRecord, error)
}

type growthService struct {
	repo    GrowthRepository
	gateway advisory.AdvisoryService
	logger  *Logger.Logger
}

func NewGrowthService(repo GrowthRepository, gateway advisory.AdvisoryService, logger *Logger.Logger) GrowthService {
	return &growthService{repo: repo, gateway: gateway, logger: logger}
}

// RecordScan implements GrowthService
func (s *growthService) RecordScan(ctx context.Context, prof *profile.Profile, image, cropType string) (*types.GrowthRecord, error) {
	if strings.TrimSpace(image) == "" {
		return nil, ErrMissingImage
	}

	profileID, err := uuid.Parse(prof.ID)
	if err != nil {
		return nil, errors.New("invalid profile id")
	}

	report, err := s.gateway.AnalyzeGrowth(ctx, image, cropType, prof.Lang())
	if err != nil {
		s.logger.Errorf("growth analysis failed: %v", err)
		return nil, err
	}

	record := &types.GrowthRecord{
		ID:        uuid.New(),
		ProfileID: profileID,
		Date:      time.Now(),
		Image:     image,
		CropType:  cropType,
		Stage:     report.Stage,
		Analysis:  fmt.Sprintf("%s. %s. Next steps: %s", report.Health, report.Analysis, report.NextSteps),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Infof("growth scan recorded: %s (%s, %s)", record.ID, cropType, record.Stage)
	return record, nil
}

// History implements GrowthService
func (s *growthService) History(ctx context.Context, profileID uuid.UUID) ([]types.GrowthRecord, error) {
	return s.repo.ListByProfile(ctx, profileID)
}
