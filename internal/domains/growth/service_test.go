package growth

import (
	"context"
	"errors"
	"testing"

	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/google/uuid"
)

type memoryGrowthRepo struct {
	records []types.GrowthRecord
}

func (r *memoryGrowthRepo) Create(ctx context.Context, rec *types.GrowthRecord) error {
	// prepend, most recent first
	r.records = append([]types.GrowthRecord{*rec}, r.records...)
	return nil
}

func (r *memoryGrowthRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]types.GrowthRecord, error) {
	var out []types.GrowthRecord
	for _, rec := range r.records {
		if rec.ProfileID == profileID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type stubAnalyzer struct {
	advisory.AdvisoryService
	report *types.GrowthReport
	err    error
}

func (s *stubAnalyzer) AnalyzeGrowth(ctx context.Context, image, cropType, lang string) (*types.GrowthReport, error) {
	return s.report, s.err
}

func TestRecordScanComposesAnalysis(t *testing.T) {
	repo := &memoryGrowthRepo{}
	svc := NewGrowthService(repo, &stubAnalyzer{report: &types.GrowthReport{
		Stage:     "Flowering",
		Health:    "Healthy",
		Analysis:  "Vigorous canopy",
		NextSteps: "Apply potash",
	}}, Logger.BuildLogger(false))

	prof := &profile.Profile{ID: uuid.New().String(), Language: "en"}
	rec, err := svc.RecordScan(context.Background(), prof, "aW1hZ2U=", "wheat")
	if err != nil {
		t.Fatalf("record scan: %v", err)
	}
	if rec.Stage != "Flowering" {
		t.Errorf("stage: want Flowering, got %q", rec.Stage)
	}
	if rec.Analysis != "Healthy. Vigorous canopy. Next steps: Apply potash" {
		t.Errorf("unexpected analysis: %q", rec.Analysis)
	}
	if len(repo.records) != 1 {
		t.Errorf("record should be persisted")
	}
}

func TestRecordScanRequiresImage(t *testing.T) {
	svc := NewGrowthService(&memoryGrowthRepo{}, &stubAnalyzer{}, Logger.BuildLogger(false))
	prof := &profile.Profile{ID: uuid.New().String()}

	_, err := svc.RecordScan(context.Background(), prof, "  ", "wheat")
	if !errors.Is(err, ErrMissingImage) {
		t.Fatalf("want ErrMissingImage, got %v", err)
	}
}

func TestRecordScanPropagatesAnalyzerFailure(t *testing.T) {
	repo := &memoryGrowthRepo{}
	svc := NewGrowthService(repo, &stubAnalyzer{err: errors.New("model down")}, Logger.BuildLogger(false))
	prof := &profile.Profile{ID: uuid.New().String()}

	if _, err := svc.RecordScan(context.Background(), prof, "aW1hZ2U=", "rice"); err == nil {
		t.Fatal("expected analyzer error to propagate")
	}
	if len(repo.records) != 0 {
		t.Errorf("nothing should be persisted on failure")
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	repo := &memoryGrowthRepo{}
	analyzer := &stubAnalyzer{report: &types.GrowthReport{Stage: "Seedling"}}
	svc := NewGrowthService(repo, analyzer, Logger.BuildLogger(false))
	prof := &profile.Profile{ID: uuid.New().String()}
	profileID, _ := uuid.Parse(prof.ID)

	first, _ := svc.RecordScan(context.Background(), prof, "aW1n", "rice")
	second, _ := svc.RecordScan(context.Background(), prof, "aW1n", "rice")

	records, err := svc.History(context.Background(), profileID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("records should list most recent first")
	}
}
