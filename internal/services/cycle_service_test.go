package services

import (
	"testing"
	"time"

	"github.com/tbowo/careline/internal/models"
)

type fakeCycleRepository struct {
	cycles []models.Cycle
	nextID uint
}

func (repo *fakeCycleRepository) FindActiveByFamily(familyID uint) (models.Cycle, bool, error) {
	for _, cycle := range repo.cycles {
		if cycle.FamilyID == familyID && cycle.IsActive {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (repo *fakeCycleRepository) FindByFamilyAndNo(familyID uint, cycleNo int) (models.Cycle, bool, error) {
	for _, cycle := range repo.cycles {
		if cycle.FamilyID == familyID && cycle.CycleNo == cycleNo {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (repo *fakeCycleRepository) ListByFamily(familyID uint) ([]models.Cycle, error) {
	results := []models.Cycle{}
	for _, cycle := range repo.cycles {
		if cycle.FamilyID == familyID {
			results = append(results, cycle)
		}
	}
	return results, nil
}

func (repo *fakeCycleRepository) DeactivateAllForFamily(familyID uint) error {
	for index := range repo.cycles {
		if repo.cycles[index].FamilyID == familyID {
			repo.cycles[index].IsActive = false
		}
	}
	return nil
}

func (repo *fakeCycleRepository) Create(cycle *models.Cycle) error {
	repo.nextID++
	cycle.ID = repo.nextID
	repo.cycles = append(repo.cycles, *cycle)
	return nil
}

func (repo *fakeCycleRepository) Save(cycle *models.Cycle) error {
	for index := range repo.cycles {
		if repo.cycles[index].ID == cycle.ID {
			repo.cycles[index] = *cycle
			return nil
		}
	}
	repo.cycles = append(repo.cycles, *cycle)
	return nil
}

func TestCycleUpsertDeactivatesPriorCycles(t *testing.T) {
	t.Parallel()

	repo := &fakeCycleRepository{}
	service := NewCycleService(repo, time.UTC)

	first, err := service.Upsert(1, CycleInput{CycleNo: 1, StartDate: mustParseDay(t, "2026-01-05"), LengthDays: 21})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if !first.IsActive {
		t.Fatalf("expected first cycle active")
	}

	second, err := service.Upsert(1, CycleInput{CycleNo: 2, StartDate: mustParseDay(t, "2026-01-26"), LengthDays: 21})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if !second.IsActive {
		t.Fatalf("expected second cycle active")
	}

	current, found, err := service.Current(1)
	if err != nil || !found {
		t.Fatalf("expected an active cycle, found=%v err=%v", found, err)
	}
	if current.CycleNo != 2 {
		t.Fatalf("expected cycle 2 active, got %d", current.CycleNo)
	}

	cycles, err := service.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	activeCount := 0
	for _, cycle := range cycles {
		if cycle.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active cycle, got %d", activeCount)
	}
}

func TestCycleUpsertReplacesByNumber(t *testing.T) {
	t.Parallel()

	repo := &fakeCycleRepository{}
	service := NewCycleService(repo, time.UTC)

	if _, err := service.Upsert(1, CycleInput{CycleNo: 1, StartDate: mustParseDay(t, "2026-01-05"), LengthDays: 21}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}
	replaced, err := service.Upsert(1, CycleInput{CycleNo: 1, StartDate: mustParseDay(t, "2026-01-07"), LengthDays: 14, Regimen: "FOLFOX"})
	if err != nil {
		t.Fatalf("replace upsert failed: %v", err)
	}

	if len(repo.cycles) != 1 {
		t.Fatalf("expected upsert by number, got %d records", len(repo.cycles))
	}
	if FormatDay(replaced.StartDate) != "2026-01-07" || replaced.LengthDays != 14 || replaced.Regimen != "FOLFOX" {
		t.Fatalf("unexpected replaced cycle: %+v", replaced)
	}
}

func TestCycleUpsertValidation(t *testing.T) {
	t.Parallel()

	service := NewCycleService(&fakeCycleRepository{}, time.UTC)

	if _, err := service.Upsert(1, CycleInput{CycleNo: 0, StartDate: mustParseDay(t, "2026-01-05"), LengthDays: 21}); err != ErrCycleInvalidInput {
		t.Fatalf("expected invalid input for cycle_no 0, got %v", err)
	}
	if _, err := service.Upsert(1, CycleInput{CycleNo: 1, StartDate: mustParseDay(t, "2026-01-05"), LengthDays: 0}); err != ErrCycleInvalidInput {
		t.Fatalf("expected invalid input for zero length, got %v", err)
	}
}

func TestCyclePatch(t *testing.T) {
	t.Parallel()

	repo := &fakeCycleRepository{}
	service := NewCycleService(repo, time.UTC)

	if _, err := service.Patch(1, 3, CyclePatch{}); err != ErrCycleNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := service.Upsert(1, CycleInput{CycleNo: 1, StartDate: mustParseDay(t, "2026-01-05"), LengthDays: 21}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	length := 28
	inactive := false
	patched, err := service.Patch(1, 1, CyclePatch{LengthDays: &length, IsActive: &inactive})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if patched.LengthDays != 28 || patched.IsActive {
		t.Fatalf("unexpected patched cycle: %+v", patched)
	}

	badLength := 0
	if _, err := service.Patch(1, 1, CyclePatch{LengthDays: &badLength}); err != ErrCycleInvalidInput {
		t.Fatalf("expected invalid input for zero length patch, got %v", err)
	}
}

func TestDisplayCurrentDay(t *testing.T) {
	t.Parallel()

	service := NewCycleService(&fakeCycleRepository{}, time.UTC)
	now := mustParseDay(t, "2026-02-10")

	active := models.Cycle{StartDate: mustParseDay(t, "2026-02-01"), LengthDays: 21, IsActive: true}
	if day := service.DisplayCurrentDay(active, now); day == nil || *day != 10 {
		t.Fatalf("expected day 10, got %v", day)
	}

	inactive := active
	inactive.IsActive = false
	if day := service.DisplayCurrentDay(inactive, now); day != nil {
		t.Fatalf("expected nil for inactive cycle, got %d", *day)
	}

	future := models.Cycle{StartDate: mustParseDay(t, "2026-02-20"), LengthDays: 21, IsActive: true}
	if day := service.DisplayCurrentDay(future, now); day != nil {
		t.Fatalf("expected nil for future start, got %d", *day)
	}
}
