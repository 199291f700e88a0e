package services

import (
	"errors"
	"time"

	"github.com/tbowo/careline/internal/models"
)

var (
	ErrCycleNotFound     = errors.New("cycle not found")
	ErrCycleInvalidInput = errors.New("invalid cycle input")
	ErrCycleSaveFailed   = errors.New("save cycle failed")
)

type CycleRepository interface {
	FindActiveByFamily(familyID uint) (models.Cycle, bool, error)
	FindByFamilyAndNo(familyID uint, cycleNo int) (models.Cycle, bool, error)
	ListByFamily(familyID uint) ([]models.Cycle, error)
	DeactivateAllForFamily(familyID uint) error
	Create(cycle *models.Cycle) error
	Save(cycle *models.Cycle) error
}

type CycleInput struct {
	CycleNo    int
	StartDate  time.Time
	LengthDays int
	Regimen    string
}

type CyclePatch struct {
	StartDate  *time.Time
	LengthDays *int
	Regimen    *string
	IsActive   *bool
}

type CycleService struct {
	cycles   CycleRepository
	location *time.Location
}

func NewCycleService(cycles CycleRepository, location *time.Location) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{cycles: cycles, location: location}
}

// Upsert creates or replaces the cycle with the given number and makes it
// the family's only active cycle.
func (service *CycleService) Upsert(familyID uint, input CycleInput) (models.Cycle, error) {
	if input.CycleNo < 1 || input.LengthDays < 1 {
		return models.Cycle{}, ErrCycleInvalidInput
	}

	if err := service.cycles.DeactivateAllForFamily(familyID); err != nil {
		return models.Cycle{}, ErrCycleSaveFailed
	}

	startDate := DateAtLocation(input.StartDate, service.location)

	cycle, found, err := service.cycles.FindByFamilyAndNo(familyID, input.CycleNo)
	if err != nil {
		return models.Cycle{}, ErrCycleSaveFailed
	}
	if found {
		cycle.StartDate = startDate
		cycle.LengthDays = input.LengthDays
		cycle.Regimen = input.Regimen
		cycle.IsActive = true
		if err := service.cycles.Save(&cycle); err != nil {
			return models.Cycle{}, ErrCycleSaveFailed
		}
		return cycle, nil
	}

	cycle = models.Cycle{
		FamilyID:   familyID,
		CycleNo:    input.CycleNo,
		StartDate:  startDate,
		LengthDays: input.LengthDays,
		Regimen:    input.Regimen,
		IsActive:   true,
	}
	if err := service.cycles.Create(&cycle); err != nil {
		return models.Cycle{}, ErrCycleSaveFailed
	}
	return cycle, nil
}

func (service *CycleService) Current(familyID uint) (models.Cycle, bool, error) {
	return service.cycles.FindActiveByFamily(familyID)
}

func (service *CycleService) List(familyID uint) ([]models.Cycle, error) {
	return service.cycles.ListByFamily(familyID)
}

func (service *CycleService) Patch(familyID uint, cycleNo int, patch CyclePatch) (models.Cycle, error) {
	cycle, found, err := service.cycles.FindByFamilyAndNo(familyID, cycleNo)
	if err != nil {
		return models.Cycle{}, ErrCycleSaveFailed
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}

	if patch.StartDate != nil {
		cycle.StartDate = DateAtLocation(*patch.StartDate, service.location)
	}
	if patch.LengthDays != nil {
		if *patch.LengthDays < 1 {
			return models.Cycle{}, ErrCycleInvalidInput
		}
		cycle.LengthDays = *patch.LengthDays
	}
	if patch.Regimen != nil {
		cycle.Regimen = *patch.Regimen
	}
	if patch.IsActive != nil {
		cycle.IsActive = *patch.IsActive
	}

	if err := service.cycles.Save(&cycle); err != nil {
		return models.Cycle{}, ErrCycleSaveFailed
	}
	return cycle, nil
}

// DisplayCurrentDay derives the 1-based cycle day for an active cycle, absent
// when the cycle is inactive or has not started yet.
func (service *CycleService) DisplayCurrentDay(cycle models.Cycle, now time.Time) *int {
	if !cycle.IsActive {
		return nil
	}
	day := CurrentCycleDay(DateAtLocation(now, service.location), DateAtLocation(cycle.StartDate, service.location))
	if day < 1 {
		return nil
	}
	return &day
}
