package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Families  *FamilyRepository
	Cycles    *CycleRepository
	DailyLogs *DailyLogRepository
	Stool     *StoolRepository
	Messages  *MessageRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Families:  NewFamilyRepository(database),
		Cycles:    NewCycleRepository(database),
		DailyLogs: NewDailyLogRepository(database),
		Stool:     NewStoolRepository(database),
		Messages:  NewMessageRepository(database),
	}
}
