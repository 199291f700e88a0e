package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tbowo/careline/internal/db"
	"github.com/tbowo/careline/internal/i18n"
	"github.com/tbowo/careline/internal/services"
)

const (
	authTokenTTL = 30 * 24 * time.Hour

	contextUserKey       = "careline_user"
	contextMembershipKey = "careline_membership"
	contextLanguageKey   = "careline_language"
)

type Handler struct {
	repositories *db.Repositories
	secretKey    []byte
	location     *time.Location
	i18n         *i18n.Manager

	authService    *services.AuthService
	familyService  *services.FamilyService
	cycleService   *services.CycleService
	dailyService   *services.DailyService
	stoolService   *services.StoolService
	messageService *services.MessageService
}

type accessTokenClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
