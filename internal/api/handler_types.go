package api

import (
	"time"

	"github.com/embersapp/embers/internal/db"
	"github.com/embersapp/embers/internal/events"
	"github.com/embersapp/embers/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	hub          *events.Hub

	repositories      *db.Repositories
	authService       *services.AuthService
	habitService      *services.HabitService
	completionService *services.CompletionService
	statsService      *services.StatsService
}

const (
	authCookieName = "embers_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
