package http

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	uuid      *utils.UUIDGenerator

	// sessionCookieName is the cookie carrying the opaque session token.
	sessionCookieName string

	// hashKey enables the request-body integrity check when non-empty.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		validator:         validators.NewAuthValidator(),
		uuid:              utils.NewUUIDGenerator(),
		sessionCookieName: cfg.CookieName(),
		hashKey:           cfg.HashKey,
		logger:            logger,
	}
}
