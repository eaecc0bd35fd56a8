package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/umaplan/catalog"
	"github.com/padraicbc/umaplan/schedule"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db      *bun.DB
	catalog catalog.Source
	planner *schedule.Builder
	log     *zap.Logger
	JWTKey  []byte
}

// New creates a Handler. db is only used for user sign-in.
func New(db *bun.DB, src catalog.Source, planner *schedule.Builder, log *zap.Logger, jwtKey []byte) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, catalog: src, planner: planner, log: log, JWTKey: jwtKey}
}

// Register mounts the public and protected routes under /rp.
func (h *Handler) Register(e *echo.Echo, protect ...echo.MiddlewareFunc) {
	e.POST("/rp/signin", h.Signin)

	rp := e.Group("/rp", protect...)
	rp.GET("/races", h.Races)
	rp.GET("/races/:id", h.Race)
	rp.GET("/characters", h.Characters)
	rp.GET("/characters/variants", h.Variants)
	rp.GET("/characters/:id", h.Character)
	rp.POST("/schedule", h.Schedule)
}

// catalogError maps catalog failures onto HTTP errors.
func (h *Handler) catalogError(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.log.Error("catalog read failed", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
