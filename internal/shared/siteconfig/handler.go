package siteconfig

import (
	"net/http"

	"eleave/internal/shared/apperror"
	"eleave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  *Store
	logger *zap.Logger
}

func NewHandler(store *Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("siteconfig.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("siteconfig.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Get(), nil)
}

func (h *Handler) Reload(c *gin.Context) {
	if err := h.store.Reload(); err != nil {
		h.logger.Error("reload site config failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reload configuration", nil)
		return
	}

	h.logger.Info("site config reloaded")
	response.Success(c, http.StatusOK, h.store.Get(), nil)
}

func (h *Handler) Update(c *gin.Context) {
	var cfg Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	if err := h.store.Update(cfg); err != nil {
		h.logger.Error("persist site config failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save configuration", nil)
		return
	}

	h.logger.Info("site config updated", zap.String("brand_name", cfg.BrandName))
	response.Success(c, http.StatusOK, h.store.Get(), nil)
}
