package handler

import (
	"errors"

	"jobdeck/internal/delivery/http/dto"
	"jobdeck/internal/delivery/http/middleware"
	"jobdeck/internal/pkg/response"
	"jobdeck/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

type updateSettingsRequest struct {
	Titles          []string `json:"titles"`
	Locations       []string `json:"locations"`
	RemoteOnly      bool     `json:"remote_only"`
	MinSalary       *float64 `json:"min_salary"`
	Keywords        []string `json:"keywords"`
	ExcludeKeywords []string `json:"exclude_keywords"`
	Boards          []string `json:"boards"`
}

func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Update)
}

func (h *SettingsHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	s, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSettingsResponse(s))
}

func (h *SettingsHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateSettingsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.Update(c.Context(), userID, usecase.SettingsInput{
		Titles:          req.Titles,
		Locations:       req.Locations,
		RemoteOnly:      req.RemoteOnly,
		MinSalary:       req.MinSalary,
		Keywords:        req.Keywords,
		ExcludeKeywords: req.ExcludeKeywords,
		Boards:          req.Boards,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSettingsResponse(s))
}
