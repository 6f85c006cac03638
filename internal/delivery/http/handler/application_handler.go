package handler

import (
	"errors"

	"jobdeck/internal/delivery/http/dto"
	"jobdeck/internal/delivery/http/middleware"
	"jobdeck/internal/domain/application"
	"jobdeck/internal/pkg/response"
	"jobdeck/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type createApplicationRequest struct {
	JobID  uuid.UUID `json:"job_id"`
	Status string    `json:"status"`
	Notes  *string   `json:"notes"`
}

type updateApplicationRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.UpdateStatus)
	r.Delete("/:id", h.Delete)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Create(c.Context(), userID, usecase.CreateApplicationInput{
		JobID:  req.JobID,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.List(c.Context(), userID, c.Query("status"), limit, offset)
	if err != nil {
		return mapApplicationError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	a, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.UpdateStatus(c.Context(), userID, id, usecase.UpdateApplicationInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, application.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", map[string]any{"valid_statuses": application.Statuses()}, err)
	case errors.Is(err, application.ErrAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Application already exists for this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
