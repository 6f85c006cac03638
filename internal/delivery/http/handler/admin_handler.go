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

type AdminHandler struct {
	uc     usecase.AdminUsecase
	status usecase.StatusUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase, status usecase.StatusUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, status: status}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/status", h.Dashboard)
	r.Get("/users/pending", h.ListPending)
	r.Post("/users/:id/approve", h.Approve)
	r.Post("/users/:id/reject", h.Reject)
}

func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	status, err := h.status.Dashboard(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}

func (h *AdminHandler) ListPending(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	users, err := h.uc.ListPending(c.Context(), limit, offset)
	if err != nil {
		return mapAdminError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) Approve(c fiber.Ctx) error {
	return h.decide(c, true)
}

func (h *AdminHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *AdminHandler) decide(c fiber.Ctx, approve bool) error {
	adminID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	decideFn := h.uc.Reject
	if approve {
		decideFn = h.uc.Approve
	}

	u, err := decideFn(c.Context(), adminID, targetID)
	if err != nil {
		return mapAdminError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func mapAdminError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
