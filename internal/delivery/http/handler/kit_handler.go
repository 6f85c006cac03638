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

type KitHandler struct {
	uc usecase.KitUsecase
}

func NewKitHandler(uc usecase.KitUsecase) *KitHandler {
	return &KitHandler{uc: uc}
}

// RegisterRoutes hangs the kit endpoints off the jobs group, so the
// paths read /jobs/:id/kit.
func (h *KitHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/kit", h.Generate)
	r.Get("/:id/kit", h.Get)
	r.Post("/:id/kit/send", h.Send)
}

func (h *KitHandler) Generate(c fiber.Ctx) error {
	userID, jobID, appErr := kitRequestIDs(c)
	if appErr != nil {
		return appErr
	}

	k, err := h.uc.Generate(c.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewKitResponse(k))
}

func (h *KitHandler) Get(c fiber.Ctx) error {
	userID, jobID, appErr := kitRequestIDs(c)
	if appErr != nil {
		return appErr
	}

	k, err := h.uc.Get(c.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Kit not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewKitResponse(k))
}

// Send mails the stored kit to the caller's account address. The
// response reports whether a relay was configured to deliver it.
func (h *KitHandler) Send(c fiber.Ctx) error {
	userID, jobID, appErr := kitRequestIDs(c)
	if appErr != nil {
		return appErr
	}

	delivered, err := h.uc.Send(c.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Kit not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"delivered": delivered})
}

func kitRequestIDs(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	return userID, jobID, nil
}
