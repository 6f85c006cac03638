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

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	FullName        *string           `json:"full_name"`
	Headline        *string           `json:"headline"`
	Location        *string           `json:"location"`
	YearsExperience *int16            `json:"years_experience"`
	Skills          []string          `json:"skills"`
	ResumeSummary   *string           `json:"resume_summary"`
	Links           map[string]string `json:"links"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me/profile", h.UpdateProfile)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, profile, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MeResponse{
		User:    dto.NewUserResponse(usr),
		Profile: dto.NewProfileResponse(profile),
	})
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), userID, usecase.ProfileInput{
		FullName:        req.FullName,
		Headline:        req.Headline,
		Location:        req.Location,
		YearsExperience: req.YearsExperience,
		Skills:          req.Skills,
		ResumeSummary:   req.ResumeSummary,
		Links:           req.Links,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}
