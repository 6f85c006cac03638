package handler

import (
	"errors"
	"strconv"

	"jobdeck/internal/delivery/http/dto"
	"jobdeck/internal/delivery/http/middleware"
	"jobdeck/internal/pkg/response"
	"jobdeck/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc      usecase.JobListUsecase
	refresh usecase.RefreshUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase, refresh usecase.RefreshUsecase) *JobsHandler {
	return &JobsHandler{uc: uc, refresh: refresh}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Post("/refresh", h.HandleRefresh)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Query:      c.Query("q"),
		Company:    c.Query("company"),
		Location:   c.Query("location"),
		RemoteOnly: c.Query("remote") == "true",
		MinScore:   minScore,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return mapJobListUsecaseError(err)
	}

	out := make([]dto.JobListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobListResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(j))
}

func (h *JobsHandler) HandleRefresh(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	summary, err := h.refresh.Refresh(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	boards := make([]map[string]any, 0, len(summary.Boards))
	for _, b := range summary.Boards {
		entry := map[string]any{"board": b.Board, "count": b.Count}
		if b.Err != nil {
			entry["error"] = b.Err.Error()
		}
		boards = append(boards, entry)
	}
	data := map[string]any{
		"query":   summary.Query,
		"total":   summary.Total,
		"boards":  boards,
		"skipped": summary.Skipped,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobListUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
