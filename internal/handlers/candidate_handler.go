package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/services"
)

type CandidateHandler struct {
	pipelineService services.PipelineService
	pageSize        int
}

func NewCandidateHandler(pipelineService services.PipelineService, pageSize int) *CandidateHandler {
	return &CandidateHandler{
		pipelineService: pipelineService,
		pageSize:        pageSize,
	}
}

// HandleList handles GET /api/candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	stage := models.Stage(c.Query("stage"))
	page := c.QueryInt("page", 1)

	candidates, totalPages, err := h.pipelineService.List(stage, page, h.pageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CandidateListResponse{
		Paginated:  candidates,
		TotalPages: totalPages,
	})
}

// HandleTimeline handles GET /api/candidates/:id/timeline
func (h *CandidateHandler) HandleTimeline(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
			"code":  "validation_error",
		})
	}

	candidate, err := h.pipelineService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(candidate)
}

// HandleListByJob handles GET /api/candidates/:jobId
func (h *CandidateHandler) HandleListByJob(c *fiber.Ctx) error {
	jobID, err := strconv.ParseUint(c.Params("jobId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID",
			"code":  "validation_error",
		})
	}

	candidates, err := h.pipelineService.ListByJob(uint(jobID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"candidates": candidates})
}

// HandleCreate handles POST /api/candidates
func (h *CandidateHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	candidate, err := h.pipelineService.CreateCandidate(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"candidate": candidate})
}

// HandleTransition handles PATCH /api/candidates/:id
func (h *CandidateHandler) HandleTransition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
			"code":  "validation_error",
		})
	}

	var req models.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	var at time.Time
	if req.StageUpdatedAt != nil {
		at = *req.StageUpdatedAt
	}

	candidate, err := h.pipelineService.Transition(id, req.Stage, at)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"candidate": candidate})
}

// HandleAddNote handles PUT /api/candidates/:id
func (h *CandidateHandler) HandleAddNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
			"code":  "validation_error",
		})
	}

	var req models.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	candidate, err := h.pipelineService.AddNote(id, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"candidate": candidate})
}
