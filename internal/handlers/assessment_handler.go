package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

// HandleListByJob handles GET /api/assessments/:jobId
func (h *AssessmentHandler) HandleListByJob(c *fiber.Ctx) error {
	jobID, err := h.parseJobID(c)
	if err != nil {
		return respondError(c, err)
	}

	assessments, err := h.assessmentService.ListByJob(jobID)
	if err != nil {
		return respondError(c, err)
	}
	// The builder UI expects a bare array.
	return c.JSON(assessments)
}

// HandleCreate handles POST /api/assessments/:jobId
func (h *AssessmentHandler) HandleCreate(c *fiber.Ctx) error {
	jobID, err := h.parseJobID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	assessment, err := h.assessmentService.Create(jobID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"assessment": assessment})
}

// HandleSubmit handles POST /api/assessment/:jobId/submit
func (h *AssessmentHandler) HandleSubmit(c *fiber.Ctx) error {
	jobID, err := h.parseJobID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.SubmitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	submission, err := h.assessmentService.Submit(jobID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SubmitAssessmentResponse{
		Success:    true,
		Submission: *submission,
	})
}

// parseJobID reads the :jobId route param.
func (h *AssessmentHandler) parseJobID(c *fiber.Ctx) (uint, error) {
	jobID, err := strconv.ParseUint(c.Params("jobId"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid job id %q: %w", c.Params("jobId"), models.ErrValidation)
	}
	return uint(jobID), nil
}
