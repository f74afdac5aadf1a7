package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/services"
)

type JobHandler struct {
	jobService      services.JobService
	orderingService services.OrderingService
	defaultPageSize int
}

func NewJobHandler(
	jobService services.JobService,
	orderingService services.OrderingService,
	defaultPageSize int,
) *JobHandler {
	return &JobHandler{
		jobService:      jobService,
		orderingService: orderingService,
		defaultPageSize: defaultPageSize,
	}
}

// HandleList handles GET /api/jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	params := services.JobListParams{
		Search:   c.Query("search"),
		Status:   models.JobStatus(c.Query("status")),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", h.defaultPageSize),
	}

	jobs, totalPages, err := h.jobService.List(params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.JobListResponse{
		Jobs:       jobs,
		TotalPages: totalPages,
	})
}

// HandleGetBySlug handles GET /api/jobs/:slug
func (h *JobHandler) HandleGetBySlug(c *fiber.Ctx) error {
	job, err := h.jobService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// HandleCreate handles POST /api/jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	job, err := h.jobService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandlePatch handles PATCH /api/jobs/:id
func (h *JobHandler) HandlePatch(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID",
			"code":  "validation_error",
		})
	}

	var req models.PatchJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	job, err := h.jobService.Patch(uint(id), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

// HandleReorder handles PATCH /api/jobs/:id/reorder
func (h *JobHandler) HandleReorder(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID",
			"code":  "validation_error",
		})
	}

	var req models.ReorderJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  "validation_error",
		})
	}

	job, err := h.orderingService.Reorder(uint(id), req.ToOrder)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}
