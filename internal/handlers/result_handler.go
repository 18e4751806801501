package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-parser/internal/models"
	"resume-parser/internal/repositories"
)

type ResultHandler struct {
	jobRepo repositories.ParseJobRepository
}

func NewResultHandler(jobRepo repositories.ParseJobRepository) *ResultHandler {
	return &ResultHandler{
		jobRepo: jobRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	jobID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid parse job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Parse job not found",
		})
	}

	response := models.ResultResponse{
		ID:     job.ID.String(),
		Status: string(job.Status),
	}
	if job.ParsingMethod != nil {
		response.ParsingMethod = *job.ParsingMethod
	}

	if job.Status == models.StatusCompleted && job.ResultJSON != nil {
		var record models.ResumeRecord
		if err := json.Unmarshal([]byte(*job.ResultJSON), &record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to decode stored result",
			})
		}
		response.Resume = &record
	}

	if job.Status == models.StatusFailed {
		response.ErrorMessage = job.ErrorMessage
	}

	return c.JSON(response)
}
