package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-parser/internal/models"
	"resume-parser/internal/parser"
	"resume-parser/internal/repositories"
	"resume-parser/internal/services"
)

type ParseHandler struct {
	jobRepo repositories.ParseJobRepository
	docRepo repositories.DocumentRepository
	worker  services.Worker
}

func NewParseHandler(
	jobRepo repositories.ParseJobRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *ParseHandler {
	return &ParseHandler{
		jobRepo: jobRepo,
		docRepo: docRepo,
		worker:  worker,
	}
}

// HandleParse handles POST /parse: either an uploaded document id or a
// LinkedIn profile URL, never both.
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	var req models.ParseRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" && req.LinkedInURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "either document_id or linkedin_url is required",
		})
	}
	if req.DocumentID != "" && req.LinkedInURL != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "provide document_id or linkedin_url, not both",
		})
	}

	job := &models.ParseJob{
		ID:        uuid.New(),
		Status:    models.StatusQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if req.LinkedInURL != "" {
		if !parser.IsLinkedInURL(req.LinkedInURL) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "linkedin_url must contain linkedin.com/in/",
			})
		}
		url := req.LinkedInURL
		job.LinkedInURL = &url
	} else {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}
		if _, err := h.docRepo.FindByID(docID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		}
		job.DocumentID = &docID
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create parse job",
		})
	}

	h.worker.EnqueueJob(job.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ParseResponse{
		ID:     job.ID.String(),
		Status: string(models.StatusQueued),
	})
}
