package partner

import (
	"errors"

	httpServices "vtc-onboarding/httpServices/webhook"
	"vtc-onboarding/logger"
	partnerService "vtc-onboarding/services/partner"
	"vtc-onboarding/types"
	partnerTypes "vtc-onboarding/types/partner"
	"vtc-onboarding/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmissionController handles the public onboarding submission.
type SubmissionController struct {
	service *partnerService.Service
	webhook *httpServices.WorkflowClient
	Logger  *logger.AsyncLogger
}

// NewSubmissionController creates a new submission controller
func NewSubmissionController(service *partnerService.Service, webhook *httpServices.WorkflowClient, asyncLogger *logger.AsyncLogger) *SubmissionController {
	return &SubmissionController{
		service: service,
		webhook: webhook,
		Logger:  asyncLogger,
	}
}

// The form is embedded on external landing pages, so the submission
// endpoint answers cross-origin requests from anywhere.
func setCORSHeaders(c *fiber.Ctx) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// Preflight answers the CORS preflight for the submission endpoint.
func (sc *SubmissionController) Preflight(c *fiber.Ctx) error {
	setCORSHeaders(c)
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit validates the full draft record, reshapes it and either
// upserts it into the store or relays it to the workflow webhook,
// depending on SUBMIT_TARGET.
func (sc *SubmissionController) Submit(c *fiber.Ctx) error {
	setCORSHeaders(c)

	var req partnerTypes.SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse submission body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Requête invalide",
			Status:  fiber.StatusBadRequest,
		})
	}

	if fieldErrs := req.Validate(); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Données invalides",
			Status:  fiber.StatusBadRequest,
			Errors:  fieldErrs,
		})
	}

	if utils.GetEnv("SUBMIT_TARGET", "store") == "webhook" {
		if err := sc.webhook.Forward(c.Context(), partnerService.ToRecord(&req)); err != nil {
			logger.Error("Workflow webhook relay failed", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Erreur serveur",
				Status:  fiber.StatusInternalServerError,
			})
		}
	} else {
		result, err := sc.service.Submit(c.Context(), &req)
		if err != nil {
			if errors.Is(err, partnerService.ErrAlreadyApproved) {
				return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
					Message: "Dossier déjà validé. Contactez l'administration.",
					Status:  fiber.StatusForbidden,
				})
			}
			logger.Error("Failed to upsert submission", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Erreur serveur",
				Status:  fiber.StatusInternalServerError,
			})
		}
		if result.Created {
			logger.Success("New partner application created: " + result.PartnerID)
		} else {
			logger.Info("Partner application updated: " + result.PartnerID)
		}
	}

	response := types.ApiResponse{
		Success: true,
		Message: "Dossier enregistré",
		Status:  fiber.StatusOK,
	}
	if err := c.Status(fiber.StatusOK).JSON(response); err != nil {
		return err
	}

	sc.Logger.Log(utils.CreateLogEntry(c, "public-form"))
	return nil
}
