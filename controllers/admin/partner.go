package admin

import (
	"errors"
	"time"

	"vtc-onboarding/logger"
	partnerModel "vtc-onboarding/models/partner"
	partnerService "vtc-onboarding/services/partner"
	"vtc-onboarding/types"
	"vtc-onboarding/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminController handles operator review of partner applications.
type AdminController struct {
	store   partnerService.Store
	service *partnerService.Service
	Logger  *logger.AsyncLogger
}

// NewAdminController creates a new admin controller
func NewAdminController(store partnerService.Store, service *partnerService.Service, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{
		store:   store,
		service: service,
		Logger:  asyncLogger,
	}
}

// GetPartner fetches one application by id, with stored document
// references rewritten into downloadable URLs.
func (ac *AdminController) GetPartner(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "ID manquant",
			Status:  fiber.StatusBadRequest,
		})
	}

	application, err := ac.store.GetPartnerByID(c.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch partner", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Erreur serveur",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if application == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
			Message: "Partenaire non trouvé",
			Status:  fiber.StatusNotFound,
		})
	}

	if application.AssuranceFile != "" {
		application.AssuranceFile = utils.AssetURL(application.AssuranceFile)
	}
	if application.CarteProFile != "" {
		application.CarteProFile = utils.AssetURL(application.CarteProFile)
	}
	if application.RibFile != "" {
		application.RibFile = utils.AssetURL(application.RibFile)
	}
	if application.CarteGriseFile != "" {
		application.CarteGriseFile = utils.AssetURL(application.CarteGriseFile)
	}

	return c.Status(fiber.StatusOK).JSON(application)
}

// ListPartners lists applications, optionally filtered by status and
// submission period (today, week, month).
func (ac *AdminController) ListPartners(c *fiber.Ctx) error {
	status := partnerModel.Status(c.Query("status"))
	if status != "" && !status.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Statut inconnu",
			Status:  fiber.StatusBadRequest,
		})
	}

	var since *time.Time
	switch c.Query("period") {
	case "":
	case "today":
		t := now.BeginningOfDay()
		since = &t
	case "week":
		t := now.BeginningOfWeek()
		since = &t
	case "month":
		t := now.BeginningOfMonth()
		since = &t
	default:
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Période inconnue",
			Status:  fiber.StatusBadRequest,
		})
	}

	partners, err := ac.store.ListPartners(c.Context(), status, since)
	if err != nil {
		logger.Error("Failed to list partners", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Erreur serveur",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Success: true,
		Status:  fiber.StatusOK,
		Message: "OK",
		Data:    partners,
	})
}

// ValidatePartnerRequest is the admin decision payload.
type ValidatePartnerRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// ValidatePartner applies an approve/reject decision. Approval runs
// the creation cascade atomically with the status update.
func (ac *AdminController) ValidatePartner(c *fiber.Ctx) error {
	var req ValidatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Requête invalide",
			Status:  fiber.StatusBadRequest,
		})
	}
	if req.ID == "" || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "ID et statut requis",
			Status:  fiber.StatusBadRequest,
		})
	}

	err := ac.service.Review(c.Context(), req.ID, partnerModel.Status(req.Status), req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, partnerService.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Dossier introuvable",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, partnerService.ErrAlreadyProcessed):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Ce dossier a déjà été traité.",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, partnerService.ErrInvalidDecision):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Statut de décision invalide",
				Status:  fiber.StatusBadRequest,
			})
		default:
			logger.Error("Partner validation failed", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Erreur validation",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logger.Success("Partner " + req.ID + " " + req.Status)
	if err := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Success: true,
		Status:  fiber.StatusOK,
		Message: "Partenaire " + req.Status,
	}); err != nil {
		return err
	}

	ac.Logger.Log(utils.CreateLogEntry(c, "admin"))
	return nil
}
