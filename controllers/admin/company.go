package admin

import (
	"errors"

	"vtc-onboarding/logger"
	partnerService "vtc-onboarding/services/partner"
	"vtc-onboarding/types"

	"github.com/gofiber/fiber/v2"
)

// UpdateCompanyRequest attaches or detaches a company from a hub.
type UpdateCompanyRequest struct {
	ID    string `json:"id"`
	HubID string `json:"hub_id"`
}

// UpdateCompany sets a company's hub. Joining a hub turns the company
// into a fleet member (account_type driver); leaving it reverts to
// solo.
func (ac *AdminController) UpdateCompany(c *fiber.Ctx) error {
	var req UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Requête invalide",
			Status:  fiber.StatusBadRequest,
		})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "ID requis",
			Status:  fiber.StatusBadRequest,
		})
	}

	var hubID *string
	accountType := "solo"
	if req.HubID != "" {
		hubID = &req.HubID
		accountType = "driver"
	}

	if err := ac.store.UpdateCompanyHub(c.Context(), req.ID, hubID, accountType); err != nil {
		if errors.Is(err, partnerService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Entreprise introuvable",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update company", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Échec de la mise à jour de l'entreprise",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Success: true,
		Status:  fiber.StatusOK,
		Message: "OK",
	})
}
