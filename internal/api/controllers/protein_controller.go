package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/utils"
)

type ProteinController struct {
	proteinService services.ProteinServiceInterface
}

func NewProteinController(proteinService services.ProteinServiceInterface) *ProteinController {
	return &ProteinController{
		proteinService: proteinService,
	}
}

// GetProtein godoc
// @Summary Get protein stats
// @Description Return the authenticated user's protein goal and today's count; the daily counter is reset lazily when the date rolled over
// @Tags Protein
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /protein [get]
func (p *ProteinController) GetProtein(c *gin.Context) {

	userID := c.GetString("user_id")

	protein, err := p.proteinService.GetProtein(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protein, "Protein stats fetched successfully")
}

// UpdateProtein godoc
// @Summary Update protein goal or add intake
// @Description Set protein_goal and/or add protein_to_add to today's counter in one call; if the addition fails validation nothing is persisted
// @Tags Protein
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProteinRequest true "Protein update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /protein [patch]
func (p *ProteinController) UpdateProtein(c *gin.Context) {

	var req request_models.UpdateProteinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Protein amount must be a valid number")
		return
	}

	userID := c.GetString("user_id")

	protein, err := p.proteinService.UpdateProtein(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protein, "Protein stats updated successfully")
}
