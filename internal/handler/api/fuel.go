package api

import (
	"errors"
	"net/http"

	"travel-cost-service/internal/domain/fuel"
	reqdto "travel-cost-service/internal/handler/dto/request"
	resdto "travel-cost-service/internal/handler/dto/response"
	"travel-cost-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type FuelHandler struct{}

func NewFuelHandler() *FuelHandler {
	return &FuelHandler{}
}

// @Summary Calculate fuel cost
// @Description Calculate fuel cost from distance, fuel price and fuel efficiency
// @Tags fuel
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateFuelCostRequest true "Calculate fuel cost request"
// @Success 200 {object} resdto.FuelCostResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calculate [post]
func (h *FuelHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculateFuelCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "missing required fields")
		return
	}

	cost, err := fuel.CalculateCost(*req.Distance, *req.FuelPrice, *req.FuelEfficiency)
	if err != nil {
		if errors.Is(err, fuel.ErrZeroEfficiency) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, resdto.FromFuelCost(cost))
}
