package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "travel-cost-service/internal/handler/dto/request"
	resdto "travel-cost-service/internal/handler/dto/response"
	"travel-cost-service/internal/handler/httperr"
	"travel-cost-service/internal/usecase/commands"
	"travel-cost-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TravelHandler struct {
	cmds commands.TravelCommands
	q    queries.TravelQueries
}

func NewTravelHandler(cmds commands.TravelCommands, q queries.TravelQueries) *TravelHandler {
	return &TravelHandler{cmds: cmds, q: q}
}

// @Summary Calculate travel cost
// @Description Calculate the travel cost between two UK postcodes and record the journey
// @Tags travel
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateTravelCostRequest true "Calculate travel cost request"
// @Success 200 {object} resdto.TravelCostResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /calculate [post]
func (h *TravelHandler) Calculate(c *gin.Context) {
	var req reqdto.CalculateTravelCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "missing required fields")
		return
	}

	result, err := h.cmds.Calculate(c.Request.Context(), req.ToCommand())
	if err != nil {
		// Postcode grammar failures are the caller's fault; lookup and
		// persistence failures are not. The underlying message is surfaced
		// either way so provider error text is never lost.
		status := http.StatusInternalServerError
		if errors.Is(err, commands.ErrInvalidStartPostcode) || errors.Is(err, commands.ErrInvalidEndPostcode) {
			status = http.StatusBadRequest
		}
		httperr.AbortWithError(c, status, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalculateResult(result))
}

// @Summary List recent journeys
// @Description List the most recently recorded journeys
// @Tags travel
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} map[string][]resdto.TravelRecordResponse
// @Failure 500 {object} httperr.Response
// @Router /records [get]
func (h *TravelHandler) Records(c *gin.Context) {
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}

	items, err := h.q.RecentRecords(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": resdto.FromTravelRecordList(items)})
}

// @Summary Get a recorded journey
// @Description Fetch one recorded journey by id
// @Tags travel
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.TravelRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /records/{id} [get]
func (h *TravelHandler) Record(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid record id")
		return
	}

	view, err := h.q.RecordByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRecordNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "record not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, resdto.FromTravelRecordView(view))
}
