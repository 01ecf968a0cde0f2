package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// debtHandler handles HTTP requests related to debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.POST("/batch", h.createDebtsBatch)
		debts.GET("", h.listDebts)
		debts.GET("/unpaid", h.listUnpaidDebts)
		debts.GET("/paid", h.listPaidDebts)
		debts.GET("/search-by-phone", h.searchDebts)
		debts.GET("/client/:clientId", h.listDebtsByClient)
		debts.GET("/client/:clientId/total", h.totalForClient)
		debts.GET("/client/:clientId/remaining", h.remainingForClient)
		debts.GET("/client/:clientId/statistics", h.clientStatistics)
		debts.GET("/:id", h.getDebt)
		debts.GET("/:id/exists", h.debtExists)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

// createDebt godoc
// @Summary Record a debt for a client
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.Envelope{data=dto.DebtResponse}
// @Failure 400 {object} dto.Envelope "Validation error or unknown client"
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debt, err := h.debtService.AddDebt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to create debt")
		return
	}
	respondData(c, http.StatusCreated, "Debt created", dto.ToDebtResponse(debt))
}

// createDebtsBatch godoc
// @Summary Record several debts
// @Description Each debt is stored in its own transaction, in order. On the first failure the
// @Description remaining debts are skipped and the debts already stored are returned with a 400.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debts body []dto.CreateDebtRequest true "Debts"
// @Success 201 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Failure 400 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Router /debts/batch [post]
func (h *debtHandler) createDebtsBatch(c *gin.Context) {
	var reqs []dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		// Element errors are reported per position below.
		var sliceErr binding.SliceValidationError
		if !errors.As(err, &sliceErr) {
			respondBindError(c, err)
			return
		}
	}
	if len(reqs) == 0 {
		respondMessage(c, http.StatusBadRequest, "At least one debt is required")
		return
	}
	if fieldErrs := validateBatch(reqs); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, dto.Envelope{Success: false, Message: "Validation failed", Errors: fieldErrs})
		return
	}

	created, err := h.debtService.AddDebtsBatch(c.Request.Context(), reqs)
	if err != nil {
		status := errorStatus(err, http.StatusBadRequest)
		if status >= http.StatusInternalServerError || len(created) == 0 {
			respondError(c, err, http.StatusBadRequest, "Failed to create debts")
			return
		}
		c.JSON(status, dto.Envelope{
			Success: false,
			Message: fmt.Sprintf("%d debt(s) added before failure: %s", len(created), err.Error()),
			Data:    dto.ToListDebtResponse(created),
		})
		return
	}
	respondData(c, http.StatusCreated, fmt.Sprintf("%d debt(s) added", len(created)), dto.ToListDebtResponse(created))
}

// validateBatch validates every element, keying messages by position and field.
func validateBatch(reqs []dto.CreateDebtRequest) map[string]string {
	out := map[string]string{}
	for i := range reqs {
		err := binding.Validator.ValidateStruct(&reqs[i])
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for field, msg := range validationMessages(verrs) {
				out[fmt.Sprintf("[%d].%s", i, field)] = msg
			}
		}
	}
	return out
}

// listDebts godoc
// @Summary List debts
// @Tags debts
// @Produce  json
// @Param   clientId query int false "Owning client"
// @Param   phone query string false "Client phone fragment"
// @Param   minAmount query string false "Minimum debt amount"
// @Param   maxAmount query string false "Maximum debt amount"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Param   sortBy query string false "Sort key" default(id)
// @Param   sortDir query string false "asc or desc" default(desc)
// @Success 200 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.DebtFilter{
		ClientID:  params.ClientID,
		Phone:     params.Phone,
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
	}
	page, err := h.debtService.ListDebts(c.Request.Context(), filter, debtPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list debts")
		return
	}
	respondPage(c, page, dto.ToListDebtResponse)
}

// listUnpaidDebts godoc
// @Summary List debts with an amount left to pay
// @Tags debts
// @Produce  json
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Router /debts/unpaid [get]
func (h *debtHandler) listUnpaidDebts(c *gin.Context) {
	h.listByStatus(c, h.debtService.ListUnpaidDebts)
}

// listPaidDebts godoc
// @Summary List settled debts
// @Tags debts
// @Produce  json
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Router /debts/paid [get]
func (h *debtHandler) listPaidDebts(c *gin.Context) {
	h.listByStatus(c, h.debtService.ListPaidDebts)
}

func (h *debtHandler) listByStatus(c *gin.Context, list func(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error)) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := list(c.Request.Context(), debtPage(params))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list debts")
		return
	}
	respondPage(c, page, dto.ToListDebtResponse)
}

// searchDebts godoc
// @Summary Search debts by client phone fragment
// @Tags debts
// @Produce  json
// @Param   phone query string true "Phone fragment"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Router /debts/search-by-phone [get]
func (h *debtHandler) searchDebts(c *gin.Context) {
	var params dto.SearchByPhoneParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.debtService.SearchDebtsByPhone(c.Request.Context(), params.Phone, debtPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to search debts")
		return
	}
	respondPage(c, page, dto.ToListDebtResponse)
}

// listDebtsByClient godoc
// @Summary List the debts of a client
// @Tags debts
// @Produce  json
// @Param   clientId path int true "Client ID"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.DebtResponse}
// @Failure 400 {object} dto.Envelope "Unknown client"
// @Router /debts/client/{clientId} [get]
func (h *debtHandler) listDebtsByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.debtService.ListDebtsByClient(c.Request.Context(), clientID, debtPage(params))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list debts of client")
		return
	}
	respondPage(c, page, dto.ToListDebtResponse)
}

// totalForClient godoc
// @Summary Total amount owed by a client across its debts
// @Tags debts
// @Produce  json
// @Param   clientId path int true "Client ID"
// @Success 200 {object} dto.Envelope{data=dto.AmountResponse}
// @Router /debts/client/{clientId}/total [get]
func (h *debtHandler) totalForClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	total, err := h.debtService.TotalDebtForClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to compute total debt")
		return
	}
	respondData(c, http.StatusOK, "", dto.AmountResponse{Amount: total})
}

// remainingForClient godoc
// @Summary Amount a client still has to pay
// @Tags debts
// @Produce  json
// @Param   clientId path int true "Client ID"
// @Success 200 {object} dto.Envelope{data=dto.AmountResponse}
// @Router /debts/client/{clientId}/remaining [get]
func (h *debtHandler) remainingForClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	remaining, err := h.debtService.RemainingForClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to compute remaining amount")
		return
	}
	respondData(c, http.StatusOK, "", dto.AmountResponse{Amount: remaining})
}

// clientStatistics godoc
// @Summary Debt statistics of a client
// @Tags debts
// @Produce  json
// @Param   clientId path int true "Client ID"
// @Success 200 {object} dto.Envelope{data=dto.ClientStatisticsResponse}
// @Router /debts/client/{clientId}/statistics [get]
func (h *debtHandler) clientStatistics(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	stats, err := h.debtService.ClientStatistics(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to compute client statistics")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToClientStatisticsResponse(clientID, *stats))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce  json
// @Param   id path int true "Debt ID"
// @Success 200 {object} dto.Envelope{data=dto.DebtResponse}
// @Failure 404 {object} dto.Envelope
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to retrieve debt")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToDebtResponse(debt))
}

// debtExists godoc
// @Summary Check whether a debt exists
// @Tags debts
// @Produce  json
// @Param   id path int true "Debt ID"
// @Success 200 {object} dto.Envelope{data=dto.ExistsResponse}
// @Router /debts/{id}/exists [get]
func (h *debtHandler) debtExists(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exists, err := h.debtService.DebtExists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to check debt")
		return
	}
	respondData(c, http.StatusOK, "", dto.ExistsResponse{Exists: exists})
}

// updateDebt godoc
// @Summary Update the date and amount of a debt
// @Description The paid and remaining amounts are recomputed from the recorded payments.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path int true "Debt ID"
// @Param   debt body dto.UpdateDebtRequest true "New debt details"
// @Success 200 {object} dto.Envelope{data=dto.DebtResponse}
// @Failure 400 {object} dto.Envelope
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to update debt")
		return
	}
	respondData(c, http.StatusOK, "Debt updated", dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt without payments
// @Tags debts
// @Produce  json
// @Param   id path int true "Debt ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Unknown debt or debt still has payments"
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to delete debt")
		return
	}
	respondMessage(c, http.StatusOK, "Debt deleted")
}
