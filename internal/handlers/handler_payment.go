package handlers

import (
	"net/http"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.POST("/pay-in-full/:debtId", h.payInFull)
		payments.GET("", h.listPayments)
		payments.GET("/search-by-phone", h.searchPayments)
		payments.GET("/debt/:debtId", h.listPaymentsByDebt)
		payments.GET("/debt/:debtId/simple", h.listPaymentsByDebtOrdered)
		payments.GET("/debt/:debtId/total", h.totalForDebt)
		payments.GET("/debt/:debtId/statistics", h.paymentStatistics)
		payments.GET("/:id", h.getPayment)
		payments.GET("/:id/exists", h.paymentExists)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment against a debt
// @Description The amount must be positive and may not exceed the remaining amount of the debt.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.Envelope{data=dto.PaymentResponse}
// @Failure 400 {object} dto.Envelope "Validation error, unknown debt or amount above the remaining amount"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.paymentService.AddPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to create payment")
		return
	}
	respondData(c, http.StatusCreated, "Payment recorded", dto.ToPaymentResponse(payment))
}

// payInFull godoc
// @Summary Pay the remaining amount of a debt
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   debtId path int true "Debt ID"
// @Param   payment body dto.PayInFullRequest true "Payment date"
// @Success 201 {object} dto.Envelope{data=dto.PaymentResponse}
// @Failure 400 {object} dto.Envelope "Missing date, unknown debt or debt already settled"
// @Router /payments/pay-in-full/{debtId} [post]
func (h *paymentHandler) payInFull(c *gin.Context) {
	debtID, ok := parseIDParam(c, "debtId")
	if !ok {
		return
	}
	var req dto.PayInFullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.paymentService.PayInFull(c.Request.Context(), debtID, req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to pay debt in full")
		return
	}
	respondData(c, http.StatusCreated, "Debt paid in full", dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce  json
// @Param   debtId query int false "Debt"
// @Param   phone query string false "Client phone fragment"
// @Param   minAmount query string false "Minimum amount"
// @Param   maxAmount query string false "Maximum amount"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Param   sortBy query string false "Sort key" default(createdAt)
// @Param   sortDir query string false "asc or desc" default(desc)
// @Success 200 {object} dto.Envelope{data=[]dto.PaymentResponse}
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.PaymentFilter{
		DebtID:    params.DebtID,
		Phone:     params.Phone,
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
	}
	page, err := h.paymentService.ListPayments(c.Request.Context(), filter, paymentPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list payments")
		return
	}
	respondPage(c, page, dto.ToListPaymentResponse)
}

// searchPayments godoc
// @Summary Search payments by client phone fragment
// @Tags payments
// @Produce  json
// @Param   phone query string true "Phone fragment"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.PaymentResponse}
// @Router /payments/search-by-phone [get]
func (h *paymentHandler) searchPayments(c *gin.Context) {
	var params dto.SearchByPhoneParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.paymentService.SearchPaymentsByPhone(c.Request.Context(), params.Phone, paymentPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to search payments")
		return
	}
	respondPage(c, page, dto.ToListPaymentResponse)
}

// listPaymentsByDebt godoc
// @Summary List the payments of a debt
// @Tags payments
// @Produce  json
// @Param   debtId path int true "Debt ID"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.PaymentResponse}
// @Router /payments/debt/{debtId} [get]
func (h *paymentHandler) listPaymentsByDebt(c *gin.Context) {
	debtID, ok := parseIDParam(c, "debtId")
	if !ok {
		return
	}
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.paymentService.ListPaymentsByDebt(c.Request.Context(), debtID, paymentPage(params))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list payments of debt")
		return
	}
	respondPage(c, page, dto.ToListPaymentResponse)
}

// listPaymentsByDebtOrdered godoc
// @Summary List every payment of a debt, newest first
// @Tags payments
// @Produce  json
// @Param   debtId path int true "Debt ID"
// @Success 200 {object} dto.Envelope{data=[]dto.PaymentResponse}
// @Router /payments/debt/{debtId}/simple [get]
func (h *paymentHandler) listPaymentsByDebtOrdered(c *gin.Context) {
	debtID, ok := parseIDParam(c, "debtId")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByDebtOrdered(c.Request.Context(), debtID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list payments of debt")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToListPaymentResponse(payments))
}

// totalForDebt godoc
// @Summary Total paid against a debt
// @Tags payments
// @Produce  json
// @Param   debtId path int true "Debt ID"
// @Success 200 {object} dto.Envelope{data=dto.AmountResponse}
// @Router /payments/debt/{debtId}/total [get]
func (h *paymentHandler) totalForDebt(c *gin.Context) {
	debtID, ok := parseIDParam(c, "debtId")
	if !ok {
		return
	}

	total, err := h.paymentService.TotalPaymentsForDebt(c.Request.Context(), debtID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to compute total payments")
		return
	}
	respondData(c, http.StatusOK, "", dto.AmountResponse{Amount: total})
}

// paymentStatistics godoc
// @Summary Payment statistics of a debt
// @Tags payments
// @Produce  json
// @Param   debtId path int true "Debt ID"
// @Success 200 {object} dto.Envelope{data=dto.PaymentStatisticsResponse}
// @Failure 400 {object} dto.Envelope "Unknown debt"
// @Router /payments/debt/{debtId}/statistics [get]
func (h *paymentHandler) paymentStatistics(c *gin.Context) {
	debtID, ok := parseIDParam(c, "debtId")
	if !ok {
		return
	}

	stats, err := h.paymentService.PaymentStatistics(c.Request.Context(), debtID)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to compute payment statistics")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToPaymentStatisticsResponse(debtID, *stats))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.Envelope{data=dto.PaymentResponse}
// @Failure 404 {object} dto.Envelope
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to retrieve payment")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToPaymentResponse(payment))
}

// paymentExists godoc
// @Summary Check whether a payment exists
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.Envelope{data=dto.ExistsResponse}
// @Router /payments/{id}/exists [get]
func (h *paymentHandler) paymentExists(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exists, err := h.paymentService.PaymentExists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to check payment")
		return
	}
	respondData(c, http.StatusOK, "", dto.ExistsResponse{Exists: exists})
}

// updatePayment godoc
// @Summary Update the amount and date of a payment
// @Description The payment's current amount counts as available when the new amount is checked.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "New payment details"
// @Success 200 {object} dto.Envelope{data=dto.PaymentResponse}
// @Failure 400 {object} dto.Envelope
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to update payment")
		return
	}
	respondData(c, http.StatusOK, "Payment updated", dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Unknown payment"
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to delete payment")
		return
	}
	respondMessage(c, http.StatusOK, "Payment deleted")
}
