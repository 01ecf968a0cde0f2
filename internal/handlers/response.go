package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/SscSPs/debt_ledger_app/internal/middleware"
	"github.com/SscSPs/debt_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Envelope{Success: true, Message: message, Data: data})
}

func respondPage[T, R any](c *gin.Context, page domain.Page[T], convert func([]T) []R) {
	c.JSON(http.StatusOK, dto.Envelope{
		Success:    true,
		Data:       convert(page.Items),
		Pagination: dto.ToPaginationResponse(page),
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Envelope{Success: status < http.StatusBadRequest, Message: message})
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  validationMessages(verrs),
		})
		return
	}
	respondMessage(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
}

// errorStatus maps a service error onto a status. notFoundStatus is used for
// apperrors.ErrNotFound, so lookups answer 404 while a missing reference inside
// a write answers 400.
func errorStatus(err error, notFoundStatus int) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, apperrors.ErrNotFound):
		return notFoundStatus
	case apperrors.IsBusinessRule(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError answers with the status errorStatus picks. Unexpected failures
// get failureMsg as message; the cause is only included outside release mode.
func respondError(c *gin.Context, err error, notFoundStatus int, failureMsg string) {
	logger := middleware.GetLoggerFromContext(c)
	status := errorStatus(err, notFoundStatus)

	if status < http.StatusInternalServerError {
		logger.Warn(failureMsg, slog.String("error", err.Error()))
		message := err.Error()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		respondMessage(c, status, message)
		return
	}

	logger.Error(failureMsg, slog.String("error", err.Error()))
	body := dto.Envelope{Success: false, Message: failureMsg}
	if gin.Mode() != gin.ReleaseMode {
		body.Details = err.Error()
	}
	c.JSON(status, body)
}

// parseIDParam reads a positive integer path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, "Invalid "+name+": "+c.Param(name))
		return 0, false
	}
	return id, true
}

func pageRequest(p dto.PageParams, columns pagination.SortColumns, defaultKey string, defaultDir domain.SortDirection) domain.PageRequest {
	return pagination.NewRequest(p.Page, p.Size, p.SortBy, p.SortDir, columns, defaultKey, defaultDir)
}

func clientPage(p dto.PageParams) domain.PageRequest {
	return pageRequest(p, pagination.ClientSortColumns, "id", domain.SortAsc)
}

func debtPage(p dto.PageParams) domain.PageRequest {
	return pageRequest(p, pagination.DebtSortColumns, "id", domain.SortDesc)
}

func paymentPage(p dto.PageParams) domain.PageRequest {
	return pageRequest(p, pagination.PaymentSortColumns, "createdAt", domain.SortDesc)
}
