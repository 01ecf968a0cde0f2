package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) debt(id, clientID int64, amount, paid string) *domain.Debt {
	debt := dec(amount)
	paidAmount := dec(paid)
	return &domain.Debt{
		DebtID:          id,
		ClientID:        clientID,
		Date:            "2024-05-01",
		DebtAmount:      debt,
		PaidAmount:      paidAmount,
		RemainingAmount: debt.Sub(paidAmount),
		AuditFields:     domain.AuditFields{CreatedAt: s.now, LastUpdatedAt: s.now},
	}
}

func (s *HandlerTestSuite) TestCreateDebt_Created() {
	matchReq := mock.MatchedBy(func(r dto.CreateDebtRequest) bool {
		return r.ClientID == 7 && r.Date == "2024-05-01" && r.DebtAmount.Equal(dec("1000.00"))
	})
	s.debts.On("AddDebt", mock.Anything, matchReq).Return(s.debt(11, 7, "1000", "0"), nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/debts", `{"date":"2024-05-01","debtAmount":"1000.00","clientId":7}`)

	s.Equal(http.StatusCreated, w.Code)
	var got dto.DebtResponse
	s.decodeData(env, &got)
	s.Equal(int64(11), got.ID)
	s.Equal(domain.DebtOpen, got.Status)
	s.True(got.RemainingAmount.Equal(dec("1000")))
	s.True(got.PaidAmount.IsZero())
}

func (s *HandlerTestSuite) TestCreateDebt_AmountBelowMinimum() {
	w, env := s.do(http.MethodPost, "/api/v1/debts", `{"date":"2024-05-01","debtAmount":0.001,"clientId":7}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must be at least 0.01", env.Errors["debtAmount"])
}

func (s *HandlerTestSuite) TestCreateDebt_MissingFields() {
	w, env := s.do(http.MethodPost, "/api/v1/debts", `{"debtAmount":"10"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("is required", env.Errors["date"])
	s.Equal("is required", env.Errors["clientId"])
}

func (s *HandlerTestSuite) TestCreateDebt_UnknownClientIs400() {
	s.debts.On("AddDebt", mock.Anything, mock.AnythingOfType("dto.CreateDebtRequest")).
		Return(nil, fmt.Errorf("%w: client 99", apperrors.ErrNotFound)).Once()

	w, env := s.do(http.MethodPost, "/api/v1/debts", `{"date":"2024-05-01","debtAmount":"5","clientId":99}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Contains(env.Message, "client 99")
}

func (s *HandlerTestSuite) TestCreateDebtsBatch_AllCreated() {
	created := []domain.Debt{*s.debt(1, 7, "500", "0"), *s.debt(2, 7, "300", "0")}
	s.debts.On("AddDebtsBatch", mock.Anything, mock.MatchedBy(func(r []dto.CreateDebtRequest) bool { return len(r) == 2 })).
		Return(created, nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/debts/batch",
		`[{"date":"2024-05-01","debtAmount":"500","clientId":7},{"date":"2024-05-02","debtAmount":"300","clientId":7}]`)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("2 debt(s) added", env.Message)
	var got []dto.DebtResponse
	s.decodeData(env, &got)
	s.Len(got, 2)
}

func (s *HandlerTestSuite) TestCreateDebtsBatch_PartialFailureReturnsCreated() {
	created := []domain.Debt{*s.debt(1, 7, "500", "0")}
	s.debts.On("AddDebtsBatch", mock.Anything, mock.Anything).
		Return(created, fmt.Errorf("debt 2 of 2: %w", fmt.Errorf("%w: client 99", apperrors.ErrNotFound))).Once()

	w, env := s.do(http.MethodPost, "/api/v1/debts/batch",
		`[{"date":"2024-05-01","debtAmount":"500","clientId":7},{"date":"2024-05-02","debtAmount":"300","clientId":99}]`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Contains(env.Message, "1 debt(s) added before failure")
	s.Contains(env.Message, "debt 2 of 2")
	var got []dto.DebtResponse
	s.decodeData(env, &got)
	s.Require().Len(got, 1)
	s.Equal(int64(1), got[0].ID)
}

func (s *HandlerTestSuite) TestCreateDebtsBatch_ElementValidationByPosition() {
	w, env := s.do(http.MethodPost, "/api/v1/debts/batch",
		`[{"date":"2024-05-01","debtAmount":"500","clientId":7},{"date":"","debtAmount":"300","clientId":0}]`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Validation failed", env.Message)
	s.Equal("is required", env.Errors["[1].date"])
	s.Contains(env.Errors, "[1].clientId")
	s.NotContains(env.Errors, "[0].date")
}

func (s *HandlerTestSuite) TestCreateDebtsBatch_Empty() {
	w, env := s.do(http.MethodPost, "/api/v1/debts/batch", `[]`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("At least one debt is required", env.Message)
}

func (s *HandlerTestSuite) TestGetDebt_NotFoundIs404() {
	s.debts.On("GetDebtByID", mock.Anything, int64(3)).
		Return(nil, fmt.Errorf("%w: debt 3", apperrors.ErrNotFound)).Once()

	w, _ := s.do(http.MethodGet, "/api/v1/debts/3", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestGetDebt_SettledStatus() {
	s.debts.On("GetDebtByID", mock.Anything, int64(3)).Return(s.debt(3, 7, "600", "700"), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/debts/3", nil)

	s.Equal(http.StatusOK, w.Code)
	var got dto.DebtResponse
	s.decodeData(env, &got)
	s.Equal(domain.DebtSettled, got.Status)
	s.True(got.RemainingAmount.Equal(dec("-100")))
}

func (s *HandlerTestSuite) TestDeleteDebt_WithPayments() {
	s.debts.On("DeleteDebt", mock.Anything, int64(4)).
		Return(fmt.Errorf("%w: debt 4 still has 1 payment(s)", apperrors.ErrHasDependents)).Once()

	w, env := s.do(http.MethodDelete, "/api/v1/debts/4", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(env.Message, "payment(s)")
}

func (s *HandlerTestSuite) TestUpdateDebt() {
	s.debts.On("UpdateDebt", mock.Anything, int64(4), mock.MatchedBy(func(r dto.UpdateDebtRequest) bool {
		return r.DebtAmount.Equal(dec("600")) && r.Date == "2024-06-01"
	})).Return(s.debt(4, 7, "600", "700"), nil).Once()

	w, env := s.do(http.MethodPut, "/api/v1/debts/4", `{"date":"2024-06-01","debtAmount":600}`)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Debt updated", env.Message)
}

func (s *HandlerTestSuite) TestListDebts_FiltersFromQuery() {
	expectedPage := domain.PageRequest{Page: 0, Size: 10, SortBy: "debts.debt_id", SortDir: domain.SortDesc}
	s.debts.On("ListDebts", mock.Anything, mock.MatchedBy(func(f domain.DebtFilter) bool {
		return f.ClientID != nil && *f.ClientID == 7 &&
			f.Phone == "2217" &&
			f.MinAmount != nil && f.MinAmount.Equal(dec("100")) &&
			f.MaxAmount == nil && f.Status == nil
	}), expectedPage).Return(domain.NewPage([]domain.Debt{*s.debt(1, 7, "500", "0")}, expectedPage, 1), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/debts?clientId=7&phone=2217&minAmount=100", nil)

	s.Equal(http.StatusOK, w.Code)
	s.EqualValues(1, env.Pagination["totalElements"])
	s.Equal(false, env.Pagination["hasNext"])
}

func (s *HandlerTestSuite) TestListUnpaidDebts() {
	expectedPage := domain.PageRequest{Page: 2, Size: 5, SortBy: "debts.remaining_amount", SortDir: domain.SortAsc}
	s.debts.On("ListUnpaidDebts", mock.Anything, expectedPage).
		Return(domain.NewPage[domain.Debt](nil, expectedPage, 0), nil).Once()

	w, _ := s.do(http.MethodGet, "/api/v1/debts/unpaid?page=2&size=5&sortBy=remainingAmount&sortDir=ASC", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestClientTotals() {
	s.debts.On("TotalDebtForClient", mock.Anything, int64(7)).Return(dec("800.00"), nil).Once()
	s.debts.On("RemainingForClient", mock.Anything, int64(7)).Return(dec("600.00"), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/debts/client/7/total", nil)
	s.Equal(http.StatusOK, w.Code)
	var total dto.AmountResponse
	s.decodeData(env, &total)
	s.True(total.Amount.Equal(dec("800")))

	w, env = s.do(http.MethodGet, "/api/v1/debts/client/7/remaining", nil)
	s.Equal(http.StatusOK, w.Code)
	var remaining dto.AmountResponse
	s.decodeData(env, &remaining)
	s.True(remaining.Amount.Equal(dec("600")))
}

func (s *HandlerTestSuite) TestClientStatistics() {
	s.debts.On("ClientStatistics", mock.Anything, int64(7)).Return(&domain.ClientDebtStatistics{
		TotalDebt:      dec("800"),
		TotalPaid:      dec("200"),
		TotalRemaining: dec("600"),
		DebtCount:      2,
		SettledCount:   0,
		UnsettledCount: 2,
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/debts/client/7/statistics", nil)

	s.Equal(http.StatusOK, w.Code)
	var got dto.ClientStatisticsResponse
	s.decodeData(env, &got)
	s.Equal(int64(7), got.ClientID)
	s.Equal(int64(2), got.UnsettledCount)
	s.True(got.TotalPaid.Equal(dec("200")))
}

func (s *HandlerTestSuite) TestListDebtsByClient_InvalidClientID() {
	w, env := s.do(http.MethodGet, "/api/v1/debts/client/0", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid clientId: 0", env.Message)
}
