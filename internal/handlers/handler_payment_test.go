package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) payment(id, debtID int64, amount string, createdAt time.Time) *domain.Payment {
	return &domain.Payment{
		PaymentID:   id,
		DebtID:      debtID,
		Amount:      dec(amount),
		PaymentDate: "2024-05-02",
		DebtAmount:  dec("1000"),
		ClientName:  "Awa",
		ClientPhone: "221700000000",
		AuditFields: domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
}

func (s *HandlerTestSuite) TestCreatePayment_Created() {
	s.payments.On("AddPayment", mock.Anything, mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
		return r.DebtID == 11 && r.Amount.Equal(dec("400")) && r.PaymentDate == "2024-05-02"
	})).Return(s.payment(21, 11, "400", s.now), nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/payments", `{"amount":"400.00","paymentDate":"2024-05-02","debtId":11}`)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("Payment recorded", env.Message)
	var got dto.PaymentResponse
	s.decodeData(env, &got)
	s.Equal(int64(21), got.ID)
	s.Equal("221700000000", got.ClientPhone)
	s.True(got.DebtAmount.Equal(dec("1000")))
}

func (s *HandlerTestSuite) TestCreatePayment_ExceedsRemaining() {
	s.payments.On("AddPayment", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: remaining 600.00, requested 700.00", apperrors.ErrExceedsRemaining)).Once()

	w, env := s.do(http.MethodPost, "/api/v1/payments", `{"amount":"700","paymentDate":"2024-05-02","debtId":11}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Contains(env.Message, apperrors.ErrExceedsRemaining.Error())
}

func (s *HandlerTestSuite) TestCreatePayment_NonPositiveAmount() {
	w, env := s.do(http.MethodPost, "/api/v1/payments", `{"amount":"-5","paymentDate":"2024-05-02","debtId":11}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must be at least 0.01", env.Errors["amount"])
}

func (s *HandlerTestSuite) TestPayInFull() {
	s.payments.On("PayInFull", mock.Anything, int64(11), dto.PayInFullRequest{PaymentDate: "2024-05-03"}).
		Return(s.payment(22, 11, "600", s.now), nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/payments/pay-in-full/11", dto.PayInFullRequest{PaymentDate: "2024-05-03"})

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("Debt paid in full", env.Message)
}

func (s *HandlerTestSuite) TestPayInFull_AlreadySettled() {
	s.payments.On("PayInFull", mock.Anything, int64(11), mock.Anything).
		Return(nil, fmt.Errorf("%w: debt 11", apperrors.ErrAlreadySettled)).Once()

	w, env := s.do(http.MethodPost, "/api/v1/payments/pay-in-full/11", dto.PayInFullRequest{PaymentDate: "2024-05-03"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(env.Message, apperrors.ErrAlreadySettled.Error())
}

func (s *HandlerTestSuite) TestPayInFull_DateRequired() {
	w, env := s.do(http.MethodPost, "/api/v1/payments/pay-in-full/11", `{}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("is required", env.Errors["paymentDate"])
}

func (s *HandlerTestSuite) TestGetPayment_NotFoundIs404() {
	s.payments.On("GetPaymentByID", mock.Anything, int64(5)).
		Return(nil, fmt.Errorf("%w: payment 5", apperrors.ErrNotFound)).Once()

	w, _ := s.do(http.MethodGet, "/api/v1/payments/5", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestDeletePayment_UnknownIs400() {
	s.payments.On("DeletePayment", mock.Anything, int64(5)).
		Return(fmt.Errorf("%w: payment 5", apperrors.ErrNotFound)).Once()

	w, _ := s.do(http.MethodDelete, "/api/v1/payments/5", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdatePayment() {
	s.payments.On("UpdatePayment", mock.Anything, int64(5), mock.MatchedBy(func(r dto.UpdatePaymentRequest) bool {
		return r.Amount.Equal(dec("250"))
	})).Return(s.payment(5, 11, "250", s.now), nil).Once()

	w, env := s.do(http.MethodPut, "/api/v1/payments/5", `{"amount":250,"paymentDate":"2024-05-04"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Payment updated", env.Message)
}

func (s *HandlerTestSuite) TestListPaymentsByDebtOrdered() {
	newer := s.payment(2, 11, "0.20", s.now.Add(time.Hour))
	older := s.payment(1, 11, "0.10", s.now)
	s.payments.On("ListPaymentsByDebtOrdered", mock.Anything, int64(11)).
		Return([]domain.Payment{*newer, *older}, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/payments/debt/11/simple", nil)

	s.Equal(http.StatusOK, w.Code)
	var got []dto.PaymentResponse
	s.decodeData(env, &got)
	s.Require().Len(got, 2)
	s.Equal(int64(2), got[0].ID)
	s.Equal(int64(1), got[1].ID)
}

func (s *HandlerTestSuite) TestListPaymentsByDebt_DefaultsToNewestFirst() {
	expectedPage := domain.PageRequest{Page: 0, Size: 10, SortBy: "payments.created_at", SortDir: domain.SortDesc}
	s.payments.On("ListPaymentsByDebt", mock.Anything, int64(11), expectedPage).
		Return(domain.NewPage[domain.Payment](nil, expectedPage, 0), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/payments/debt/11", nil)

	s.Equal(http.StatusOK, w.Code)
	s.EqualValues(0, env.Pagination["totalPages"])
}

func (s *HandlerTestSuite) TestPaymentTotalsAndStatistics() {
	s.payments.On("TotalPaymentsForDebt", mock.Anything, int64(11)).Return(dec("0.30"), nil).Once()
	s.payments.On("PaymentStatistics", mock.Anything, int64(11)).Return(&domain.PaymentStatistics{
		Count:           2,
		Total:           dec("400"),
		Mean:            dec("200"),
		Min:             dec("100"),
		Max:             dec("300"),
		DebtAmount:      dec("1000"),
		RemainingAmount: dec("600"),
		PercentPaid:     dec("40"),
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/payments/debt/11/total", nil)
	s.Equal(http.StatusOK, w.Code)
	var total dto.AmountResponse
	s.decodeData(env, &total)
	s.True(total.Amount.Equal(dec("0.3")))

	w, env = s.do(http.MethodGet, "/api/v1/payments/debt/11/statistics", nil)
	s.Equal(http.StatusOK, w.Code)
	var stats dto.PaymentStatisticsResponse
	s.decodeData(env, &stats)
	s.Equal(int64(11), stats.DebtID)
	s.Equal(2, stats.Count)
	s.True(stats.PercentPaid.Equal(dec("40")))
}

func (s *HandlerTestSuite) TestSearchPaymentsByPhone() {
	expectedPage := domain.PageRequest{Page: 0, Size: 10, SortBy: "payments.created_at", SortDir: domain.SortDesc}
	s.payments.On("SearchPaymentsByPhone", mock.Anything, "2217", expectedPage).
		Return(domain.NewPage([]domain.Payment{*s.payment(1, 11, "5", s.now)}, expectedPage, 1), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/payments/search-by-phone?phone=2217", nil)

	s.Equal(http.StatusOK, w.Code)
	s.EqualValues(1, env.Pagination["totalElements"])
}
