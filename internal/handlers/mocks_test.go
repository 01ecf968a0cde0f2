package handlers_test

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

func (m *MockClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) SearchClientsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, phone, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *MockClientService) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientService) AddClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID int64) error {
	return m.Called(ctx, clientID).Error(0)
}

type MockDebtService struct {
	mock.Mock
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

func (m *MockDebtService) GetDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Debt]), args.Error(1)
}

func (m *MockDebtService) ListDebtsByClient(ctx context.Context, clientID int64, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	args := m.Called(ctx, clientID, page)
	return args.Get(0).(domain.Page[domain.Debt]), args.Error(1)
}

func (m *MockDebtService) SearchDebtsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	args := m.Called(ctx, phone, page)
	return args.Get(0).(domain.Page[domain.Debt]), args.Error(1)
}

func (m *MockDebtService) ListUnpaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(domain.Page[domain.Debt]), args.Error(1)
}

func (m *MockDebtService) ListPaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(domain.Page[domain.Debt]), args.Error(1)
}

func (m *MockDebtService) DebtExists(ctx context.Context, debtID int64) (bool, error) {
	args := m.Called(ctx, debtID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDebtService) TotalDebtForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDebtService) RemainingForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDebtService) ClientStatistics(ctx context.Context, clientID int64) (*domain.ClientDebtStatistics, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientDebtStatistics), args.Error(1)
}

func (m *MockDebtService) AddDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) AddDebtsBatch(ctx context.Context, reqs []dto.CreateDebtRequest) ([]domain.Debt, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtService) UpdateDebt(ctx context.Context, debtID int64, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, debtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) DeleteDebt(ctx context.Context, debtID int64) error {
	return m.Called(ctx, debtID).Error(0)
}

type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Payment]), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByDebt(ctx context.Context, debtID int64, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	args := m.Called(ctx, debtID, page)
	return args.Get(0).(domain.Page[domain.Payment]), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByDebtOrdered(ctx context.Context, debtID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) SearchPaymentsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	args := m.Called(ctx, phone, page)
	return args.Get(0).(domain.Page[domain.Payment]), args.Error(1)
}

func (m *MockPaymentService) PaymentExists(ctx context.Context, paymentID int64) (bool, error) {
	args := m.Called(ctx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentService) TotalPaymentsForDebt(ctx context.Context, debtID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, debtID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentService) PaymentStatistics(ctx context.Context, debtID int64) (*domain.PaymentStatistics, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentStatistics), args.Error(1)
}

func (m *MockPaymentService) AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	return m.Called(ctx, paymentID).Error(0)
}

func (m *MockPaymentService) PayInFull(ctx context.Context, debtID int64, req dto.PayInFullRequest) (*domain.Payment, error) {
	args := m.Called(ctx, debtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
