package handlers_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) client(id int64, name, phone string) *domain.Client {
	return &domain.Client{
		ClientID:    id,
		Name:        name,
		Phone:       phone,
		Address:     "Dakar",
		AuditFields: domain.AuditFields{CreatedAt: s.now, LastUpdatedAt: s.now},
	}
}

func (s *HandlerTestSuite) TestCreateClient_Created() {
	req := dto.CreateClientRequest{Name: "Awa Diop", Phone: "+221 77 000 00 00", Address: "Dakar"}
	s.clients.On("AddClient", mock.Anything, req).Return(s.client(1, req.Name, req.Phone), nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/clients", req)

	s.Equal(http.StatusCreated, w.Code)
	s.True(env.Success)
	s.Equal("Client created", env.Message)

	var got dto.ClientResponse
	s.decodeData(env, &got)
	s.Equal(int64(1), got.ID)
	s.Equal("+221 77 000 00 00", got.Phone)
}

func (s *HandlerTestSuite) TestCreateClient_ValidationErrorsByField() {
	w, env := s.do(http.MethodPost, "/api/v1/clients", map[string]string{"name": "Awa", "phone": "call-me-maybe"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Equal("Validation failed", env.Message)
	s.Equal("has an invalid format", env.Errors["phone"])
	s.Equal("is required", env.Errors["address"])
	s.NotContains(env.Errors, "name")
}

func (s *HandlerTestSuite) TestCreateClient_MalformedBody() {
	w, env := s.do(http.MethodPost, "/api/v1/clients", "{not json")

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Contains(env.Message, "Invalid request format")
}

func (s *HandlerTestSuite) TestCreateClient_DuplicatePhone() {
	req := dto.CreateClientRequest{Name: "Awa", Phone: "221700000000", Address: "Dakar"}
	s.clients.On("AddClient", mock.Anything, req).
		Return(nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicatePhone, req.Phone)).Once()

	w, env := s.do(http.MethodPost, "/api/v1/clients", req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.Contains(env.Message, apperrors.ErrDuplicatePhone.Error())
}

func (s *HandlerTestSuite) TestGetClient_NotFoundIs404() {
	s.clients.On("GetClientByID", mock.Anything, int64(42)).
		Return(nil, fmt.Errorf("%w: client 42", apperrors.ErrNotFound)).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients/42", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.False(env.Success)
}

func (s *HandlerTestSuite) TestGetClient_InvalidID() {
	w, env := s.do(http.MethodGet, "/api/v1/clients/abc", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid id: abc", env.Message)
}

func (s *HandlerTestSuite) TestGetClientByPhone() {
	s.clients.On("GetClientByPhone", mock.Anything, "221700000000").
		Return(s.client(3, "Awa", "221700000000"), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients/phone/221700000000", nil)

	s.Equal(http.StatusOK, w.Code)
	var got dto.ClientResponse
	s.decodeData(env, &got)
	s.Equal(int64(3), got.ID)
}

func (s *HandlerTestSuite) TestUpdateClient_UnknownClientIs400() {
	req := dto.UpdateClientRequest{Name: "Awa", Phone: "221700000000", Address: "Thies"}
	s.clients.On("UpdateClient", mock.Anything, int64(9), req).
		Return(nil, fmt.Errorf("%w: client 9", apperrors.ErrNotFound)).Once()

	w, env := s.do(http.MethodPut, "/api/v1/clients/9", req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
}

func (s *HandlerTestSuite) TestDeleteClient_WithDebts() {
	s.clients.On("DeleteClient", mock.Anything, int64(5)).
		Return(fmt.Errorf("%w: client 5 still has 2 debt(s)", apperrors.ErrHasDependents)).Once()

	w, env := s.do(http.MethodDelete, "/api/v1/clients/5", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(env.Message, "still has 2 debt(s)")
}

func (s *HandlerTestSuite) TestDeleteClient_OK() {
	s.clients.On("DeleteClient", mock.Anything, int64(5)).Return(nil).Once()

	w, env := s.do(http.MethodDelete, "/api/v1/clients/5", nil)

	s.Equal(http.StatusOK, w.Code)
	s.True(env.Success)
	s.Equal("Client deleted", env.Message)
}

func (s *HandlerTestSuite) TestListClients_PaginationAndSortWhitelist() {
	expectedPage := domain.PageRequest{Page: 1, Size: 2, SortBy: "clients.name", SortDir: domain.SortDesc}
	filter := domain.ClientFilter{Name: "awa"}
	items := []domain.Client{*s.client(3, "Awa B", "1"), *s.client(4, "Awa A", "2")}
	s.clients.On("ListClients", mock.Anything, filter, expectedPage).
		Return(domain.NewPage(items, expectedPage, 5), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients?name=awa&page=1&size=2&sortBy=name&sortDir=desc", nil)

	s.Equal(http.StatusOK, w.Code)
	s.True(env.Success)
	s.EqualValues(1, env.Pagination["currentPage"])
	s.EqualValues(3, env.Pagination["totalPages"])
	s.EqualValues(5, env.Pagination["totalElements"])
	s.EqualValues(2, env.Pagination["size"])
	s.Equal(true, env.Pagination["hasNext"])
	s.Equal(true, env.Pagination["hasPrevious"])

	var got []dto.ClientResponse
	s.decodeData(env, &got)
	s.Len(got, 2)
}

func (s *HandlerTestSuite) TestListClients_UnknownSortFallsBackToDefault() {
	expectedPage := domain.PageRequest{Page: 0, Size: 10, SortBy: "clients.client_id", SortDir: domain.SortAsc}
	s.clients.On("ListClients", mock.Anything, domain.ClientFilter{}, expectedPage).
		Return(domain.NewPage[domain.Client](nil, expectedPage, 0), nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients?sortBy=password", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, string(env.Data))
}

func (s *HandlerTestSuite) TestSearchClients_PhoneRequired() {
	w, env := s.do(http.MethodGet, "/api/v1/clients/search", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("is required", env.Errors["phone"])
}

func (s *HandlerTestSuite) TestClientExists() {
	s.clients.On("ClientExists", mock.Anything, int64(8)).Return(false, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients/8/exists", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"exists":false}`, string(env.Data))
}

func (s *HandlerTestSuite) TestListAllClients_InfrastructureFailure() {
	s.clients.On("ListAllClients", mock.Anything).Return([]domain.Client(nil), errors.New("connection reset")).Once()

	w, env := s.do(http.MethodGet, "/api/v1/clients/simple", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.False(env.Success)
	s.Equal("Failed to list clients", env.Message)
	s.Equal("connection reset", env.Details)
}
