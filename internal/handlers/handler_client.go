package handlers

import (
	"net/http"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/simple", h.listAllClients)
		clients.GET("/search", h.searchClients)
		clients.GET("/phone/:phone", h.getClientByPhone)
		clients.GET("/:id", h.getClient)
		clients.GET("/:id/exists", h.clientExists)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Register a client
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.Envelope{data=dto.ClientResponse}
// @Failure 400 {object} dto.Envelope "Validation error or phone already registered"
// @Failure 500 {object} dto.Envelope
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.AddClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to create client")
		return
	}
	respondData(c, http.StatusCreated, "Client created", dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists clients, optionally filtered by a name fragment (case-insensitive) and a phone fragment
// @Tags clients
// @Produce  json
// @Param   name query string false "Name fragment"
// @Param   phone query string false "Phone fragment"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Param   sortBy query string false "Sort key" default(id)
// @Param   sortDir query string false "asc or desc" default(asc)
// @Success 200 {object} dto.Envelope{data=[]dto.ClientResponse}
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.ClientFilter{Name: params.Name, Phone: params.Phone}
	page, err := h.clientService.ListClients(c.Request.Context(), filter, clientPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list clients")
		return
	}
	respondPage(c, page, dto.ToListClientResponse)
}

// listAllClients godoc
// @Summary List every client without pagination
// @Tags clients
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]dto.ClientResponse}
// @Router /clients/simple [get]
func (h *clientHandler) listAllClients(c *gin.Context) {
	clients, err := h.clientService.ListAllClients(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to list clients")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToListClientResponse(clients))
}

// searchClients godoc
// @Summary Search clients by phone fragment
// @Tags clients
// @Produce  json
// @Param   phone query string true "Phone fragment"
// @Param   page query int false "Page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{data=[]dto.ClientResponse}
// @Failure 400 {object} dto.Envelope
// @Router /clients/search [get]
func (h *clientHandler) searchClients(c *gin.Context) {
	var params dto.SearchByPhoneParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.clientService.SearchClientsByPhone(c.Request.Context(), params.Phone, clientPage(params.PageParams))
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to search clients")
		return
	}
	respondPage(c, page, dto.ToListClientResponse)
}

// getClientByPhone godoc
// @Summary Get the client registered with a phone
// @Tags clients
// @Produce  json
// @Param   phone path string true "Exact phone"
// @Success 200 {object} dto.Envelope{data=dto.ClientResponse}
// @Failure 404 {object} dto.Envelope
// @Router /clients/phone/{phone} [get]
func (h *clientHandler) getClientByPhone(c *gin.Context) {
	client, err := h.clientService.GetClientByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to retrieve client")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToClientResponse(client))
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.Envelope{data=dto.ClientResponse}
// @Failure 404 {object} dto.Envelope
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to retrieve client")
		return
	}
	respondData(c, http.StatusOK, "", dto.ToClientResponse(client))
}

// clientExists godoc
// @Summary Check whether a client exists
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.Envelope{data=dto.ExistsResponse}
// @Router /clients/{id}/exists [get]
func (h *clientHandler) clientExists(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exists, err := h.clientService.ClientExists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to check client")
		return
	}
	respondData(c, http.StatusOK, "", dto.ExistsResponse{Exists: exists})
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   id path int true "Client ID"
// @Param   client body dto.UpdateClientRequest true "New client details"
// @Success 200 {object} dto.Envelope{data=dto.ClientResponse}
// @Failure 400 {object} dto.Envelope "Validation error, unknown client or phone taken by another client"
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to update client")
		return
	}
	respondData(c, http.StatusOK, "Client updated", dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client without debts
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Unknown client or client still has debts"
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to delete client")
		return
	}
	respondMessage(c, http.StatusOK, "Client deleted")
}
