package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

type ClientController struct {
	clients *service.ClientService
	items   *service.ItemService
}

func NewClientController(clients *service.ClientService, items *service.ItemService) *ClientController {
	return &ClientController{clients: clients, items: items}
}

// ListClients list clients.
// @Tags CLIENT
// @Summary list all clients ordered by name.
// @Produce json
// @Success 200 {object} map[string]any
// @Router /clients [get]
func (ctl *ClientController) ListClients(c *gin.Context) {
	clients, err := ctl.clients.ListClients(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, clientLogger, "ListClients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": clients,
		"count":   len(clients),
	})
}

// CreateClient create client.
// @Tags CLIENT
// @Summary create a client directly, outside the intake wizard.
// @Param request body dto.CreateClient true "create client dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.ClientDto
// @Router /clients [post]
func (ctl *ClientController) CreateClient(c *gin.Context) {
	var create dto.CreateClient
	if err := c.ShouldBindJSON(&create); err != nil {
		abortWithValidation(c, clientLogger, err)
		return
	}

	client, err := ctl.clients.CreateClient(c.Request.Context(), create)
	if err != nil {
		abortWithServiceError(c, clientLogger, "CreateClient", err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClientByID get one client with their order history.
// @Tags CLIENT
// @Summary get a client and their items, newest item first.
// @Param id path string true "client id"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /clients/{id} [get]
func (ctl *ClientController) GetClientByID(c *gin.Context) {
	id := c.Param("id")

	client, err := ctl.clients.GetClient(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, clientLogger, "GetClientByID", err)
		return
	}

	items, err := ctl.items.ListByClient(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, clientLogger, "GetClientByID items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client": client,
		"items":  items,
	})
}

// DeleteClient delete client.
// @Tags CLIENT
// @Summary delete a client and all their items.
// @Param id path string true "client id"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /clients/{id} [delete]
func (ctl *ClientController) DeleteClient(c *gin.Context) {
	id := c.Param("id")

	if err := ctl.clients.DeleteClient(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, clientLogger, "DeleteClient", err)
		return
	}
	// The deleted id lets list views drop the row locally instead of
	// re-fetching; views still re-read the store on re-entry.
	c.JSON(http.StatusOK, gin.H{"id": id})
}
