package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/imaging"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

type ItemController struct {
	items *service.ItemService
}

func NewItemController(items *service.ItemService) *ItemController {
	return &ItemController{items: items}
}

// ListClientItems list a client's items.
// @Tags ITEM
// @Summary list a client's garment orders, newest first.
// @Param id path string true "client id"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /clients/{id}/items [get]
func (ctl *ItemController) ListClientItems(c *gin.Context) {
	clientID := c.Param("id")

	items, err := ctl.items.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithServiceError(c, itemLogger, "ListClientItems", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": items,
		"count":   len(items),
	})
}

// GetItem get one item.
// @Tags ITEM
// @Summary get a single garment order.
// @Param id path string true "item id"
// @Produce json
// @Success 200 {object} dto.ItemDto
// @Router /items/{id} [get]
func (ctl *ItemController) GetItem(c *gin.Context) {
	item, err := ctl.items.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, itemLogger, "GetItem", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem edit an item.
// @Tags ITEM
// @Summary replace an item's measurement fields, optionally with a new photo.
// @Param id path string true "item id"
// @Param image formData file false "replacement photo"
// @Accept mpfd
// @Produce json
// @Success 200 {object} dto.ItemDto
// @Router /items/{id} [patch]
func (ctl *ItemController) UpdateItem(c *gin.Context) {
	var fields dto.ItemFields
	if err := c.ShouldBind(&fields); err != nil {
		abortWithValidation(c, itemLogger, err)
		return
	}

	var photo *imaging.Result
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			abortWithServiceError(c, itemLogger, "UpdateItem open image", err)
			return
		}
		raw, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			abortWithServiceError(c, itemLogger, "UpdateItem read image", err)
			return
		}
		photo, err = imaging.Process(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "could not process image"})
			return
		}
	}

	item, err := ctl.items.UpdateItem(c.Request.Context(), c.Param("id"), fields, photo)
	if err != nil {
		abortWithServiceError(c, itemLogger, "UpdateItem", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem delete one item.
// @Tags ITEM
// @Summary delete a single garment order.
// @Param id path string true "item id"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /items/{id} [delete]
func (ctl *ItemController) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.items.DeleteItem(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, itemLogger, "DeleteItem", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
