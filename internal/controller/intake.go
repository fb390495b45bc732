package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

type IntakeController struct {
	intake *service.IntakeService
}

func NewIntakeController(intake *service.IntakeService) *IntakeController {
	return &IntakeController{intake: intake}
}

// Start open an intake session.
// @Tags INTAKE
// @Summary start the intake wizard, optionally for an existing client.
// @Param request body dto.StartIntake false "start intake dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.IntakeSessionDto
// @Router /intake [post]
func (ctl *IntakeController) Start(c *gin.Context) {
	var start dto.StartIntake
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&start); err != nil {
			abortWithValidation(c, intakeLogger, err)
			return
		}
	}

	session, err := ctl.intake.Start(c.Request.Context(), start.ClientID)
	if err != nil {
		abortWithServiceError(c, intakeLogger, "Start", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Get inspect a session.
// @Tags INTAKE
// @Summary current session state, accumulated items and in-progress draft.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id} [get]
func (ctl *IntakeController) Get(c *gin.Context) {
	session, err := ctl.intake.Get(c.Param("id"))
	if err != nil {
		abortWithServiceError(c, intakeLogger, "Get", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitClient finish the client step.
// @Tags INTAKE
// @Summary validate and store the client fields, move to the items step.
// @Param id path string true "session id"
// @Param request body dto.CreateClient true "client fields"
// @Accept json
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/client [put]
func (ctl *IntakeController) SubmitClient(c *gin.Context) {
	var client dto.CreateClient
	if err := c.ShouldBindJSON(&client); err != nil {
		abortWithValidation(c, intakeLogger, err)
		return
	}

	session, err := ctl.intake.SubmitClient(c.Param("id"), client)
	if err != nil {
		abortWithServiceError(c, intakeLogger, "SubmitClient", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDraft replace the in-progress item fields.
// @Tags INTAKE
// @Summary replace the current item draft's measurement fields.
// @Param id path string true "session id"
// @Param request body dto.ItemFields true "item fields"
// @Accept json
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/draft [put]
func (ctl *IntakeController) UpdateDraft(c *gin.Context) {
	var fields dto.ItemFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithValidation(c, intakeLogger, err)
		return
	}

	session, err := ctl.intake.UpdateDraft(c.Param("id"), fields)
	if err != nil {
		abortWithServiceError(c, intakeLogger, "UpdateDraft", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AttachImage attach a photo to the draft.
// @Tags INTAKE
// @Summary compress a photo and attach it to the current item draft.
// @Param id path string true "session id"
// @Param image formData file true "item photo"
// @Accept mpfd
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/draft/image [post]
func (ctl *IntakeController) AttachImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		abortWithServiceError(c, intakeLogger, "AttachImage open", err)
		return
	}
	raw, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		abortWithServiceError(c, intakeLogger, "AttachImage read", err)
		return
	}

	session, err := ctl.intake.AttachImage(c.Param("id"), raw)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrInvalidTransition) {
			abortWithServiceError(c, intakeLogger, "AttachImage", err)
			return
		}
		// Compression failures leave the previous image attachment in place;
		// the caller just retries with another file.
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "could not process image"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddItem add & another.
// @Tags INTAKE
// @Summary append the draft to the item list and reset the form.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/items [post]
func (ctl *IntakeController) AddItem(c *gin.Context) {
	session, err := ctl.intake.AddItem(c.Param("id"))
	if err != nil {
		abortWithServiceError(c, intakeLogger, "AddItem", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Review move to the review step.
// @Tags INTAKE
// @Summary move to review; a non-empty draft is appended first.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/review [post]
func (ctl *IntakeController) Review(c *gin.Context) {
	session, err := ctl.intake.Review(c.Param("id"))
	if err != nil {
		abortWithServiceError(c, intakeLogger, "Review", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back return to the items step.
// @Tags INTAKE
// @Summary go back from review to collecting items.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} dto.IntakeSessionDto
// @Router /intake/{id}/back [post]
func (ctl *IntakeController) Back(c *gin.Context) {
	session, err := ctl.intake.Back(c.Param("id"))
	if err != nil {
		abortWithServiceError(c, intakeLogger, "Back", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Save persist everything.
// @Tags INTAKE
// @Summary create the client if new, upload photos, batch-insert the items.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} dto.SaveResult
// @Router /intake/{id}/save [post]
func (ctl *IntakeController) Save(c *gin.Context) {
	result, err := ctl.intake.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, intakeLogger, "Save", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Abandon discard a session.
// @Tags INTAKE
// @Summary discard the session and all unsaved drafts.
// @Param id path string true "session id"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /intake/{id} [delete]
func (ctl *IntakeController) Abandon(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.intake.Abandon(id); err != nil {
		abortWithServiceError(c, intakeLogger, "Abandon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
