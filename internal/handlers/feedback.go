package handlers

import (
	"errors"
	"net/http"

	"crewboard/internal/dto"
	"crewboard/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// List godoc
// @Summary      List all feedbacks
// @Tags         feedbacks
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /feedbacks [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load feedbacks"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary      Send a feedback note
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateFeedbackRequest  true  "Feedback body"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /feedbacks [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req.Title, req.Message, req.Assignee); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create feedback"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "feedback sent"})
}

// Update godoc
// @Summary      Update a feedback note
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Feedback ID"
// @Param        body  body      dto.UpdateFeedbackRequest  true  "Partial update"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /feedbacks/{id} [put]
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	patch := service.FeedbackPatch{
		Title:    req.Title,
		Message:  req.Message,
		Assignee: req.Assignee,
	}
	if _, err := h.svc.Update(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update feedback"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "feedback updated"})
}

// Delete godoc
// @Summary      Delete a feedback note
// @Tags         feedbacks
// @Produce      json
// @Param        id   path      int  true  "Feedback ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /feedbacks/{id} [delete]
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to delete feedback"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "feedback deleted"})
}
