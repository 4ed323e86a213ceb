package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"crewboard/internal/dto"
	"crewboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	svc *service.ChecklistService
}

func NewChecklistHandler(svc *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// List godoc
// @Summary      List all checklists
// @Tags         checklists
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /checklists [get]
func (h *ChecklistHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load checklists"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary      Create a checklist
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateChecklistRequest  true  "Checklist body"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /checklists [post]
func (h *ChecklistHandler) Create(c *gin.Context) {
	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.Assignee, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create checklist"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "checklist created"})
}

// Update godoc
// @Summary      Update a checklist
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Checklist ID"
// @Param        body  body      dto.UpdateChecklistRequest  true  "Partial update"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /checklists/{id} [put]
func (h *ChecklistHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	patch := service.ChecklistPatch{
		Title:          req.Title,
		Description:    req.Description,
		Assignee:       req.Assignee,
		Items:          req.Items,
		ItemsCompleted: req.ItemsCompleted,
		Completed:      req.Completed,
	}
	if req.CompletedDate != nil {
		patch.CompletedDate = req.CompletedDate.Ptr()
	}
	if _, err := h.svc.Update(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "checklist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update checklist"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "checklist updated"})
}

// Delete godoc
// @Summary      Delete a checklist
// @Tags         checklists
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /checklists/{id} [delete]
func (h *ChecklistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "checklist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to delete checklist"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "checklist deleted"})
}

// SetStatus godoc
// @Summary      Overwrite checklist completion status
// @Description  Sets the aggregate completed flag directly, bypassing per-item state.
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Checklist ID"
// @Param        body  body      dto.UpdateStatusRequest  true  "Status"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /checklists/{id}/status [put]
func (h *ChecklistHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	var completedDate *time.Time
	if req.CompletedDate != nil {
		completedDate = req.CompletedDate.Ptr()
	}
	if _, err := h.svc.SetStatus(c.Request.Context(), id, req.Completed, completedDate); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "checklist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update checklist status"})
		return
	}
	msg := "checklist reopened"
	if req.Completed {
		msg = "checklist completed"
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: msg})
}

// ToggleItem godoc
// @Summary      Toggle a single checklist item
// @Description  Flips one item's completion flag and re-derives aggregate completion.
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Checklist ID"
// @Param        body  body      dto.ToggleItemRequest  true  "Item toggle"
// @Success      200   {object}  dto.ToggleItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /checklists/{id}/items [put]
func (h *ChecklistHandler) ToggleItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	res, err := h.svc.ToggleItem(c.Request.Context(), id, *req.ItemIndex, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "checklist not found"})
			return
		}
		if errors.Is(err, service.ErrItemIndex) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "itemIndex out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update checklist item"})
		return
	}
	c.JSON(http.StatusOK, dto.ToggleItemResponse{
		Success:   true,
		Message:   "item updated",
		Progress:  res.Progress,
		Completed: res.Completed,
	})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
