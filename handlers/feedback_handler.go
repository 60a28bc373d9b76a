package handlers

import (
	"net/http"

	apperrors "github.com/NomadCrew/feedback-api/errors"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler exposes the feedback CRUD endpoints.
type FeedbackHandler struct {
	feedbackService FeedbackServiceInterface
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListFeedbacks godoc
// @Summary      List feedbacks
// @Description  Returns one page of feedbacks ordered by id
// @Tags         feedbacks
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"  minimum(1)
// @Param        limit  query     int  false  "Page size"              minimum(1)
// @Success      200    {object}  types.FeedbackListResponse
// @Failure      400    {object}  types.ErrorResponse
// @Failure      500    {object}  types.ErrorResponse
// @Router       /feedbacks [get]
func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	var opts types.FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid query parameters", err.Error()))
		return
	}

	feedbacks, err := h.feedbackService.ListFeedbacks(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.FeedbackListResponse{
		Status:    types.StatusSuccess,
		Results:   len(feedbacks),
		Feedbacks: feedbacks,
	})
}

// CreateFeedback godoc
// @Summary      Create feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeedbackCreate  true  "Feedback payload"
// @Success      201   {object}  types.FeedbackResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse  "Feedback already exists"
// @Failure      500   {object}  types.ErrorResponse
// @Router       /feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	fb, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, feedbackResponse(fb))
}

// GetFeedback godoc
// @Summary      Get feedback
// @Tags         feedbacks
// @Produce      json
// @Param        id   path      string  true  "Feedback ID (UUID)"
// @Success      200  {object}  types.FeedbackResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /feedbacks/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := feedbackIDOrError(c)
	if !ok {
		return
	}

	fb, err := h.feedbackService.GetFeedback(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, feedbackResponse(fb))
}

// UpdateFeedback godoc
// @Summary      Update feedback
// @Description  Partially updates a feedback. Absent fields are left unchanged; a null status clears it.
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Feedback ID (UUID)"
// @Param        body  body      docs.FeedbackUpdateRequest  true  "Fields to change"
// @Success      200   {object}  types.FeedbackResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /feedbacks/{id} [patch]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := feedbackIDOrError(c)
	if !ok {
		return
	}

	var req types.FeedbackUpdate
	if !bindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	fb, err := h.feedbackService.UpdateFeedback(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, feedbackResponse(fb))
}

// DeleteFeedback godoc
// @Summary      Delete feedback
// @Tags         feedbacks
// @Param        id   path  string  true  "Feedback ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /feedbacks/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := feedbackIDOrError(c)
	if !ok {
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func feedbackResponse(fb *types.Feedback) types.FeedbackResponse {
	return types.FeedbackResponse{
		Status: types.StatusSuccess,
		Data:   types.FeedbackData{Feedback: fb},
	}
}

// feedbackIDOrError returns the canonical form of the :id path parameter.
// Returns false if the id is not a UUID and the error was set (caller should return).
func feedbackIDOrError(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid feedback ID", err.Error()))
		return "", false
	}
	return id.String(), true
}

// bindJSONOrError binds JSON request body and sets validation error if binding fails.
// Returns true if binding succeeded, false if error was set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return false
	}
	return true
}
