package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) GetKosReviews(c *gin.Context) {
	reviews, err := h.svc.GetKosReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

type addReviewRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	review, err := h.svc.AddReview(c.Request.Context(), requestContext(c), c.Param("id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, review, "Review added successfully")
}

type replyReviewRequest struct {
	Reply string `json:"reply" binding:"required"`
}

func (h *ReviewHandler) ReplyReview(c *gin.Context) {
	var req replyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	review, err := h.svc.ReplyReview(c.Request.Context(), requestContext(c), c.Param("reviewId"), req.Reply)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, review, "Review replied successfully")
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.svc.DeleteReview(c.Request.Context(), requestContext(c), c.Param("reviewId")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "Review deleted successfully")
}
