package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pawpicks/pkg/llm"

	"github.com/gin-gonic/gin"
)

type Recommender interface {
	Recommend(ctx context.Context, input llm.RecommendInput) (*llm.RecommendResult, error)
}

type RecommendationHandler struct {
	recommender Recommender
}

func NewRecommendationHandler(recommender Recommender) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {

	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	input := llm.RecommendInput{
		DogBreed:       strings.TrimSpace(req.DogBreed),
		DietPreference: strings.TrimSpace(req.DietPreference),
		ProductType:    strings.TrimSpace(req.ProductType),
	}

	if input.DogBreed == "" || input.ProductType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dog breed and product type are required."})
		return
	}

	result, err := h.recommender.Recommend(c.Request.Context(), input)
	if err != nil {
		slog.Error("error getting recommendation", "error", err, "dog_breed", input.DogBreed, "product_type", input.ProductType)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{
		Recommendation: result.Recommendation,
		Insight:        result.Insight,
	})
}

func (h *RecommendationHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
