package main

import (
	"log"
	"log/slog"
	"os"

	"pawpicks/internal/handler"
	"pawpicks/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	recommender := newRecommender()

	recommendationHandler := handler.NewRecommendationHandler(recommender)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.StaticFile("/", "./templates/index.html")
	r.Static("/static", "./templates")
	r.POST("/get_recommendation", recommendationHandler.GetRecommendation)
	r.GET("/health", recommendationHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newRecommender picks the completion provider from the environment and
// fails fast if its credential is missing.
func newRecommender() llm.Recommender {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	switch provider {
	case "groq":
		apiKey := os.Getenv("GROQ_API_KEY")
		if apiKey == "" {
			log.Fatal("GROQ_API_KEY environment variable not set")
		}
		return llm.NewGroqClient(apiKey, os.Getenv("GROQ_BASE_URL"))
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable not set")
		}
		return llm.NewAnthropicClient(apiKey)
	default:
		log.Fatalf("unknown LLM_PROVIDER: %s", provider)
		return nil
	}
}
