package handler

type RecommendationRequest struct {
	DogBreed       string `json:"dog_breed"`
	DietPreference string `json:"diet_preference"`
	ProductType    string `json:"product_type"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
	Insight        string `json:"insight"`
}
