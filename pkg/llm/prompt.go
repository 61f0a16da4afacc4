package llm

import "fmt"

const promptTemplate = `You are a helpful AI assistant for a dog product company. Your goal is to provide a personalized product recommendation and a relevant insight based on the dog's profile.

Dog Breed: %s
Dietary Preference: %s
Desired Product Type: %s

Please provide:
1. A specific product recommendation.
2. An insight related to cost-benefit or community behavior for this product/dog type.

Format your response strictly as a JSON object with two keys: "recommendation" and "insight".
Example:
{
  "recommendation": "XYZ Brand Organic Chicken Dog Food",
  "insight": "80%% of Golden Retriever owners prefer large bags for cost savings."
}
Ensure the recommendation is plausible for the given inputs and the insight is creative and relevant.`

func buildPrompt(input RecommendInput) string {
	return fmt.Sprintf(promptTemplate, input.DogBreed, input.DietPreference, input.ProductType)
}
