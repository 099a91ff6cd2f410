package recipes

import (
	"context"
	"net/http"
	"os"
	"time"

	"savora/models"
	"savora/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

func sampleRecipes() []models.RecipeDocument {
	now := time.Now().UTC()
	return []models.RecipeDocument{
		{
			ID:     "rcp-" + uuid.NewString(),
			Slug:   "tomato-soup",
			Status: models.StatusPublished,
			Recipe: &models.RecipeBody{
				Title:            "Tomato Soup",
				Locale:           "en",
				Cuisine:          "Italian",
				TotalTimeMinutes: 35,
				Servings:         4,
				SpiceLevel:       1,
				Difficulty:       "beginner",
				Nutrition: &models.Nutrition{
					PerServingKcal: 180,
					Macros:         models.Macros{Carbs: 22, Protein: 4, Fat: 9},
				},
				Ingredients: []models.Ingredient{
					{Name: "tomatoes", Quantity: 800, Unit: "g", Prep: "chopped", AltUSUnits: "28 oz"},
					{Name: "onion", Quantity: 1, Unit: "pc", Prep: "diced"},
					{Name: "vegetable stock", Quantity: 500, Unit: "ml", Notes: "or water with a stock cube", AltUSUnits: "2 cups"},
					{Name: "olive oil", Quantity: 2, Unit: "tbsp"},
				},
				Equipment: []models.Equipment{
					{Quantity: 1, Name: "large pot"},
					{Quantity: 1, Name: "blender", Notes: "immersion works best"},
				},
				SafetyNotes: []string{"Let the soup cool slightly before blending"},
				Steps: []models.Step{
					{Title: "Sweat the onion", Instruction: "Heat the oil and cook the onion until translucent.", TimerSeconds: 300, Heat: "medium"},
					{Title: "Simmer", Instruction: "Add tomatoes and stock, then simmer.", TimerSeconds: 1200, Heat: "low", VisualDoneness: "tomatoes fully broken down"},
					{Title: "Blend", Instruction: "Blend until smooth and season to taste.", Heat: "off"},
				},
				Allergens: []string{"celery"},
				Tags:      []string{"soup", "vegetarian", "comfort food"},
			},
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:     "rcp-" + uuid.NewString(),
			Slug:   "buttered-toast",
			Status: models.StatusPublished,
			Recipe: &models.RecipeBody{
				Title:            "Buttered Toast",
				TotalTimeMinutes: 5,
				Servings:         1,
				Difficulty:       "beginner",
				Ingredients: []models.Ingredient{
					{Name: "bread", Quantity: 2, Unit: "slices"},
					{Name: "butter", Quantity: 1, Unit: "tbsp", Notes: "softened"},
				},
				Steps: []models.Step{
					{Title: "Toast", Instruction: "Toast the bread until golden.", TimerSeconds: 125, Heat: "high"},
					{Title: "Butter", Instruction: "Spread the butter while hot.", Heat: "off"},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SeedRecipes inserts sample documents for local development. Guarded by an
// env flag so a deployed instance cannot be seeded over HTTP.
func SeedRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if os.Getenv("ENABLE_SEED") != "true" {
		utils.RespondWithError(w, http.StatusForbidden, "Seeding is disabled")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs := sampleRecipes()
	rows := make([]interface{}, len(docs))
	ids := make([]string, len(docs))
	for i, doc := range docs {
		rows[i] = doc
		ids[i] = doc.ID
	}

	if _, err := coll.InsertMany(ctx, rows); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"inserted": ids})
}
