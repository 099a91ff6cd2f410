package routes

import (
	"savora/ratelim"
	"savora/recipes"

	"github.com/julienschmidt/httprouter"
)

func AddRecipeRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/recipes/recent", rateLimiter.Limit(recipes.GetRecentRecipes))
	router.GET("/api/recipes/recipe/:id", rateLimiter.Limit(recipes.GetRecipe))
	router.GET("/api/recipes/recipe/:id/html", rateLimiter.Limit(recipes.GetRecipePage))
	router.GET("/api/recipes/recipe/:id/download", rateLimiter.Limit(recipes.DownloadRecipe))
	router.GET("/api/recipes/recipe/:id/pdf", rateLimiter.Limit(recipes.PrintRecipe))
	router.GET("/api/recipes/recipe/:id/qr", rateLimiter.Limit(recipes.RecipeQR))
	router.POST("/api/recipes/seed", rateLimiter.Limit(recipes.SeedRecipes))

	// the shareable page URL
	router.GET("/recipe/:id", recipes.GetRecipePage)
}
