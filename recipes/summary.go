package recipes

import "savora/models"

// ProjectSummary maps a raw document to the listing shape. It never fails:
// every missing field degrades to a default so one malformed row cannot
// break the home page.
func ProjectSummary(doc models.RecipeDocument) models.RecipeSummary {
	s := models.RecipeSummary{
		ID:         doc.ID,
		Slug:       doc.Slug,
		Title:      "Untitled Recipe",
		Cuisine:    "Unknown",
		CreatedAt:  doc.CreatedAt,
		Views:      doc.Meta.Views,
		Difficulty: "unknown",
	}
	if doc.Recipe == nil {
		return s
	}
	if doc.Recipe.Title != "" {
		s.Title = doc.Recipe.Title
	}
	if doc.Recipe.Cuisine != "" {
		s.Cuisine = doc.Recipe.Cuisine
	}
	if doc.Recipe.Difficulty != "" {
		s.Difficulty = doc.Recipe.Difficulty
	}
	s.TotalTime = doc.Recipe.TotalTimeMinutes
	s.Servings = doc.Recipe.Servings
	return s
}

func ProjectSummaries(docs []models.RecipeDocument) []models.RecipeSummary {
	summaries := make([]models.RecipeSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, ProjectSummary(doc))
	}
	return summaries
}
