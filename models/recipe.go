package models

import "time"

// Publication states for a recipe document.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Meta is mutable bookkeeping layered on top of the immutable recipe body.
// Only the view tracker writes it.
type Meta struct {
	Views      int       `json:"views" bson:"views"`
	LastViewed time.Time `json:"last_viewed,omitempty" bson:"last_viewed,omitempty"`
}

type Macros struct {
	Carbs   float64 `json:"carbs" bson:"carbs"`
	Protein float64 `json:"protein" bson:"protein"`
	Fat     float64 `json:"fat" bson:"fat"`
}

type Nutrition struct {
	PerServingKcal float64 `json:"per_serving_kcal" bson:"per_serving_kcal"`
	Macros         Macros  `json:"macros_g" bson:"macros_g"`
}

type Ingredient struct {
	Name       string  `json:"name" bson:"name"`
	Quantity   float64 `json:"quantity" bson:"quantity"`
	Unit       string  `json:"unit" bson:"unit"`
	Prep       string  `json:"prep,omitempty" bson:"prep,omitempty"`
	Notes      string  `json:"notes,omitempty" bson:"notes,omitempty"`
	AltUSUnits string  `json:"alt_us_units,omitempty" bson:"alt_us_units,omitempty"`
}

type Equipment struct {
	Quantity int    `json:"quantity" bson:"quantity"`
	Name     string `json:"name" bson:"name"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Step is one instruction. TimerSeconds 0 means no timer, Heat "off" and
// TargetTempC 0 are the not-displayed sentinels.
type Step struct {
	Title          string `json:"title" bson:"title"`
	Instruction    string `json:"instruction" bson:"instruction"`
	TimerSeconds   int    `json:"timer_seconds" bson:"timer_seconds"`
	Heat           string `json:"heat" bson:"heat"`
	TargetTempC    int    `json:"target_temp_c" bson:"target_temp_c"`
	VisualDoneness string `json:"visual_doneness,omitempty" bson:"visual_doneness,omitempty"`
}

// RecipeBody is the culinary content. Treated as read-only once published.
type RecipeBody struct {
	Title            string       `json:"title" bson:"title"`
	Locale           string       `json:"locale,omitempty" bson:"locale,omitempty"`
	Cuisine          string       `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	TotalTimeMinutes int          `json:"total_time_minutes" bson:"total_time_minutes"`
	Servings         int          `json:"servings" bson:"servings"`
	SpiceLevel       int          `json:"spice_level" bson:"spice_level"`
	Difficulty       string       `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Nutrition        *Nutrition   `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	Ingredients      []Ingredient `json:"ingredients" bson:"ingredients"`
	Equipment        []Equipment  `json:"equipment,omitempty" bson:"equipment,omitempty"`
	SafetyNotes      []string     `json:"safety_notes,omitempty" bson:"safety_notes,omitempty"`
	Steps            []Step       `json:"steps" bson:"steps"`
	Allergens        []string     `json:"allergens,omitempty" bson:"allergens,omitempty"`
	Tags             []string     `json:"tags,omitempty" bson:"tags,omitempty"`
}

// RecipeDocument is the persisted record. Recipe is a pointer so a missing
// body can be told apart from an empty one; a nil body on a stored row is a
// data-integrity error, not a renderable state.
type RecipeDocument struct {
	ID        string      `json:"id" bson:"_id"`
	Slug      string      `json:"slug,omitempty" bson:"slug,omitempty"`
	Status    string      `json:"status" bson:"status"`
	Recipe    *RecipeBody `json:"recipe" bson:"recipe"`
	Meta      Meta        `json:"meta" bson:"meta"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// RecipeSummary is the reduced shape used by the recent-recipes listing.
type RecipeSummary struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug,omitempty"`
	Title      string    `json:"title"`
	Cuisine    string    `json:"cuisine"`
	CreatedAt  time.Time `json:"created_at"`
	Views      int       `json:"views"`
	TotalTime  int       `json:"total_time"`
	Servings   int       `json:"servings"`
	Difficulty string    `json:"difficulty"`
}
