package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"savora/models"
)

// A section is one block of the recipe page. Conditional inclusion is
// decided in buildSections; each node only knows how to write itself.
type section interface {
	write(b *strings.Builder)
}

// buildSections turns a recipe body into the ordered list of blocks that
// make up the page. Optional blocks are simply not appended when their data
// is absent or empty.
func buildSections(r *models.RecipeBody, now time.Time) []section {
	sections := []section{
		headerSection{title: r.Title},
		statsSection{
			totalTime:  r.TotalTimeMinutes,
			servings:   r.Servings,
			spiceLevel: r.SpiceLevel,
			difficulty: r.Difficulty,
		},
	}
	if r.Nutrition != nil {
		sections = append(sections, nutritionSection{n: r.Nutrition})
	}
	sections = append(sections, ingredientsSection{items: r.Ingredients})
	if len(r.Equipment) > 0 {
		sections = append(sections, equipmentSection{items: r.Equipment})
	}
	if len(r.SafetyNotes) > 0 {
		sections = append(sections, safetySection{notes: r.SafetyNotes})
	}
	sections = append(sections, stepsSection{steps: r.Steps})
	if len(r.Allergens) > 0 {
		sections = append(sections, allergensSection{allergens: r.Allergens})
	}
	sections = append(sections, footerSection{title: r.Title, at: now})
	return sections
}

type headerSection struct {
	title string
}

func (s headerSection) write(b *strings.Builder) {
	b.WriteString(`<div class="recipe-header"><h1 class="recipe-title">`)
	b.WriteString(html.EscapeString(s.title))
	b.WriteString("</h1></div>\n")
}

type statsSection struct {
	totalTime  int
	servings   int
	spiceLevel int
	difficulty string
}

func (s statsSection) write(b *strings.Builder) {
	difficulty := s.difficulty
	if difficulty == "" {
		difficulty = "Unknown"
	}
	b.WriteString(`<div class="recipe-stats">` + "\n")
	writeStat(b, "⏱️ "+strconv.Itoa(s.totalTime), "Minutes")
	writeStat(b, "👥 "+strconv.Itoa(s.servings), "Servings")
	writeStat(b, fmt.Sprintf("🌶️ %d/10", s.spiceLevel), "Spice Level")
	writeStat(b, "👨‍🍳 "+html.EscapeString(difficulty), "Difficulty")
	b.WriteString("</div>\n")
}

func writeStat(b *strings.Builder, value, label string) {
	b.WriteString(`<div class="stat-item"><div class="stat-value">`)
	b.WriteString(value)
	b.WriteString(`</div><div class="stat-label">`)
	b.WriteString(label)
	b.WriteString("</div></div>\n")
}

type nutritionSection struct {
	n *models.Nutrition
}

func (s nutritionSection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><h2 class="section-title">🍽️ Nutrition (per serving)</h2><div class="nutrition-grid">` + "\n")
	writeNutrient(b, formatQuantity(s.n.PerServingKcal), "Calories")
	writeNutrient(b, formatQuantity(s.n.Macros.Carbs)+"g", "Carbs")
	writeNutrient(b, formatQuantity(s.n.Macros.Protein)+"g", "Protein")
	writeNutrient(b, formatQuantity(s.n.Macros.Fat)+"g", "Fat")
	b.WriteString("</div></div>\n")
}

func writeNutrient(b *strings.Builder, value, label string) {
	b.WriteString(`<div class="nutrition-item"><div class="nutrition-value">`)
	b.WriteString(value)
	b.WriteString(`</div><div class="nutrition-label">`)
	b.WriteString(label)
	b.WriteString("</div></div>\n")
}

type ingredientsSection struct {
	items []models.Ingredient
}

func (s ingredientsSection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><h2 class="section-title">🛒 Ingredients</h2><div class="ingredients-list">` + "\n")
	if len(s.items) == 0 {
		b.WriteString("<p>No ingredients listed</p>\n")
	}
	for _, ing := range s.items {
		name := html.EscapeString(ing.Name)
		if ing.Prep != "" {
			name = html.EscapeString(ing.Prep) + " " + name
		}
		amount := formatQuantity(ing.Quantity) + " " + html.EscapeString(ing.Unit)
		if ing.AltUSUnits != "" {
			amount += " (" + html.EscapeString(ing.AltUSUnits) + ")"
		}
		b.WriteString(`<div class="ingredient"><div class="ingredient-name">`)
		b.WriteString(name)
		if ing.Notes != "" {
			b.WriteString(`<div class="ingredient-notes">`)
			b.WriteString(html.EscapeString(ing.Notes))
			b.WriteString("</div>")
		}
		b.WriteString(`</div><div class="ingredient-amount">`)
		b.WriteString(amount)
		b.WriteString("</div></div>\n")
	}
	b.WriteString("</div></div>\n")
}

type equipmentSection struct {
	items []models.Equipment
}

func (s equipmentSection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><div class="equipment"><div class="warning-title">🔧 Equipment Needed</div>` + "\n")
	for _, item := range s.items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		b.WriteString(fmt.Sprintf("<div>• %dx %s", qty, html.EscapeString(item.Name)))
		if item.Notes != "" {
			b.WriteString(" (" + html.EscapeString(item.Notes) + ")")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div></div>\n")
}

type safetySection struct {
	notes []string
}

func (s safetySection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><div class="safety-notes"><div class="warning-title">⚠️ Safety Notes</div>` + "\n")
	for _, note := range s.notes {
		b.WriteString("<div>• " + html.EscapeString(note) + "</div>\n")
	}
	b.WriteString("</div></div>\n")
}

type stepsSection struct {
	steps []models.Step
}

func (s stepsSection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><h2 class="section-title">👨‍🍳 Instructions</h2><div class="steps-container">` + "\n")
	if len(s.steps) == 0 {
		b.WriteString("<p>No instructions available</p>\n")
	}
	for _, step := range s.steps {
		b.WriteString(`<div class="step"><div class="step-title">`)
		b.WriteString(html.EscapeString(step.Title))
		b.WriteString(`</div><div class="step-instruction">`)
		b.WriteString(html.EscapeString(step.Instruction))
		b.WriteString(`</div><div class="step-details">`)
		for _, chip := range stepChips(step) {
			b.WriteString(`<div class="step-detail">`)
			b.WriteString(chip)
			b.WriteString("</div>")
		}
		b.WriteString("</div></div>\n")
	}
	b.WriteString("</div></div>\n")
}

// stepChips derives the detail chips for one step. Sentinels: a zero timer,
// heat "off" and a zero target temperature all mean "don't show".
func stepChips(step models.Step) []string {
	var chips []string
	if step.TimerSeconds > 0 {
		minutes := int(math.Round(float64(step.TimerSeconds) / 60))
		chips = append(chips, fmt.Sprintf("⏱️ %d min", minutes))
	}
	if step.Heat != "" && step.Heat != "off" {
		chips = append(chips, "🔥 "+html.EscapeString(step.Heat))
	}
	if step.TargetTempC > 0 {
		chips = append(chips, fmt.Sprintf("🌡️ %d°C", step.TargetTempC))
	}
	if step.VisualDoneness != "" {
		chips = append(chips, "👀 "+html.EscapeString(step.VisualDoneness))
	}
	return chips
}

type allergensSection struct {
	allergens []string
}

func (s allergensSection) write(b *strings.Builder) {
	upper := make([]string, len(s.allergens))
	for i, a := range s.allergens {
		upper[i] = html.EscapeString(strings.ToUpper(a))
	}
	b.WriteString(`<div class="section"><div class="allergens"><div class="warning-title">🚨 Contains Allergens</div><p><strong>`)
	b.WriteString(strings.Join(upper, ", "))
	b.WriteString("</strong></p></div></div>\n")
}

type footerSection struct {
	title string
	at    time.Time
}

func (s footerSection) write(b *strings.Builder) {
	b.WriteString(`<div class="section"><div style="text-align: center; color: #666; padding: 20px;"><p>✨ Enjoy your homemade `)
	b.WriteString(html.EscapeString(s.title))
	b.WriteString("! 🍽️</p><p><small>Generated on ")
	b.WriteString(s.at.Format("02 Jan 2006"))
	b.WriteString("</small></p></div></div>\n")
}

// formatQuantity prints numbers without trailing zeros and without any
// locale influence, so 2.0 renders as "2" and 0.5 as "0.5".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
