package recipes

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"savora/render"
	"savora/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// DownloadRecipe serves the rendered page as an HTML attachment. The
// filename is the recipe title with non-alphanumerics replaced.
func DownloadRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	doc, err := gateway.FetchByID(r.Context(), id)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render recipe")
		return
	}

	filename := utils.DownloadFilename(doc.Recipe.Title) + ".html"
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write([]byte(page))
}

// recipeURL is the public link a shared recipe points at.
func recipeURL(id string) string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimRight(base, "/") + "/recipe/" + id
}

// RecipeQR returns a PNG QR code for sharing a recipe link.
func RecipeQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	// confirm the recipe exists before handing out a link
	if _, err := gateway.FetchByID(r.Context(), id); err != nil {
		respondFetchError(w, err)
		return
	}

	png, err := qrcode.Encode(recipeURL(id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// PrintRecipe generates a printable PDF of a recipe: stats, ingredients,
// numbered steps and a share QR code.
func PrintRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	doc, err := gateway.FetchByID(r.Context(), id)
	if err != nil {
		respondFetchError(w, err)
		return
	}
	recipe := doc.Recipe

	qrCode, _ := qrcode.Encode(recipeURL(id), qrcode.Medium, 128)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, tr(recipe.Title), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Stats
	difficulty := recipe.Difficulty
	if difficulty == "" {
		difficulty = "Unknown"
	}
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, tr(fmt.Sprintf(
		"Time: %d min  |  Servings: %d  |  Spice: %d/10  |  Difficulty: %s",
		recipe.TotalTimeMinutes, recipe.Servings, recipe.SpiceLevel, difficulty,
	)), "", "C", false)
	pdf.Ln(4)

	// Ingredients
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Ingredients", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	if len(recipe.Ingredients) == 0 {
		pdf.MultiCell(0, 6, "No ingredients listed", "", "L", false)
	}
	for _, ing := range recipe.Ingredients {
		name := ing.Name
		if ing.Prep != "" {
			name = ing.Prep + " " + name
		}
		line := fmt.Sprintf("- %s %s %s", strconv.FormatFloat(ing.Quantity, 'f', -1, 64), ing.Unit, name)
		if ing.AltUSUnits != "" {
			line += " (" + ing.AltUSUnits + ")"
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}
	pdf.Ln(4)

	// Steps
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Instructions", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	if len(recipe.Steps) == 0 {
		pdf.MultiCell(0, 6, "No instructions available", "", "L", false)
	}
	for i, step := range recipe.Steps {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, step.Title)), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(step.Instruction), "", "L", false)
		pdf.Ln(2)
	}

	// Share QR
	if len(qrCode) > 0 {
		imgOpts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
		pdf.ImageOptions("qr", 160, 20, 30, 30, false, imgOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	filename := utils.DownloadFilename(recipe.Title) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(buf.Bytes())
}
