package recipes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"savora/rdx"
	"savora/render"
	"savora/store"
	"savora/utils"
	"savora/views"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	coll    *mongo.Collection
	gateway *store.Gateway
	tracker *views.Tracker
)

// Init wires the package against the recipes collection. Called once from
// main after db.Init.
func Init(c *mongo.Collection) {
	coll = c
	gateway = store.New(c)
	tracker = views.NewTracker(gateway)
}

// ViewTracker exposes the tracker so main can drain in-flight view updates
// during graceful shutdown.
func ViewTracker() *views.Tracker { return tracker }

func respondFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
	case errors.Is(err, store.ErrDataIntegrity):
		// user-facing equivalent of not-found; the row is unusable
		utils.RespondWithError(w, http.StatusNotFound, "Recipe data not found")
	default:
		log.Println("Failed to fetch recipe:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipe")
	}
}

// GetRecipe returns the raw recipe document as JSON. Counts as a page view.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	doc, err := gateway.FetchByID(r.Context(), id)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	tracker.IncrementAsync(id)
	utils.RespondWithJSON(w, http.StatusOK, doc)
}

// GetRecipePage serves the fully rendered HTML page for a recipe. The view
// increment is fire-and-forget; the response never waits on it.
func GetRecipePage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if page, ok := rdx.CachedHTML(id); ok {
		// a cached page can outlive its document by up to the cache TTL;
		// increments for a vanished id fail inside the tracker and are
		// only logged
		tracker.IncrementAsync(id)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
		return
	}

	doc, err := gateway.FetchByID(r.Context(), id)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	page, err := render.Render(doc)
	if err != nil {
		log.Println("Failed to render recipe", id, ":", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render recipe")
		return
	}
	rdx.CacheHTML(id, page)

	tracker.IncrementAsync(id)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// GetRecentRecipes lists recently published recipes as display summaries.
// A failing store never takes down the listing: the gateway already folds
// query errors into an empty result.
func GetRecentRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := utils.ParseLimit(r, 10, 50)

	if summaries, ok := rdx.CachedRecent(limit); ok {
		utils.RespondWithJSON(w, http.StatusOK, summaries)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs := gateway.ListRecent(ctx, int64(limit))
	summaries := ProjectSummaries(docs)
	rdx.CacheRecent(limit, summaries)

	utils.RespondWithJSON(w, http.StatusOK, summaries)
}
