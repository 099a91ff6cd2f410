package store

import (
	"context"
	"errors"
	"log"
	"time"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Every store round trip is bounded so a slow Mongo node cannot hang a
// page view.
const opTimeout = 5 * time.Second

// Gateway is the single access path to the recipes collection.
type Gateway struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Gateway {
	return &Gateway{coll: coll}
}

// FetchByID looks up exactly one document by primary key. A row without a
// recipe body is never handed to callers; that is ErrDataIntegrity.
func (g *Gateway) FetchByID(ctx context.Context, id string) (*models.RecipeDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc models.RecipeDocument
	err := g.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "fetch " + id, Err: err}
	}
	if doc.Recipe == nil {
		return nil, ErrDataIntegrity
	}
	return &doc, nil
}

// FetchMeta reads only the meta field of a document. Missing meta decodes to
// the zero value, so an absent views counter reads as 0.
func (g *Gateway) FetchMeta(ctx context.Context, id string) (models.Meta, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var row struct {
		Meta models.Meta `bson:"meta"`
	}
	opts := options.FindOne().SetProjection(bson.M{"meta": 1})
	err := g.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Meta{}, ErrNotFound
		}
		return models.Meta{}, &StoreError{Op: "fetch meta " + id, Err: err}
	}
	return row.Meta, nil
}

// UpdateMeta merges patch over the current meta (patch fields win) and
// writes the full meta back along with a refreshed updated_at. Read-then-
// write, not a transaction: two racing callers can lose one update. That is
// accepted for a best-effort counter.
func (g *Gateway) UpdateMeta(ctx context.Context, id string, patch bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var row struct {
		Meta bson.M `bson:"meta"`
	}
	opts := options.FindOne().SetProjection(bson.M{"meta": 1})
	err := g.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return &StoreError{Op: "read meta " + id, Err: err}
	}

	merged := row.Meta
	if merged == nil {
		merged = bson.M{}
	}
	for k, v := range patch {
		merged[k] = v
	}

	_, err = g.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"meta":       merged,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return &StoreError{Op: "update meta " + id, Err: err}
	}
	return nil
}

// ListRecent returns up to limit published documents, newest first. Listing
// is resilient by contract: any query failure is logged and comes back as an
// empty slice, never an error.
func (g *Gateway) ListRecent(ctx context.Context, limit int64) []models.RecipeDocument {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 1, "slug": 1, "recipe": 1, "meta": 1, "created_at": 1})

	cursor, err := g.coll.Find(ctx, bson.M{"status": models.StatusPublished}, opts)
	if err != nil {
		log.Println("Failed to fetch recent recipes:", err)
		return []models.RecipeDocument{}
	}
	defer cursor.Close(ctx)

	var docs []models.RecipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Println("Failed to decode recent recipes:", err)
		return []models.RecipeDocument{}
	}
	if docs == nil {
		docs = []models.RecipeDocument{}
	}
	return docs
}
