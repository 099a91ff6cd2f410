package store

import (
	"context"
	"errors"
	"testing"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFetchByIDNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no matching document", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		gw := New(mt.Coll)
		_, err := gw.FetchByID(context.Background(), "missing")
		if !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFetchByIDMissingRecipeBody(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("row without recipe body", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "r1"},
			{Key: "status", Value: models.StatusPublished},
		}))

		gw := New(mt.Coll)
		doc, err := gw.FetchByID(context.Background(), "r1")
		if !errors.Is(err, ErrDataIntegrity) {
			mt.Fatalf("expected ErrDataIntegrity, got %v", err)
		}
		if doc != nil {
			mt.Fatal("a document with a nil recipe body must never be returned")
		}
	})
}

func TestFetchByIDTransportError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("driver failure wrapped as StoreError", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		gw := New(mt.Coll)
		_, err := gw.FetchByID(context.Background(), "r1")

		var se *StoreError
		if !errors.As(err, &se) {
			mt.Fatalf("expected StoreError, got %v", err)
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDataIntegrity) {
			mt.Fatal("transport failure must not map onto a lookup sentinel")
		}
	})
}

func TestFetchByIDSuccess(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("full document decodes", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "r1"},
			{Key: "status", Value: models.StatusPublished},
			{Key: "recipe", Value: bson.D{{Key: "title", Value: "Tomato Soup"}}},
			{Key: "meta", Value: bson.D{{Key: "views", Value: 3}}},
		}))

		gw := New(mt.Coll)
		doc, err := gw.FetchByID(context.Background(), "r1")
		if err != nil {
			mt.Fatalf("fetch failed: %v", err)
		}
		if doc.Recipe == nil || doc.Recipe.Title != "Tomato Soup" {
			mt.Fatalf("recipe body not decoded: %+v", doc)
		}
		if doc.Meta.Views != 3 {
			mt.Fatalf("meta not decoded: %+v", doc.Meta)
		}
	})
}

func TestListRecentQueryShape(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("published filter, newest first, bounded", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "r2"},
				{Key: "status", Value: models.StatusPublished},
				{Key: "recipe", Value: bson.D{{Key: "title", Value: "Newer"}}},
			},
			bson.D{
				{Key: "_id", Value: "r1"},
				{Key: "status", Value: models.StatusPublished},
				{Key: "recipe", Value: bson.D{{Key: "title", Value: "Older"}}},
			},
		))

		gw := New(mt.Coll)
		docs := gw.ListRecent(context.Background(), 2)
		if len(docs) != 2 {
			mt.Fatalf("expected 2 documents, got %d", len(docs))
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", evt)
		}

		if got := evt.Command.Lookup("filter", "status").StringValue(); got != models.StatusPublished {
			mt.Fatalf("filter must select published only, got %q", got)
		}
		sort, ok := evt.Command.Lookup("sort", "created_at").AsInt64OK()
		if !ok || sort != -1 {
			mt.Fatalf("expected created_at sorted descending, got %v", evt.Command.Lookup("sort"))
		}
		limit, ok := evt.Command.Lookup("limit").AsInt64OK()
		if !ok || limit != 2 {
			mt.Fatalf("expected limit 2, got %v", evt.Command.Lookup("limit"))
		}
	})
}

func TestListRecentFailureReturnsEmpty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("query failure folds to empty result", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		gw := New(mt.Coll)
		docs := gw.ListRecent(context.Background(), 5)
		if docs == nil || len(docs) != 0 {
			mt.Fatalf("expected empty non-nil slice, got %#v", docs)
		}
	})
}

func TestUpdateMetaMergesPatch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("patch fields win, unknown meta keys survive", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "r1"},
				{Key: "meta", Value: bson.D{
					{Key: "views", Value: 3},
					{Key: "source", Value: "import"},
				}},
			}),
			mtest.CreateSuccessResponse(),
		)

		gw := New(mt.Coll)
		err := gw.UpdateMeta(context.Background(), "r1", bson.M{"views": 4})
		if err != nil {
			mt.Fatalf("update failed: %v", err)
		}

		// first event is the meta read, second the write-back
		if evt := mt.GetStartedEvent(); evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected find first, got %+v", evt)
		}
		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "update" {
			mt.Fatalf("expected update, got %+v", evt)
		}

		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
		meta := update.Lookup("u", "$set", "meta").Document()

		views, ok := meta.Lookup("views").AsInt64OK()
		if !ok || views != 4 {
			mt.Fatalf("patch views not applied: %v", meta)
		}
		if got := meta.Lookup("source").StringValue(); got != "import" {
			mt.Fatalf("unrelated meta key dropped: %v", meta)
		}
		if update.Lookup("u", "$set", "updated_at").Validate() != nil {
			mt.Fatal("updated_at not refreshed")
		}
	})
}

func TestUpdateMetaMissingDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id maps to ErrNotFound", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		gw := New(mt.Coll)
		if err := gw.UpdateMeta(context.Background(), "missing", bson.M{"views": 1}); !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
