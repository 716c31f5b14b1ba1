package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/models"
)

func seedListing(env *testEnv, name, category, date, email string) primitive.ObjectID {
	return env.listings.Add(models.Listing{
		Name:     name,
		Category: category,
		Date:     date,
		Email:    email,
	})
}

func TestListListings(t *testing.T) {
	t.Parallel()

	t.Run("sorted newest-first, count caps the result", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{})
		seedListing(env, "oldest", "dog", "2024-01-01", "a@x.com")
		seedListing(env, "middle", "cat", "2024-03-01", "a@x.com")
		seedListing(env, "newest", "dog", "2024-06-01", "b@x.com")

		recorder := env.do(t, http.MethodGet, "/listings?count=2", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		require.Len(t, listings, 2)
		assert.Equal(t, "newest", listings[0].Name)
		assert.Equal(t, "middle", listings[1].Name)
	})

	t.Run("no count returns everything in the same order", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{})
		seedListing(env, "oldest", "dog", "2024-01-01", "a@x.com")
		seedListing(env, "newest", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodGet, "/listings", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		require.Len(t, listings, 2)
		assert.Equal(t, "newest", listings[0].Name)
	})

	t.Run("unparseable count is ignored", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{})
		seedListing(env, "one", "dog", "2024-01-01", "a@x.com")
		seedListing(env, "two", "dog", "2024-02-01", "a@x.com")

		recorder := env.do(t, http.MethodGet, "/listings?count=abc", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		assert.Len(t, listings, 2)
	})

	t.Run("store not bound yet", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{})
		env.listings.NotReady = true

		recorder := env.do(t, http.MethodGet, "/listings", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Database not ready yet")
	})
}

func TestGetListing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, auth.Identity{})
	id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "malformed id", path: "/listings/zzz", wantStatus: http.StatusBadRequest},
		{name: "missing id", path: "/listings/" + primitive.NewObjectID().Hex(), wantStatus: http.StatusNotFound},
		{name: "existing id", path: "/listings/" + id.Hex(), wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := env.do(t, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestCategoryFilter(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, auth.Identity{})
	seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")
	seedListing(env, "Pack", "dogs", "2024-06-01", "a@x.com")

	t.Run("case-insensitive match", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/category-filtered-product/Dog", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		require.Len(t, listings, 1)
		assert.Equal(t, "Rex", listings[0].Name)
	})

	t.Run("exact match, no substring expansion", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/category-filtered-product/dogg", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		assert.Empty(t, listings)
	})
}

func TestAddListing(t *testing.T) {
	t.Parallel()

	identity := auth.Identity{UID: "u1", Email: "a@x.com"}
	fullPayload := func() map[string]interface{} {
		return map[string]interface{}{
			"name":        "Rex",
			"category":    "dog",
			"price":       120.5,
			"location":    "Springfield",
			"description": "good boy",
			"image":       "https://img.example/rex.jpg",
			"date":        "2024-06-01",
			"email":       "a@x.com",
		}
	}

	t.Run("without token nothing is inserted", func(t *testing.T) {
		env := newTestEnv(t, identity)
		recorder := env.do(t, http.MethodPost, "/add-listing", "", fullPayload())
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Empty(t, env.listings.Listings)
	})

	t.Run("rejected token nothing is inserted", func(t *testing.T) {
		env := newTestEnv(t, identity)
		recorder := env.do(t, http.MethodPost, "/add-listing", "bad-token", fullPayload())
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Empty(t, env.listings.Listings)
	})

	t.Run("each required field missing", func(t *testing.T) {
		for _, field := range []string{"name", "category", "price", "location", "description", "image", "date", "email"} {
			t.Run(field, func(t *testing.T) {
				env := newTestEnv(t, identity)
				payload := fullPayload()
				delete(payload, field)

				recorder := env.do(t, http.MethodPost, "/add-listing", testToken, payload)
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Empty(t, env.listings.Listings)
			})
		}
	})

	t.Run("create then list own listings", func(t *testing.T) {
		env := newTestEnv(t, identity)

		recorder := env.do(t, http.MethodPost, "/add-listing", testToken, fullPayload())
		require.Equal(t, http.StatusCreated, recorder.Code)

		var created CreateListingResponse
		decodeJSON(t, recorder, &created)
		assert.Equal(t, "Listing added successfully", created.Message)
		require.NotEmpty(t, created.ID)

		recorder = env.do(t, http.MethodGet, "/user/listings/a@x.com", testToken, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		require.Len(t, listings, 1)
		assert.Equal(t, created.ID, listings[0].ID.Hex())
		assert.Equal(t, 120.5, listings[0].Price)
	})

	t.Run("price sent as numeric string is coerced", func(t *testing.T) {
		env := newTestEnv(t, identity)
		payload := fullPayload()
		payload["price"] = "99.25"

		recorder := env.do(t, http.MethodPost, "/add-listing", testToken, payload)
		require.Equal(t, http.StatusCreated, recorder.Code)

		for _, l := range env.listings.Listings {
			assert.Equal(t, 99.25, l.Price)
		}
	})
}

func TestOwnListings(t *testing.T) {
	t.Parallel()

	identity := auth.Identity{UID: "u1", Email: "a@x.com"}
	env := newTestEnv(t, identity)
	seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")
	seedListing(env, "Whiskers", "cat", "2024-06-02", "b@x.com")

	t.Run("mismatched path email is unauthorized", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/user/listings/b@x.com", testToken, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "unauthorized access")
	})

	t.Run("matching path email returns own listings", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/user/listings/a@x.com", testToken, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var listings []models.Listing
		decodeJSON(t, recorder, &listings)
		require.Len(t, listings, 1)
		assert.Equal(t, "Rex", listings[0].Name)
	})
}

func TestUpdateListing(t *testing.T) {
	t.Parallel()

	owner := auth.Identity{UID: "u1", Email: "a@x.com"}

	t.Run("non-owner is forbidden and nothing changes", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{UID: "u2", Email: "b@x.com"})
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodPut, "/listings/"+id.Hex(), testToken, map[string]interface{}{"name": "Stolen"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Rex", env.listings.Listings[id].Name)
	})

	t.Run("payload _id cannot change the record identity", func(t *testing.T) {
		env := newTestEnv(t, owner)
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodPut, "/listings/"+id.Hex(), testToken, map[string]interface{}{
			"_id":  primitive.NewObjectID().Hex(),
			"name": "Rexy",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp UpdateListingResponse
		decodeJSON(t, recorder, &resp)
		require.NotNil(t, resp.UpdatedListing)
		assert.Equal(t, id, resp.UpdatedListing.ID)
		assert.Equal(t, "Rexy", resp.UpdatedListing.Name)
		assert.NotContains(t, env.listings.LastUpdate, "_id")
	})

	t.Run("missing listing", func(t *testing.T) {
		env := newTestEnv(t, owner)
		recorder := env.do(t, http.MethodPut, "/listings/"+primitive.NewObjectID().Hex(), testToken, map[string]interface{}{"name": "x"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t, owner)
		recorder := env.do(t, http.MethodPut, "/listings/zzz", testToken, map[string]interface{}{"name": "x"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("zero modified documents is a server error", func(t *testing.T) {
		env := newTestEnv(t, owner)
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")
		env.listings.ZeroModified = true

		recorder := env.do(t, http.MethodPut, "/listings/"+id.Hex(), testToken, map[string]interface{}{"name": "Rex"})
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestDeleteListing(t *testing.T) {
	t.Parallel()

	owner := auth.Identity{UID: "u1", Email: "a@x.com"}

	t.Run("without token nothing is deleted", func(t *testing.T) {
		env := newTestEnv(t, owner)
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodDelete, "/listings/"+id.Hex(), "", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, env.listings.Listings, id)
	})

	t.Run("missing listing", func(t *testing.T) {
		env := newTestEnv(t, owner)
		recorder := env.do(t, http.MethodDelete, "/listings/"+primitive.NewObjectID().Hex(), testToken, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		env := newTestEnv(t, auth.Identity{UID: "u2", Email: "b@x.com"})
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodDelete, "/listings/"+id.Hex(), testToken, nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, env.listings.Listings, id)
	})

	t.Run("owner deletes, subsequent fetch is 404", func(t *testing.T) {
		env := newTestEnv(t, owner)
		id := seedListing(env, "Rex", "dog", "2024-06-01", "a@x.com")

		recorder := env.do(t, http.MethodDelete, "/listings/"+id.Hex(), testToken, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Listing deleted successfully")

		recorder = env.do(t, http.MethodGet, "/listings/"+id.Hex(), "", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
