package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timepass_server/models"
	"timepass_server/services"
	"timepass_server/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostRouter(t *testing.T) (*mux.Router, *store.MemoryStore) {
	t.Helper()
	ms := store.NewMemoryStore()
	controller := NewPostController(
		&services.PostService{Store: ms},
		&services.GraphService{Store: ms},
		&services.FeedService{Store: ms},
	)

	r := mux.NewRouter()
	sub := r.PathPrefix("/api/posts").Subrouter()
	sub.HandleFunc("", controller.HandleCreatePost).Methods("POST")
	sub.HandleFunc("/{postId}", controller.HandleGetPost).Methods("GET")
	sub.HandleFunc("/{postId}", controller.HandleDeletePost).Methods("DELETE")
	sub.HandleFunc("/{postId}/like", controller.HandleToggleLike).Methods("POST")
	sub.HandleFunc("/{postId}/viewstate", controller.HandleViewState).Methods("GET")
	return r, ms
}

func TestHandleCreatePost(t *testing.T) {
	router, _ := newPostRouter(t)

	body := `{"userId":"u1","mediaUrl":"https://cdn.example.com/x.jpg","caption":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"caption":"hello"`)
}

func TestHandleCreatePostValidation(t *testing.T) {
	router, _ := newPostRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"caption":"no media"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetPostNotFound(t *testing.T) {
	router, _ := newPostRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeletePostForbidden(t *testing.T) {
	router, ms := newPostRouter(t)
	post := models.Post{PostID: "p1", UserID: "u1", MediaURL: "x", MediaType: models.MediaTypeImage}
	require.NoError(t, ms.Put(context.Background(), models.PostsCollection, "p1", post))

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/p1?userId=intruder", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleToggleLikeThenViewState(t *testing.T) {
	router, ms := newPostRouter(t)
	ctx := context.Background()
	require.NoError(t, ms.Put(ctx, models.UsersCollection, "u1", models.User{UserID: "u1", Username: "alice"}))
	post := models.Post{PostID: "p1", UserID: "u2", MediaURL: "x", MediaType: models.MediaTypeImage}
	require.NoError(t, ms.Put(ctx, models.PostsCollection, "p1", post))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/like",
		strings.NewReader(`{"userId":"u1","currentlyLiked":false}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/posts/p1/viewstate?viewerId=u1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isLiked":true`)
	assert.Contains(t, rec.Body.String(), `"likeCount":1`)
}
