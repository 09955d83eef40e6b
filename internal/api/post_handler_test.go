package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/mocks"
	"blogapi/internal/store"
)

func seedPost(t *testing.T, postStore *mocks.MockPostStore, title string) *domain.Post {
	t.Helper()

	post, err := domain.NewPost(1, title, "some content", true)
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), post))
	return post
}

func TestPostHandler_Create(t *testing.T) {
	t.Run("valid post responds with its ID only", func(t *testing.T) {
		postStore := mocks.NewMockPostStore()
		handler := NewPostHandler(postStore, nil)

		req := withUser(newJSONRequest(t, http.MethodPost, "/api/posts", map[string]any{
			"title":     "First post",
			"content":   "Hello world",
			"published": true,
		}), testUser(1))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, shared.StatusSuccess, resp.Status)
		assert.JSONEq(t, `{"post":{"id":1}}`, string(resp.Data))
	})

	t.Run("empty body fails validation", func(t *testing.T) {
		handler := NewPostHandler(mocks.NewMockPostStore(), nil)

		req := withUser(newJSONRequest(t, http.MethodPost, "/api/posts", nil), testUser(1))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Post form validation failed.", resp.Error.Message)
		assert.Equal(t, []shared.FieldError{
			{Field: "title", Message: "Title must not be empty."},
			{Field: "content", Message: "Content must not be empty."},
		}, fieldErrors(t, resp))
	})

	t.Run("vanished author maps to 404", func(t *testing.T) {
		postStore := mocks.NewMockPostStore()
		postStore.CreateFn = func(ctx context.Context, post *domain.Post) error {
			return fmt.Errorf("%w: author with ID %d not found", store.ErrInvalidEntity, post.AuthorID)
		}
		handler := NewPostHandler(postStore, nil)

		req := withUser(newJSONRequest(t, http.MethodPost, "/api/posts", map[string]any{
			"title":   "First post",
			"content": "Hello world",
		}), testUser(99))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Not found", resp.Error.Message)
	})
}

func TestPostHandler_List(t *testing.T) {
	t.Run("empty store yields an empty array", func(t *testing.T) {
		handler := NewPostHandler(mocks.NewMockPostStore(), nil)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.JSONEq(t, `{"posts":[]}`, string(resp.Data))
	})

	t.Run("returns stored posts", func(t *testing.T) {
		postStore := mocks.NewMockPostStore()
		seedPost(t, postStore, "First post")
		seedPost(t, postStore, "Second post")
		handler := NewPostHandler(postStore, nil)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Contains(t, string(resp.Data), "First post")
		assert.Contains(t, string(resp.Data), "Second post")
	})
}

func TestPostHandler_Get(t *testing.T) {
	postStore := mocks.NewMockPostStore()
	post := seedPost(t, postStore, "Readable post")
	handler := NewPostHandler(postStore, nil)

	tests := []struct {
		name       string
		postID     string
		wantStatus int
	}{
		{"existing post", "1", http.StatusOK},
		{"unknown ID", "999", http.StatusNotFound},
		{"non-numeric ID", "abc", http.StatusNotFound},
		{"negative ID", "-3", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/posts/"+tt.postID, nil),
				map[string]string{"postId": tt.postID})
			rec := httptest.NewRecorder()
			handler.Get(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, string(resp.Data), post.Title)
			} else {
				assert.Equal(t, "Not found", resp.Error.Message)
			}
		})
	}
}

func TestPostHandler_Update(t *testing.T) {
	t.Run("valid update returns the full record", func(t *testing.T) {
		postStore := mocks.NewMockPostStore()
		seedPost(t, postStore, "Old title")
		handler := NewPostHandler(postStore, nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/1", map[string]any{
			"title":     "New title",
			"content":   "Updated content",
			"published": false,
		}), map[string]string{"postId": "1"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Contains(t, string(resp.Data), "New title")
		assert.Equal(t, "New title", postStore.Posts[1].Title)
	})

	t.Run("validation runs before the lookup", func(t *testing.T) {
		// Both the body and the ID are bad; the response must be the 400.
		handler := NewPostHandler(mocks.NewMockPostStore(), nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/999", nil),
			map[string]string{"postId": "999"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Post form validation failed.", resp.Error.Message)
	})

	t.Run("unknown ID with a valid body yields 404", func(t *testing.T) {
		handler := NewPostHandler(mocks.NewMockPostStore(), nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/999", map[string]any{
			"title":   "New title",
			"content": "Updated content",
		}), map[string]string{"postId": "999"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostHandler_Delete(t *testing.T) {
	postStore := mocks.NewMockPostStore()
	seedPost(t, postStore, "Doomed post")
	handler := NewPostHandler(postStore, nil)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil),
		map[string]string{"postId": "1"})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"post":{"id":1}}`, string(resp.Data))

	// The record is gone; deleting again addresses nothing.
	rec = httptest.NewRecorder()
	handler.Delete(rec, withURLParams(httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil),
		map[string]string{"postId": "1"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp = decodeEnvelope(t, rec)
	assert.Equal(t, "Not found", resp.Error.Message)
}
