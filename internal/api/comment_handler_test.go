package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/mocks"
)

func seedComment(t *testing.T, commentStore *mocks.MockCommentStore, postID int64) *domain.Comment {
	t.Helper()

	commentStore.AddPost(postID)
	comment, err := domain.NewComment(postID, "Reader", "reader@example.com", "Nice post")
	require.NoError(t, err)
	require.NoError(t, commentStore.Create(context.Background(), comment))
	return comment
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("valid comment responds with its compound key", func(t *testing.T) {
		commentStore := mocks.NewMockCommentStore()
		commentStore.AddPost(3)
		handler := NewCommentHandler(commentStore, nil)

		req := withURLParams(newJSONRequest(t, http.MethodPost, "/api/posts/3/comments",
			map[string]string{
				"name":    "Reader",
				"email":   "reader@example.com",
				"content": "Nice post",
			}), map[string]string{"postId": "3"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, shared.StatusSuccess, resp.Status)
		assert.JSONEq(t, `{"comment":{"id":1,"postId":3}}`, string(resp.Data))
	})

	t.Run("missing post yields 404, no comment row", func(t *testing.T) {
		commentStore := mocks.NewMockCommentStore()
		handler := NewCommentHandler(commentStore, nil)

		req := withURLParams(newJSONRequest(t, http.MethodPost, "/api/posts/999/comments",
			map[string]string{
				"name":    "Reader",
				"email":   "reader@example.com",
				"content": "Nice post",
			}), map[string]string{"postId": "999"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Not found", resp.Error.Message)
		assert.Empty(t, commentStore.Comments)
	})

	t.Run("invalid payload fails validation before the post check", func(t *testing.T) {
		handler := NewCommentHandler(mocks.NewMockCommentStore(), nil)

		req := withURLParams(newJSONRequest(t, http.MethodPost, "/api/posts/999/comments",
			map[string]string{"name": "Bob"}), map[string]string{"postId": "999"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Comment form validation failed.", resp.Error.Message)
		assert.Equal(t, []shared.FieldError{
			{Field: "name", Message: "Name must be at least 5 characters."},
			{Field: "email", Message: "Email must not be empty."},
			{Field: "content", Message: "Content must not be empty."},
		}, fieldErrors(t, resp))
	})
}

func TestCommentHandler_List(t *testing.T) {
	t.Run("existing post with no comments yields an empty array", func(t *testing.T) {
		commentStore := mocks.NewMockCommentStore()
		commentStore.AddPost(3)
		handler := NewCommentHandler(commentStore, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/posts/3/comments", nil),
			map[string]string{"postId": "3"})
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.JSONEq(t, `{"comments":[]}`, string(resp.Data))
	})

	t.Run("missing post yields 404", func(t *testing.T) {
		handler := NewCommentHandler(mocks.NewMockCommentStore(), nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/posts/999/comments", nil),
			map[string]string{"postId": "999"})
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCommentHandler_Get(t *testing.T) {
	commentStore := mocks.NewMockCommentStore()
	comment := seedComment(t, commentStore, 3)
	handler := NewCommentHandler(commentStore, nil)

	tests := []struct {
		name       string
		postID     string
		commentID  string
		wantStatus int
	}{
		{"existing comment", "3", "1", http.StatusOK},
		{"wrong post half of the key", "4", "1", http.StatusNotFound},
		{"wrong comment half of the key", "3", "2", http.StatusNotFound},
		{"non-numeric comment ID", "3", "abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/posts/" + tt.postID + "/comments/" + tt.commentID
			req := withURLParams(httptest.NewRequest(http.MethodGet, target, nil),
				map[string]string{"postId": tt.postID, "commentId": tt.commentID})
			rec := httptest.NewRecorder()
			handler.Get(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decodeEnvelope(t, rec)
				assert.Contains(t, string(resp.Data), comment.Content)
			}
		})
	}
}

func TestCommentHandler_Update(t *testing.T) {
	t.Run("valid patch replaces the content", func(t *testing.T) {
		commentStore := mocks.NewMockCommentStore()
		seedComment(t, commentStore, 3)
		handler := NewCommentHandler(commentStore, nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/3/comments/1",
			map[string]string{"content": "Edited content"}),
			map[string]string{"postId": "3", "commentId": "1"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Contains(t, string(resp.Data), "Edited content")
	})

	t.Run("empty content fails validation before the lookup", func(t *testing.T) {
		handler := NewCommentHandler(mocks.NewMockCommentStore(), nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/999/comments/999", nil),
			map[string]string{"postId": "999", "commentId": "999"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "Patch comment form validation failed.", resp.Error.Message)
		assert.Equal(t, []shared.FieldError{
			{Field: "content", Message: "Content must not be empty."},
		}, fieldErrors(t, resp))
	})

	t.Run("missing comment with a valid body yields 404", func(t *testing.T) {
		handler := NewCommentHandler(mocks.NewMockCommentStore(), nil)

		req := withURLParams(newJSONRequest(t, http.MethodPatch, "/api/posts/3/comments/999",
			map[string]string{"content": "Edited content"}),
			map[string]string{"postId": "3", "commentId": "999"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	commentStore := mocks.NewMockCommentStore()
	seedComment(t, commentStore, 3)
	handler := NewCommentHandler(commentStore, nil)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/posts/3/comments/1", nil),
		map[string]string{"postId": "3", "commentId": "1"})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"comment":{"id":1,"postId":3}}`, string(resp.Data))

	rec = httptest.NewRecorder()
	handler.Delete(rec, withURLParams(
		httptest.NewRequest(http.MethodDelete, "/api/posts/3/comments/1", nil),
		map[string]string{"postId": "3", "commentId": "1"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
