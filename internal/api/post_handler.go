package api

import (
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// PostHandler handles post CRUD API requests. Mutating endpoints require an
// authenticated user; authorship is not checked beyond that.
type PostHandler struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postStore: postStore,
		logger:    logger.With(slog.String("component", "post_handler")),
	}
}

// Create handles post creation. Responds 201 with only the created post's ID.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Post form validation failed.", details)
		return
	}

	post, err := domain.NewPost(user.ID, req.Title, req.Content, req.Published)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			// Author row vanished between authentication and insert.
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to create post", "error", err, "author_id", user.ID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, PostRefData{Post: PostRef{ID: post.ID}})
}

// List returns all posts, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list posts", "error", err)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, PostListData{Posts: posts})
}

// Get returns a single post with its comments.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		respondNotFound(w, r)
		return
	}

	post, err := h.postStore.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get post", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, PostData{Post: post})
}

// Update handles post updates. The record is fetched before any mutation is
// attempted, so a nonexistent ID yields 404 without touching the store.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Post form validation failed.", details)
		return
	}

	postID, ok := pathID(r, "postId")
	if !ok {
		respondNotFound(w, r)
		return
	}

	post, err := h.postStore.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get post for update", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Published = req.Published

	updated, err := h.postStore.Update(r.Context(), post)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to update post", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, PostData{Post: updated})
}

// Delete removes a post. Responds 200 with the deleted post's ID; a second
// delete of the same ID yields 404.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		respondNotFound(w, r)
		return
	}

	if _, err := h.postStore.GetByID(r.Context(), postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get post for delete", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.postStore.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to delete post", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, PostRefData{Post: PostRef{ID: postID}})
}
