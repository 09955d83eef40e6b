package api

import (
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/api/shared"
	"blogapi/internal/domain"
	"blogapi/internal/store"
)

// CommentHandler handles comment CRUD API requests. Comment creation is
// public; everything else sits behind the auth middleware.
type CommentHandler struct {
	commentStore store.CommentStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(commentStore store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		logger:       logger.With(slog.String("component", "comment_handler")),
	}
}

// Create handles anonymous comment creation against an existing post. The
// foreign key guarantees no comment row is created when the post is missing;
// that case responds 404.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Comment form validation failed.", details)
		return
	}

	postID, ok := pathID(r, "postId")
	if !ok {
		respondNotFound(w, r)
		return
	}

	comment, err := domain.NewComment(postID, req.Name, req.Email, req.Content)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commentStore.Create(r.Context(), comment); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to create comment", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated,
		CommentRefData{Comment: CommentRef{ID: comment.ID, PostID: comment.PostID}})
}

// List returns all comments under a post, oldest first.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		respondNotFound(w, r)
		return
	}

	comments, err := h.commentStore.ListByPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to list comments", "error", err, "post_id", postID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, CommentListData{Comments: comments})
}

// Get returns a single comment addressed by its compound key.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentKey(r)
	if !ok {
		respondNotFound(w, r)
		return
	}

	comment, err := h.commentStore.Get(r.Context(), postID, commentID)
	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get comment",
			"error", err, "post_id", postID, "comment_id", commentID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, CommentData{Comment: comment})
}

// Update replaces a comment's content. The record is fetched before any
// mutation is attempted, so a nonexistent key yields 404 without touching
// the store.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CommentPatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if details := ValidateRequest(&req); details != nil {
		shared.RespondWithFieldErrors(
			w, r, http.StatusBadRequest, "Patch comment form validation failed.", details)
		return
	}

	postID, commentID, ok := commentKey(r)
	if !ok {
		respondNotFound(w, r)
		return
	}

	if _, err := h.commentStore.Get(r.Context(), postID, commentID); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get comment for update",
			"error", err, "post_id", postID, "comment_id", commentID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	updated, err := h.commentStore.UpdateContent(r.Context(), postID, commentID, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to update comment",
			"error", err, "post_id", postID, "comment_id", commentID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, CommentData{Comment: updated})
}

// Delete removes a comment. Responds 200 with the deleted comment's compound
// key; a second delete of the same key yields 404.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentKey(r)
	if !ok {
		respondNotFound(w, r)
		return
	}

	if _, err := h.commentStore.Get(r.Context(), postID, commentID); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to get comment for delete",
			"error", err, "post_id", postID, "comment_id", commentID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.commentStore.Delete(r.Context(), postID, commentID); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			respondNotFound(w, r)
			return
		}
		h.logger.Error("failed to delete comment",
			"error", err, "post_id", postID, "comment_id", commentID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK,
		CommentRefData{Comment: CommentRef{ID: commentID, PostID: postID}})
}

// commentKey extracts the compound (postId, commentId) key from the path.
func commentKey(r *http.Request) (int64, int64, bool) {
	postID, ok := pathID(r, "postId")
	if !ok {
		return 0, 0, false
	}
	commentID, ok := pathID(r, "commentId")
	if !ok {
		return 0, 0, false
	}
	return postID, commentID, true
}
