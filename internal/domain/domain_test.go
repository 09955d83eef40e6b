package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		email          string
		displayName    string
		hashedPassword string
		wantErr        error
	}{
		{"valid user", "user@example.com", "User", "hash", nil},
		{"empty email", "", "User", "hash", ErrEmptyEmail},
		{"malformed email", "user@nodot", "User", "hash", ErrInvalidEmail},
		{"missing at sign", "userexample.com", "User", "hash", ErrInvalidEmail},
		{"empty name", "user@example.com", "", "hash", ErrEmptyName},
		{"empty hash", "user@example.com", "User", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.email, tt.displayName, tt.hashedPassword, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	t.Parallel()

	user, err := NewUser("user@example.com", "User", "super-secret-hash", true)
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-hash")
	assert.Contains(t, string(raw), `"createdAt"`)
}

func TestNewPost(t *testing.T) {
	t.Parallel()

	t.Run("valid post", func(t *testing.T) {
		t.Parallel()
		post, err := NewPost(1, "Title", "Content", true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), post.AuthorID)
		assert.True(t, post.Published)
	})

	t.Run("missing author", func(t *testing.T) {
		t.Parallel()
		_, err := NewPost(0, "Title", "Content", false)
		assert.ErrorIs(t, err, ErrMissingAuthor)
	})

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		_, err := NewPost(1, "", "Content", false)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := NewPost(1, "Title", "", false)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestNewComment(t *testing.T) {
	t.Parallel()

	t.Run("valid comment defaults to published", func(t *testing.T) {
		t.Parallel()
		comment, err := NewComment(3, "Reader", "reader@example.com", "Nice post")
		require.NoError(t, err)
		assert.Equal(t, int64(3), comment.PostID)
		assert.True(t, comment.Published)
	})

	t.Run("missing post reference", func(t *testing.T) {
		t.Parallel()
		_, err := NewComment(0, "Reader", "reader@example.com", "Nice post")
		assert.ErrorIs(t, err, ErrMissingPost)
	})

	t.Run("malformed email", func(t *testing.T) {
		t.Parallel()
		_, err := NewComment(3, "Reader", "reader@", "Nice post")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}
