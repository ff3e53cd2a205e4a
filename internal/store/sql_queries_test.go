package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateUserQuery_AllFields(t *testing.T) {
	patch := models.EditUserRequest{
		Email:     strPtr("new@example.com"),
		FirstName: strPtr("Ian"),
		LastName:  strPtr("Doe"),
	}

	query, args, err := buildUpdateUserQuery(42, patch)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET updated_at = NOW(), email = $1, first_name = $2, last_name = $3 WHERE id = $4 RETURNING "+userColumns,
		query)
	assert.Equal(t, []any{"new@example.com", "Ian", "Doe", int64(42)}, args)
}

func TestBuildUpdateUserQuery_SingleField(t *testing.T) {
	patch := models.EditUserRequest{FirstName: strPtr("Ian")}

	query, args, err := buildUpdateUserQuery(7, patch)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET updated_at = NOW(), first_name = $1 WHERE id = $2 RETURNING "+userColumns,
		query)
	assert.Equal(t, []any{"Ian", int64(7)}, args)
}

func TestBuildUpdateBookmarkQuery_AllFields(t *testing.T) {
	patch := models.EditBookmarkRequest{
		Title:       strPtr("K8s for beginners"),
		Description: strPtr("intro course"),
		Link:        strPtr("https://example.com/k8s"),
	}

	query, args, err := buildUpdateBookmarkQuery(42, 5, patch)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE bookmarks SET updated_at = NOW(), title = $1, description = $2, link = $3 WHERE")
	assert.Contains(t, query, "RETURNING "+bookmarkColumns)
	assert.Contains(t, query, "user_id =")
	assert.Contains(t, query, "id =")
	assert.ElementsMatch(t, []any{"K8s for beginners", "intro course", "https://example.com/k8s", int64(42), int64(5)}, args)
}

func TestBuildUpdateBookmarkQuery_TitleOnly(t *testing.T) {
	patch := models.EditBookmarkRequest{Title: strPtr("renamed")}

	query, args, err := buildUpdateBookmarkQuery(1, 2, patch)
	require.NoError(t, err)

	assert.Contains(t, query, "SET updated_at = NOW(), title = $1")
	assert.ElementsMatch(t, []any{"renamed", int64(1), int64(2)}, args)
}
