package repository

import (
	"testing"
	"user_api/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateSet_BothFields(t *testing.T) {
	cmd := model.UpdateUserCommand{
		ID:       "9821d845-faed-4316-b68f-ee2ea5e79821",
		Username: strPtr("steve"),
		Password: strPtr("123456"),
	}

	clause, args := buildUpdateSet(cmd)

	assert.Equal(t, "username = $2, password = $3", clause)
	assert.Equal(t, []interface{}{cmd.ID, "steve", "123456"}, args)
}

func TestBuildUpdateSet_UsernameOnly(t *testing.T) {
	cmd := model.UpdateUserCommand{
		ID:       "9821d845-faed-4316-b68f-ee2ea5e79821",
		Username: strPtr("steve"),
	}

	clause, args := buildUpdateSet(cmd)

	assert.Equal(t, "username = $2", clause)
	assert.Equal(t, []interface{}{cmd.ID, "steve"}, args)
}

func TestBuildUpdateSet_PasswordOnly(t *testing.T) {
	cmd := model.UpdateUserCommand{
		ID:       "9821d845-faed-4316-b68f-ee2ea5e79821",
		Password: strPtr("123456"),
	}

	clause, args := buildUpdateSet(cmd)

	assert.Equal(t, "password = $2", clause)
	assert.Equal(t, []interface{}{cmd.ID, "123456"}, args)
}

func TestBuildUpdateSet_NoFields(t *testing.T) {
	cmd := model.UpdateUserCommand{ID: "9821d845-faed-4316-b68f-ee2ea5e79821"}

	clause, args := buildUpdateSet(cmd)

	// The no-op assignment keeps the UPDATE valid so RETURNING still
	// reports whether an active row matched.
	assert.Equal(t, "id = id", clause)
	assert.Equal(t, []interface{}{cmd.ID}, args)
}
