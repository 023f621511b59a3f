package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndLoginFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db)

	user, err := svc.CreateUser(ctx(), "Jane Doe", "jane@x.com", "Password1!", RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	found, err := svc.FindByEmail(ctx(), "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	assert.True(t, svc.VerifyPassword(found, "Password1!"))
	assert.False(t, svc.VerifyPassword(found, "wrong"))

	roles, err := svc.RolesFor(ctx(), found)
	require.NoError(t, err)
	assert.Equal(t, []string{RoleUser}, roles)
}

func TestFindByEmailMissingIsNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db)

	user, err := svc.FindByEmail(ctx(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIssueAndParseToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db)

	user, err := svc.CreateUser(ctx(), "Jane Doe", "jane@x.com", "Password1!", RoleUser)
	require.NoError(t, err)

	token, err := svc.IssueToken(ctx(), user)
	require.NoError(t, err)

	caller, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, caller.Role)
	assert.Equal(t, "jane@x.com", caller.Email)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestAdminRoleWinsInToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db)

	user, err := svc.CreateUser(ctx(), "Root", "root@x.com", "Password1!", RoleAdmin)
	require.NoError(t, err)

	token, err := svc.IssueToken(ctx(), user)
	require.NoError(t, err)

	caller, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, caller.Role)
}
