package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JordiPons-11/chessrank/internal/auth"
	"github.com/JordiPons-11/chessrank/internal/testutil"
	"github.com/JordiPons-11/chessrank/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedUsersCreatesAccounts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	path := writeSeedFile(t, `[
		{"username": "admin", "password": "s3cret"},
		{"username": "arbiter", "password": "pass123"}
	]`)

	require.NoError(t, auth.SeedUsers(db, path))

	repo := auth.NewAuthRepository(db)
	admin, err := repo.FindUserByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, utils.CheckPassword(admin.PasswordHash, "s3cret"))

	arbiter, err := repo.FindUserByUsername("arbiter")
	require.NoError(t, err)
	assert.NotNil(t, arbiter)
}

func TestSeedUsersLeavesExistingUntouched(t *testing.T) {
	db := testutil.OpenTestDB(t)
	path := writeSeedFile(t, `[{"username": "admin", "password": "first"}]`)
	require.NoError(t, auth.SeedUsers(db, path))

	repo := auth.NewAuthRepository(db)
	before, err := repo.FindUserByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, before)

	// Second run with a changed password must not rewrite the hash.
	path = writeSeedFile(t, `[{"username": "admin", "password": "second"}]`)
	require.NoError(t, auth.SeedUsers(db, path))

	after, err := repo.FindUserByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.True(t, utils.CheckPassword(after.PasswordHash, "first"))
}

func TestSeedUsersSkipsMalformedEntries(t *testing.T) {
	db := testutil.OpenTestDB(t)
	path := writeSeedFile(t, `[
		{"username": "", "password": "x"},
		{"username": "nopass"},
		{"username": "valid", "password": "ok"}
	]`)

	require.NoError(t, auth.SeedUsers(db, path))

	repo := auth.NewAuthRepository(db)
	valid, err := repo.FindUserByUsername("valid")
	require.NoError(t, err)
	assert.NotNil(t, valid)

	nopass, err := repo.FindUserByUsername("nopass")
	require.NoError(t, err)
	assert.Nil(t, nopass)
}

func TestSeedUsersMissingFile(t *testing.T) {
	db := testutil.OpenTestDB(t)
	assert.NoError(t, auth.SeedUsers(db, filepath.Join(t.TempDir(), "absent.json")))
}

func TestSeedUsersInvalidJSON(t *testing.T) {
	db := testutil.OpenTestDB(t)
	path := writeSeedFile(t, `{"not": "an array"`)
	assert.Error(t, auth.SeedUsers(db, path))
}
