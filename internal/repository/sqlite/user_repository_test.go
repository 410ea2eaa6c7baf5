package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"social-backend/internal/domain"
	"social-backend/internal/repository"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t, "users_create")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{Username: "alice", Email: "alice@example.com", Password: "secret"}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Positive(t, id)
	require.Equal(t, id, user.ID)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := openTestDB(t, "users_dup")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.User{Username: "bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "bob", Email: "other@example.com", Password: "x"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.Create(ctx, &domain.User{Username: "carol", Email: "bob@example.com", Password: "x"})
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := openTestDB(t, "users_missing")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Get(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db := openTestDB(t, "users_list")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, &domain.User{Username: name, Email: name + "@example.com", Password: "x"})
		require.NoError(t, err)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "a", users[0].Username)
}

func TestUserRepository_Replace(t *testing.T) {
	db := openTestDB(t, "users_replace")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{Username: "dave", Email: "dave@example.com", Password: "x"}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)

	err = repo.Replace(ctx, &domain.User{ID: id, Username: "david", Email: "david@example.com", Password: "y"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "david", got.Username)
	require.Equal(t, "david@example.com", got.Email)

	// Replacing a row that does not exist affects nothing and is not an error.
	err = repo.Replace(ctx, &domain.User{ID: 999, Username: "ghost", Email: "ghost@example.com", Password: "z"})
	require.NoError(t, err)
}

func TestUserRepository_Delete(t *testing.T) {
	db := openTestDB(t, "users_delete")
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{Username: "erin", Email: "erin@example.com", Password: "x"}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, id)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
