package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
)

func TestRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(helpers.NewRedisClient(mr.Addr(), "", 0))
	ctx := context.Background()
	u := entity.NewUser("Cook", valueobject.CreateEmail("cook@example.com").Value(), "h")

	ok, err := store.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, u.ID, u.Name, u.Email.String(), time.Hour))
	ok, err = store.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cook@example.com", mr.HGet("user:session:"+u.ID, "email"))

	mr.FastForward(2 * time.Hour)
	ok, err = store.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, u.ID, u.Name, u.Email.String(), time.Hour))
	require.NoError(t, store.Delete(ctx, u.ID))
	ok, err = store.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
