package inmem

import (
	"context"
	"testing"

	"github.com/dekarrin/scramble/internal/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_RunsRepository_CreateAndGetByID(t *testing.T) {
	st := NewDatastore()
	ctx := context.Background()

	created, err := st.Runs().Create(ctx, dao.Run{Source: "prointl((1)\n", Succeeded: true})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := st.Runs().GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func Test_RunsRepository_GetByIDMissing(t *testing.T) {
	st := NewDatastore()
	_, err := st.Runs().GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func Test_RunsRepository_GetAllOrdersByCreated(t *testing.T) {
	st := NewDatastore()
	ctx := context.Background()

	first, err := st.Runs().Create(ctx, dao.Run{Source: "a"})
	assert.NoError(t, err)
	second, err := st.Runs().Create(ctx, dao.Run{Source: "b"})
	assert.NoError(t, err)

	all, err := st.Runs().GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}
