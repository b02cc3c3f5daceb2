package controllers

import (
	"context"
	"testing"

	"nostalgic/nostalgic/sources/psql/dao"
	"nostalgic/nostalgic/sources/psql/models"
	"nostalgic/nostalgic/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = types.Identity{Username: "alice"}

func TestCreateContentRejectsBlank(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewContentController(db)

	for _, req := range []types.CreateContentRequest{
		{Title: "", Content: "body"},
		{Title: "   ", Content: "body"},
		{Title: "title", Content: "\n"},
	} {
		_, err := ctrl.Create(context.Background(), alice, req)
		assert.ErrorIs(t, err, ErrEmptyField)
	}

	var count int64
	require.NoError(t, db.Model(&models.Content{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListByUser(t *testing.T) {
	ctrl := NewContentController(newTestDB(t))
	ctx := context.Background()

	first, err := ctrl.Create(ctx, alice, types.CreateContentRequest{Title: "a", Content: "1"})
	require.NoError(t, err)
	_, err = ctrl.Create(ctx, types.Identity{Username: "bob"}, types.CreateContentRequest{Title: "b", Content: "2"})
	require.NoError(t, err)
	second, err := ctrl.Create(ctx, alice, types.CreateContentRequest{Title: "c", Content: "3"})
	require.NoError(t, err)

	ids, err := ctrl.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{first, second}, ids)

	ids, err = ctrl.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCreateContentStoresWriter(t *testing.T) {
	db := newTestDB(t)
	id, err := NewContentController(db).Create(context.Background(), alice, types.CreateContentRequest{Title: "t", Content: "b"})
	require.NoError(t, err)

	var stored models.Content
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "alice", stored.WriterName)
	assert.Equal(t, "b", stored.Body)
	assert.Zero(t, stored.LikeCnt)
	assert.False(t, stored.IsDeleted)
}

func TestCreateContentLinksImages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	img, err := dao.NewImageDAO(db).CreateImage(ctx, "uploads/a.png")
	require.NoError(t, err)

	id, err := NewContentController(db).Create(ctx, alice, types.CreateContentRequest{
		Title: "t", Content: "b", ImageID: []int{img.ImageID, img.ImageID},
	})
	require.NoError(t, err)

	addrs, err := dao.NewImageDAO(db).GetContentImageAddresses(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/a.png"}, addrs)
}

func TestCreateContentUnknownImageRollsBack(t *testing.T) {
	db := newTestDB(t)

	_, err := NewContentController(db).Create(context.Background(), alice, types.CreateContentRequest{
		Title: "t", Content: "b", ImageID: []int{42},
	})
	assert.ErrorIs(t, err, ErrUnknownImage)

	var count int64
	require.NoError(t, db.Model(&models.Content{}).Count(&count).Error)
	assert.Zero(t, count)
}
