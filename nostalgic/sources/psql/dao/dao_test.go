package dao

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nostalgic/nostalgic/sources/psql/models"
	"nostalgic/nostalgic/sources/psql/psqltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserDAO(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(psqltest.NewDB(t))

	missing, err := users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := users.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	assert.NotZero(t, created.UID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.UID, found.UID)

	_, err = users.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestContentDAO(t *testing.T) {
	ctx := context.Background()
	contents := NewContentDAO(psqltest.NewDB(t))

	for _, writer := range []string{"alice", "bob", "alice"} {
		require.NoError(t, contents.CreateContent(ctx, &models.Content{Title: "t", Body: "b", WriterName: writer}))
	}

	ids, err := contents.GetContentIDsByWriter(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	ids, err = contents.GetContentIDsByWriter(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)

	ok, err := contents.ContentExists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = contents.ContentExists(ctx, 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContentDefaults(t *testing.T) {
	ctx := context.Background()
	db := psqltest.NewDB(t)
	content := &models.Content{Title: "t", Body: "b", WriterName: "alice"}
	require.NoError(t, NewContentDAO(db).CreateContent(ctx, content))

	var stored models.Content
	require.NoError(t, db.First(&stored, content.ContentsID).Error)
	assert.Equal(t, 0, stored.LikeCnt)
	assert.False(t, stored.IsDeleted)
}

func TestUnboundedTextColumns(t *testing.T) {
	ctx := context.Background()
	db := psqltest.NewDB(t)
	long := strings.Repeat("x", 1000)

	user, err := NewUserDAO(db).CreateUser(ctx, long, "hash")
	require.NoError(t, err)
	content := &models.Content{Title: long, Body: "b", WriterName: long}
	require.NoError(t, NewContentDAO(db).CreateContent(ctx, content))

	found, err := NewUserDAO(db).GetUserByUsername(ctx, long)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.UID, found.UID)

	ids, err := NewContentDAO(db).GetContentIDsByWriter(ctx, long)
	require.NoError(t, err)
	assert.Equal(t, []int{content.ContentsID}, ids)
}

func TestImageDAOUserLink(t *testing.T) {
	ctx := context.Background()
	db := psqltest.NewDB(t)
	images := NewImageDAO(db)

	none, err := images.GetUserImage(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := images.CreateImage(ctx, "uploads/a.png")
	require.NoError(t, err)
	require.NoError(t, images.UpsertUserImage(ctx, 1, first.ImageID))

	second, err := images.CreateImage(ctx, "uploads/b.png")
	require.NoError(t, err)
	require.NoError(t, images.UpsertUserImage(ctx, 1, second.ImageID))

	var links []models.UserImage
	require.NoError(t, db.Where("user_id = ?", 1).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, second.ImageID, links[0].ImageID)

	current, err := images.GetUserImage(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "uploads/b.png", current.ImageAddress)

	count, err := images.CountImages(ctx, []int{first.ImageID, second.ImageID, 99})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestImageDAOContentLinks(t *testing.T) {
	ctx := context.Background()
	images := NewImageDAO(psqltest.NewDB(t))

	for _, addr := range []string{"a", "b"} {
		img, err := images.CreateImage(ctx, addr)
		require.NoError(t, err)
		require.NoError(t, images.AddContentImage(ctx, 7, img.ImageID))
	}

	addrs, err := images.GetContentImageAddresses(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, addrs)

	addrs, err = images.GetContentImageAddresses(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := psqltest.NewDB(t)
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(tx *gorm.DB) error {
		if _, err := NewImageDAO(tx).CreateImage(ctx, "x"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.Image{}).Count(&count).Error)
	assert.Zero(t, count)
}
