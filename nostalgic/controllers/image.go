package controllers

import (
	"context"
	"fmt"
	"io"
	"time"

	"nostalgic/nostalgic/sources/psql/dao"
	"nostalgic/nostalgic/sources/storage"
	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImageController struct {
	db    *gorm.DB
	store storage.ImageStore
	now   func() time.Time
}

func NewImageController(db *gorm.DB, store storage.ImageStore) *ImageController {
	return &ImageController{
		db:    db,
		store: store,
		now:   time.Now,
	}
}

func (c *ImageController) save(ctx context.Context, filename string, r io.Reader) (string, error) {
	address, err := c.store.Save(ctx, storage.FileName(c.now(), filename), r)
	if err != nil {
		return "", fmt.Errorf("save %q: %w", filename, err)
	}
	return address, nil
}

// AttachToUser stores the upload and makes it the user's profile image. The
// previous image row stays in Images, unlinked.
func (c *ImageController) AttachToUser(ctx context.Context, user types.Identity, filename string, r io.Reader) (int, error) {
	defer logging.LogDuration(ctx, "ImageController.AttachToUser")()

	address, err := c.save(ctx, filename, r)
	if err != nil {
		return 0, err
	}

	var imageID int
	err = dao.WithTx(ctx, c.db, func(tx *gorm.DB) error {
		owner, err := dao.NewUserDAO(tx).GetUserByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrUnauthorized
		}
		images := dao.NewImageDAO(tx)
		image, err := images.CreateImage(ctx, address)
		if err != nil {
			return err
		}
		imageID = image.ImageID
		return images.UpsertUserImage(ctx, owner.UID, image.ImageID)
	})
	if err != nil {
		return 0, err
	}

	logging.AppLogger.Info("user image stored",
		zap.String("username", user.Username),
		zap.Int("image_id", imageID),
		zap.String("address", address),
	)
	return imageID, nil
}

// AttachToContent stores the upload and appends it to the content's images.
func (c *ImageController) AttachToContent(ctx context.Context, contentID int, filename string, r io.Reader) (int, error) {
	defer logging.LogDuration(ctx, "ImageController.AttachToContent")()

	exists, err := dao.NewContentDAO(c.db).ContentExists(ctx, contentID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrContentNotFound
	}

	address, err := c.save(ctx, filename, r)
	if err != nil {
		return 0, err
	}

	var imageID int
	err = dao.WithTx(ctx, c.db, func(tx *gorm.DB) error {
		images := dao.NewImageDAO(tx)
		image, err := images.CreateImage(ctx, address)
		if err != nil {
			return err
		}
		imageID = image.ImageID
		return images.AddContentImage(ctx, contentID, image.ImageID)
	})
	if err != nil {
		return 0, err
	}

	logging.AppLogger.Info("content image stored",
		zap.Int("contents_id", contentID),
		zap.Int("image_id", imageID),
		zap.String("address", address),
	)
	return imageID, nil
}

// GetUserImage returns the address of username's linked image.
func (c *ImageController) GetUserImage(ctx context.Context, username string) (string, error) {
	user, err := dao.NewUserDAO(c.db).GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserImageNotFound
	}
	image, err := dao.NewImageDAO(c.db).GetUserImage(ctx, user.UID)
	if err != nil {
		return "", err
	}
	if image == nil {
		return "", ErrUserImageNotFound
	}
	return image.ImageAddress, nil
}

// GetContentImages maps each content ID to its image addresses. IDs without
// images are left out; an entirely empty result is ErrContentImagesNotFound.
func (c *ImageController) GetContentImages(ctx context.Context, contentIDs []int) (map[int][]string, error) {
	images := dao.NewImageDAO(c.db)
	result := make(map[int][]string)
	for _, id := range contentIDs {
		addresses, err := images.GetContentImageAddresses(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(addresses) == 0 {
			continue
		}
		result[id] = addresses
	}
	if len(result) == 0 {
		return nil, ErrContentImagesNotFound
	}
	return result, nil
}
