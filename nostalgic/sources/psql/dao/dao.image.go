package dao

import (
	"context"
	"errors"

	"nostalgic/nostalgic/sources/psql/models"

	"gorm.io/gorm"
)

type ImageDAO struct {
	DB *gorm.DB
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{DB: db}
}

func (dao *ImageDAO) CreateImage(ctx context.Context, address string) (*models.Image, error) {
	image := models.Image{ImageAddress: address}
	if err := dao.DB.WithContext(ctx).Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// CountImages reports how many of ids exist in Images.
func (dao *ImageDAO) CountImages(ctx context.Context, ids []int) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&models.Image{}).Where("image_id IN ?", ids).Count(&count).Error
	return count, err
}

// UpsertUserImage points the user's link row at imageID, creating the row on
// first upload. The previously linked image row is left in place.
func (dao *ImageDAO) UpsertUserImage(ctx context.Context, userID, imageID int) error {
	var link models.UserImage
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dao.DB.WithContext(ctx).Create(&models.UserImage{UserID: userID, ImageID: imageID}).Error
	}
	if err != nil {
		return err
	}
	return dao.DB.WithContext(ctx).Model(&link).Update("image_id", imageID).Error
}

// GetUserImage returns the image currently linked to userID, or nil.
func (dao *ImageDAO) GetUserImage(ctx context.Context, userID int) (*models.Image, error) {
	var link models.UserImage
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var image models.Image
	err = dao.DB.WithContext(ctx).First(&image, "image_id = ?", link.ImageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (dao *ImageDAO) AddContentImage(ctx context.Context, contentID, imageID int) error {
	return dao.DB.WithContext(ctx).Create(&models.ContentImage{ContentID: contentID, ImageID: imageID}).Error
}

// GetContentImageAddresses lists the addresses linked to contentID in link order.
// Links whose image row is gone are skipped.
func (dao *ImageDAO) GetContentImageAddresses(ctx context.Context, contentID int) ([]string, error) {
	var links []models.ContentImage
	err := dao.DB.WithContext(ctx).Where("content_id = ?", contentID).Order("id").Find(&links).Error
	if err != nil {
		return nil, err
	}
	addresses := []string{}
	if len(links) == 0 {
		return addresses, nil
	}

	ids := make([]int, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ImageID)
	}
	var images []models.Image
	if err := dao.DB.WithContext(ctx).Where("image_id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]string, len(images))
	for _, img := range images {
		byID[img.ImageID] = img.ImageAddress
	}
	for _, l := range links {
		if addr, ok := byID[l.ImageID]; ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses, nil
}
