package dao

import (
	"context"

	"nostalgic/nostalgic/sources/psql/models"

	"gorm.io/gorm"
)

type ContentDAO struct {
	DB *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{DB: db}
}

func (dao *ContentDAO) CreateContent(ctx context.Context, content *models.Content) error {
	return dao.DB.WithContext(ctx).Create(content).Error
}

func (dao *ContentDAO) GetContentIDsByWriter(ctx context.Context, writerName string) ([]int, error) {
	ids := []int{}
	err := dao.DB.WithContext(ctx).
		Model(&models.Content{}).
		Where("writer_name = ?", writerName).
		Order("contents_id").
		Pluck("contents_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (dao *ContentDAO) ContentExists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&models.Content{}).Where("contents_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
