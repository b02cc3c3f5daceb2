package controllers

import (
	"context"
	"fmt"

	"nostalgic/nostalgic/sources/psql/dao"
	"nostalgic/nostalgic/sources/psql/models"
	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContentController struct {
	db *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{db: db}
}

// Create stores a content row written by user and links any image IDs given
// in req. Blank title or body is rejected before anything is written.
func (c *ContentController) Create(ctx context.Context, user types.Identity, req types.CreateContentRequest) (int, error) {
	if blank(req.Title) {
		return 0, fmt.Errorf("%w: title", ErrEmptyField)
	}
	if blank(req.Content) {
		return 0, fmt.Errorf("%w: content", ErrEmptyField)
	}

	content := &models.Content{
		Title:      req.Title,
		Body:       req.Content,
		WriterName: user.Username,
		LikeCnt:    0,
		IsDeleted:  false,
	}
	imageIDs := uniqueInts(req.ImageID)

	err := dao.WithTx(ctx, c.db, func(tx *gorm.DB) error {
		images := dao.NewImageDAO(tx)
		if len(imageIDs) > 0 {
			count, err := images.CountImages(ctx, imageIDs)
			if err != nil {
				return err
			}
			if count != int64(len(imageIDs)) {
				return ErrUnknownImage
			}
		}
		if err := dao.NewContentDAO(tx).CreateContent(ctx, content); err != nil {
			return err
		}
		for _, id := range imageIDs {
			if err := images.AddContentImage(ctx, content.ContentsID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logging.AppLogger.Info("content created",
		zap.Int("contents_id", content.ContentsID),
		zap.String("writer", user.Username),
		zap.Int("images", len(imageIDs)),
	)
	return content.ContentsID, nil
}

// ListByUser returns the IDs of every content row written by username.
func (c *ContentController) ListByUser(ctx context.Context, username string) ([]int, error) {
	return dao.NewContentDAO(c.db).GetContentIDsByWriter(ctx, username)
}

func uniqueInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
