package models

import "time"

type Image struct {
	ImageID      int       `json:"image_id" gorm:"column:image_id;primaryKey;autoIncrement"`
	ImageAddress string    `json:"image_address" gorm:"type:varchar(1024);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (Image) TableName() string {
	return "Images"
}

// UserImage links a user to their single profile image. One row per user is
// kept by the image DAO; there is no foreign key or unique constraint.
type UserImage struct {
	ID      int `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  int `json:"user_id" gorm:"not null;index"`
	ImageID int `json:"image_id" gorm:"not null"`
}

func (UserImage) TableName() string {
	return "Users_Images"
}

type ContentImage struct {
	ID        int `json:"id" gorm:"primaryKey;autoIncrement"`
	ContentID int `json:"content_id" gorm:"not null;index"`
	ImageID   int `json:"image_id" gorm:"not null"`
}

func (ContentImage) TableName() string {
	return "Contents_Images"
}
