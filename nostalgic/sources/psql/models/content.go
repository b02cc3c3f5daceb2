package models

import "time"

// Content is a text post. IsDeleted is stored but no code path sets or reads it.
type Content struct {
	ContentsID int       `json:"contents_id" gorm:"column:contents_id;primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"type:text"`
	Body       string    `json:"content" gorm:"column:content;type:text"`
	WriterName string    `json:"writer_name" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	LikeCnt    int       `json:"like_cnt" gorm:"not null;default:0"`
	IsDeleted  bool      `json:"is_deleted" gorm:"not null;default:false"`
}

func (Content) TableName() string {
	return "Contents"
}
