package models

import "time"

// Username has no length limit; the MySQL driver sizes indexed strings to
// varchar(191) so the unique key fits.
type User struct {
	UID       int       `json:"uid" gorm:"column:uid;primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null;index:,unique"`
	Password  string    `json:"-" gorm:"column:password;type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (User) TableName() string {
	return "Users"
}
