package models

// All lists every table managed by AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Content{},
		&Image{},
		&UserImage{},
		&ContentImage{},
	}
}
