package controllers

import "errors"

var (
	ErrEmptyField         = errors.New("empty values are not allowed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")

	ErrUnknownImage          = errors.New("unknown image id")
	ErrNoFiles               = errors.New("no files uploaded")
	ErrContentNotFound       = errors.New("content not found")
	ErrUserImageNotFound     = errors.New("user image not found")
	ErrContentImagesNotFound = errors.New("content images not found")
)
