package types

type ImageIDsResponse struct {
	ImageIDs []int `json:"image_ids"`
}

type UserImageResponse struct {
	ImageAddress string `json:"image_address"`
}

// ContentImagesResponse maps content IDs to their image addresses.
type ContentImagesResponse struct {
	ContentImages map[int][]string `json:"content_images"`
}
