package types

type CreateContentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	ImageID []int  `json:"image_id"`
}

type CreateContentResponse struct {
	ContentsID int `json:"contents_id"`
}

type ContentIDsResponse struct {
	ContentIDs []int `json:"content_ids"`
}
