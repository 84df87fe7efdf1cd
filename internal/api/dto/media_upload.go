package dto

// MediaUploadDTO resultado de um upload
type MediaUploadDTO struct {
	ObjectKey string `json:"object_key"`
	ThumbKey  string `json:"thumb_key,omitempty"`
	URL       string `json:"url"`
}
