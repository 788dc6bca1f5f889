package dto

type CommentRequest struct {
	Text string `json:"text"`
}
