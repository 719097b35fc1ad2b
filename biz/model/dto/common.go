package dto

type MessageResp struct {
	Message string `json:"message"`
}
