package dto

type CreateScriptRequest struct {
	Topic          string `json:"topic" binding:"required"`
	Language       string `json:"language" binding:"required"`
	WordsPerScript int    `json:"words_per_script"`
}

type CreateScriptResponse struct {
	Script string `json:"script"`
}
