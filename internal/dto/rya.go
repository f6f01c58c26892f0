package dto

type AskRyaRequest struct {
	Question string `json:"question" validate:"required,min=1"`
}

type AskRyaResponse struct {
	Answer string `json:"answer"`
}
