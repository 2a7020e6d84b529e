package dto

import "choicefetch/src/core/domain"

// ChoiceResponse is one row of the choices endpoint.
type ChoiceResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ChoicesResponse is the body of GET /v1/choices.
type ChoicesResponse struct {
	Choices []ChoiceResponse `json:"choices"`
	Count   int              `json:"count"`
}

// NewChoicesResponse converts domain rows; an empty result renders as [].
func NewChoicesResponse(choices []domain.Choice) ChoicesResponse {
	out := make([]ChoiceResponse, 0, len(choices))
	for _, c := range choices {
		out = append(out, ChoiceResponse{ID: c.ID, Description: c.Description})
	}
	return ChoicesResponse{Choices: out, Count: len(out)}
}
