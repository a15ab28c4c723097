package dto

// FAQResponse una pregunta frecuente.
type FAQResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
