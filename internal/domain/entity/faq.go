package entity

// FAQEntry pregunta frecuente de la clínica. Question es única.
type FAQEntry struct {
	ID       int64
	Question string
	Answer   string
}
