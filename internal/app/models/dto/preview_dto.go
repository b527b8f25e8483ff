package dto

// PreviewResponse is the rendered, sanitized form of stored rich text.
type PreviewResponse struct {
	HTML  string `json:"html" example:"<p>Hello <strong>world</strong></p>"`
	Text  string `json:"text" example:"Hello world"`
	Empty bool   `json:"empty" example:"false"`
}
