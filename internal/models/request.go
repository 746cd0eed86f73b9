package models

const RoleUser = "user"

// ModelRequest is a single role-tagged turn sent to the generative model.
type ModelRequest struct {
	Role  string
	Parts []ModelPart
}

// ModelPart holds either instruction text or inline media.
type ModelPart struct {
	Text       string
	InlineData *InlineData
}

type InlineData struct {
	MIMEType string
	Data     []byte
}

// Text concatenates the text parts of the request.
func (r *ModelRequest) Text() string {
	var text string
	for _, part := range r.Parts {
		text += part.Text
	}
	return text
}
