package model

// CollectionContactSubmission is the document collection holding contact form submissions.
const CollectionContactSubmission = "contactsubmission"

// ContactSubmission is a message submitted via the contact form.
type ContactSubmission struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2"`
	Message string `json:"message" validate:"required,min=5"`
}
