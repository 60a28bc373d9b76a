package docs

// This file contains models used by Swagger documentation
// It doesn't affect the actual application logic, just documentation

// FeedbackUpdateRequest documents the PATCH body. Every field is optional;
// omitted fields are left unchanged and a null status clears it. Name, email
// and feedback must not be empty.
// @Description Partial feedback update
type FeedbackUpdateRequest struct {
	Name     *string  `json:"name,omitempty" minLength:"1" maxLength:"255" example:"Alice"`
	Email    *string  `json:"email,omitempty" minLength:"1" maxLength:"255" example:"alice@example.com"`
	Feedback *string  `json:"feedback,omitempty" minLength:"1" maxLength:"500" example:"The course was great"`
	Rating   *float32 `json:"rating,omitempty" example:"4.5"`
	Status   *string  `json:"status,omitempty" maxLength:"50" extensions:"x-nullable" example:"reviewed"`
}
