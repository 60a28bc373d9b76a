package types

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Feedback represents a feedback entry stored in the feedbacks table.
type Feedback struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Feedback  string     `json:"feedback"`
	Rating    float32    `json:"rating"`
	Status    *string    `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// FeedbackCreate represents the request body for creating a feedback.
// Status is accepted for symmetry with the update payload but is not written
// by the insert.
type FeedbackCreate struct {
	Name     string   `json:"name" binding:"required,max=255"`
	Email    string   `json:"email" binding:"required,max=255"`
	Feedback string   `json:"feedback" binding:"required,max=500"`
	Rating   *float32 `json:"rating" binding:"required"`
	Status   *string  `json:"status,omitempty" binding:"omitempty,max=50"`
}

// FeedbackUpdate represents a partial update. A field that is absent from the
// JSON body leaves the stored value untouched.
type FeedbackUpdate struct {
	Name     Optional[string]  `json:"name" swaggertype:"string"`
	Email    Optional[string]  `json:"email" swaggertype:"string"`
	Feedback Optional[string]  `json:"feedback" swaggertype:"string"`
	Rating   Optional[float32] `json:"rating" swaggertype:"number"`
	Status   Optional[string]  `json:"status" swaggertype:"string"`
}

// Column limits of the feedbacks table.
const (
	MaxNameLength     = 255
	MaxEmailLength    = 255
	MaxFeedbackLength = 500
	MaxStatusLength   = 50
)

// Validate rejects explicit nulls and empty strings on fields the table
// declares NOT NULL, and values longer than their column. Status is
// nullable, so a null there clears it.
func (u *FeedbackUpdate) Validate() error {
	required := []struct {
		field string
		value Optional[string]
		max   int
	}{
		{"name", u.Name, MaxNameLength},
		{"email", u.Email, MaxEmailLength},
		{"feedback", u.Feedback, MaxFeedbackLength},
	}
	for _, r := range required {
		if r.value.IsNull() {
			return &FieldError{Field: r.field, Reason: "must not be null"}
		}
		if v, ok := r.value.Get(); ok {
			if v == "" {
				return &FieldError{Field: r.field, Reason: "must not be empty"}
			}
			if err := checkLength(r.field, v, r.max); err != nil {
				return err
			}
		}
	}

	if u.Rating.IsNull() {
		return &FieldError{Field: "rating", Reason: "must not be null"}
	}
	if v, ok := u.Status.Get(); ok {
		return checkLength("status", v, MaxStatusLength)
	}
	return nil
}

// checkLength counts characters, as VARCHAR(n) does.
func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &FieldError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

// Apply merges the update into a copy of current. Absent fields keep their
// stored value; UpdatedAt is left for the caller.
func (u *FeedbackUpdate) Apply(current *Feedback) *Feedback {
	merged := *current
	merged.Name = u.Name.ValueOr(current.Name)
	merged.Email = u.Email.ValueOr(current.Email)
	merged.Feedback = u.Feedback.ValueOr(current.Feedback)
	merged.Rating = u.Rating.ValueOr(current.Rating)
	if u.Status.IsSet() {
		merged.Status = u.Status.Ptr()
	}
	return &merged
}

// FilterOptions holds the list query string.
type FilterOptions struct {
	Page  *int `form:"page" binding:"omitempty,gte=1"`
	Limit *int `form:"limit" binding:"omitempty,gte=1"`
}

// FieldError describes a single invalid field in a request payload.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}
