package types

// Response status values. "fail" marks client errors, "error" server errors.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// MessageResponse is returned by the health checker.
type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  string `json:"status" example:"fail"`
	Message string `json:"message"`
}

// FeedbackData wraps a single feedback under "data".
type FeedbackData struct {
	Feedback *Feedback `json:"feedback"`
}

// FeedbackResponse is returned by create, get and update.
type FeedbackResponse struct {
	Status string       `json:"status" example:"success"`
	Data   FeedbackData `json:"data"`
}

// FeedbackListResponse is returned by the list endpoint.
type FeedbackListResponse struct {
	Status    string      `json:"status" example:"success"`
	Results   int         `json:"results"`
	Feedbacks []*Feedback `json:"feedbacks"`
}
