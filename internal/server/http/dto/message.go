package dto

// MessageResponse is the structured acknowledgement returned by every action.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
