package request_models

type SubmitForReviewRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
}

type ReviewDecisionRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
	Status      string `json:"status" binding:"required,oneof=under_review approved rejected"`
}

type AddAdminCommentRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
	Message     string `json:"message" binding:"required,min=1"`
	Suggestion  string `json:"suggestion"`
}

type ApplySuggestionRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
	CommentID   string `json:"comment_id" binding:"required,uuid4"`
}

type TogglePublicRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
}
