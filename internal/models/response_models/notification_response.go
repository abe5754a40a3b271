package response_models

type NotificationResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Title              string `json:"title"`
	Message            string `json:"message"`
	RelatedItineraryID string `json:"related_itinerary_id,omitempty"`
	IsRead             bool   `json:"is_read"`
	CreatedAt          int64  `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
