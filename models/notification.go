package models

// Notification types
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
)

// Notification is synthesized per request from the viewer's posts and
// follower list; it is never persisted. ID is the composite key of type,
// actor and post, so a user who both liked and commented on the same post
// yields two records.
type Notification struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	UserID          string `json:"userId"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	PostID          string `json:"postId,omitempty"`
	CommentText     string `json:"commentText,omitempty"`
	CreatedAt       string `json:"createdAt"`
}
