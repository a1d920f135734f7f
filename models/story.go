package models

// Story is ephemeral content. Username and profileImageUrl are snapshots of
// the author profile taken at publish time. A story is visible while
// now < expiresAt; expiry is enforced by query filtering, not deletion.
type Story struct {
	StoryID         string    `dynamodbav:"storyId" json:"storyId"`
	UserID          string    `dynamodbav:"userId" json:"userId"`
	Username        string    `dynamodbav:"username" json:"username"`
	ProfileImageURL string    `dynamodbav:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`
	MediaURL        string    `dynamodbav:"mediaUrl" json:"mediaUrl"`
	Likes           []string  `dynamodbav:"likes,stringset,omitempty" json:"likes,omitempty"`
	Comments        []Comment `dynamodbav:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt       string    `dynamodbav:"createdAt" json:"createdAt"`
	ExpiresAt       string    `dynamodbav:"expiresAt" json:"expiresAt"`
}

// StoriesCollection is the document collection for stories
const StoriesCollection = "stories"
