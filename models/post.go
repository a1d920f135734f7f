package models

// Comment is the structurally fixed record appended to a post's or story's
// comments list. Append-only; individual comments are never edited or removed.
type Comment struct {
	UserID          string `dynamodbav:"userId" json:"userId"`
	Username        string `dynamodbav:"username,omitempty" json:"username,omitempty"`
	ProfileImageURL string `dynamodbav:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`
	Text            string `dynamodbav:"text" json:"text"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}

// Post is a published feed item. Likes is a string set of user ids; comments
// is an ordered list in insertion order.
type Post struct {
	PostID    string    `dynamodbav:"postId" json:"postId"`
	UserID    string    `dynamodbav:"userId" json:"userId"`
	Caption   string    `dynamodbav:"caption,omitempty" json:"caption,omitempty"`
	MediaURL  string    `dynamodbav:"mediaUrl" json:"mediaUrl"`
	MediaType string    `dynamodbav:"mediaType" json:"mediaType"`
	AudioURL  string    `dynamodbav:"audioUrl,omitempty" json:"audioUrl,omitempty"`
	Filter    string    `dynamodbav:"filter,omitempty" json:"filter,omitempty"`
	Likes     []string  `dynamodbav:"likes,stringset,omitempty" json:"likes,omitempty"`
	Comments  []Comment `dynamodbav:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt string    `dynamodbav:"createdAt" json:"createdAt"`
}

// Media types for posts. Reels are posts with MediaTypeVideo.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// PostsCollection is the document collection for posts
const PostsCollection = "posts"
