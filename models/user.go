package models

// User is the profile document created at sign-up. The relation fields
// (followers, following, savedPosts, savedStories) are string sets mutated
// only through atomic set add/remove operations.
type User struct {
	UserID          string   `dynamodbav:"userId" json:"userId"`
	Username        string   `dynamodbav:"username" json:"username"`
	Email           string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Bio             string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	ProfileImageURL string   `dynamodbav:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`
	Followers       []string `dynamodbav:"followers,stringset,omitempty" json:"followers,omitempty"`
	Following       []string `dynamodbav:"following,stringset,omitempty" json:"following,omitempty"`
	SavedPosts      []string `dynamodbav:"savedPosts,stringset,omitempty" json:"savedPosts,omitempty"`
	SavedStories    []string `dynamodbav:"savedStories,stringset,omitempty" json:"savedStories,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersCollection is the document collection for user profiles
const UsersCollection = "users"
