package models

// Visibility values accepted by POST /social/posts.
const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
)

// Post is a feed item returned by GET /social/feed.
type Post struct {
	ID           string   `json:"id"`
	AuthorID     string   `json:"author_id,omitempty"`
	Author       string   `json:"author"`
	Content      string   `json:"content"`
	MediaURLs    []string `json:"media_urls,omitempty"`
	LikesCount   int      `json:"likes_count"`
	Visibility   string   `json:"visibility,omitempty"`
	TokensEarned int64    `json:"tokens_earned,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// CreatePostRequest is the body of POST /social/posts.
type CreatePostRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// CreatedPost is the backend's answer to POST /social/posts.
type CreatedPost struct {
	PostID       string `json:"post_id"`
	CreatedAt    string `json:"created_at"`
	TokensEarned int64  `json:"tokens_earned,omitempty"`
}
