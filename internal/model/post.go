package model

import (
	"errors"
	"time"
)

// Post is a staff announcement customers can like and comment on. Wire
// shape follows the portal backend's document fields (_id, likedBy, ...).
type Post struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image,omitempty"`
	LikeCount   int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikedByUser reports whether userID is in the post's like membership.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is owned by exactly one post; PostID is a back-reference only.
type Comment struct {
	ID         string    `json:"_id"`
	PostID     string    `json:"postId"`
	AuthorName string    `json:"userName"`
	Content    string    `json:"content"`
	Sentiment  Sentiment `json:"sentiment,omitempty"`
	Replies    []Reply   `json:"replies"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Reply is owned by exactly one comment.
type Reply struct {
	ID         string    `json:"_id"`
	CommentID  string    `json:"commentId"`
	AuthorName string    `json:"userName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Sentiment is the classifier label attached to a comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment normalizes a user-supplied sentiment label.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative, "":
		return Sentiment(s), nil
	}
	return "", errors.New("unknown sentiment: " + s)
}

// ImageUpload is an attachment prepared for a multipart request.
type ImageUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// CreatePostRequest is sent as multipart(title, description, image?).
type CreatePostRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Image       *ImageUpload
}

// UpdatePostRequest mirrors CreatePostRequest for PUT /posts/{id}.
type UpdatePostRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Image       *ImageUpload
}

// Post constraints
const (
	MaxPostImageSize  = 10 * 1024 * 1024 // 10MB, matching the backend limit
	MaxPostImageWidth = 1600
	DefaultAuthorName = "Customer"
)
