package api

import (
	"context"

	"feedbackportal/internal/model"
)

// PostAPI maps the post, comment, and comment-reply endpoints. Pure
// request/response mapping: no local state, every response normalized to
// one fixed DTO shape.
type PostAPI interface {
	List(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, postID string, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, postID string) error
	Like(ctx context.Context, postID string) error
	AddComment(ctx context.Context, postID, content string) (*model.Comment, error)
	AddReply(ctx context.Context, commentID, content string) (*model.Reply, error)
}

// ComplaintAPI maps the complaint endpoints.
type ComplaintAPI interface {
	ListAll(ctx context.Context) ([]model.Complaint, error)
	ListByUser(ctx context.Context, page, pageSize int) ([]model.Complaint, model.Pagination, error)
	Raise(ctx context.Context, req model.RaiseComplaintRequest) (*model.Complaint, error)
	Close(ctx context.Context, complaintID string) error
	AddReply(ctx context.Context, complaintID, content string) (*model.ComplaintReply, error)
}

// AssistAPI maps the suggestion endpoints. Failures surface as errors;
// degrading to "no suggestion" is the orchestrator's job.
type AssistAPI interface {
	SuggestCommentReply(ctx context.Context, sentiment model.Sentiment, description string) (string, error)
	SuggestComplaintReply(ctx context.Context, severity model.Severity, description string) (string, error)
}
