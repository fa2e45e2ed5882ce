package api

import (
	"context"
	"fmt"
	"net/http"

	"feedbackportal/internal/model"
	"feedbackportal/internal/transport"
)

type postAPI struct {
	client *transport.Client
}

func NewPostAPI(client *transport.Client) PostAPI {
	return &postAPI{client: client}
}

// Response envelopes. The backend wraps every payload; unwrapping happens
// here once so stores never branch on response shape.
type postsEnvelope struct {
	Posts []model.Post `json:"posts"`
}

type postEnvelope struct {
	Post model.Post `json:"post"`
}

type commentEnvelope struct {
	Comment model.Comment `json:"comment"`
}

type replyEnvelope struct {
	Reply model.Reply `json:"reply"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type createCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

type createReplyRequest struct {
	CommentID string `json:"commentId"`
	Content   string `json:"content"`
}

func (a *postAPI) List(ctx context.Context) ([]model.Post, error) {
	var env postsEnvelope
	if err := a.client.Get(ctx, "/posts", &env); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return env.Posts, nil
}

func (a *postAPI) Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	fields := map[string]string{"title": req.Title, "description": req.Description}
	var env postEnvelope
	if err := a.client.SendMultipart(ctx, http.MethodPost, "/posts/create", fields, req.Image, &env); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &env.Post, nil
}

func (a *postAPI) Update(ctx context.Context, postID string, req model.UpdatePostRequest) (*model.Post, error) {
	fields := map[string]string{"title": req.Title, "description": req.Description}
	var env postEnvelope
	if err := a.client.SendMultipart(ctx, http.MethodPut, "/posts/"+postID, fields, req.Image, &env); err != nil {
		return nil, fmt.Errorf("update post %s: %w", postID, err)
	}
	return &env.Post, nil
}

func (a *postAPI) Delete(ctx context.Context, postID string) error {
	var env messageEnvelope
	if err := a.client.Delete(ctx, "/posts/"+postID, &env); err != nil {
		return fmt.Errorf("delete post %s: %w", postID, err)
	}
	return nil
}

func (a *postAPI) Like(ctx context.Context, postID string) error {
	var env messageEnvelope
	if err := a.client.Put(ctx, "/posts/"+postID+"/like", nil, &env); err != nil {
		return fmt.Errorf("like post %s: %w", postID, err)
	}
	return nil
}

func (a *postAPI) AddComment(ctx context.Context, postID, content string) (*model.Comment, error) {
	var env commentEnvelope
	body := createCommentRequest{PostID: postID, Content: content}
	if err := a.client.Post(ctx, "/comments/create", body, &env); err != nil {
		return nil, fmt.Errorf("add comment to post %s: %w", postID, err)
	}
	return &env.Comment, nil
}

func (a *postAPI) AddReply(ctx context.Context, commentID, content string) (*model.Reply, error) {
	var env replyEnvelope
	body := createReplyRequest{CommentID: commentID, Content: content}
	if err := a.client.Post(ctx, "/comment-replies/create", body, &env); err != nil {
		return nil, fmt.Errorf("add reply to comment %s: %w", commentID, err)
	}
	return &env.Reply, nil
}
