package assist

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"feedbackportal/internal/api"
	"feedbackportal/internal/model"
)

// CommentReplier is the slice of the post store the orchestrator submits
// comment drafts through.
type CommentReplier interface {
	AddReply(ctx context.Context, commentID, content string) (*model.Reply, error)
}

// ComplaintReplier is the complaint store counterpart.
type ComplaintReplier interface {
	AddReply(ctx context.Context, complaintID, content string) (*model.ComplaintReply, error)
}

// Orchestrator stages suggested replies as editable drafts keyed by the
// entity they answer. Drafts never touch committed domain state until
// explicitly sent. Comment and complaint drafts live in separate maps, so
// ids drawn from a shared namespace cannot collide.
type Orchestrator struct {
	assist     api.AssistAPI
	comments   CommentReplier
	complaints ComplaintReplier

	mu              sync.Mutex
	commentDrafts   map[string]string
	complaintDrafts map[string]string
}

func NewOrchestrator(assistAPI api.AssistAPI, comments CommentReplier, complaints ComplaintReplier) *Orchestrator {
	return &Orchestrator{
		assist:          assistAPI,
		comments:        comments,
		complaints:      complaints,
		commentDrafts:   make(map[string]string),
		complaintDrafts: make(map[string]string),
	}
}

// SuggestCommentReply asks the classifier-backed service for a draft. A
// failed suggestion leaves any existing draft untouched.
func (o *Orchestrator) SuggestCommentReply(ctx context.Context, commentID string, sentiment model.Sentiment, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", model.ErrContentRequired
	}
	reply, err := o.assist.SuggestCommentReply(ctx, sentiment, description)
	if err != nil {
		log.Printf("[Assist] No suggestion for comment %s: %v", commentID, err)
		return "", fmt.Errorf("suggest comment reply: %w", err)
	}

	o.mu.Lock()
	o.commentDrafts[commentID] = reply
	o.mu.Unlock()
	return reply, nil
}

// SuggestComplaintReply is the complaint counterpart of
// SuggestCommentReply.
func (o *Orchestrator) SuggestComplaintReply(ctx context.Context, complaintID string, severity model.Severity, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", model.ErrContentRequired
	}
	reply, err := o.assist.SuggestComplaintReply(ctx, severity, description)
	if err != nil {
		log.Printf("[Assist] No suggestion for complaint %s: %v", complaintID, err)
		return "", fmt.Errorf("suggest complaint reply: %w", err)
	}

	o.mu.Lock()
	o.complaintDrafts[complaintID] = reply
	o.mu.Unlock()
	return reply, nil
}

// CommentDraft returns the staged draft for a comment, if any.
func (o *Orchestrator) CommentDraft(commentID string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	draft, ok := o.commentDrafts[commentID]
	return draft, ok
}

// SetCommentDraft stages a manually edited draft.
func (o *Orchestrator) SetCommentDraft(commentID, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.commentDrafts[commentID] = text
}

// ComplaintDraft returns the staged draft for a complaint, if any.
func (o *Orchestrator) ComplaintDraft(complaintID string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	draft, ok := o.complaintDrafts[complaintID]
	return draft, ok
}

// SetComplaintDraft stages a manually edited draft.
func (o *Orchestrator) SetComplaintDraft(complaintID, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.complaintDrafts[complaintID] = text
}

// SendCommentReply submits the staged draft through the post store and
// clears it on success only.
func (o *Orchestrator) SendCommentReply(ctx context.Context, commentID string) error {
	o.mu.Lock()
	draft := o.commentDrafts[commentID]
	o.mu.Unlock()
	if strings.TrimSpace(draft) == "" {
		return model.ErrContentRequired
	}

	if _, err := o.comments.AddReply(ctx, commentID, draft); err != nil {
		return err
	}

	o.mu.Lock()
	delete(o.commentDrafts, commentID)
	o.mu.Unlock()
	return nil
}

// SendComplaintReply submits the staged draft through the complaint store
// and clears it on success only.
func (o *Orchestrator) SendComplaintReply(ctx context.Context, complaintID string) error {
	o.mu.Lock()
	draft := o.complaintDrafts[complaintID]
	o.mu.Unlock()
	if strings.TrimSpace(draft) == "" {
		return model.ErrContentRequired
	}

	if _, err := o.complaints.AddReply(ctx, complaintID, draft); err != nil {
		return err
	}

	o.mu.Lock()
	delete(o.complaintDrafts, complaintID)
	o.mu.Unlock()
	return nil
}
