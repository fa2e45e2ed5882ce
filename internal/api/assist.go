package api

import (
	"context"
	"fmt"

	"feedbackportal/internal/model"
	"feedbackportal/internal/transport"
)

type assistAPI struct {
	client *transport.Client
}

func NewAssistAPI(client *transport.Client) AssistAPI {
	return &assistAPI{client: client}
}

type suggestionEnvelope struct {
	Reply string `json:"reply"`
}

type suggestCommentReplyRequest struct {
	Sentiment   model.Sentiment `json:"sentiment"`
	Description string          `json:"description"`
}

type suggestComplaintReplyRequest struct {
	Severity    model.Severity `json:"severity"`
	Description string         `json:"description"`
}

func (a *assistAPI) SuggestCommentReply(ctx context.Context, sentiment model.Sentiment, description string) (string, error) {
	var env suggestionEnvelope
	body := suggestCommentReplyRequest{Sentiment: sentiment, Description: description}
	if err := a.client.Post(ctx, "/ai/suggestCommentReply", body, &env); err != nil {
		return "", fmt.Errorf("suggest comment reply: %w", err)
	}
	return env.Reply, nil
}

func (a *assistAPI) SuggestComplaintReply(ctx context.Context, severity model.Severity, description string) (string, error) {
	var env suggestionEnvelope
	body := suggestComplaintReplyRequest{Severity: severity, Description: description}
	if err := a.client.Post(ctx, "/ai/suggestComplaintReply", body, &env); err != nil {
		return "", fmt.Errorf("suggest complaint reply: %w", err)
	}
	return env.Reply, nil
}
