package api

import (
	"context"
	"fmt"

	"feedbackportal/internal/model"
	"feedbackportal/internal/transport"
)

type complaintAPI struct {
	client *transport.Client
}

func NewComplaintAPI(client *transport.Client) ComplaintAPI {
	return &complaintAPI{client: client}
}

type complaintsEnvelope struct {
	Complaints []model.Complaint `json:"complaints"`
}

type userComplaintsEnvelope struct {
	Complaints  []model.Complaint `json:"complaints"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
}

type complaintEnvelope struct {
	Complaint model.Complaint `json:"complaint"`
}

type complaintReplyEnvelope struct {
	Reply model.ComplaintReply `json:"reply"`
}

type createComplaintReplyRequest struct {
	ComplaintID string `json:"complaintId"`
	Content     string `json:"content"`
}

func (a *complaintAPI) ListAll(ctx context.Context) ([]model.Complaint, error) {
	var env complaintsEnvelope
	if err := a.client.Get(ctx, "/complaints/all", &env); err != nil {
		return nil, fmt.Errorf("list all complaints: %w", err)
	}
	return env.Complaints, nil
}

func (a *complaintAPI) ListByUser(ctx context.Context, page, pageSize int) ([]model.Complaint, model.Pagination, error) {
	var env userComplaintsEnvelope
	path := fmt.Sprintf("/complaints/user?page=%d&limit=%d", page, pageSize)
	if err := a.client.Get(ctx, path, &env); err != nil {
		return nil, model.Pagination{}, fmt.Errorf("list user complaints: %w", err)
	}
	cursor := model.Pagination{
		CurrentPage: env.CurrentPage,
		TotalPages:  env.TotalPages,
		PageSize:    pageSize,
	}
	return env.Complaints, cursor, nil
}

func (a *complaintAPI) Raise(ctx context.Context, req model.RaiseComplaintRequest) (*model.Complaint, error) {
	var env complaintEnvelope
	if err := a.client.Post(ctx, "/complaints/raise", req, &env); err != nil {
		return nil, fmt.Errorf("raise complaint: %w", err)
	}
	return &env.Complaint, nil
}

func (a *complaintAPI) Close(ctx context.Context, complaintID string) error {
	var env messageEnvelope
	if err := a.client.Patch(ctx, "/complaints/close/"+complaintID, nil, &env); err != nil {
		return fmt.Errorf("close complaint %s: %w", complaintID, err)
	}
	return nil
}

func (a *complaintAPI) AddReply(ctx context.Context, complaintID, content string) (*model.ComplaintReply, error) {
	var env complaintReplyEnvelope
	body := createComplaintReplyRequest{ComplaintID: complaintID, Content: content}
	if err := a.client.Post(ctx, "/complaint-replies/create", body, &env); err != nil {
		return nil, fmt.Errorf("add reply to complaint %s: %w", complaintID, err)
	}
	return &env.Reply, nil
}
