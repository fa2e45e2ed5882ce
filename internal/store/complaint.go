package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"feedbackportal/internal/api"
	"feedbackportal/internal/model"
)

// ComplaintStore owns the in-memory, paginated complaint window. The full
// complaint set is never held client-side; the pagination cursor is taken
// from the server verbatim.
type ComplaintStore struct {
	api   api.ComplaintAPI
	admin bool

	mu         sync.Mutex
	complaints []model.Complaint
	page       model.Pagination
}

func NewComplaintStore(complaintAPI api.ComplaintAPI, admin bool, pageSize int) *ComplaintStore {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	return &ComplaintStore{
		api:   complaintAPI,
		admin: admin,
		page:  model.Pagination{CurrentPage: 1, TotalPages: 1, PageSize: pageSize},
	}
}

// Load fetches the requested page. Admin mode uses the unpaginated
// listing and ignores the page argument.
func (s *ComplaintStore) Load(ctx context.Context, page int) error {
	if page <= 0 {
		page = 1
	}

	if s.admin {
		complaints, err := s.api.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("load complaints: %w", err)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.complaints = complaints
		s.page = model.Pagination{CurrentPage: 1, TotalPages: 1, PageSize: s.page.PageSize}
		log.Printf("[ComplaintStore] Loaded %d complaints (admin)", len(complaints))
		return nil
	}

	complaints, cursor, err := s.api.ListByUser(ctx, page, s.page.PageSize)
	if err != nil {
		return fmt.Errorf("load complaints: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints = complaints
	s.page = cursor
	log.Printf("[ComplaintStore] Loaded page %d/%d (%d complaints)", cursor.CurrentPage, cursor.TotalPages, len(complaints))
	return nil
}

// Complaints returns a snapshot of the current window.
func (s *ComplaintStore) Complaints() []model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out
}

// Page returns the current pagination cursor.
func (s *ComplaintStore) Page() model.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Raise submits the complaint and reloads the current page instead of
// inserting locally, so the server-assigned severity and status are
// reflected verbatim.
func (s *ComplaintStore) Raise(ctx context.Context, req model.RaiseComplaintRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.api.Raise(ctx, req); err != nil {
		return fmt.Errorf("raise complaint: %w", err)
	}
	log.Printf("[ComplaintStore] Raised complaint for order %s", req.OrderID)
	return s.Load(ctx, s.Page().CurrentPage)
}

// Close rejects terminal complaints without touching the network, then
// reloads the current page on success.
func (s *ComplaintStore) Close(ctx context.Context, complaintID string) error {
	s.mu.Lock()
	idx := s.findLocked(complaintID)
	if idx < 0 {
		s.mu.Unlock()
		return model.ErrComplaintNotFound
	}
	if s.complaints[idx].Status.Terminal() {
		s.mu.Unlock()
		return model.ErrComplaintTerminal
	}
	page := s.page.CurrentPage
	s.mu.Unlock()

	if err := s.api.Close(ctx, complaintID); err != nil {
		return fmt.Errorf("close complaint: %w", err)
	}
	log.Printf("[ComplaintStore] Closed complaint %s", complaintID)
	return s.Load(ctx, page)
}

// AddReply appends through a reload rather than a local insert. Admin
// triage reloads the first page, users stay on their current page.
func (s *ComplaintStore) AddReply(ctx context.Context, complaintID, content string) (*model.ComplaintReply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrContentRequired
	}

	s.mu.Lock()
	if s.findLocked(complaintID) < 0 {
		s.mu.Unlock()
		return nil, model.ErrComplaintNotFound
	}
	page := s.page.CurrentPage
	if s.admin {
		page = 1
	}
	s.mu.Unlock()

	reply, err := s.api.AddReply(ctx, complaintID, content)
	if err != nil {
		return nil, fmt.Errorf("add complaint reply: %w", err)
	}
	if err := s.Load(ctx, page); err != nil {
		return reply, err
	}
	return reply, nil
}

func (s *ComplaintStore) findLocked(complaintID string) int {
	for i := range s.complaints {
		if s.complaints[i].ID == complaintID {
			return i
		}
	}
	return -1
}
