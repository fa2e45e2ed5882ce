package model

import "time"

// Severity is assigned at raise-time by the backend's classifier or its
// default; the client reflects it verbatim.
type Severity string

const (
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
	SeverityUrgent   Severity = "Urgent"
)

// Status is the complaint lifecycle state. Transitions run
// Open -> In Progress -> Resolved, and any non-closed state may close.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Terminal reports whether the status accepts no further transitions.
// Replies may still be appended to a terminal complaint.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Complaint is a customer grievance about an order. Never deleted.
type Complaint struct {
	ID          string           `json:"_id"`
	OrderID     string           `json:"orderId"`
	ProductType string           `json:"productType"`
	Description string           `json:"description"`
	Severity    Severity         `json:"severity"`
	Status      Status           `json:"status"`
	AuthorName  string           `json:"userName,omitempty"`
	Replies     []ComplaintReply `json:"replies"`
	SubmittedAt time.Time        `json:"createdAt"`
}

// ComplaintReply is owned by exactly one complaint.
type ComplaintReply struct {
	ID          string    `json:"_id"`
	ComplaintID string    `json:"complaintId"`
	AuthorName  string    `json:"userName"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Pagination describes the window of complaints currently materialized.
// CurrentPage and TotalPages come from the server, never recomputed here.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// DefaultPageSize matches the portal's user complaint listing.
const DefaultPageSize = 3

// ProductTypes lists the categories a complaint can be raised against.
var ProductTypes = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Books",
	"Sports",
	"Beauty",
	"Automotive",
	"Others",
}

// RaiseComplaintRequest is the body of POST /complaints/raise.
type RaiseComplaintRequest struct {
	OrderID     string `json:"orderId" validate:"required"`
	ProductType string `json:"productType" validate:"required"`
	Description string `json:"description" validate:"required"`
}
