package domain

import "time"

// CustomerProduct is one covered unit listed in the OSID workbook.
type CustomerProduct struct {
	Invoice    string `json:"invoice"`
	Model      string `json:"model"`
	Serial     string `json:"serial"`
	ExternalID string `json:"osid"`
}

// Customer is the claim-side view of a phone number's purchases.
type Customer struct {
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Products []CustomerProduct `json:"products"`
}

// ProductIssue is the issue text (and optional attachment) for one selected product.
type ProductIssue struct {
	Issue          string `json:"issue"`
	AttachmentName string `json:"attachment_name,omitempty"`
	Attachment     []byte `json:"attachment,omitempty"`
}

// ClaimRequest is a warranty claim submitted for one or more products. Either
// GlobalIssue is set or Issues has one entry per product.
type ClaimRequest struct {
	Mobile           string            `json:"mobile" validate:"required,len=10,numeric"`
	Address          string            `json:"address" validate:"required"`
	Products         []CustomerProduct `json:"products" validate:"required,min=1"`
	GlobalIssue      *string           `json:"global_issue,omitempty"`
	GlobalAttachment *ProductIssue     `json:"global_attachment,omitempty"`
	Issues           []ProductIssue    `json:"issues,omitempty"`
}

// ClaimResult mirrors what the claim desk shows after a submission.
type ClaimResult struct {
	ClaimID string `json:"claim_id,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TrackingRecord is the row posted to the claim tracking sheet.
type TrackingRecord struct {
	CustomerName     string `json:"customer_name"`
	MobileNo         string `json:"mobile_no"`
	Address          string `json:"address"`
	Products         string `json:"products"`
	IssueDescription string `json:"issue_description"`
	Status           string `json:"status"`
	SubmittedDate    string `json:"submitted_date"`
}

// Attachment is a file sent along with the claim email.
type Attachment struct {
	Filename string
	Content  []byte
}

// ClaimEmail is a composed notification ready for delivery.
type ClaimEmail struct {
	Subject     string
	HTMLBody    string
	Attachments []Attachment
	SubmittedAt time.Time
}

// Store is one row of the store / RBM master data.
type Store struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Region string `json:"region"`
	RBM    string `json:"rbm"`
}

// CustomerSheetRow is one line of the OSID workbook.
type CustomerSheetRow struct {
	Phone   string
	Name    string
	Invoice string
	Model   string
	Serial  string
	OSID    string
}
