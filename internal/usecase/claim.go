package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ttacon/libphonenumber"

	"osg-reconciler/internal/domain"
)

const (
	claimRegion        = "IN"
	defaultCustomer    = "Customer"
	claimStatusPending = "Pending"
)

// IST is the zone claim timestamps are reported in.
var IST = time.FixedZone("IST", 5*3600+30*60)

var claimEmailTemplate = template.Must(template.New("claim").Parse(`<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
<h2>Warranty Claim Submission</h2>
<p>We have received a warranty claim for the products purchased by our customer. Please find the details below:</p>
<h3>Customer Information</h3>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Mobile No:</strong> {{.Mobile}}<br>
<strong>Address:</strong> {{.Address}}</p>
<h3>Product Details &amp; Issue Description</h3>
<div style="font-family: monospace; font-size: 14px;">
{{- range $i, $p := .Products}}{{if $i}}<br><br>{{end}}
Invoice  : {{$p.Invoice}}<br>
Model    : {{$p.Model}}<br>
Serial No: {{$p.Serial}}<br>
OSID     : {{$p.ExternalID}}<br>
Issue    : {{$p.Issue}}
{{- end}}
</div>
<p><strong>Submitted:</strong> {{.Submitted}}</p>
<p>We request your team to review and process this claim at the earliest convenience.</p>
</div>`))

type claimBlock struct {
	domain.CustomerProduct
	Issue string
}

type claimView struct {
	Name      string
	Mobile    string
	Address   string
	Products  []claimBlock
	Submitted string
}

// ClaimUseCase validates a warranty claim, emails it to the claim desk and
// records it in the tracking sheet.
type ClaimUseCase struct {
	customers CustomerFinder
	notifier  Notifier
	tracker   TrackingClient
	validate  *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

func NewClaimUseCase(customers CustomerFinder, notifier Notifier, tracker TrackingClient, logger *logrus.Logger) *ClaimUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ClaimUseCase{
		customers: customers,
		notifier:  notifier,
		tracker:   tracker,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Submit processes one claim. The returned ClaimResult is always populated;
// err is non-nil whenever Success is false and wraps ErrInvalidClaim or
// ErrTrackingFailed where those apply.
func (uc *ClaimUseCase) Submit(ctx context.Context, req domain.ClaimRequest) (domain.ClaimResult, error) {
	if msg := uc.validateRequest(req); msg != "" {
		return domain.ClaimResult{Success: false, Message: msg}, fmt.Errorf("%w: %s", domain.ErrInvalidClaim, msg)
	}

	submitted := uc.now().In(IST)
	name := uc.customerName(ctx, req.Mobile)

	blocks, attachments := claimBlocks(req)
	body, err := renderClaimEmail(claimView{
		Name:      name,
		Mobile:    req.Mobile,
		Address:   req.Address,
		Products:  blocks,
		Submitted: submitted.Format("2006-01-02 15:04:05") + " IST",
	})
	if err != nil {
		return domain.ClaimResult{Success: false, Message: "Failed to compose email"}, fmt.Errorf("could not render claim email: %w", err)
	}

	email := domain.ClaimEmail{
		Subject:     "Warranty Claim Submission – " + name,
		HTMLBody:    body,
		Attachments: attachments,
		SubmittedAt: submitted,
	}
	if err := uc.notifier.Send(ctx, email); err != nil {
		uc.logger.WithError(err).WithField("products", len(blocks)).Error("claim email failed")
		return domain.ClaimResult{Success: false, Message: fmt.Sprintf("Failed to send email: %v", err)}, fmt.Errorf("could not send claim email: %w", err)
	}

	record := domain.TrackingRecord{
		CustomerName:     name,
		MobileNo:         req.Mobile,
		Address:          req.Address,
		Products:         joinInvoices(req.Products),
		IssueDescription: issueDescription(req),
		Status:           claimStatusPending,
		SubmittedDate:    submitted.Format(time.RFC3339),
	}
	if err := uc.tracker.Submit(ctx, record); err != nil {
		uc.logger.WithError(err).Error("claim tracking submission failed")
		return domain.ClaimResult{Success: false, Message: domain.ErrTrackingFailed.Error()}, fmt.Errorf("%w: %v", domain.ErrTrackingFailed, err)
	}

	claimID := uuid.New().String()
	uc.logger.WithFields(logrus.Fields{"claim_id": claimID, "products": len(req.Products)}).Info("claim processed")
	return domain.ClaimResult{ClaimID: claimID, Success: true, Message: "Claim processed successfully"}, nil
}

// ListClaims returns the records currently held by the tracking sheet.
func (uc *ClaimUseCase) ListClaims(ctx context.Context) ([]domain.TrackingRecord, error) {
	records, err := uc.tracker.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list claims: %w", err)
	}
	return records, nil
}

func (uc *ClaimUseCase) validateRequest(req domain.ClaimRequest) string {
	if err := uc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Address":
				return "Address is required"
			case "Products":
				return "At least one product must be selected"
			}
		}
		return "Invalid mobile number"
	}

	num, err := libphonenumber.Parse(req.Mobile, claimRegion)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "Invalid mobile number"
	}

	if req.GlobalIssue == nil && len(req.Issues) == 0 {
		return "Issue description required"
	}
	return ""
}

func (uc *ClaimUseCase) customerName(ctx context.Context, mobile string) string {
	customer, err := uc.customers.FindCustomerByPhone(ctx, mobile)
	if err != nil {
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			uc.logger.WithError(err).Warn("customer lookup failed, using default name")
		}
		return defaultCustomer
	}
	if customer.Name == "" {
		return defaultCustomer
	}
	return customer.Name
}

// claimBlocks pairs products with their issue text. In per-product mode a
// product without a matching issue entry is left out.
func claimBlocks(req domain.ClaimRequest) ([]claimBlock, []domain.Attachment) {
	var (
		blocks      []claimBlock
		attachments []domain.Attachment
	)
	if req.GlobalIssue != nil {
		for _, p := range req.Products {
			blocks = append(blocks, claimBlock{CustomerProduct: p, Issue: *req.GlobalIssue})
		}
		if a := req.GlobalAttachment; a != nil && len(a.Attachment) > 0 {
			attachments = append(attachments, domain.Attachment{Filename: a.AttachmentName, Content: a.Attachment})
		}
		return blocks, attachments
	}

	for i, p := range req.Products {
		if i >= len(req.Issues) {
			break
		}
		issue := req.Issues[i]
		blocks = append(blocks, claimBlock{CustomerProduct: p, Issue: issue.Issue})
		if len(issue.Attachment) > 0 {
			attachments = append(attachments, domain.Attachment{Filename: issue.AttachmentName, Content: issue.Attachment})
		}
	}
	return blocks, attachments
}

func renderClaimEmail(view claimView) (string, error) {
	var buf bytes.Buffer
	if err := claimEmailTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func joinInvoices(products []domain.CustomerProduct) string {
	invoices := make([]string, len(products))
	for i, p := range products {
		invoices[i] = p.Invoice
	}
	return strings.Join(invoices, "; ")
}

func issueDescription(req domain.ClaimRequest) string {
	if req.GlobalIssue != nil {
		return *req.GlobalIssue
	}
	issues := make([]string, len(req.Issues))
	for i, issue := range req.Issues {
		issues[i] = issue.Issue
	}
	return strings.Join(issues, " || ")
}
