package service

import (
	"context"
	"regexp"
	"strconv"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"ordertrack/internal/ai"
	"ordertrack/internal/models"
)

const (
	ActionSkipped = "skipped"
	ActionFailed  = "failed"
	ActionCreated = "created"
	ActionUpdated = "updated"
)

type WebhookEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from"`
	Snippet string `json:"snippet"`
}

type WebhookResult struct {
	Action         string
	Message        string
	Order          *models.Order
	Classification ai.Classification
	Extraction     *ai.Extraction
}

// Model output writes prices like "AED 1,299.00"; keep only digits, dots and
// a leading minus before parsing.
var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(raw, ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

func itemInputs(items []ai.ExtractedItem) []models.OrderItemInput {
	out := make([]models.OrderItemInput, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		out = append(out, models.OrderItemInput{
			ItemName: it.ItemName,
			Quantity: &qty,
			Price:    parsePrice(it.Price),
			Currency: it.Currency,
		})
	}
	return out
}

// ProcessEmail runs the ingestion pipeline: classify, extract, then upsert
// keyed on the extracted order number. Negative classification and failed
// extraction are valid outcomes, not errors.
func (s *Service) ProcessEmail(ctx context.Context, email WebhookEmail) (WebhookResult, error) {
	content := email.Body
	if content == "" {
		content = email.Snippet
	}
	if content == "" {
		return WebhookResult{}, ErrMissingContent
	}

	if email.From != "" {
		logrus.WithField("from", email.From).Print("processing email webhook")
	}

	cls := s.analyzer.ClassifyEmail(ctx, email.Subject, content)
	if !cls.IsOrderEmail {
		return WebhookResult{
			Action:         ActionSkipped,
			Message:        "Email is not order-related",
			Classification: cls,
		}, nil
	}

	ext := s.analyzer.ExtractOrderData(ctx, email.Subject, content)
	if !ext.ExtractionSuccess {
		return WebhookResult{
			Action:         ActionFailed,
			Message:        "Failed to extract order data",
			Classification: cls,
			Extraction:     &ext,
		}, nil
	}

	// The order number is the idempotency key; extraction without one is
	// useless.
	if ext.OrderNumber == "" {
		return WebhookResult{}, ErrNoOrderNumber
	}

	existing, err := s.OrderStore.GetByNumber(ext.OrderNumber)
	switch {
	case gorm.IsRecordNotFoundError(err):
		ord, cerr := s.createFromExtraction(ext)
		if cerr != nil {
			return WebhookResult{}, cerr
		}
		return WebhookResult{
			Action:         ActionCreated,
			Message:        "Order created successfully",
			Order:          &ord,
			Classification: cls,
			Extraction:     &ext,
		}, nil
	case err != nil:
		return WebhookResult{}, err
	default:
		ord, uerr := s.updateFromExtraction(existing, ext)
		if uerr != nil {
			return WebhookResult{}, uerr
		}
		return WebhookResult{
			Action:         ActionUpdated,
			Message:        "Order updated successfully",
			Order:          &ord,
			Classification: cls,
			Extraction:     &ext,
		}, nil
	}
}

func (s *Service) createFromExtraction(ext ai.Extraction) (models.Order, error) {
	vendor := ext.Vendor
	if vendor == "" {
		vendor = "Unknown"
	}
	customer := ext.CustomerName
	if customer == "" {
		customer = "Unknown"
	}
	status := ext.OrderStatus
	if status == "" {
		status = models.DefaultStatus
	}

	ord := models.Order{
		ID:           newID(),
		OrderNumber:  ext.OrderNumber,
		Vendor:       vendor,
		CustomerName: customer,
		Status:       status,
		Items:        buildItems(itemInputs(ext.Items)),
	}
	if ext.DeliveryInfo != nil {
		ord.Location = ext.DeliveryInfo.Location
		ord.ExpectedDate = ext.DeliveryInfo.ExpectedDate
	}

	if err := s.OrderStore.Create(&ord); err != nil {
		return models.Order{}, err
	}
	return s.OrderStore.GetByID(ord.ID)
}

// updateFromExtraction overwrites only the fields the model actually
// supplied; anything empty keeps the stored value.
func (s *Service) updateFromExtraction(existing models.Order, ext ai.Extraction) (models.Order, error) {
	if ext.Vendor != "" {
		existing.Vendor = ext.Vendor
	}
	if ext.CustomerName != "" {
		existing.CustomerName = ext.CustomerName
	}
	if ext.OrderStatus != "" {
		existing.Status = ext.OrderStatus
	}
	if ext.DeliveryInfo != nil {
		if ext.DeliveryInfo.Location != "" {
			existing.Location = ext.DeliveryInfo.Location
		}
		if ext.DeliveryInfo.ExpectedDate != "" {
			existing.ExpectedDate = ext.DeliveryInfo.ExpectedDate
		}
	}

	replaceItems := len(ext.Items) > 0
	if replaceItems {
		existing.Items = buildItems(itemInputs(ext.Items))
	}

	if err := s.OrderStore.Save(existing, replaceItems); err != nil {
		return models.Order{}, err
	}
	return s.OrderStore.GetByID(existing.ID)
}
