package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"ordertrack/internal/models"
	"ordertrack/internal/repository/sqlite"
)

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func buildItems(inputs []models.OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		qty := 1
		if in.Quantity != nil && *in.Quantity > 0 {
			qty = *in.Quantity
		}
		currency := in.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		items = append(items, models.OrderItem{
			ID:       newID(),
			ItemName: in.ItemName,
			Quantity: qty,
			Price:    in.Price,
			Currency: currency,
		})
	}
	return items
}

func (s *Service) ListOrders(f models.OrderFilter) ([]models.Order, int, error) {
	return s.OrderStore.List(f)
}

func (s *Service) GetOrder(id string) (models.Order, error) {
	ord, err := s.OrderStore.GetByID(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return ord, err
}

func (s *Service) FindOrderByNumber(number string) (models.Order, error) {
	ord, err := s.OrderStore.GetByNumber(number)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return ord, err
}

func (s *Service) CreateOrder(in models.OrderInput) (models.Order, error) {
	if err := s.v.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return models.Order{}, errors.Wrap(ErrValidation, humanizeValidationErrors(verrs))
		}
		return models.Order{}, errors.Wrap(ErrValidation, err.Error())
	}

	status := in.Status
	if status == "" {
		status = models.DefaultStatus
	}

	ord := models.Order{
		ID:           newID(),
		OrderNumber:  in.OrderNumber,
		Vendor:       in.Vendor,
		CustomerName: in.CustomerName,
		Status:       status,
		Location:     in.Location,
		ExpectedDate: in.ExpectedDate,
		Notes:        in.Notes,
		Items:        buildItems(in.Items),
	}

	if err := s.OrderStore.Create(&ord); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return models.Order{}, ErrConflict
		}
		return models.Order{}, err
	}
	return ord, nil
}

// UpdateOrder applies a partial update: every field the patch leaves nil
// keeps its stored value, and the item set is only touched when the patch
// carries one.
func (s *Service) UpdateOrder(id string, patch models.OrderPatch) (models.Order, error) {
	existing, err := s.OrderStore.GetByID(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if patch.OrderNumber != nil {
		existing.OrderNumber = *patch.OrderNumber
	}
	if patch.Vendor != nil {
		existing.Vendor = *patch.Vendor
	}
	if patch.CustomerName != nil {
		existing.CustomerName = *patch.CustomerName
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.Location != nil {
		existing.Location = *patch.Location
	}
	if patch.ExpectedDate != nil {
		existing.ExpectedDate = *patch.ExpectedDate
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}

	replaceItems := patch.Items != nil
	if replaceItems {
		existing.Items = buildItems(*patch.Items)
	}

	if err := s.OrderStore.Save(existing, replaceItems); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return models.Order{}, ErrConflict
		}
		return models.Order{}, err
	}
	return s.OrderStore.GetByID(id)
}

func (s *Service) DeleteOrder(id string) error {
	err := s.OrderStore.Delete(id)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}
