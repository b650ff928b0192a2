package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ordertrack/internal/ai"
	"ordertrack/internal/models"
	"ordertrack/internal/repository"
	"ordertrack/internal/repository/sqlite"
	"ordertrack/internal/service"
)

type analyzerStub struct {
	classify func(subject, body string) ai.Classification
	extract  func(subject, body string) ai.Extraction
}

var _ service.EmailAnalyzer = (*analyzerStub)(nil)

func (a *analyzerStub) ClassifyEmail(_ context.Context, subject, body string) ai.Classification {
	if a.classify != nil {
		return a.classify(subject, body)
	}
	return ai.Classification{IsOrderEmail: true, Confidence: "High"}
}

func (a *analyzerStub) ExtractOrderData(_ context.Context, subject, body string) ai.Extraction {
	if a.extract != nil {
		return a.extract(subject, body)
	}
	return ai.Extraction{ExtractionSuccess: false, Error: "not implemented", Confidence: "Low"}
}

func upService(t *testing.T) (*service.Service, *analyzerStub) {
	t.Helper()

	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.InitSchema(db))

	stub := &analyzerStub{}
	return service.NewService(repository.NewRepository(db), stub), stub
}

func intPtr(v int) *int         { return &v }
func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func Test_CreateOrder_AppliesDefaults(t *testing.T) {
	svc, _ := upService(t)

	ord, err := svc.CreateOrder(models.OrderInput{
		OrderNumber: "ORD-1",
		Items: []models.OrderItemInput{
			{ItemName: "charger"},
			{ItemName: "cable", Quantity: intPtr(3), Currency: "USD", Price: f64Ptr(12.5)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, ord.ID)
	require.Equal(t, "Ordered", ord.Status)
	require.Len(t, ord.Items, 2)
	require.Equal(t, 1, ord.Items[0].Quantity)
	require.Equal(t, "AED", ord.Items[0].Currency)
	require.Equal(t, 3, ord.Items[1].Quantity)
	require.Equal(t, "USD", ord.Items[1].Currency)

	got, err := svc.GetOrder(ord.ID)
	require.NoError(t, err)
	require.Equal(t, "ORD-1", got.OrderNumber)

	byNumber, err := svc.FindOrderByNumber("ORD-1")
	require.NoError(t, err)
	require.Equal(t, ord.ID, byNumber.ID)
}

func Test_CreateOrder_MissingNumber_Validation(t *testing.T) {
	svc, _ := upService(t)

	_, err := svc.CreateOrder(models.OrderInput{Vendor: "Amazon"})
	require.ErrorIs(t, err, service.ErrValidation)
}

func Test_CreateOrder_DuplicateNumber_Conflict(t *testing.T) {
	svc, _ := upService(t)

	first, err := svc.CreateOrder(models.OrderInput{OrderNumber: "ORD-1", Vendor: "Amazon"})
	require.NoError(t, err)

	_, err = svc.CreateOrder(models.OrderInput{OrderNumber: "ORD-1", Vendor: "Noon"})
	require.ErrorIs(t, err, service.ErrConflict)

	got, err := svc.GetOrder(first.ID)
	require.NoError(t, err)
	require.Equal(t, "Amazon", got.Vendor)
}

func Test_UpdateOrder_EmptyPatch_KeepsFields(t *testing.T) {
	svc, _ := upService(t)

	ord, err := svc.CreateOrder(models.OrderInput{
		OrderNumber:  "ORD-1",
		Vendor:       "Amazon",
		CustomerName: "Sara",
		Status:       "Shipped",
		Location:     "Dubai",
		ExpectedDate: "Wednesday",
		Notes:        "fragile",
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	got, err := svc.UpdateOrder(ord.ID, models.OrderPatch{})
	require.NoError(t, err)
	require.Equal(t, ord.OrderNumber, got.OrderNumber)
	require.Equal(t, ord.Vendor, got.Vendor)
	require.Equal(t, ord.CustomerName, got.CustomerName)
	require.Equal(t, ord.Status, got.Status)
	require.Equal(t, ord.Location, got.Location)
	require.Equal(t, ord.ExpectedDate, got.ExpectedDate)
	require.Equal(t, ord.Notes, got.Notes)
	require.True(t, got.UpdatedAt.After(ord.UpdatedAt))
}

func Test_UpdateOrder_ItemsReplacedWholesale(t *testing.T) {
	svc, _ := upService(t)

	ord, err := svc.CreateOrder(models.OrderInput{
		OrderNumber: "ORD-1",
		Items: []models.OrderItemInput{
			{ItemName: "charger"},
			{ItemName: "cable"},
		},
	})
	require.NoError(t, err)

	got, err := svc.UpdateOrder(ord.ID, models.OrderPatch{
		Status: strPtr("Delivered"),
		Items:  &[]models.OrderItemInput{{ItemName: "headphones", Quantity: intPtr(2)}},
	})
	require.NoError(t, err)
	require.Equal(t, "Delivered", got.Status)
	require.Len(t, got.Items, 1)
	require.Equal(t, "headphones", got.Items[0].ItemName)

	// A patch without items leaves the set alone.
	got, err = svc.UpdateOrder(ord.ID, models.OrderPatch{Notes: strPtr("updated")})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
}

func Test_UpdateOrder_Missing_NotFound(t *testing.T) {
	svc, _ := upService(t)
	_, err := svc.UpdateOrder("no-such-id", models.OrderPatch{})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func Test_DeleteOrder(t *testing.T) {
	svc, _ := upService(t)

	ord, err := svc.CreateOrder(models.OrderInput{OrderNumber: "ORD-1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ord.ID))
	_, err = svc.GetOrder(ord.ID)
	require.ErrorIs(t, err, service.ErrNotFound)

	require.ErrorIs(t, svc.DeleteOrder(ord.ID), service.ErrNotFound)
}

func Test_Settings_ListRoundTrip(t *testing.T) {
	svc, _ := upService(t)

	require.NoError(t, svc.SetStringList("vendors", []interface{}{"A", "B"}))

	list, err := svc.GetStringList("vendors")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, list)
}

func Test_Settings_ListRejectsNonArray(t *testing.T) {
	svc, _ := upService(t)

	err := svc.SetStringList("vendors", "not-a-list")
	require.ErrorIs(t, err, service.ErrNotArray)

	err = svc.SetStringList("statuses", map[string]interface{}{"a": 1})
	require.ErrorIs(t, err, service.ErrNotArray)
}

func Test_Settings_SeededDefaultsVisible(t *testing.T) {
	svc, _ := upService(t)

	statuses, err := svc.GetStringList("statuses")
	require.NoError(t, err)
	require.Equal(t, []string{"Ordered", "Shipped", "Out for Delivery", "Delivered"}, statuses)

	all, err := svc.GetAllSettings()
	require.NoError(t, err)
	require.Contains(t, all, "vendors")
	require.Contains(t, all, "statuses")
}

func Test_Settings_OpaqueKey(t *testing.T) {
	svc, _ := upService(t)

	require.NoError(t, svc.SetSetting("notify", map[string]interface{}{"email": true}))
	v, err := svc.GetSetting("notify")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"email": true}, v)

	require.NoError(t, svc.SetSetting("plain", "raw-string"))
	v, err = svc.GetSetting("plain")
	require.NoError(t, err)
	require.Equal(t, "raw-string", v)

	_, err = svc.GetSetting("missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func Test_Stats_ThroughService(t *testing.T) {
	svc, _ := upService(t)

	_, err := svc.CreateOrder(models.OrderInput{OrderNumber: "ORD-1", Status: "Delivered"})
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalOrders)
	require.Equal(t, 0, stats.PendingDelivery)
	require.Equal(t, 1, stats.DeliveredThisMonth)
}
