package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "ordertrack/internal/delivery/http"
	"ordertrack/internal/models"
	"ordertrack/internal/service"
)

type svcStub struct {
	listOrders  func(f models.OrderFilter) ([]models.Order, int, error)
	getOrder    func(id string) (models.Order, error)
	findByNum   func(number string) (models.Order, error)
	createOrder func(in models.OrderInput) (models.Order, error)
	updateOrder func(id string, patch models.OrderPatch) (models.Order, error)
	deleteOrder func(id string) error

	getAllSettings func() (map[string]interface{}, error)
	getSetting     func(key string) (interface{}, error)
	setSetting     func(key string, value interface{}) error
	getStringList  func(key string) ([]string, error)
	setStringList  func(key string, value interface{}) error

	getStats func() (models.Stats, error)

	processEmail func(ctx context.Context, email service.WebhookEmail) (service.WebhookResult, error)
}

var _ service.OrderTracker = (*svcStub)(nil)

func (s *svcStub) ListOrders(f models.OrderFilter) ([]models.Order, int, error) {
	if s.listOrders != nil {
		return s.listOrders(f)
	}
	return []models.Order{}, 0, nil
}
func (s *svcStub) GetOrder(id string) (models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(id)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) FindOrderByNumber(number string) (models.Order, error) {
	if s.findByNum != nil {
		return s.findByNum(number)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) CreateOrder(in models.OrderInput) (models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(in)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}
func (s *svcStub) UpdateOrder(id string, patch models.OrderPatch) (models.Order, error) {
	if s.updateOrder != nil {
		return s.updateOrder(id, patch)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) DeleteOrder(id string) error {
	if s.deleteOrder != nil {
		return s.deleteOrder(id)
	}
	return service.ErrNotFound
}
func (s *svcStub) GetAllSettings() (map[string]interface{}, error) {
	if s.getAllSettings != nil {
		return s.getAllSettings()
	}
	return map[string]interface{}{}, nil
}
func (s *svcStub) GetSetting(key string) (interface{}, error) {
	if s.getSetting != nil {
		return s.getSetting(key)
	}
	return nil, service.ErrNotFound
}
func (s *svcStub) SetSetting(key string, value interface{}) error {
	if s.setSetting != nil {
		return s.setSetting(key, value)
	}
	return nil
}
func (s *svcStub) GetStringList(key string) ([]string, error) {
	if s.getStringList != nil {
		return s.getStringList(key)
	}
	return []string{}, nil
}
func (s *svcStub) SetStringList(key string, value interface{}) error {
	if s.setStringList != nil {
		return s.setStringList(key, value)
	}
	return nil
}
func (s *svcStub) GetStats() (models.Stats, error) {
	if s.getStats != nil {
		return s.getStats()
	}
	return models.Stats{}, nil
}
func (s *svcStub) ProcessEmail(ctx context.Context, email service.WebhookEmail) (service.WebhookResult, error) {
	if s.processEmail != nil {
		return s.processEmail(ctx, email)
	}
	return service.WebhookResult{}, fmt.Errorf("not implemented")
}

func perform(s service.OrderTracker, method, target, body string) *httptest.ResponseRecorder {
	h := httpdelivery.NewHandler(s, "")
	r := h.InitRoutes()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_ListOrders_PassesFilterAndRespondsWithTotal(t *testing.T) {
	var got models.OrderFilter
	s := &svcStub{
		listOrders: func(f models.OrderFilter) ([]models.Order, int, error) {
			got = f
			return []models.Order{{ID: "id-1", OrderNumber: "ORD-1", Items: []models.OrderItem{}}}, 23, nil
		},
	}

	w := perform(s, http.MethodGet, "/api/orders?status=Shipped&vendor=Noon&search=ORD&limit=10&offset=20", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Shipped", got.Status)
	require.Equal(t, "Noon", got.Vendor)
	require.Equal(t, "ORD", got.Search)
	require.Equal(t, 10, got.Limit)
	require.Equal(t, 20, got.Offset)
	require.Contains(t, w.Body.String(), `"total":23`)
	require.Contains(t, w.Body.String(), `"order_number":"ORD-1"`)
}

func Test_GetOrder_NotFound_404(t *testing.T) {
	w := perform(&svcStub{}, http.MethodGet, "/api/orders/no-such-id", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Order not found")
}

func Test_SearchOrderByNumber_OK(t *testing.T) {
	s := &svcStub{
		findByNum: func(number string) (models.Order, error) {
			require.Equal(t, "ORD-1", number)
			return models.Order{ID: "id-1", OrderNumber: number}, nil
		},
	}
	w := perform(s, http.MethodGet, "/api/orders/search/ORD-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"id-1"`)
}

func Test_CreateOrder_Created_201(t *testing.T) {
	s := &svcStub{
		createOrder: func(in models.OrderInput) (models.Order, error) {
			require.Equal(t, "ORD-1", in.OrderNumber)
			require.Len(t, in.Items, 1)
			return models.Order{ID: "id-1", OrderNumber: in.OrderNumber, Status: "Ordered"}, nil
		},
	}
	w := perform(s, http.MethodPost, "/api/orders",
		`{"order_number":"ORD-1","items":[{"item_name":"charger"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"Ordered"`)
}

func Test_CreateOrder_Duplicate_400(t *testing.T) {
	s := &svcStub{
		createOrder: func(models.OrderInput) (models.Order, error) {
			return models.Order{}, service.ErrConflict
		},
	}
	w := perform(s, http.MethodPost, "/api/orders", `{"order_number":"ORD-1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Order number already exists")
}

func Test_CreateOrder_InvalidBody_400(t *testing.T) {
	w := perform(&svcStub{}, http.MethodPost, "/api/orders", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_UpdateOrder_PatchPassesNilsThrough(t *testing.T) {
	var got models.OrderPatch
	s := &svcStub{
		updateOrder: func(id string, patch models.OrderPatch) (models.Order, error) {
			got = patch
			return models.Order{ID: id, Status: *patch.Status}, nil
		},
	}
	w := perform(s, http.MethodPut, "/api/orders/id-1", `{"status":"Delivered"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Status)
	require.Nil(t, got.Vendor)
	require.Nil(t, got.Items)
}

func Test_UpdateOrder_NotFound_404(t *testing.T) {
	w := perform(&svcStub{}, http.MethodPut, "/api/orders/no-such-id", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_DeleteOrder_OK(t *testing.T) {
	s := &svcStub{deleteOrder: func(id string) error { return nil }}
	w := perform(s, http.MethodDelete, "/api/orders/id-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Order deleted successfully")
}

func Test_Settings_GetAll(t *testing.T) {
	s := &svcStub{
		getAllSettings: func() (map[string]interface{}, error) {
			return map[string]interface{}{"vendors": []string{"A"}}, nil
		},
	}
	w := perform(s, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"vendors":["A"]`)
}

func Test_Settings_VendorsShape(t *testing.T) {
	s := &svcStub{
		getStringList: func(key string) ([]string, error) {
			require.Equal(t, "vendors", key)
			return []string{"Amazon", "Noon"}, nil
		},
	}
	w := perform(s, http.MethodGet, "/api/settings/vendors", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"vendors":["Amazon","Noon"]`)
}

func Test_Settings_PutVendors_NotArray_400(t *testing.T) {
	s := &svcStub{
		setStringList: func(string, interface{}) error { return service.ErrNotArray },
	}
	w := perform(s, http.MethodPut, "/api/settings/vendors", `{"vendors":"oops"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "must be an array")
}

func Test_Settings_PutGenericKey(t *testing.T) {
	var gotKey string
	var gotValue interface{}
	s := &svcStub{
		setSetting: func(key string, value interface{}) error {
			gotKey, gotValue = key, value
			return nil
		},
	}
	w := perform(s, http.MethodPut, "/api/settings/theme", `{"value":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "theme", gotKey)
	require.Equal(t, "dark", gotValue)
}

func Test_Settings_GetMissingKey_404(t *testing.T) {
	w := perform(&svcStub{}, http.MethodGet, "/api/settings/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_Stats_OK(t *testing.T) {
	s := &svcStub{
		getStats: func() (models.Stats, error) {
			return models.Stats{TotalOrders: 7, PendingDelivery: 3}, nil
		},
	}
	w := perform(s, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalOrders":7`)
	require.Contains(t, w.Body.String(), `"pendingDelivery":3`)
}

func Test_Webhook_Skipped_200(t *testing.T) {
	s := &svcStub{
		processEmail: func(_ context.Context, email service.WebhookEmail) (service.WebhookResult, error) {
			return service.WebhookResult{
				Action:  service.ActionSkipped,
				Message: "Email is not order-related",
			}, nil
		},
	}
	w := perform(s, http.MethodPost, "/api/webhooks/order", `{"subject":"sale","body":"buy now"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"action":"skipped"`)
}

func Test_Webhook_Created_201(t *testing.T) {
	s := &svcStub{
		processEmail: func(_ context.Context, email service.WebhookEmail) (service.WebhookResult, error) {
			return service.WebhookResult{
				Action:  service.ActionCreated,
				Message: "Order created successfully",
				Order:   &models.Order{ID: "id-1", OrderNumber: "ORD-1"},
			}, nil
		},
	}
	w := perform(s, http.MethodPost, "/api/webhooks/order", `{"subject":"shipped","body":"order ORD-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"action":"created"`)
	require.Contains(t, w.Body.String(), `"order_number":"ORD-1"`)
}

func Test_Webhook_MissingContent_400(t *testing.T) {
	s := &svcStub{
		processEmail: func(_ context.Context, _ service.WebhookEmail) (service.WebhookResult, error) {
			return service.WebhookResult{}, service.ErrMissingContent
		},
	}
	w := perform(s, http.MethodPost, "/api/webhooks/order", `{"subject":"empty"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing email content")
}

func Test_Webhook_InternalError_500(t *testing.T) {
	s := &svcStub{
		processEmail: func(_ context.Context, _ service.WebhookEmail) (service.WebhookResult, error) {
			return service.WebhookResult{}, fmt.Errorf("disk full")
		},
	}
	w := perform(s, http.MethodPost, "/api/webhooks/order", `{"body":"x"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "disk full")
}

func Test_Health_OK(t *testing.T) {
	w := perform(&svcStub{}, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
	require.Contains(t, w.Body.String(), "timestamp")
}

func Test_NoRoute_APIPath_404JSON(t *testing.T) {
	w := perform(&svcStub{}, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not found")
}

func Test_NoRoute_ClientPath_ServesIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte("<html>spa</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))

	h := httpdelivery.NewHandler(&svcStub{}, dir)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/some-client-route", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "spa")
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
