package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"supermock/models"
)

type stubPointsService struct {
	adminAdjust func(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error)
}

func (s *stubPointsService) GetBalance(ctx context.Context, userID string) (int, error) {
	return 0, nil
}
func (s *stubPointsService) GetTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error) {
	return nil, nil
}
func (s *stubPointsService) Spend(ctx context.Context, userID string, amount int, description string) error {
	return nil
}
func (s *stubPointsService) Refund(ctx context.Context, userID string, amount int, description string) error {
	return nil
}
func (s *stubPointsService) Grant(ctx context.Context, userID string, amount int, description string) error {
	return nil
}
func (s *stubPointsService) AdminAdjust(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
	return s.adminAdjust(ctx, userID, req)
}

func adjustRequest(t *testing.T, h *PointsHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "userId", Value: "user-1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/points/admin/user-1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AdminAdjustHandler(c)
	return w
}

func TestAdminAdjustAcceptsZeroAmountSet(t *testing.T) {
	var got models.AdminPointsRequest
	h := &PointsHandler{Service: &stubPointsService{
		adminAdjust: func(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
			got = req
			return &models.PointsAccount{UserID: userID, Balance: req.Amount}, nil
		},
	}}

	w := adjustRequest(t, h, `{"action":"set","amount":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if got.Action != models.PointsActionSet || got.Amount != 0 {
		t.Errorf("service received %+v, want set/0", got)
	}
}

func TestAdminAdjustRejectsNegativeAmount(t *testing.T) {
	h := &PointsHandler{Service: &stubPointsService{
		adminAdjust: func(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
			t.Error("service must not be called for a negative amount")
			return nil, nil
		},
	}}

	w := adjustRequest(t, h, `{"action":"add","amount":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAdminAdjustRejectsMissingAction(t *testing.T) {
	h := &PointsHandler{Service: &stubPointsService{
		adminAdjust: func(ctx context.Context, userID string, req models.AdminPointsRequest) (*models.PointsAccount, error) {
			t.Error("service must not be called without an action")
			return nil, nil
		},
	}}

	w := adjustRequest(t, h, `{"amount":3}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
