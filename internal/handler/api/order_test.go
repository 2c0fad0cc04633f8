//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordering-service/internal/handler/api"
	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/usecase/commands"
	"ordering-service/internal/usecase/queries"
	commandsmock "ordering-service/tests/mock/commands"
	queriesmock "ordering-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	buyerID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.buyerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.buyerID)
		c.Set("user_name", "ada")
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Create)
	s.router.GET("/orders", authMiddleware, s.handler.ListMine)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
	s.router.POST("/orders/:id/pay", authMiddleware, s.handler.Pay)
	s.router.POST("/orders/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/orders/:id/ship", authMiddleware, s.handler.Ship)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

const validCreateBody = `{
	"street": "15 Market St",
	"city": "Seattle",
	"state": "WA",
	"country": "USA",
	"zip_code": "98052",
	"card_type_id": 1,
	"card_number": "4012888888881881",
	"card_holder": "Ada Lovelace",
	"card_expiration": "2030-01-01T00:00:00Z",
	"items": [
		{"product_id": "7e2d9f6a-3b1c-4a8e-9f2d-6c5b4a3e2d1f", "product_name": "Cup", "unit_price_cents": 1000, "units": 2}
	]
}`

func (s *OrderHandlerTestSuite) doRequest(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *OrderHandlerTestSuite) authHeaders() map[string]string {
	return map[string]string{
		"Authorization":   "Bearer test-token",
		"Idempotency-Key": uuid.NewString(),
	}
}

func (s *OrderHandlerTestSuite) TestCreate_Success() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&commands.Result{OrderID: orderID}, nil)

	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, s.authHeaders())

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Require().Contains(rec.Body.String(), orderID.String())
	s.Require().Contains(rec.Body.String(), `"duplicate":false`)
}

func (s *OrderHandlerTestSuite) TestCreate_MasksCardNumber() {
	s.mockCommands.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, cmd commands.CreateOrderCommand) (*commands.Result, error) {
			s.Require().Equal("401*************", cmd.CardNumber)
			s.Require().Equal(s.buyerID, cmd.BuyerID)
			return &commands.Result{OrderID: uuid.New()}, nil
		})

	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, s.authHeaders())

	s.Require().Equal(http.StatusCreated, rec.Code)
}

func (s *OrderHandlerTestSuite) TestCreate_DuplicateReplaysWithOK() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&commands.Result{OrderID: orderID, Duplicate: true}, nil)

	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, s.authHeaders())

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `"duplicate":true`)
}

func (s *OrderHandlerTestSuite) TestCreate_MissingIdempotencyKey() {
	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, map[string]string{
		"Authorization": "Bearer test-token",
	})

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Contains(rec.Body.String(), "Idempotency-Key")
}

func (s *OrderHandlerTestSuite) TestCreate_InvalidIdempotencyKey() {
	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, map[string]string{
		"Authorization":   "Bearer test-token",
		"Idempotency-Key": "not-a-uuid",
	})

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestCreate_Unauthorized() {
	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, nil)

	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *OrderHandlerTestSuite) TestCreate_InvalidBody() {
	rec := s.doRequest(http.MethodPost, "/orders", `{"street": ""}`, s.authHeaders())

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestCreate_ValidationFailure() {
	s.mockCommands.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("discount exceeds price"), errs.ErrInvalidOrderData))

	rec := s.doRequest(http.MethodPost, "/orders", validCreateBody, s.authHeaders())

	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPay_Success() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		SetPaid(gomock.Any(), gomock.Any(), commands.SetPaidCommand{OrderID: orderID}).
		Return(&commands.Result{OrderID: orderID}, nil)

	rec := s.doRequest(http.MethodPost, "/orders/"+orderID.String()+"/pay", "", s.authHeaders())

	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPay_OrderNotFound() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		SetPaid(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("no such order"), errs.ErrOrderNotFound))

	rec := s.doRequest(http.MethodPost, "/orders/"+orderID.String()+"/pay", "", s.authHeaders())

	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *OrderHandlerTestSuite) TestPay_InvalidOrderID() {
	rec := s.doRequest(http.MethodPost, "/orders/not-a-uuid/pay", "", s.authHeaders())

	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestCancel_RuleViolation() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		CancelOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("already paid"), errs.ErrDomainRuleViolation))

	rec := s.doRequest(http.MethodPost, "/orders/"+orderID.String()+"/cancel", "", s.authHeaders())

	s.Require().Equal(http.StatusConflict, rec.Code)
}

func (s *OrderHandlerTestSuite) TestShip_ConcurrentConflict() {
	orderID := uuid.New()
	s.mockCommands.EXPECT().
		ShipOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("stale version"), errs.ErrPersistenceConflict))

	rec := s.doRequest(http.MethodPost, "/orders/"+orderID.String()+"/ship", "", s.authHeaders())

	s.Require().Equal(http.StatusConflict, rec.Code)
}

func (s *OrderHandlerTestSuite) TestGet_Success() {
	orderID := uuid.New()
	s.mockQueries.EXPECT().
		GetByID(gomock.Any(), orderID).
		Return(&queries.OrderView{ID: orderID, Status: "submitted"}, nil)

	rec := s.doRequest(http.MethodGet, "/orders/"+orderID.String(), "", map[string]string{
		"Authorization": "Bearer test-token",
	})

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), orderID.String())
}

func (s *OrderHandlerTestSuite) TestListMine_Success() {
	s.mockQueries.EXPECT().
		ListByBuyer(gomock.Any(), s.buyerID, 0).
		Return([]*queries.OrderListItem{{ID: uuid.New(), Status: "submitted"}}, nil)

	rec := s.doRequest(http.MethodGet, "/orders", "", map[string]string{
		"Authorization": "Bearer test-token",
	})

	s.Require().Equal(http.StatusOK, rec.Code)
}
