package api

import (
	"net/http"

	reqdto "ordering-service/internal/handler/dto/request"
	resdto "ordering-service/internal/handler/dto/response"
	"ordering-service/internal/handler/httperr"
	"ordering-service/internal/handler/middleware"
	"ordering-service/internal/infra"
	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/usecase/commands"
	"ordering-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errRequestIDRequired = errs.New("Idempotency-Key header is required")

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Create a new order; safe to retry with the same Idempotency-Key
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client request id for duplicate prevention"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CommandAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing buyer identity"), "Internal server error", nil)
		return
	}
	buyerName, _ := middleware.GetUserName(c)

	requestID, err := h.getRequestID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.orderCommands.CreateOrder(c.Request.Context(), requestID, req.ToCommand(buyerID, buyerName))
	if err != nil {
		h.mapCommandError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, resdto.CommandAcceptedResponse{
		OrderID:   result.OrderID,
		Duplicate: result.Duplicate,
	})
}

// @Summary Pay order
// @Description Confirm payment for an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client request id for duplicate prevention"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CommandAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/pay [post]
func (h *OrderHandler) Pay(c *gin.Context) {
	h.statusCommand(c, func(requestID, orderID uuid.UUID) (*commands.Result, error) {
		return h.orderCommands.SetPaid(c.Request.Context(), requestID, commands.SetPaidCommand{OrderID: orderID})
	})
}

// @Summary Cancel order
// @Description Cancel an order that has not been paid or shipped
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client request id for duplicate prevention"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CommandAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.statusCommand(c, func(requestID, orderID uuid.UUID) (*commands.Result, error) {
		return h.orderCommands.CancelOrder(c.Request.Context(), requestID, commands.CancelOrderCommand{OrderID: orderID})
	})
}

// @Summary Ship order
// @Description Ship a paid order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client request id for duplicate prevention"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CommandAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/ship [post]
func (h *OrderHandler) Ship(c *gin.Context) {
	h.statusCommand(c, func(requestID, orderID uuid.UUID) (*commands.Result, error) {
		return h.orderCommands.ShipOrder(c.Request.Context(), requestID, commands.ShipOrderCommand{OrderID: orderID})
	})
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my orders
// @Description List orders of the authenticated buyer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing buyer identity"), "Internal server error", nil)
		return
	}

	items, err := h.orderQueries.ListByBuyer(c.Request.Context(), buyerID, 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.OrderListResponse, 0, len(items))
	for _, item := range items {
		r, err := resdto.FromOrderListItem(item)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		resp = append(resp, r)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) statusCommand(c *gin.Context, run func(requestID, orderID uuid.UUID) (*commands.Result, error)) {
	requestID, err := h.getRequestID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	result, err := run(requestID, orderID)
	if err != nil {
		h.mapCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CommandAcceptedResponse{
		OrderID:   result.OrderID,
		Duplicate: result.Duplicate,
	})
}

func (h *OrderHandler) getRequestID(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errRequestIDRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errs.New("invalid Idempotency-Key format")
	}

	return key, nil
}

func (h *OrderHandler) mapCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing request identifier", nil)
	case errs.Is(err, errs.ErrInvalidOrderData):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order validation failed", nil)
	case errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, errs.ErrDomainRuleViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order state does not allow this operation", nil)
	case errs.Is(err, errs.ErrPersistenceConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order was modified concurrently, retry the request", nil)
	case errs.Is(err, errs.ErrCancelled):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Request cancelled before completion", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
