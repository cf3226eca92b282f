package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"menufacil/internal/models"
	"menufacil/internal/orders"
	"menufacil/internal/waiter"
)

// Cart, order and waiter-signal handlers.

func (s *Server) GetCart(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	total := sess.CartTotal()
	c.JSON(http.StatusOK, gin.H{
		"lines":        sess.CartLines(),
		"total":        total,
		"displayTotal": models.FormatKz(total),
		"count":        sess.CartCount(),
	})
}

func (s *Server) AddToCart(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	var req struct {
		ItemID      string `json:"itemId"`
		Quantity    int    `json:"quantity"`
		Observation string `json:"observation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, found := s.catalog.Get(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusConflict, gin.H{"error": "menu item is not available"})
		return
	}

	sess.AddToCart(item, req.Quantity, req.Observation)
	c.JSON(http.StatusOK, gin.H{"count": sess.CartCount(), "total": sess.CartTotal()})
}

func (s *Server) RemoveFromCart(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	// Out-of-range indexes are a silent no-op.
	sess.RemoveFromCart(index)
	c.JSON(http.StatusOK, gin.H{"count": sess.CartCount(), "total": sess.CartTotal()})
}

func (s *Server) PlaceOrder(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	var req struct {
		CustomerName string `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := sess.PlaceOrder(s.board, req.CustomerName)
	if err != nil {
		c.JSON(placeStatus(err), gin.H{"error": err.Error()})
		return
	}

	s.monitor.RecordOrderPlaced(order.Total)
	s.hub.publish("order_placed", order)
	s.log.Info("order_placed", "order placed",
		"order_id", order.ID, "table", order.TableID, "total", order.Total)

	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"message": "Obrigado " + order.CustomerName + "! Seu pedido foi enviado para a cozinha.",
	})
}

func (s *Server) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": s.board.List()})
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	order, err := s.board.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		var te *models.TransitionError
		switch {
		case errors.As(err, &te):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	s.hub.publish("order_status", order)
	c.JSON(http.StatusOK, order)
}

func (s *Server) RequestWaiter(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	var req struct {
		Kind models.RequestKind `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := sess.CallWaiter(s.requests, req.Kind)
	if err != nil {
		c.JSON(waiterStatus(err), gin.H{"error": err.Error()})
		return
	}

	s.monitor.RecordWaiterRequest()
	s.hub.publish("waiter_request", request)
	s.log.Info("waiter_requested", "waiter request", "table", request.TableID, "kind", string(request.Kind))

	c.JSON(http.StatusCreated, request)
}

func (s *Server) WaiterIndicator(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"calling": sess.CallingWaiter()})
}

func (s *Server) ListRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": s.requests.Pending()})
}

func (s *Server) ResolveRequest(c *gin.Context) {
	id := c.Param("id")
	if err := s.requests.Resolve(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.hub.publish("request_resolved", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"resolved": true})
}

func placeStatus(err error) int {
	switch {
	case errors.Is(err, orders.ErrNoTable):
		return http.StatusForbidden
	case errors.Is(err, orders.ErrEmptyName), errors.Is(err, orders.ErrEmptyCart):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func waiterStatus(err error) int {
	switch {
	case errors.Is(err, waiter.ErrNoTable):
		return http.StatusForbidden
	case errors.Is(err, waiter.ErrUnknownKind):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
