package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"menufacil/internal/ai"
	"menufacil/internal/catalog"
	"menufacil/internal/logger"
	"menufacil/internal/models"
	"menufacil/internal/monitoring"
	"menufacil/internal/orders"
	"menufacil/internal/session"
	"menufacil/internal/storage"
	"menufacil/internal/waiter"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// Server is the HTTP surface of one deployment: the customer session flow,
// the menu, the order board, the waiter queue and the owner dashboard.
type Server struct {
	Router *gin.Engine

	catalog  *catalog.Catalog
	board    *orders.Board
	requests *waiter.Queue
	sessions *session.Manager
	gen      *ai.Generator
	store    storage.Store
	monitor  *monitoring.Monitor
	log      *logger.Logger
	hub      *hub

	infoMu sync.RWMutex
	info   models.RestaurantInfo

	tokenSecret []byte
}

// NewServer wires the service components behind the router. The restaurant
// profile is loaded (seeding on first run) before any route is served.
func NewServer(store storage.Store, cat *catalog.Catalog, gen *ai.Generator, monitor *monitoring.Monitor, log *logger.Logger, tokenSecret string) (*Server, error) {
	info, err := store.LoadInfo(models.SeedRestaurantInfo())
	if err != nil {
		return nil, err
	}

	s := &Server{
		Router:      gin.Default(),
		catalog:     cat,
		board:       orders.NewBoard(),
		requests:    waiter.NewQueue(),
		sessions:    session.NewManager(store),
		gen:         gen,
		store:       store,
		monitor:     monitor,
		log:         log,
		hub:         newHub(log),
		info:        info,
		tokenSecret: []byte(tokenSecret),
	}

	go s.hub.run()
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MenuFácil API is running"})
	})

	v1 := s.Router.Group("/api/v1")
	{
		// Session flow
		v1.POST("/sessions", s.StartSession)
		v1.GET("/sessions/:id", s.GetSession)
		v1.POST("/sessions/:id/registration", s.StartRegistration)
		v1.POST("/sessions/:id/registration/complete", s.CompleteRegistration)
		v1.POST("/sessions/:id/registration/cancel", s.CancelRegistration)
		v1.POST("/sessions/:id/customer", s.EnterCustomer)
		v1.POST("/sessions/:id/admin", s.AdminLogin)
		v1.POST("/sessions/:id/logout", s.Logout)
		v1.POST("/sessions/:id/exit", s.ExitTable)

		// Customer menu
		v1.GET("/menu", s.ListMenu)
		v1.GET("/menu/:id", s.GetMenuItem)
		v1.GET("/restaurant", s.GetRestaurantInfo)

		// Cart and ordering
		v1.GET("/sessions/:id/cart", s.GetCart)
		v1.POST("/sessions/:id/cart", s.AddToCart)
		v1.DELETE("/sessions/:id/cart/:index", s.RemoveFromCart)
		v1.POST("/sessions/:id/orders", s.PlaceOrder)

		// Waiter signals
		v1.POST("/sessions/:id/waiter", s.RequestWaiter)
		v1.GET("/sessions/:id/waiter", s.WaiterIndicator)

		// Owner dashboard
		admin := v1.Group("/admin", s.requireAdmin())
		{
			admin.GET("/orders", s.ListOrders)
			admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
			admin.GET("/requests", s.ListRequests)
			admin.DELETE("/requests/:id", s.ResolveRequest)

			admin.GET("/menu", s.AdminListMenu)
			admin.POST("/menu", s.CreateMenuItem)
			admin.PATCH("/menu/:id", s.UpdateMenuItem)
			admin.DELETE("/menu/:id", s.DeleteMenuItem)
			admin.POST("/menu/:id/availability", s.ToggleAvailability)
			admin.POST("/menu/describe", s.DescribeDish)

			admin.GET("/info", s.AdminGetInfo)
			admin.PUT("/info", s.UpdateRestaurantInfo)
			admin.GET("/stats", s.DashboardStats)
			admin.GET("/ws", s.AdminBoardWS)
		}
	}
}

// lookupSession resolves the :id parameter, writing the 404 itself.
func (s *Server) lookupSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func (s *Server) restaurantInfo() models.RestaurantInfo {
	s.infoMu.RLock()
	defer s.infoMu.RUnlock()
	return s.info
}
