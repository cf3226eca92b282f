package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menufacil/internal/catalog"
	"menufacil/internal/models"
	"menufacil/internal/storage"
)

// Menu and owner dashboard handlers.

func (s *Server) ListMenu(c *gin.Context) {
	category := models.MenuCategory(c.DefaultQuery("category", string(models.CategoryAll)))
	search := c.Query("q")

	items := s.catalog.Filter(category, search)
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (s *Server) GetMenuItem(c *gin.Context) {
	item, ok := s.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "displayPrice": models.FormatKz(item.Price)})
}

func (s *Server) GetRestaurantInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.restaurantInfo())
}

func (s *Server) AdminListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.catalog.Items()})
}

func (s *Server) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.catalog.Create(item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.log.Info("menu_item_created", "menu item created", "item_id", created.ID, "name", created.Name)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = c.Param("id")

	if err := s.catalog.Update(item); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem is destructive and demands an explicit confirmation flag;
// without it nothing is deleted and the prompt is echoed back.
func (s *Server) DeleteMenuItem(c *gin.Context) {
	if c.Query("confirmed") != "true" {
		c.JSON(http.StatusOK, gin.H{
			"deleted": false,
			"confirm": "Tem certeza que deseja remover este prato?",
		})
		return
	}
	if err := s.catalog.Delete(c.Param("id")); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (s *Server) ToggleAvailability(c *gin.Context) {
	item, err := s.catalog.ToggleAvailability(c.Param("id"))
	if err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DescribeDish drafts a promotional description for the dish form. The
// response marks whether the text came from the model or the placeholder.
func (s *Server) DescribeDish(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == "" {
		req.Category = string(models.CategoryMains)
	}

	desc, err := s.gen.Describe(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !desc.Generated {
		s.monitor.RecordDescriptionFallback()
		s.log.Error("describe_fallback", "description generation fell back", errors.New(desc.Reason), "dish", req.Name)
	}
	c.JSON(http.StatusOK, desc)
}

func (s *Server) AdminGetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.restaurantInfo())
}

func (s *Server) UpdateRestaurantInfo(c *gin.Context) {
	var info models.RestaurantInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateRestaurantInfo(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.SaveInfo(info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.infoMu.Lock()
	s.info = info
	s.infoMu.Unlock()
	c.JSON(http.StatusOK, info)
}

func (s *Server) DashboardStats(c *gin.Context) {
	views, err := s.store.Views(storage.DayKey(timeNow()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"todayViews":      views,
		"totalItems":      s.catalog.Len(),
		"activeItems":     s.catalog.ActiveCount(),
		"pendingOrders":   s.board.PendingCount(),
		"pendingRequests": s.requests.Len(),
	})
}

func catalogStatus(err error) int {
	if errors.Is(err, catalog.ErrItemNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
