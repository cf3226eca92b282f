package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menufacil/internal/models"
	"menufacil/internal/session"
)

// Session flow handlers. Screen-state errors map to 409: the client asked
// for a move the state machine does not allow.

func screenStatus(err error) int {
	var te *session.ScreenTransitionError
	if errors.As(err, &te) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) StartSession(c *gin.Context) {
	var req struct {
		Link string `json:"link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, sess, err := s.sessions.Start(req.Link)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sess.Screen() == session.ScreenCustomer {
		s.monitor.RecordMenuView()
	}
	s.log.Info("session_started", "new session", "session_id", id, "table", sess.TableID())

	c.JSON(http.StatusCreated, gin.H{
		"sessionId":     id,
		"screen":        sess.Screen(),
		"tableId":       sess.TableID(),
		"splashSeconds": session.SplashDelay.Seconds(),
	})
}

func (s *Server) GetSession(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"screen":        sess.Screen(),
		"tableId":       sess.TableID(),
		"cartCount":     sess.CartCount(),
		"callingWaiter": sess.CallingWaiter(),
	})
}

func (s *Server) StartRegistration(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	if err := sess.StartRegistration(); err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

func (s *Server) CompleteRegistration(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	var info models.RestaurantInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sess.CompleteRegistration(info); err != nil {
		status := screenStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s.infoMu.Lock()
	s.info = info
	s.infoMu.Unlock()
	s.log.Info("registration_completed", "restaurant registered", "name", info.Name)

	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen(), "info": info})
}

func (s *Server) CancelRegistration(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	if err := sess.CancelRegistration(); err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

func (s *Server) EnterCustomer(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	if err := sess.EnterCustomer(); err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	s.monitor.RecordMenuView()
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

// AdminLogin is the demo owner login: it flips the session to the admin
// screen and issues a dashboard token. No credential check, by product
// definition.
func (s *Server) AdminLogin(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	if err := sess.EnterAdmin(); err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	token, err := s.issueAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen(), "token": token})
}

func (s *Server) Logout(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	if err := sess.Logout(); err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

// ExitTable ends table service. The confirmation travels with the request;
// an unconfirmed exit changes nothing and echoes the prompt back.
func (s *Server) ExitTable(c *gin.Context) {
	sess, ok := s.lookupSession(c)
	if !ok {
		return
	}
	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exited, err := sess.ExitTable(func(string) bool { return req.Confirmed })
	if err != nil {
		c.JSON(screenStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !exited {
		c.JSON(http.StatusOK, gin.H{
			"screen":  sess.Screen(),
			"exited":  false,
			"confirm": "Deseja encerrar o atendimento nesta mesa e sair?",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen(), "exited": true})
}
