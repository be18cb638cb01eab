package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChangeFeed upgrades to a websocket that receives an event after every
// successful mutation.
func (h *Handler) ChangeFeed(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Live updates are not enabled"})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Serve(conn)
}
