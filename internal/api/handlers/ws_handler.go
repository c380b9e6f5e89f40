package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/pkg/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	service *application.RequestService
}

func NewWSHandler(service *application.RequestService) *WSHandler {
	return &WSHandler{service: service}
}

// StreamSessionEvents pushes authoring-session events (loading fields,
// signer fetching state, section changes) to the client until it
// disconnects or the session closes.
func (h *WSHandler) StreamSessionEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	sess, err := h.service.Sessions.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	events := sess.Subscribe()
	defer sess.Unsubscribe(events)

	done := make(chan struct{})
	go func() {
		// Drain client frames to notice the disconnect.
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("session %s event write: %v", id, err)
				return
			}
		case <-done:
			return
		}
	}
}
