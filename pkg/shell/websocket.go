package shell

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// handleWebSocket answers every update request received on the connection,
// in order. Failed updates are reported to the client and the connection
// stays open.
func (s *Shell) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBytes)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("WebSocket read error: %v", err)
			}
			return
		}

		if err := conn.WriteJSON(s.answer(message)); err != nil {
			log.Warnf("WebSocket write error: %v", err)
			return
		}
	}
}

func (s *Shell) answer(message []byte) interface{} {
	var request updateRequest
	if err := json.Unmarshal(message, &request); err != nil || request.ID == "" {
		return errorResponse{Error: "expected {\"id\": <control>, \"value\": <value>}"}
	}
	update, err := s.Dispatch(request.ID, request.Value)
	if err != nil {
		return errorResponse{ID: request.ID, Error: err.Error()}
	}
	return update
}
