package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type     string `json:"type"` // "navigate" or "full"
	Pathname string `json:"pathname,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type      string          `json:"type"` // "session", "sidebar", "full" or "error"
	SessionID string          `json:"session_id"`
	Locale    string          `json:"locale,omitempty"`
	Pathname  string          `json:"pathname,omitempty"`
	Groups    []sidebar.Group `json:"groups"`
	Sidebar   sidebar.Config  `json:"sidebar,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// handleWebSocket ties a sidebar session to one connection: the sidebar is
// built on the first request and dropped when the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	localeID := r.URL.Query().Get("locale")
	if _, err := s.data.Locale(localeID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	id, sess, err := s.sessions.Open(localeID)
	if err != nil {
		s.send(conn, wsResponse{Type: "error", Error: err.Error()})
		return
	}
	defer s.sessions.Close(id)
	s.logger.Debug("websocket session opened", "session", id, "locale", sess.Locale().ID)

	s.send(conn, wsResponse{Type: "session", SessionID: id, Locale: sess.Locale().ID})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", "session", id, "err", err)
			}
			s.logger.Debug("websocket session closed", "session", id)
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(conn, wsResponse{Type: "error", SessionID: id, Error: "invalid message format"})
			continue
		}

		switch req.Type {
		case "navigate":
			pathname := req.Pathname
			if pathname == "" {
				pathname = "/"
			}
			s.send(conn, wsResponse{
				Type:      "sidebar",
				SessionID: id,
				Pathname:  pathname,
				Groups:    sess.CurrentSidebar(pathname),
			})
		case "full":
			s.send(conn, wsResponse{Type: "full", SessionID: id, Sidebar: sess.FullSidebar()})
		default:
			s.send(conn, wsResponse{Type: "error", SessionID: id, Error: "unknown message type: " + req.Type})
		}
	}
}

func (s *Server) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Error("websocket write", "session", resp.SessionID, "err", err)
	}
}
