package preview

import (
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/domsugar/internal/errors"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

// Message is the reply to one websocket render request.
type Message struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := formatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		s.writeError(w, http.StatusUnsupportedMediaType, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, errors.New("E202").Wrap(err))
		return
	}

	tree, err := sugar.Decode(format, body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	html, err := s.Render(r.Context(), tree)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html)
}

// handleWebSocket renders every text message as a JSON tree until the
// client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxBodyBytes)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket read failed", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var reply Message
		tree, err := sugar.DecodeJSON(data)
		if err == nil {
			reply.HTML, err = s.Render(r.Context(), tree)
		}
		if err != nil {
			reply.Error = err.Error()
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("websocket write failed", "error", err)
			return
		}
	}
}

// writeError writes err as a JSON error document.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	se := errors.FromError(err, "")
	s.logger.Debug("render request failed", "status", status, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, se.FormatJSON())
}

// formatFromContentType maps a request media type to a tree format.
// A missing Content-Type means json.
func formatFromContentType(contentType string) (string, error) {
	if contentType == "" {
		return "json", nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.New("E401").Wrap(err)
	}
	switch mediaType {
	case "application/json", "text/json":
		return "json", nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return "yaml", nil
	}
	return "", errors.New("E401").WithDetail("unsupported Content-Type " + mediaType)
}
