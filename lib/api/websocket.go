package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime statistics
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		a.log.Warn("couldn't make websocket", "err", err)
		return
	}
	a.addClient(ws)
	defer a.removeClient(ws)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			return
		}
		a.log.Debug("websocket message", "msg", string(msg))
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsMu.Lock()
	a.wsClients[ws] = true
	a.wsMu.Unlock()
	a.Stats.AddWsClients(1)
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsMu.Lock()
	_, ok := a.wsClients[ws]
	delete(a.wsClients, ws)
	a.wsMu.Unlock()
	if !ok {
		return
	}
	a.Stats.AddWsClients(-1)
	err := ws.Close()
	if err != nil {
		a.log.Debug("could not close websocket", "err", err)
	}
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(a.PushInterval)
	defer ticker.Stop()

	timeout := 10 * time.Second
	for {
		if err := a.push(ws, timeout); err != nil {
			a.log.Debug("websocket writer stopped", "err", err)
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func (a *Api) push(ws *websocket.Conn, timeout time.Duration) error {
	packet, err := json.Marshal(a.Stats.Snapshot())
	if err != nil {
		return err
	}
	err = ws.SetWriteDeadline(time.Now().Add(timeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}
