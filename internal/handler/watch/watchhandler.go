// Package watch streams store change events over a websocket so list
// views (goals, suggestions, summaries) can refresh without polling.
package watch

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The server binds to localhost only.
		return true
	},
}

// Handler upgrades the connection and forwards change events for the
// requested date until the client disconnects.
func Handler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httputil.QueryString(r, "date", db.ToDateISO(time.Now()))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Errorf("websocket upgrade: %v", err)
			return
		}

		topic := db.WatchTopic(svcCtx.UserID, date)
		events, cancel := svcCtx.Events.Subscribe(topic, 32)
		defer cancel()

		// Reader goroutine: the client sends nothing meaningful, but we
		// must consume control frames to notice the close.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()
		defer conn.Close()

		for {
			select {
			case evt, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(evt); err != nil {
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}
