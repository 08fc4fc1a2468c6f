package main // import "github.com/tonobo/magent-autonomy"

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: checkOrigin,
}

// checkOrigin accepts everything unless AllowedOrigins is set. Clients that
// send no Origin header are not browsers and always pass.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if len(AllowedOrigins) == 0 || origin == "" {
		return true
	}
	for _, o := range AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// stream serves one environment loop over a websocket: every text frame is a
// Request and is answered with a Response, or an error object. Bad frames do
// not end the session.
func stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("stream closed: %v", err)
			}
			return
		}
		var reply interface{}
		var j Request
		if err := json.Unmarshal(data, &j); err != nil {
			reply = gin.H{"error": err.Error()}
		} else if resp, err := j.Move(); err != nil {
			reply = gin.H{"error": err.Error()}
		} else {
			reply = resp
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("failed to send action to %s/%s: %v", j.Episode, j.Agent, err)
			return
		}
	}
}
