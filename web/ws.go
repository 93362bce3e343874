package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/relay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func websocketHandler(ctrl controller.C, hub *relay.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("error upgrading websocket connection: %v", err)
			return
		}

		client := hub.Register(conn)
		go client.WritePump()
		go client.ReadPump(func(sender uuid.UUID, msg []byte) {
			handleFrame(ctrl, hub, sender, msg)
		})
	}
}

// handleFrame routes one incoming websocket frame. Chat messages are
// persisted and rebroadcast in their filtered form, ball positions are
// relayed as-is to everyone except the sender. The request context is
// gone by the time frames arrive, so persistence gets its own deadline.
func handleFrame(ctrl controller.C, hub *relay.Hub, sender uuid.UUID, msg []byte) {
	var env relay.Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		log.Printf("error parsing websocket frame: %v", err)
		return
	}

	switch env.Type {
	case relay.TypeChat:
		var frame relay.ChatFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			log.Printf("error parsing chat frame: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		m, err := ctrl.AddChatMessage(ctx, frame.Username, frame.Message)
		if err != nil {
			log.Printf("error saving chat message: %v", err)
			return
		}
		hub.Chat(m)

	case relay.TypeBallMove:
		hub.BroadcastExcept(sender, msg)

	default:
		log.Printf("ignoring websocket frame with unknown type %q", env.Type)
	}
}
