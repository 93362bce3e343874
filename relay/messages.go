package relay

import (
	"encoding/json"
	"log"

	"github.com/mww/gameday/model"
)

// Message type discriminators on the websocket wire. Every frame is a
// JSON object with a "type" field naming one of these.
const (
	TypeChat       = "chat"
	TypeGameUpdate = "game_update"
	TypeBallMove   = "ball_move"
)

// Envelope is the minimal shape every incoming frame must have. The
// handler inspects Type and re-parses or relays the raw frame as
// appropriate.
type Envelope struct {
	Type string `json:"type"`
}

// ChatFrame is a chat message on the wire, both directions.
type ChatFrame struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type gameUpdateFrame struct {
	Type   string      `json:"type"`
	GameID int32       `json:"gameId"`
	Game   *model.Game `json:"game"`
}

// GameUpdate broadcasts the updated game to every connected client.
func (h *Hub) GameUpdate(g *model.Game) {
	msg, err := json.Marshal(&gameUpdateFrame{
		Type:   TypeGameUpdate,
		GameID: g.ID,
		Game:   g,
	})
	if err != nil {
		log.Printf("relay: error marshaling game update for game %d: %v", g.ID, err)
		return
	}
	h.Broadcast(msg)
}

// Chat broadcasts a persisted chat message to every connected client,
// including the sender, so all pages render the filtered copy.
func (h *Hub) Chat(m *model.ChatMessage) {
	msg, err := json.Marshal(&ChatFrame{
		Type:     TypeChat,
		Username: m.Username,
		Message:  m.Message,
	})
	if err != nil {
		log.Printf("relay: error marshaling chat message: %v", err)
		return
	}
	h.Broadcast(msg)
}
