package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"
)

// NewServer builds the Socket.IO server that pushes live chat updates.
// Clients join a room per conversation; the chat controller broadcasts every
// stored message into its room. Rooms are released when the socket
// disconnects, which tears the subscription down with the consuming view.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Debug().Str("component", "socket").Str("conn", c.ID()).Msg("socket connected")
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Warn().Str("component", "socket").Msg("join without conversation id")
			return
		}
		c.Join(conversationID)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, conversationID string) {
		c.Leave(conversationID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Error().Err(err).Str("component", "socket").Msg("socket error")
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Debug().Str("component", "socket").Str("reason", reason).Msg("socket disconnected")
	})

	return server
}
