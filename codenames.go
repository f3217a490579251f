// Codenames
//
// Two teams race to identify their agents on a 5x5 board of words. Each
// team has a spymaster who sees every card's affiliation and gives
// one-word clues; operatives reveal cards based on those clues. Finding
// the assassin loses instantly.
//
// Features:
// - Single authoritative session, WebSocket at /ws
// - Lobby with team/role selection and ready checks
// - 9/8/7/1 card split with a random starting team
// - Spymaster clues validated against the board words
// - Advisory card marks, per team, toggled by spymasters
// - Full-state broadcast to every client after each accepted command
// - Rejections sent only to the offending client
// - In-browser QR button to share the game URL, backed by go-qrcode

package main

import (
	_ "embed"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	playerID string
}

type inbound struct {
	client *Client
	cmd    command
}

// Hub owns the session and serializes everything that touches it.
// Registration, disconnects and commands all funnel through run(), so
// each command is processed to completion before the next one starts
// and no locking is needed.
type Hub struct {
	session *Session
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	commands chan inbound
}

func newHub(pool *wordPool) *Hub {
	return &Hub{
		session:  newSession(pool),
		clients:  make(map[*Client]bool),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		commands: make(chan inbound),
	}
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

			// Tell the client which players-map entry is theirs, then
			// bring them up to date.
			c.send <- encode(sessionInfo{Type: "sessionInfo", PlayerID: c.playerID})
			c.send <- snapshot(h.session)

			log.Debug().Str("player", c.playerID).Msg("client connected")

		case c := <-h.unreg:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

			// A disconnect is an implicit leave: release any held team
			// slot and let everyone else know.
			if h.session.remove(c.playerID) {
				log.Info().Str("player", c.playerID).Msg("player left")
				h.broadcast()
			}

		case in := <-h.commands:
			h.handle(in)
		}
	}
}

// handle runs one command through the dispatcher. Either it fully
// applies and everyone sees the new state, or nothing changes at all.
func (h *Hub) handle(in inbound) {
	err := dispatch(h.session, in.client.playerID, in.cmd)

	switch {
	case err == nil:
		h.logAccepted(in.cmd)
		h.broadcast()

	case errors.Is(err, errIgnored):
		log.Debug().
			Str("command", in.cmd.Type).
			Str("player", in.client.playerID).
			Msg("command ignored")

	default:
		log.Debug().
			Str("command", in.cmd.Type).
			Str("player", in.client.playerID).
			Str("reason", err.Error()).
			Msg("command rejected")

		h.sendTo(in.client, encode(rejected{Type: "rejected", Reason: err.Error()}))
	}
}

func (h *Hub) logAccepted(cmd command) {
	switch cmd.Type {
	case "join":
		log.Info().Str("nickname", strings.TrimSpace(cmd.Nickname)).Msg("player joined")
	case "start":
		log.Info().Str("turn", string(h.session.Turn)).Msg("game started")
	case "verifyCard":
		if h.session.Phase == PhaseGameover {
			log.Info().
				Str("winner", string(h.session.Winner)).
				Str("reason", h.session.Game.Reason).
				Msg("game over")
		}
	case "newGame":
		log.Info().Msg("session reset to lobby")
	}
}

// broadcast fans the current snapshot out to every client. The state is
// marshaled here, before fan-out, so the writer goroutines never touch
// the session itself. Clients that cannot keep up are dropped rather
// than allowed to stall the loop.
func (h *Hub) broadcast() {
	msg := snapshot(h.session)

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (h *Hub) sendTo(c *Client, msg []byte) {
	if !h.clients[c] {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWS upgrades the connection and hands it to the hub. Identity is
// connection-derived: a fresh ID per socket, gone when the socket is.
func serveWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Str("remote", realIP(r)).Msg("websocket upgrade failed")
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan []byte, 8),
			playerID: uuid.NewString(),
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var cmd command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			return
		}

		h.commands <- inbound{client: c, cmd: cmd}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// qrHandler generates a PNG QR code for the game URL using go-qrcode,
// so players on the same network can join by scanning.
func qrHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /qr; strip the trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")
	if path == "" {
		path = "/"
	}

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed codenames/index.html
var indexHTML []byte

//go:embed codenames/app.css
var codenamesCSS []byte

//go:embed codenames/app.js
var codenamesJS []byte

func getIndexHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(codenamesCSS)
	}
}

func getJsHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(codenamesJS)
	}
}

// registerCodenamesGame sets up routes so that:
//   - /                       → HTML client
//   - /ws                     → WebSocket for the session
//   - /qr                     → PNG QR code for the game URL
func registerCodenamesGame(cfg *Config, mux *httprouter.Router) {
	hub := newHub(newWordPool(defaultWords))
	go hub.run()

	mux.GET(cfg.prefix+"/", getIndexHandler(cfg))

	mux.GET(cfg.prefix+"/assets/codenames/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/codenames/app.js", getJsHandler(cfg))

	mux.GET(cfg.prefix+"/ws", serveWS(hub))

	mux.GET(cfg.prefix+"/qr", qrHandler)
}
