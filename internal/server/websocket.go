package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/emberfall/battle-server-go/internal/config"
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
)

// WSMessage is the wire envelope for both directions.
type WSMessage struct {
	Type     string          `json:"type"`
	BattleID string          `json:"battle_id,omitempty"`
	Player   string          `json:"player,omitempty"`
	Action   *ActionMessage  `json:"action,omitempty"`
	View     *BattleView     `json:"view,omitempty"`
	Error    string          `json:"error,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// ActionMessage is the wire form of a battle action.
type ActionMessage struct {
	Kind     string `json:"kind"`
	Card     int    `json:"card,omitempty"`
	Ability  int    `json:"ability,omitempty"`
	Choice   int    `json:"choice,omitempty"`
	ToVoid   bool   `json:"to_void,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Client is one websocket connection bound to a battle seat.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	battleID uuid.UUID
	player   core.PlayerName
	seated   bool
}

// Hub routes messages between clients and the battle manager.
type Hub struct {
	manager    *Manager
	log        *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	upgrader   websocket.Upgrader
}

// NewHub creates the websocket hub.
func NewHub(manager *Manager, cfg config.ServerConfig, log *zap.Logger) *Hub {
	h := &Hub{
		manager:    manager,
		log:        log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
	if cfg.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// Run processes client registration until the hub is stopped.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug("client registered")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug("client unregistered")
			}
		}
	}
}

// ServeWS upgrades an HTTP request to a battle websocket.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.register <- client
	go client.writePump()
	go client.readPump(h)
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError(fmt.Sprintf("malformed message: %v", err))
			continue
		}
		h.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func (h *Hub) handleMessage(c *Client, msg WSMessage) {
	switch msg.Type {
	case "create_battle":
		id := h.manager.CreateBattle()
		c.battleID = id
		c.player = core.PlayerOne
		c.seated = true
		h.pushView(c)

	case "join_battle":
		id, err := uuid.Parse(msg.BattleID)
		if err != nil {
			c.sendError(fmt.Sprintf("bad battle id: %v", err))
			return
		}
		player, err := parsePlayer(msg.Player)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.battleID = id
		c.player = player
		c.seated = true
		h.pushView(c)

	case "perform_action":
		if !c.seated {
			c.sendError("join a battle first")
			return
		}
		if msg.Action == nil {
			c.sendError("perform_action requires an action")
			return
		}
		action, err := parseAction(*msg.Action)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		if err := h.manager.PerformAction(c.battleID, c.player, action); err != nil {
			c.sendError(err.Error())
			return
		}
		h.broadcastBattle(c.battleID)

	default:
		c.sendError(fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// pushView sends the current battle view to one client.
func (h *Hub) pushView(c *Client) {
	view, err := h.manager.View(c.battleID, c.player)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.sendMessage(WSMessage{Type: "battle_state", BattleID: c.battleID.String(), View: view})
}

// broadcastBattle pushes fresh views to every client seated at a battle.
func (h *Hub) broadcastBattle(id uuid.UUID) {
	for client := range h.clients {
		if client.seated && client.battleID == id {
			h.pushView(client)
		}
	}
}

func (c *Client) sendMessage(msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) sendError(text string) {
	c.sendMessage(WSMessage{Type: "error", Error: text})
}

func parsePlayer(name string) (core.PlayerName, error) {
	switch name {
	case "one", "":
		return core.PlayerOne, nil
	case "two":
		return core.PlayerTwo, nil
	default:
		return 0, fmt.Errorf("unknown player %q", name)
	}
}

func parseAction(msg ActionMessage) (game.BattleAction, error) {
	switch msg.Kind {
	case "play_card_from_hand":
		return game.PlayCardFromHand(game.HandCardID(msg.Card)), nil
	case "play_card_from_void":
		return game.PlayCardFromVoid(game.VoidCardID(msg.Card)), nil
	case "activate_ability":
		return game.ActivateAbility(game.ActivatedAbilityID{
			Character:     game.CharacterID(msg.Card),
			AbilityNumber: msg.Ability,
		}), nil
	case "pass_priority":
		return game.PassPriority(), nil
	case "end_turn":
		return game.EndTurn(), nil
	case "start_next_turn":
		return game.StartNextTurn(), nil
	case "select_character_target":
		return game.SelectCharacterTarget(game.CharacterID(msg.Card)), nil
	case "select_stack_card_target":
		return game.SelectStackCardTarget(game.StackCardID(msg.Card)), nil
	case "select_void_card_target":
		return game.SelectVoidCardTarget(game.VoidCardID(msg.Card)), nil
	case "submit_void_card_targets":
		return game.SubmitVoidCardTargets(), nil
	case "select_prompt_choice":
		return game.SelectPromptChoice(msg.Choice), nil
	case "select_order_for_deck_card":
		return game.SelectOrderForDeckCard(game.DeckCardID(msg.Card), game.DeckOrderTarget{
			ToVoid:   msg.ToVoid,
			Position: msg.Position,
		}), nil
	case "submit_deck_card_order":
		return game.SubmitDeckCardOrder(), nil
	default:
		return game.BattleAction{}, fmt.Errorf("unknown action kind %q", msg.Kind)
	}
}
