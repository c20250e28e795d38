package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/chat"
	"github.com/smartserve-app/smartserve-api/internal/httperr"
	"github.com/smartserve-app/smartserve-api/internal/httpresp"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/models"
)

type ChatHandler struct {
	db    *gorm.DB
	hub   *chat.Hub
	relay *chat.Relay
}

func NewChatHandler(db *gorm.DB, hub *chat.Hub, relay *chat.Relay) *ChatHandler {
	return &ChatHandler{
		db:    db,
		hub:   hub,
		relay: relay,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients already went through the bearer-token middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRoomRequest struct {
	PeerID uint `json:"peer_id" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// ======================================================
// HELPERS
// ======================================================

// pairFor resolves who is the client and who is the provider for the room,
// based on the caller's role.
func pairFor(role string, userID, peerID uint) (clientID, providerID uint) {
	if role == middleware.RoleProvider {
		return peerID, userID
	}
	return userID, peerID
}

func (h *ChatHandler) memberRoom(c *gin.Context) (*models.ChatRoom, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var room models.ChatRoom
	if err := h.db.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Chat room not found.")
		return nil, false
	}

	member := (role == middleware.RoleClient && room.ClientID == userID) ||
		(role == middleware.RoleProvider && room.ProviderID == userID)
	if !member {
		httperr.Forbidden(c, "room_not_owned", "You are not a participant of this room.")
		return nil, false
	}

	return &room, true
}

// ======================================================
// ROOMS
// ======================================================

// CreateRoom is idempotent: the room id is derived from the pair, so asking
// again for an existing pair returns the same room.
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	clientID, providerID := pairFor(role, userID, req.PeerID)

	if err := h.db.First(&models.Client{}, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}
	if err := h.db.First(&models.Provider{}, providerID).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Provider not found.")
		return
	}

	room := models.ChatRoom{
		ID:         chat.RoomID(clientID, providerID),
		ClientID:   clientID,
		ProviderID: providerID,
	}

	if err := h.db.FirstOrCreate(&room, models.ChatRoom{ID: room.ID}).Error; err != nil {
		httperr.Internal(c, "failed_to_create_room", "Could not create the chat room.")
		return
	}

	httpresp.OK(c, room)
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	column := "client_id"
	if role == middleware.RoleProvider {
		column = "provider_id"
	}

	var rooms []models.ChatRoom
	if err := h.db.
		Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&rooms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rooms", "Could not load chat rooms.")
		return
	}

	httpresp.List(c, rooms)
}

// ======================================================
// MESSAGES
// ======================================================

func (h *ChatHandler) ListMessages(c *gin.Context) {
	room, ok := h.memberRoom(c)
	if !ok {
		return
	}

	// Append order is the auto-increment key.
	var msgs []models.ChatMessage
	if err := h.db.
		Where("room_id = ?", room.ID).
		Order("id ASC").
		Find(&msgs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not load messages.")
		return
	}

	httpresp.List(c, msgs)
}

// SendMessage persists first, then publishes; sockets only ever see messages
// that made it to the store.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)

	room, ok := h.memberRoom(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	msg := models.ChatMessage{
		RoomID:     room.ID,
		SenderRole: role,
		Text:       req.Text,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Could not send the message.")
		return
	}

	if payload, err := json.Marshal(msg); err == nil {
		_ = h.relay.Publish(c.Request.Context(), room.ID, payload)
	}

	httpresp.Created(c, msg)
}

// ======================================================
// SOCKET
// ======================================================

func (h *ChatHandler) Socket(c *gin.Context) {
	room, ok := h.memberRoom(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Join(room.ID, conn)
	defer func() {
		h.hub.Leave(room.ID, conn)
		conn.Close()
	}()

	// The socket is receive-only; sends go through the REST path so they are
	// persisted before broadcast. Reading just drains pings until the peer
	// disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
