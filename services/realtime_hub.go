package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans achievement updates out to a user's connected clients
// so every open tab sees progress move as soon as any logger writes.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastAchievement pushes the updated record to every connection the
// user has open. Write errors are ignored; a dead connection is cleaned up
// by its reader goroutine.
func (h *RealtimeHub) BroadcastAchievement(userID uint, rec *models.AchievementRecord) {
	msg, err := json.Marshal(map[string]any{
		"type":        "achievement_updated",
		"achievement": rec,
	})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
