package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Notice tells live clients that a course or one of its chapters changed.
// Clients react by refetching, so the payload carries ids only.
type Notice struct {
	Type      string    `json:"type"`
	CourseID  string    `json:"courseId"`
	ChapterID string    `json:"chapterId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub keeps the connected clients grouped by course and fans notices out to them
type Hub struct {
	clients map[string]map[*Client]bool

	broadcast  chan Notice
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan Notice, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case notice := <-h.broadcast:
			h.broadcastNotice(notice)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.courseID]; !ok {
		h.clients[client.courseID] = make(map[*Client]bool)
	}
	h.clients[client.courseID][client] = true

	h.logger.Debug().
		Str("courseID", client.courseID).
		Str("userID", client.userID).
		Msg("Live client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.courseID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.courseID)
	}

	h.logger.Debug().
		Str("courseID", client.courseID).
		Str("userID", client.userID).
		Msg("Live client unregistered")
}

func (h *Hub) broadcastNotice(notice Notice) {
	data, err := json.Marshal(notice)
	if err != nil {
		h.logger.Error().Err(err).Str("courseID", notice.CourseID).Msg("Failed to marshal notice")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[notice.CourseID] {
		select {
		case client.send <- data:
		default:
			// slow consumer
			h.removeLocked(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// Publish queues a notice for every client watching the notice's course.
// The notice is dropped when the queue is full.
func (h *Hub) Publish(notice Notice) {
	if notice.Timestamp.IsZero() {
		notice.Timestamp = time.Now().UTC()
	}

	select {
	case h.broadcast <- notice:
	default:
		h.logger.Warn().Str("type", notice.Type).Str("courseID", notice.CourseID).Msg("Notice queue full, dropping notice")
	}
}

// ClientCount returns the number of connected clients for a course
func (h *Hub) ClientCount(courseID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[courseID])
}
