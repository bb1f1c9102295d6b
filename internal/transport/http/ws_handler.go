package http

import (
	"encoding/json"
	"net/http"

	"flashlight-portfolio/internal/app"
	"flashlight-portfolio/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewWSHandler(service *app.GameService, log *zap.Logger) *WSHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WSHandler{
		service: service,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Viewport *domain.Viewport `json:"viewport"`
}

type answerPayload struct {
	Option string `json:"option"`
}

type pointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type mountedPayload struct {
	GameID string              `json:"gameId"`
	State  domain.GameSnapshot `json:"state"`
}

type cuePayload struct {
	Cue domain.Cue `json:"cue"`
}

type spotlightPayload struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Gradient string  `json:"gradient"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and binds one game to the connection for its lifetime.
func (h *WSHandler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	game, err := h.service.Mount(ctx)
	if err != nil {
		h.log.Error("mount game", zap.Error(err))
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	gameID := game.ID()

	updates, cancel, err := h.service.Subscribe(ctx, gameID)
	if err != nil {
		h.service.Unmount(ctx, gameID)
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Unmount(ctx, gameID)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// mounted goes out before any forwarded state
	send <- outboundMessage[any]{Type: "mounted", Payload: mountedPayload{GameID: gameID, State: game.Snapshot()}}

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Debug("ws write error", zap.String("game_id", gameID), zap.Error(err))
				return
			}
		}
	}()

	// results carries answer outcomes so they trail the state the answer produced
	results := make(chan outboundMessage[any])

	go func() {
		defer close(updatesDone)
		deliver := func(msg outboundMessage[any]) bool {
			select {
			case send <- msg:
				return true
			case <-writerDone:
				return false
			case <-closeSignals:
				return false
			}
		}
		forward := func(ev domain.GameEvent) bool {
			if ev.Kind == domain.EventCue {
				return deliver(outboundMessage[any]{Type: "cue", Payload: cuePayload{Cue: ev.Cue}})
			}
			return deliver(outboundMessage[any]{Type: "state", Payload: ev.State})
		}
		for {
			select {
			case ev, ok := <-updates:
				if !ok || !forward(ev) {
					return
				}
			case msg := <-results:
				// Submit enqueued its events before returning; flush them first.
				for drained := false; !drained; {
					select {
					case ev, ok := <-updates:
						if !ok || !forward(ev) {
							return
						}
					default:
						drained = true
					}
				}
				if !deliver(msg) {
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	push := func(msg outboundMessage[any]) bool {
		select {
		case send <- msg:
			return true
		case <-writerDone:
			return false
		}
	}
	fail := func(message string) bool {
		return push(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}})
	}

	var pointer app.PointerTracker
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		ok := true
		switch inbound.Type {
		case "start":
			var payload startPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					ok = fail("invalid start payload")
					break
				}
			}
			vp := domain.Viewport{}
			if payload.Viewport != nil {
				vp = *payload.Viewport
			}
			if _, err := h.service.Start(ctx, gameID, vp); err != nil {
				ok = fail(err.Error())
			}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				ok = fail("invalid answer payload")
				break
			}
			res, err := h.service.Submit(ctx, gameID, payload.Option)
			if err != nil {
				ok = fail(err.Error())
				break
			}
			select {
			case results <- outboundMessage[any]{Type: "answerResult", Payload: res}:
			case <-updatesDone:
				ok = false
			}
		case "pointer":
			var payload pointerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				ok = fail("invalid pointer payload")
				break
			}
			pointer.Move(payload.X, payload.Y)
			pos := pointer.Position()
			ok = push(outboundMessage[any]{Type: "spotlight", Payload: spotlightPayload{
				X:        pos.X,
				Y:        pos.Y,
				Gradient: pointer.Spotlight(),
			}})
		default:
			ok = fail("unsupported message type")
		}
		if !ok {
			break
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
