package game

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/time/rate"
)

// Player is the orchestrator's view of one connection. Send and Ping are
// fire-and-forget: they never block and a failure never escalates past the
// write pump.
type Player interface {
	Id() string
	Username() string
	Send(data []byte) error
	Ping() error
	CancelAndRelease()
}

var errOutboxFull = errors.New("player outbox full")

type wsPlayer struct {
	id       string
	username string

	limiter   *rate.Limiter
	outbox    chan []byte
	pings     chan struct{}
	ctx       context.Context
	cancelCtx context.CancelFunc

	// wired by the handler before the pumps start
	sessionInbox chan<- clientEnvelope
	removeMe     chan<- Player
}

func NewPlayer(id, username string) *wsPlayer {
	ctx, cancel := context.WithCancel(context.Background())
	return &wsPlayer{
		id:        id,
		username:  username,
		limiter:   rate.NewLimiter(20, 60),
		outbox:    make(chan []byte, 256),
		pings:     make(chan struct{}, 1),
		ctx:       ctx,
		cancelCtx: cancel,
	}
}

func (p *wsPlayer) Id() string       { return p.id }
func (p *wsPlayer) Username() string { return p.username }

func (p *wsPlayer) Send(data []byte) error {
	select {
	case p.outbox <- data:
		return nil
	default:
		return errOutboxFull
	}
}

func (p *wsPlayer) Ping() error {
	select {
	case p.pings <- struct{}{}:
	default:
	}
	return nil
}

func (p *wsPlayer) CancelAndRelease() {
	p.cancelCtx()
}

// requestRemoval files this player for removal with the session actor
// without blocking past the player's own lifetime.
func (p *wsPlayer) requestRemoval() {
	select {
	case p.removeMe <- p:
	case <-p.ctx.Done():
	}
}

// ReadPump decodes inbound frames and forwards them to the session inbox.
// Garbage frames and rate-limit overruns are dropped. Returns on read error
// or cancellation, filing a removal request on the way out.
func (p *wsPlayer) ReadPump(conn Conn) {
	defer conn.Close()

	for {
		data, err := conn.Read()
		if err != nil {
			p.requestRemoval()
			return
		}
		if !p.limiter.Allow() {
			continue
		}
		var packet ClientPacket
		if err := json.Unmarshal(data, &packet); err != nil || packet.Type == "" {
			continue
		}
		select {
		case p.sessionInbox <- clientEnvelope{packet: packet, from: p}:
		case <-p.ctx.Done():
			return
		}
	}
}

// WritePump drains the outbox and ping requests onto the socket.
func (p *wsPlayer) WritePump(conn Conn) {
	defer conn.Close()

	for {
		select {
		case data := <-p.outbox:
			if err := conn.Write(data); err != nil {
				p.requestRemoval()
				return
			}
		case <-p.pings:
			if err := conn.Ping(); err != nil {
				p.requestRemoval()
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}
