package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/session"
)

// minPlayers is the number of connected clients needed before moves are accepted.
const minPlayers = 2

type snapshotRepo interface {
	Get(ctx context.Context, room string) (*entity.Snapshot, error)
	Put(ctx context.Context, room string, snapshot *entity.Snapshot) error
	DeleteAll(ctx context.Context, room string) error
}

type eventKind int

const (
	eventConnect eventKind = iota
	eventMessage
	eventDisconnect
	eventState
)

type event struct {
	kind    eventKind
	ctx     context.Context //nolint: containedctx // carried to the room loop for storage calls
	session *session.Session
	out     session.Outbound
	data    []byte
	reply   chan result
}

type result struct {
	session *session.Session
	state   protocol.StateMessage
	err     error
}

// RoomInstance owns one game and the sessions watching it. Every connect, message and
// disconnect is handled by a single goroutine (Run), one event at a time.
type RoomInstance struct {
	logger *slog.Logger
	name   string
	repo   snapshotRepo

	game     *entity.Game
	sessions *session.List

	events   chan event
	done     chan struct{}
	stopOnce sync.Once
}

// NewRoomInstance - loads the room's snapshot, or starts a new game when there is none
// or it can not be decoded.
func NewRoomInstance(ctx context.Context, logger *slog.Logger, name string, repo snapshotRepo) (*RoomInstance, error) {
	game := entity.NewGame()

	snapshot, err := repo.Get(ctx, name)
	switch {
	case errors.Is(err, apperror.ErrSnapshotNotFound):
	case errors.Is(err, apperror.ErrSnapshotCorrupt):
		// the first move overwrites it
		logger.Warn("discarding unreadable snapshot", "room", name, "error", err)
	case err != nil:
		return nil, fmt.Errorf("failed to load room %s: %w", name, err)
	default:
		game = entity.RestoreGame(*snapshot)
	}

	return &RoomInstance{
		logger:   logger.With("component", "room", "room", name),
		name:     name,
		repo:     repo,
		game:     game,
		sessions: session.NewList(),
		events:   make(chan event),
		done:     make(chan struct{}),
	}, nil
}

func (that *RoomInstance) Name() string {
	return that.name
}

// Run - processes events until Stop is called.
func (that *RoomInstance) Run() {
	for {
		select {
		case <-that.done:
			return
		case ev := <-that.events:
			ev.reply <- that.handleSafely(ev)
		}
	}
}

func (that *RoomInstance) Stop() {
	that.stopOnce.Do(func() {
		close(that.done)
	})
}

// Connect - seats a new client and sends it its color, the state and the player count.
func (that *RoomInstance) Connect(ctx context.Context, out session.Outbound) (*session.Session, error) {
	res := that.dispatch(ctx, event{kind: eventConnect, out: out})

	return res.session, res.err
}

// HandleMessage - handles one inbound text frame. Rejections are answered to the sender and
// are not errors; a returned error means an internal failure.
func (that *RoomInstance) HandleMessage(ctx context.Context, s *session.Session, data []byte) error {
	return that.dispatch(ctx, event{kind: eventMessage, session: s, data: data}).err
}

// Disconnect - removes the client and hands its seat to the first spectator.
func (that *RoomInstance) Disconnect(ctx context.Context, s *session.Session) error {
	return that.dispatch(ctx, event{kind: eventDisconnect, session: s}).err
}

// State - returns the current state message.
func (that *RoomInstance) State(ctx context.Context) (protocol.StateMessage, error) {
	res := that.dispatch(ctx, event{kind: eventState})

	return res.state, res.err
}

func (that *RoomInstance) dispatch(ctx context.Context, ev event) result {
	ev.ctx = ctx
	ev.reply = make(chan result, 1)

	// Run may still be selecting right after Stop
	select {
	case <-that.done:
		return result{err: apperror.ErrRoomClosed}
	default:
	}

	select {
	case that.events <- ev:
	case <-that.done:
		return result{err: apperror.ErrRoomClosed}
	case <-ctx.Done():
		return result{err: fmt.Errorf("room %s: %w", that.name, ctx.Err())}
	}

	// an accepted event is always answered, even if the room stops meanwhile
	return <-ev.reply
}

// handleSafely - a panicking event fails alone; the room keeps its last committed state.
func (that *RoomInstance) handleSafely(ev event) (res result) {
	defer func() {
		if rec := recover(); rec != nil {
			that.logger.Error("recovered from panic in room event", "panic", rec, "kind", ev.kind)
			res = result{err: fmt.Errorf("%w: %v", apperror.ErrRoomPanicked, rec)}
		}
	}()

	return that.handle(ev)
}

func (that *RoomInstance) handle(ev event) result {
	switch ev.kind {
	case eventConnect:
		return result{session: that.handleConnect(ev.out)}
	case eventMessage:
		return result{err: that.handleMessage(ev.ctx, ev.session, ev.data)}
	case eventDisconnect:
		that.handleDisconnect(ev.session)
		return result{}
	case eventState:
		return result{state: protocol.NewStateMessage(that.game)}
	default:
		return result{err: fmt.Errorf("unknown event kind %d", ev.kind)}
	}
}

func (that *RoomInstance) handleConnect(out session.Outbound) *session.Session {
	s := session.New(that.sessions.FindNextColor(), out)
	that.sessions.Add(s)

	that.logger.Info("session connected", "session", s.ID(), "color", s.Color(), "sessions", that.sessions.Len())

	that.send(s, protocol.NewColorMessage(s.Color()))
	that.send(s, protocol.NewStateMessage(that.game))
	that.broadcast(protocol.NewPlayersMessage(that.sessions.Len()))

	return s
}

func (that *RoomInstance) handleMessage(ctx context.Context, s *session.Session, data []byte) error {
	req, err := protocol.ParseRequest(data)

	var protocolErr *protocol.Error
	if errors.As(err, &protocolErr) {
		that.reject(s, protocolErr.Message)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}

	switch req.Type {
	case protocol.TypeMove:
		return that.handleMove(ctx, s, req)
	case protocol.TypeReset:
		return that.handleReset(ctx, s)
	default:
		return fmt.Errorf("unhandled request type %q", req.Type)
	}
}

func (that *RoomInstance) handleMove(ctx context.Context, s *session.Session, req *protocol.Request) error {
	switch {
	case s.IsSpectator():
		that.reject(s, apperror.ErrSpectatorMove.Error())
		return nil
	case !req.OnBoard() || !that.game.CanPlaceColor(s.Color(), req.Row, req.Col):
		that.reject(s, apperror.ErrInvalidMove.Error())
		return nil
	case that.sessions.Len() < minPlayers:
		that.reject(s, apperror.ErrGamePaused.Error())
		return nil
	}

	next := that.game.Clone()
	if err := next.PlaceColor(s.Color(), req.Row, req.Col); err != nil {
		return fmt.Errorf("failed to place color: %w", err)
	}

	snapshot := next.Serialize()
	if err := that.repo.Put(ctx, that.name, &snapshot); err != nil {
		that.send(s, protocol.NewErrorMessage(protocol.InternalErrorText))
		return fmt.Errorf("failed to save room %s: %w", that.name, err)
	}

	that.game = next

	that.logger.Debug("color placed", "session", s.ID(), "color", s.Color(), "row", req.Row, "col", req.Col)

	that.broadcast(protocol.NewStateMessage(that.game))

	return nil
}

func (that *RoomInstance) handleReset(ctx context.Context, s *session.Session) error {
	if s.IsSpectator() {
		that.reject(s, apperror.ErrSpectatorReset.Error())
		return nil
	}

	// no snapshot is written: an absent snapshot restores as a new game
	if err := that.repo.DeleteAll(ctx, that.name); err != nil {
		that.send(s, protocol.NewErrorMessage(protocol.InternalErrorText))
		return fmt.Errorf("failed to clear room %s: %w", that.name, err)
	}

	that.game = entity.NewGame()

	that.logger.Info("game reset", "session", s.ID())

	that.broadcast(protocol.NewStateMessage(that.game))

	return nil
}

func (that *RoomInstance) handleDisconnect(s *session.Session) {
	that.sessions.Remove(s)

	that.logger.Info("session disconnected", "session", s.ID(), "color", s.Color(), "sessions", that.sessions.Len())

	if !s.IsSpectator() {
		if spectator := that.sessions.FindWithColor(entity.ColorNone); spectator != nil {
			spectator.SetColor(s.Color())

			that.logger.Info("spectator promoted", "session", spectator.ID(), "color", spectator.Color())

			that.send(spectator, protocol.NewColorMessage(spectator.Color()))
			that.send(spectator, protocol.NewStateMessage(that.game))
		}
	}

	that.broadcast(protocol.NewPlayersMessage(that.sessions.Len()))
}

func (that *RoomInstance) reject(s *session.Session, text string) {
	that.logger.Debug("request rejected", "session", s.ID(), "reason", text)

	that.send(s, protocol.NewErrorMessage(text))
}

// send - delivery failures belong to the connection layer, which closes the session.
func (that *RoomInstance) send(s *session.Session, msg any) {
	if err := s.SendMessage(msg); err != nil {
		that.logger.Warn("failed to send message", "session", s.ID(), "error", err)
	}
}

func (that *RoomInstance) broadcast(msg any) {
	if err := that.sessions.Broadcast(msg); err != nil {
		that.logger.Warn("failed to broadcast message", "error", err)
	}
}
