package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

var roomNamePattern = regexp.MustCompile(`^[0-9a-zA-Z]+$`)

// ValidRoomName - room names may only contain letters and digits.
func ValidRoomName(name string) bool {
	return roomNamePattern.MatchString(name)
}

type liveRoom struct {
	instance *RoomInstance
	refs     int
}

// RoomManager keeps one running RoomInstance per room name while it has connections.
type RoomManager struct {
	logger *slog.Logger
	repo   snapshotRepo

	mutex deadlock.Mutex
	rooms map[string]*liveRoom
}

func NewRoomManager(logger *slog.Logger, repo snapshotRepo) *RoomManager {
	return &RoomManager{
		logger: logger,
		repo:   repo,
		rooms:  make(map[string]*liveRoom),
	}
}

// Acquire - returns the running room, starting it from its snapshot if needed.
// Every successful Acquire must be paired with a Release.
func (that *RoomManager) Acquire(ctx context.Context, name string) (*RoomInstance, error) {
	if !ValidRoomName(name) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidRoomName, name)
	}

	that.mutex.Lock()
	defer that.mutex.Unlock()

	if room, ok := that.rooms[name]; ok {
		room.refs++
		return room.instance, nil
	}

	instance, err := NewRoomInstance(ctx, that.logger, name, that.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to start room: %w", err)
	}

	go instance.Run()

	that.rooms[name] = &liveRoom{instance: instance, refs: 1}

	that.logger.Info("room started", "component", "room-manager", "room", name)

	return instance, nil
}

// Release - drops one reference. The last one stops the room; its state is already persisted.
func (that *RoomManager) Release(name string) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	room, ok := that.rooms[name]
	if !ok {
		return
	}

	room.refs--
	if room.refs > 0 {
		return
	}

	room.instance.Stop()
	delete(that.rooms, name)

	that.logger.Info("room stopped", "component", "room-manager", "room", name)
}

// Len - number of running rooms.
func (that *RoomManager) Len() int {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	return len(that.rooms)
}

// Close - stops every running room.
func (that *RoomManager) Close() {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	for name, room := range that.rooms {
		room.instance.Stop()
		delete(that.rooms, name)
	}
}
