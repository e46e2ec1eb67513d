package apperror

import "errors"

// Game-rule violations. Their texts are sent to the offending client as-is.
var (
	ErrInvalidMove    = errors.New("Invalid move!")                                             //nolint: stylecheck // client-facing text
	ErrSpectatorMove  = errors.New("Spectators can't place colors!")                            //nolint: stylecheck // client-facing text
	ErrSpectatorReset = errors.New("You can not reset a game in which you do not participate!") //nolint: stylecheck // client-facing text
	ErrGamePaused     = errors.New("The game is paused!")                                       //nolint: stylecheck // client-facing text
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotCorrupt  = errors.New("snapshot can not be decoded")
	ErrRoomPanicked     = errors.New("room event panicked")
	ErrRoomClosed       = errors.New("room is closed")
	ErrOutboundClosed   = errors.New("outbound channel is closed")
	ErrInvalidRoomName  = errors.New("room name may only contain letters and digits")
)
