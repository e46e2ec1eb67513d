package entity

// Snapshot is the durable form of a game. The winner is never stored; it is recomputed on restore.
type Snapshot struct {
	Fields Fields `json:"fields"`
	Turn   Color  `json:"turn"`
}
