package domain

// Puzzle is an archived grid together with its solve result.
type Puzzle struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name,omitempty"`
	Givens    [9][9]uint8 `json:"givens"`
	Final     [9][9]uint8 `json:"final"`
	Outcome   string      `json:"outcome"`
	CreatedAt int64       `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Outcome   string `json:"outcome"`
	CreatedAt int64  `json:"createdAt"`
}
