// Package world provides the tile grid and the rules that move things on it.
package world

// Kind identifies the variant held by a grid cell.
type Kind uint8

const (
	// KindAir is empty space. The player walks into it and fallable tiles drop into it.
	KindAir Kind = iota
	// KindFlux is soft ground the player can dig through.
	KindFlux
	// KindUnbreakable is an immovable wall.
	KindUnbreakable
	// KindPlayer marks the single cell the player occupies.
	KindPlayer
	// KindStone falls when unsupported and can be pushed while resting.
	KindStone
	// KindBox behaves like a stone.
	KindBox
	// KindKey opens every door sharing its lock id when picked up.
	KindKey
	// KindLockedDoor blocks the player until its key is picked up.
	KindLockedDoor
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindFlux:
		return "flux"
	case KindUnbreakable:
		return "unbreakable"
	case KindPlayer:
		return "player"
	case KindStone:
		return "stone"
	case KindBox:
		return "box"
	case KindKey:
		return "key"
	case KindLockedDoor:
		return "locked_door"
	default:
		return "unknown"
	}
}

// LockID pairs a key with the doors it opens.
type LockID uint8

// Tile is the content of one grid cell.
// Fall is meaningful only for stones and boxes, Lock only for keys and doors.
type Tile struct {
	Kind Kind
	Fall FallState
	Lock LockID
}

// Constructors for each variant.

func Air() Tile { return Tile{Kind: KindAir} }

func Flux() Tile { return Tile{Kind: KindFlux} }

func Unbreakable() Tile { return Tile{Kind: KindUnbreakable} }

func Player() Tile { return Tile{Kind: KindPlayer} }

func Stone(f FallState) Tile { return Tile{Kind: KindStone, Fall: f} }

func Box(f FallState) Tile { return Tile{Kind: KindBox, Fall: f} }

func Key(id LockID) Tile { return Tile{Kind: KindKey, Lock: id} }

func LockedDoor(id LockID) Tile { return Tile{Kind: KindLockedDoor, Lock: id} }

// IsAir returns true for empty cells.
func (t Tile) IsAir() bool {
	return t.Kind == KindAir
}

// IsPlayer returns true for the player cell.
func (t Tile) IsPlayer() bool {
	return t.Kind == KindPlayer
}

// IsLock returns true if the tile is a locked door opened by the given key.
func (t Tile) IsLock(id LockID) bool {
	return t.Kind == KindLockedDoor && t.Lock == id
}

// IsFallable returns true for tiles governed by gravity.
func (t Tile) IsFallable() bool {
	return t.Kind == KindStone || t.Kind == KindBox
}

// Rune returns a single character for text dumps of the grid.
func (t Tile) Rune() rune {
	switch t.Kind {
	case KindAir:
		return ' '
	case KindFlux:
		return '.'
	case KindUnbreakable:
		return '#'
	case KindPlayer:
		return '@'
	case KindStone:
		if t.Fall == Falling {
			return 'O'
		}
		return 'o'
	case KindBox:
		if t.Fall == Falling {
			return 'X'
		}
		return 'x'
	case KindKey:
		return rune('0' + t.Lock%10)
	case KindLockedDoor:
		return rune('A' + (t.Lock+25)%26) // lock 1 is 'A'
	default:
		return '?'
	}
}
