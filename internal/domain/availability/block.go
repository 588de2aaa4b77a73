package availability

// Block is a recorded date interval during which a room is unavailable,
// independent of any reservation's status. Blocks are opaque: multiple
// non-overlapping blocks per room are permitted and never coalesced.
type Block struct {
	id     int64
	roomID int64
	dates  DateRange
}

func NewBlock(roomID int64, dates DateRange) *Block {
	return &Block{roomID: roomID, dates: dates}
}

func ReconstructBlock(id, roomID int64, dates DateRange) *Block {
	return &Block{id: id, roomID: roomID, dates: dates}
}

func (b *Block) ID() int64        { return b.id }
func (b *Block) RoomID() int64    { return b.roomID }
func (b *Block) Dates() DateRange { return b.dates }

// Matches reports whether the block covers exactly the given room and range;
// used by release, which removes only exact matches.
func (b *Block) Matches(roomID int64, dates DateRange) bool {
	return b.roomID == roomID && b.dates.Equal(dates)
}
