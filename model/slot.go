package model

// SlotEntry is one batch position inside a slot. Position orders entries within the slot.
type SlotEntry struct {
	ID       string `db:"id" json:"id"`
	SlotID   string `db:"slot_id" json:"slot_id"`
	BatchID  string `db:"batch_id" json:"batch_id"`
	Position int    `db:"position" json:"position"`
	OnHand   int64  `db:"on_hand_qty" json:"on_hand"`
	Promised int64  `db:"promised_qty" json:"promised"`
}

// Slot is a uniquely addressed (row, column, location) storage unit.
type Slot struct {
	ID         string      `db:"id" json:"id"`
	Row        int         `db:"row_no" json:"row"`
	Column     int         `db:"column_no" json:"column"`
	LocationID string      `db:"location_id" json:"location_id"`
	Entries    []SlotEntry `db:"-" json:"entries"`
}

// EntryIndex returns the position index of batchID in the slot, or -1.
func (s *Slot) EntryIndex(batchID string) int {
	for i := range s.Entries {
		if s.Entries[i].BatchID == batchID {
			return i
		}
	}
	return -1
}

type SlotAddress struct {
	Row        int    `json:"row" validate:"gte=0"`
	Column     int    `json:"column" validate:"gte=0"`
	LocationID string `json:"location_id" validate:"required"`
}

type ReceiveStockRequest struct {
	SlotAddress
	BatchID  string `json:"batch_id" validate:"required,uuid"`
	Quantity int64  `json:"quantity" validate:"required"`
}

type ReceiveStockResponse struct {
	Slot Slot `json:"slot"`
}
