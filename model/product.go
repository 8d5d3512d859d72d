package model

import "time"

type Product struct {
	ID        string    `db:"id" json:"id"`
	Disabled  bool      `db:"disabled" json:"disabled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Batch is one FIFO-orderable lot of a product. Immutable once created.
type Batch struct {
	ID        string    `db:"id" json:"id"`
	ProductID string    `db:"product_id" json:"product_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateProductRequest struct {
	ID string `json:"id" validate:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

type RegisterBatchRequest struct {
	ProductID string     `json:"product_id" validate:"required,uuid"`
	CreatedAt *time.Time `json:"created_at"`
}

type BatchLocation struct {
	SlotID     string `db:"slot_id" json:"slot_id"`
	Row        int    `db:"row_no" json:"row"`
	Column     int    `db:"column_no" json:"column"`
	LocationID string `db:"location_id" json:"location_id"`
	OnHand     int64  `db:"on_hand_qty" json:"on_hand"`
	Promised   int64  `db:"promised_qty" json:"promised"`
}

type BatchLocations struct {
	BatchID   string          `json:"batch_id"`
	CreatedAt time.Time       `json:"created_at"`
	Index     int             `json:"index"`
	Locations []BatchLocation `json:"locations"`
}

type ProductLocationsResponse struct {
	ProductID string           `json:"product_id"`
	Batches   []BatchLocations `json:"batches"`
}
