package domain

// InventoryItem is rentable equipment with a finite stock. TotalStock is the
// ceiling on simultaneous usage across overlapping bookings; committed
// quantities are computed on demand from the ledger, never decremented.
type InventoryItem struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	TotalStock      int     `json:"total_stock" yaml:"total_stock"`
	PricePerSession float64 `json:"price_per_session" yaml:"price_per_session"`
}

// ResourceRequest asks for Quantity units of an inventory item for the
// duration of one booking.
type ResourceRequest struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}
