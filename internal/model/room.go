package model

// Room type labels as published by the catalog. Older catalog records may
// carry a free-form tag instead; filtering treats the type as an opaque
// string and only these three appear in the picker.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// Room status values. Rooms under maintenance stay out of the browse results.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusMaintenance = "Maintenance"
)

// Room is a read-only catalog record. The storefront never writes rooms; it
// only browses them and snapshots a subset of fields into the cart.
//
// Fields:
//  ID                 – catalog identifier.
//  RoomNumber         – physical room number.
//  Name               – display name.
//  Description        – marketing copy.
//  Type               – Single/Double/Suite or a legacy tag.
//  Price              – nightly price in currency-agnostic units.
//  Status             – Available or Maintenance.
//  Beds               – number of beds.
//  GuestsPerRoom      – guest capacity.
//  Bathrooms          – bathroom count.
//  ImageURL           – one or more image references.
//  ReservedDateRanges – existing bookings; empty when the catalog variant
//                       does not publish reservation data.
type Room struct {
	ID                 int         `json:"id"`
	RoomNumber         int         `json:"roomNumber"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Type               string      `json:"type"`
	Price              float64     `json:"price"`
	Status             string      `json:"status"`
	Beds               int         `json:"beds"`
	GuestsPerRoom      int         `json:"guestsPerRoom"`
	Bathrooms          int         `json:"bathrooms"`
	ImageURL           []string    `json:"imageUrl"`
	ReservedDateRanges []DateRange `json:"reservedDateRanges"`
}
