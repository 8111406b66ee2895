package models

// Restaurant owns its orders directly; its position in a slice is its report number.
type Restaurant struct {
	ID     int64
	Name   string
	Orders []Order
}
