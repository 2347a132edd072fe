package constants

// OrderStatus is the canonical status for rows in esad_order.
type OrderStatus string

// Stable values (store these exact strings in DB).
const (
	OrderStatusQueued   OrderStatus = "QUEUED"    // waiting for processing
	OrderStatusRunning  OrderStatus = "RUNNING"   // in progress
	OrderStatusFieldsOK OrderStatus = "FIELDS_OK" // all box fields classified
	OrderStatusFailed   OrderStatus = "FAILED"    // terminal failure
)
