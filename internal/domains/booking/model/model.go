package model

import (
	"primecm/shared/model"
	"time"
)

const (
	TransactionTableName  = "transactions"
	TransactionEntityName = "transaction"

	FieldTransactionPK         = "id"
	FieldTransactionCustomerID = "customer_id"
	FieldTransactionAt         = "at"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldTransactionID = "transaction_id"
	FieldPaperType     = "paper_type"
	FieldPaperSize     = "paper_size"
	FieldRate          = "rate"
	FieldCopies        = "copies"
	FieldCount         = "count"
)

type PaperType string

const (
	PaperTypeLuster PaperType = "luster"
	PaperTypeGlossy PaperType = "glossy"
	PaperTypeCanvas PaperType = "canvas"
)

type PaperSize string

const (
	PaperSize4X6  PaperSize = "4X6"
	PaperSize5X7  PaperSize = "5X7"
	PaperSize5X14 PaperSize = "5X14"
	PaperSize6X8  PaperSize = "6X8"
	PaperSize8X10 PaperSize = "8X10"
)

const (
	DefaultPaperType = PaperTypeLuster
	DefaultPaperSize = PaperSize5X7
	DefaultRate      = 50.00
)

// Transaction groups one customer's bookings for one calendar day.
type Transaction struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	At         time.Time `db:"at"`
	model.Metadata
}

// Booking is a print-order line. Rows are unique per transaction and line
// shape; Count records how many times that shape was submitted.
type Booking struct {
	ID            string    `db:"id"`
	TransactionID string    `db:"transaction_id"`
	PaperType     PaperType `db:"paper_type"`
	PaperSize     PaperSize `db:"paper_size"`
	Rate          float64   `db:"rate"`
	Copies        int       `db:"copies"`
	Count         int       `db:"count"`
	model.Metadata
}
