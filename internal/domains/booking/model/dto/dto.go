package dto

import (
	"math"
	"primecm/internal/domains/booking/model"
	customerModel "primecm/internal/domains/customer/model"
	customerDto "primecm/internal/domains/customer/model/dto"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	gModel "primecm/shared/model"
	"primecm/shared/timezone"

	"github.com/google/uuid"
)

// LineItem is one print order. Omitted paper type, size and rate take the
// shop defaults. Rate and copies are bounded by their NUMERIC(9,2) and
// INTEGER columns.
type LineItem struct {
	PaperType *model.PaperType `json:"paper_type" validate:"omitempty,oneof=luster glossy canvas"`
	PaperSize *model.PaperSize `json:"paper_size" validate:"omitempty,oneof=4X6 5X7 5X14 6X8 8X10"`
	Rate      *float64         `json:"rate"       validate:"omitempty,gt=0,lte=9999999.99"`
	Copies    int              `json:"copies"     validate:"required,gt=0,max=2147483647"`
}

func (l *LineItem) ToModel(transactionID, actor string) model.Booking {
	booking := model.Booking{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		PaperType:     model.DefaultPaperType,
		PaperSize:     model.DefaultPaperSize,
		Rate:          model.DefaultRate,
		Copies:        l.Copies,
		Count:         1,
		Metadata:      gModel.NewMetadata(actor),
	}

	if l.PaperType != nil {
		booking.PaperType = *l.PaperType
	}

	if l.PaperSize != nil {
		booking.PaperSize = *l.PaperSize
	}

	if l.Rate != nil {
		// rate is NUMERIC(9,2); the dedup key must compare rounded values
		booking.Rate = math.Round(*l.Rate*100) / 100
	}

	return booking
}

type CreateBookingRequest struct {
	Customer customerDto.CustomerIdentity `json:"customer" validate:"required"`
	Bookings []LineItem                   `json:"bookings" validate:"required,min=1,dive"`
}

// ToTransaction stamps a transaction for today in the application timezone.
func (r *CreateBookingRequest) ToTransaction(customerID, actor string) model.Transaction {
	return model.Transaction{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		At:         timezone.Now(),
		Metadata:   gModel.NewMetadata(actor),
	}
}

type BookingResponse struct {
	ID        string          `json:"id"`
	PaperType model.PaperType `json:"paper_type"`
	PaperSize model.PaperSize `json:"paper_size"`
	Rate      float64         `json:"rate"`
	Copies    int             `json:"copies"`
	Count     int             `json:"count"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.PaperType = booking.PaperType
	r.PaperSize = booking.PaperSize
	r.Rate = booking.Rate
	r.Copies = booking.Copies
	r.Count = booking.Count
	r.Metadata.FromModel(booking.Metadata)
}

type TransactionResponse struct {
	ID       string                       `json:"id"`
	Customer customerDto.CustomerResponse `json:"customer"`
	Bookings []BookingResponse            `json:"bookings"`
	At       string                       `json:"at"`
}

func (r *TransactionResponse) FromModel(
	txn model.Transaction,
	bookings []model.Booking,
	customer customerModel.Customer,
	numbers []customerModel.PhoneNumber,
) {
	r.ID = txn.ID
	// DATE columns scan as midnight UTC; shifting zones could change the day
	r.At = txn.At.Format(constant.DayDateFormat)
	r.Customer.FromModel(customer, numbers)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}
