package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"primecm/infras/otel/mocks"
	pgMocks "primecm/infras/postgres/mocks"
	bookingMocks "primecm/internal/domains/booking/mocks"
	"primecm/internal/domains/booking/model"
	"primecm/internal/domains/booking/model/dto"
	"primecm/internal/domains/booking/service"
	customerMocks "primecm/internal/domains/customer/mocks"
	customerModel "primecm/internal/domains/customer/model"
	customerDto "primecm/internal/domains/customer/model/dto"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/failure"
)

type fixture struct {
	txnRepo      *bookingMocks.MockTransaction
	repo         *bookingMocks.MockBooking
	customerRepo *customerMocks.MockCustomer
	phoneRepo    *customerMocks.MockPhoneNumber
	transactor   *pgMocks.MockTransactor
	svc          service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		txnRepo:      bookingMocks.NewMockTransaction(ctrl),
		repo:         bookingMocks.NewMockBooking(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		phoneRepo:    customerMocks.NewMockPhoneNumber(ctrl),
		transactor:   pgMocks.NewMockTransactor(ctrl),
	}

	f.svc = service.New(f.txnRepo, f.repo, f.customerRepo, f.phoneRepo, f.transactor, mocks.NewOtel())

	return f
}

func runTx(f fixture) *gomock.Call {
	return f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyAdminID, "admin-1")
}

func ptr[T any](v T) *T {
	return &v
}

var (
	day      = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	customer = customerModel.Customer{ID: "c-1", FirstName: ptr("Ada"), PhoneNumber: "08011111111"}
	txn      = model.Transaction{ID: "txn-1", CustomerID: "c-1", At: day}
)

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		Customer: customerDto.CustomerIdentity{PhoneNumber: "08011111111", FirstName: ptr("Ada")},
		Bookings: []dto.LineItem{
			{Copies: 2},
			{PaperType: ptr(model.PaperTypeCanvas), PaperSize: ptr(model.PaperSize8X10), Rate: ptr(120.456), Copies: 1},
		},
	}

	stored := []model.Booking{
		{ID: "b-1", TransactionID: "txn-1", PaperType: model.PaperTypeLuster, PaperSize: model.PaperSize5X7, Rate: 50, Copies: 2, Count: 1},
		{ID: "b-2", TransactionID: "txn-1", PaperType: model.PaperTypeCanvas, PaperSize: model.PaperSize8X10, Rate: 120.46, Copies: 1, Count: 1},
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		check     func(t *testing.T, res dto.TransactionResponse)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (customerModel.Customer, error) {
						assert.Len(t, filter.Filters, 2)

						return customer, nil
					})
				runTx(f)
				f.txnRepo.EXPECT().
					GetOrCreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m model.Transaction) (model.Transaction, error) {
						assert.Equal(t, "c-1", m.CustomerID)
						assert.Equal(t, "admin-1", m.CreatedBy)

						return txn, nil
					})

				var lines []model.Booking

				f.repo.EXPECT().
					UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m model.Booking) error {
						lines = append(lines, m)

						return nil
					}).
					Times(2)
				f.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						assert.Equal(t, "created_at", params.SortBy)
						assert.Len(t, lines, 2)
						assert.Equal(t, model.DefaultPaperType, lines[0].PaperType)
						assert.Equal(t, model.DefaultPaperSize, lines[0].PaperSize)
						assert.Equal(t, model.DefaultRate, lines[0].Rate)
						assert.Equal(t, 120.46, lines[1].Rate)
						assert.Equal(t, "txn-1", lines[1].TransactionID)
						assert.Equal(t, 1, lines[1].Count)

						return stored, nil
					})
				f.phoneRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]customerModel.PhoneNumber{{ID: "p-1", CustomerID: "c-1", Number: "08022222222"}}, nil)
			},
			check: func(t *testing.T, res dto.TransactionResponse) {
				assert.Equal(t, "txn-1", res.ID)
				assert.Equal(t, "2024-03-01", res.At)
				assert.Equal(t, "c-1", res.Customer.ID)
				assert.Equal(t, []gDto.OtherNumber{{Number: "08022222222"}}, res.Customer.OtherNumber)
				assert.Len(t, res.Bookings, 2)
				assert.Equal(t, model.PaperTypeCanvas, res.Bookings[1].PaperType)
			},
		},
		{
			name: "repeated line is reported with its count",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				runTx(f)
				f.txnRepo.EXPECT().GetOrCreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(txn, nil)
				f.repo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				f.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "b-1", TransactionID: "txn-1", PaperType: model.PaperTypeLuster, PaperSize: model.PaperSize5X7, Rate: 50, Copies: 2, Count: 2}}, nil)
				f.phoneRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			check: func(t *testing.T, res dto.TransactionResponse) {
				assert.Len(t, res.Bookings, 1)
				assert.Equal(t, 2, res.Bookings[0].Count)
				assert.Equal(t, []gDto.OtherNumber{}, res.Customer.OtherNumber)
			},
		},
		{
			name: "unknown customer",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customerModel.Customer{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "customer lookup failure",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customerModel.Customer{}, errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "line failure aborts the unit",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				runTx(f)
				f.txnRepo.EXPECT().GetOrCreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(txn, nil)
				f.repo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("check constraint"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "transaction failure",
			setupMock: func(f fixture) {
				f.customerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				runTx(f)
				f.txnRepo.EXPECT().GetOrCreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Transaction{}, errors.New("deadlock"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(adminCtx(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}
