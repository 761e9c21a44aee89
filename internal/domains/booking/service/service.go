package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/booking/model"
	"primecm/internal/domains/booking/model/dto"
	"primecm/internal/domains/booking/repository"
	customerModel "primecm/internal/domains/customer/model"
	customerRepo "primecm/internal/domains/customer/repository"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.TransactionResponse, error)
}

type serviceImpl struct {
	txnRepo      repository.Transaction
	repo         repository.Booking
	customerRepo customerRepo.Customer
	phoneRepo    customerRepo.PhoneNumber
	transactor   postgres.Transactor
	otel         otel.Otel
}

func New(
	txnRepo repository.Transaction,
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	phoneRepo customerRepo.PhoneNumber,
	transactor postgres.Transactor,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		txnRepo:      txnRepo,
		repo:         repo,
		customerRepo: customerRepo,
		phoneRepo:    phoneRepo,
		transactor:   transactor,
		otel:         otel,
	}
}

// Create records the line items under the customer's transaction for today.
// Resubmitting a line of the same shape bumps its count. Either every line is
// stored or none is.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	customer, err := s.customerRepo.Get(ctx, gDto.EqualFilters(req.Customer, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found")
	}

	var (
		txn      model.Transaction
		bookings []model.Booking
	)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error

		if txn, err = s.txnRepo.GetOrCreateTx(ctx, tx, req.ToTransaction(customer.ID, user)); err != nil {
			return err
		}

		for _, item := range req.Bookings {
			if err := s.repo.UpsertTx(ctx, tx, item.ToModel(txn.ID, user)); err != nil {
				return err
			}
		}

		bookings, err = s.repo.GetAllTx(ctx, tx,
			gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
			gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldTransactionID,
						Value:    txn.ID,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
				},
			},
		)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	numbers, err := s.phoneRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    customerModel.FieldPhoneNumberCustomerID,
				Value:    customer.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    customerModel.PhoneNumberTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer phone numbers")

		return res, fmt.Errorf("failed to get customer phone numbers: %w", err)
	}

	res.FromModel(txn, bookings, customer, numbers)

	return res, nil
}
