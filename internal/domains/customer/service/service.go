package service

import (
	"context"
	"fmt"
	"primecm/config"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/customer/model"
	"primecm/internal/domains/customer/model/dto"
	"primecm/internal/domains/customer/repository"
	"primecm/shared"
	"primecm/shared/cache"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheSearchCustomer = "customer:search"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest) (dto.CustomerResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, req dto.SearchCustomerRequest) ([]dto.CustomerResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.CustomerResponse, error)
}

type serviceImpl struct {
	repo       repository.Customer
	phoneRepo  repository.PhoneNumber
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Customer,
	phoneRepo repository.PhoneNumber,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Customer {
	return &serviceImpl{
		repo:       repo,
		phoneRepo:  phoneRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	exists, err := s.repo.Exist(ctx, phoneFilter(req.PhoneNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exists {
		return res, failure.Unprocessable("phone number already registered")
	}

	customer, numbers := req.ToModel(user)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, customer); err != nil {
			return err
		}

		return s.phoneRepo.InsertBulkTx(ctx, tx, numbers)
	})
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Unprocessable("phone number already registered")
		}

		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(customer, numbers)

	return res, nil
}

// Update applies the supplied fields to the customer registered under
// req.PhoneNumber. An unknown phone number is NotFound and nothing is written.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	current, err := s.repo.Get(ctx, phoneFilter(req.PhoneNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("customer not found")
	}

	if req.NewPhoneNumber != nil && *req.NewPhoneNumber != current.PhoneNumber {
		taken, err := s.repo.Exist(ctx, phoneFilter(*req.NewPhoneNumber))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if customer exists")

			return res, fmt.Errorf("failed to check if customer exists: %w", err)
		}

		if taken {
			return res, failure.Unprocessable("phone number already registered")
		}
	}

	byID := shared.FilterByID(current.ID, model.FieldID, model.TableName)
	byOwner := numbersFilter(current.ID)

	var (
		updated model.Customer
		numbers []model.PhoneNumber
	)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, user), byID); err != nil {
			return err
		}

		if req.OtherNumber != nil {
			if err := s.phoneRepo.DeleteTx(ctx, tx, byOwner); err != nil {
				return err
			}

			if err := s.phoneRepo.InsertBulkTx(ctx, tx, dto.ToPhoneNumbers(current.ID, *req.OtherNumber)); err != nil {
				return err
			}
		}

		var err error

		if updated, err = s.repo.GetTx(ctx, tx, byID); err != nil {
			return err
		}

		numbers, err = s.phoneRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, byOwner)

		return err
	})
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Unprocessable("phone number already registered")
		}

		log.Error().Err(err).Msg("failed to update customer")

		return res, fmt.Errorf("failed to update customer: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(updated, numbers)

	return res, nil
}

// Search returns customers matching every supplied filter exactly. With no
// filters it lists every customer.
func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, req dto.SearchCustomerRequest) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.EqualFilters(req, model.TableName)
	prefix, cacheable := shared.CacheGeneration(ctx, s.cache, cacheSearchCustomer)
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, filter)

	if cacheable {
		if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

			return res, nil
		}
	}

	customers, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	ids := make([]string, len(customers))
	for i, customer := range customers {
		ids[i] = customer.ID
	}

	numbers, err := s.phoneRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumberCustomerID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.PhoneNumberTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer phone numbers")

		return res, fmt.Errorf("failed to get customer phone numbers: %w", err)
	}

	res = dto.FromModels(customers, numbers)

	if cacheable {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save customers to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.CustomerResponse, error) {
	return s.Search(ctx, params, dto.SearchCustomerRequest{})
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheSearchCustomer)
}

func phoneFilter(phoneNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumber,
				Value:    phoneNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func numbersFilter(customerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumberCustomerID,
				Value:    customerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PhoneNumberTableName,
			},
		},
	}
}
