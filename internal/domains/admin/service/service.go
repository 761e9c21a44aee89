package service

import (
	"context"
	"errors"
	"fmt"
	"primecm/config"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/admin/model"
	"primecm/internal/domains/admin/model/dto"
	"primecm/internal/domains/admin/repository"
	"primecm/shared"
	"primecm/shared/cache"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/failure"
	"primecm/shared/password"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAdmin = "admin:get_all"
)

var errBootstrapTaken = errors.New("first admin already registered")

type Admin interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AdminResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.AdminResponse, error)
}

type serviceImpl struct {
	repo       repository.Admin
	phoneRepo  repository.PhoneNumber
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Admin,
	phoneRepo repository.PhoneNumber,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		repo:       repo,
		phoneRepo:  phoneRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Register creates an admin. Once any admin exists the caller must be an
// authenticated level-zero admin; the very first admin must itself be level zero.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := s.authorizeRegistration(ctx, req)
	if err != nil {
		return res, err
	}

	exists, err := s.repo.Exist(ctx, phoneFilter(req.PhoneNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return res, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return res, failure.Unprocessable("phone number already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, numbers := req.ToModel(actor, hashedPassword)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if actor == constant.ContextGuest {
			taken, err := s.repo.LockBootstrapTx(ctx, tx)
			if err != nil {
				return err
			}

			if taken {
				return errBootstrapTaken
			}
		}

		if err := s.repo.InsertTx(ctx, tx, admin); err != nil {
			return err
		}

		return s.phoneRepo.InsertBulkTx(ctx, tx, numbers)
	})
	if err != nil {
		if errors.Is(err, errBootstrapTaken) {
			return res, failure.Unauthorized("Not authenticated")
		}

		if shared.IsUniqueViolation(err) {
			return res, failure.Unprocessable("phone number already registered")
		}

		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAdmin)

	res.FromModel(admin, numbers)

	return res, nil
}

func (s *serviceImpl) authorizeRegistration(ctx context.Context, req dto.RegisterRequest) (string, error) {
	anyAdmin, err := s.repo.AnyExist(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to check registered admins")

		return "", fmt.Errorf("failed to check registered admins: %w", err)
	}

	if !anyAdmin {
		if req.Level == nil || *req.Level != model.LevelZero {
			return "", failure.Unprocessable("the first admin must be level 0")
		}

		return constant.ContextGuest, nil
	}

	callerID, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	if callerID == constant.Empty {
		return "", failure.Unauthorized("Not authenticated")
	}

	callerLevel, ok := ctx.Value(constant.ContextKeyAdminLevel).(model.Level)
	if !ok || callerLevel != model.LevelZero {
		return "", failure.Forbidden("only level 0 admins can register admins")
	}

	return callerID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	prefix, cacheable := shared.CacheGeneration(ctx, s.cache, cacheGetAllAdmin)
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, gDto.FilterGroup{})

	if cacheable {
		if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for admins")

			return res, nil
		}
	}

	admins, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, fmt.Errorf("failed to get admins: %w", err)
	}

	ids := make([]string, len(admins))
	for i, admin := range admins {
		ids[i] = admin.ID
	}

	numbers, err := s.phoneRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumberAdminID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.PhoneNumberTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin phone numbers")

		return res, fmt.Errorf("failed to get admin phone numbers: %w", err)
	}

	res = dto.FromModels(admins, numbers)

	if cacheable {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save admins to cache")
			}
		}()
	}

	return res, nil
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
