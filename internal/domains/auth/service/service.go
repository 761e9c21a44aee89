package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"primecm/config"
	"primecm/infras/jwt"
	"primecm/infras/otel"
	adminModel "primecm/internal/domains/admin/model"
	adminRepo "primecm/internal/domains/admin/repository"
	"primecm/internal/domains/auth/model"
	"primecm/internal/domains/auth/model/dto"
	"primecm/internal/domains/auth/repository"
	"primecm/shared"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/failure"
	"primecm/shared/password"
	"primecm/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Authenticate(ctx context.Context, phoneNumber, password string) (*adminModel.Admin, error)
	CreateAccessToken(ctx context.Context, admin adminModel.Admin) (dto.AccessToken, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Resolve(ctx context.Context, bearer string) (dto.Identity, error)
}

type serviceImpl struct {
	adminRepo  adminRepo.Admin
	tokenRepo  repository.AccessToken
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(adminRepo adminRepo.Admin, tokenRepo repository.AccessToken, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		adminRepo:  adminRepo,
		tokenRepo:  tokenRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Authenticate returns the admin registered under phoneNumber when password
// matches its hash. An unknown phone number or a wrong password yields nil, not an error.
func (s *serviceImpl) Authenticate(ctx context.Context, phoneNumber, pass string) (res *adminModel.Admin, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.adminRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    adminModel.FieldPhoneNumber,
				Value:    phoneNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    adminModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		log.Warn().Str("phone_number", phoneNumber).Msg("login attempt with unknown phone number")

		return nil, nil
	}

	if err := password.Verify(pass, admin.HashedPassword); err != nil {
		log.Warn().Str("phone_number", phoneNumber).Msg("login attempt with wrong password")

		return nil, nil
	}

	return &admin, nil
}

// CreateAccessToken stores a new token for admin, superseding any previous
// one, and signs the bearer string that refers to it.
func (s *serviceImpl) CreateAccessToken(ctx context.Context, admin adminModel.Admin) (res dto.AccessToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAccessToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	issuedAt := timezone.Now()
	token := model.AccessToken{
		ID:             uuid.NewString(),
		AdminID:        admin.ID,
		IssuedAt:       issuedAt,
		ExpirationDate: issuedAt.Add(time.Duration(s.cfg.JWT.AccessExpireMin) * time.Minute),
	}

	signed, err := s.jwtService.Sign(token.ID, token.AdminID, token.IssuedAt, token.ExpirationDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign access token")

		return res, fmt.Errorf("failed to sign access token: %w", err)
	}

	if err = s.tokenRepo.Upsert(ctx, token); err != nil {
		log.Error().Err(err).Msg("failed to store access token")

		return res, fmt.Errorf("failed to store access token: %w", err)
	}

	res.FromModel(token, signed)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return res, err
	}

	if admin == nil {
		return res, failure.InvalidCredentials
	}

	token, err := s.CreateAccessToken(ctx, *admin)
	if err != nil {
		return res, err
	}

	res.FromAccessToken(token)

	return res, nil
}

// Resolve maps a bearer string to the admin it was issued to. The token must
// verify and its row must still exist for the same admin, unexpired. Every
// rejection is reported as InvalidToken.
func (s *serviceImpl) Resolve(ctx context.Context, bearer string) (res dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.Parse(bearer)
	if err != nil {
		log.Warn().Err(err).Msg("rejected bearer token")

		return res, failure.InvalidToken
	}

	token, err := s.tokenRepo.Get(ctx, shared.FilterByID(claims.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get access token")

		return res, failure.InvalidToken
	}

	if token.ID == constant.Empty || token.AdminID != claims.AdminID {
		log.Warn().Str("token_id", claims.ID).Msg("bearer token has no live record")

		return res, failure.InvalidToken
	}

	if token.ExpiredAt(timezone.Now()) {
		log.Warn().Str("token_id", claims.ID).Msg("bearer token expired")

		return res, failure.InvalidToken
	}

	admin, err := s.adminRepo.Get(ctx, shared.FilterByID(token.AdminID, adminModel.FieldID, adminModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, failure.InvalidToken
	}

	if admin.ID == constant.Empty {
		return res, failure.InvalidToken
	}

	res.FromModel(admin, token.ID)

	return res, nil
}
