package auth

import (
	"encoding/json"
	"net/http"
	"primecm/infras/otel"
	"primecm/internal/domains/auth/model/dto"
	"primecm/internal/domains/auth/service"
	"primecm/shared/constant"
	"primecm/shared/failure"
	"primecm/shared/validator"
	"primecm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/token", handler.Login)
}

// Login exchanges admin credentials for a bearer token
// @Summary Issue an access token
// @Description OAuth2 password form. The username is the admin's phone number. A new token replaces the admin's previous one.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Phone number"
// @Param password formData string true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/token [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse login form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.LoginRequest{
		Username: r.PostForm.Get(constant.RequestFormUsername),
		Password: r.PostForm.Get(constant.RequestFormPassword),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate login form")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access token issued")

	// OAuth2 clients expect the bare token object, not the data envelope
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("failed to write token response")
	}
}
