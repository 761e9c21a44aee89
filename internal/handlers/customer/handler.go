package customer

import (
	"net/http"
	"primecm/infras/otel"
	"primecm/internal/domains/customer/model"
	"primecm/internal/domains/customer/model/dto"
	"primecm/internal/domains/customer/service"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/validator"
	"primecm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableColumns = []string{
	constant.FieldCreatedAt,
	model.FieldFirstName,
	model.FieldLastName,
	model.FieldPhoneNumber,
	model.FieldBusinessName,
}

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateCustomer)
		routerGroup.Put("/update", handler.UpdateCustomer)
		routerGroup.Get("/search", handler.SearchCustomers)
		routerGroup.Get("/all", handler.GetCustomers)
	})
}

// CreateCustomer registers a customer
// @Summary Create a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 201 {object} response.Data[dto.CustomerResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/create [post]
// @Security BearerAuth
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateCustomer changes the customer registered under phone_number
// @Summary Update a customer
// @Description Only supplied fields change. new_phone_number moves the customer to another number; other_number replaces the secondary numbers.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Data[dto.CustomerResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/update [put]
// @Security BearerAuth
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	req := dto.UpdateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SearchCustomers lists customers matching every supplied field exactly
// @Summary Search customers
// @Tags Customer
// @Produce json
// @Param firstname query string false "First name"
// @Param lastname query string false "Last name"
// @Param email query string false "Email"
// @Param phone_number query string false "Phone number"
// @Param address query string false "Address"
// @Param gender query string false "male or female"
// @Param religion query string false "christian or muslim"
// @Param business_name query string false "Business name"
// @Param sort_by query string false "created_at, firstname, lastname, phone_number or business_name"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[[]dto.CustomerResponse]
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/search [get]
// @Security BearerAuth
func (handler *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, sortableColumns...)

	req := dto.SearchCustomerRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search filters")

		response.WithError(w, err)

		return
	}

	customers, err := handler.service.Search(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomers lists every customer
// @Summary List customers
// @Tags Customer
// @Produce json
// @Param sort_by query string false "created_at, firstname, lastname, phone_number or business_name"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[[]dto.CustomerResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/all [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, sortableColumns...)

	customers, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}
