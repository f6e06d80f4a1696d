package rent

import (
	"net/http"

	"kosan/infras/otel"
	"kosan/internal/domains/kamar/model/dto"
	"kosan/internal/domains/kamar/service"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/validator"
	"kosan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Kamar
	otel    otel.Otel
}

func New(service service.Kamar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rent", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Rent)
		routerGroup.Get("/self", handler.GetOwnRents)
		routerGroup.Get("/{id}", handler.GetRentByID)
	})
}

// Rent books the first available kamar of a kos for the caller.
// @Summary Rent a kamar
// @Description Book the first available kamar of the given kos for the authenticated user.
// @Tags Rent
// @Accept json
// @Produce json
// @Param request body dto.RentRequest true "Rent Request"
// @Success 201 {object} response.Data[dto.RentResponse] "Booked kamar"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rent [post]
// @Security BearerAuth
func (handler *Handler) Rent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rent")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.RentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Rent(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rent kamar")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kamar rented successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnRents lists the caller's rented kamars.
// @Summary Get own rents
// @Description Retrieve the authenticated user's rented kamars with kos details.
// @Tags Rent
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRentsResponse] "List of rents"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rent/self [get]
// @Security BearerAuth
func (handler *Handler) GetOwnRents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRents")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetSelf(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own rents")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rents retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRentByID returns a rent by id, scoped to the caller's role.
// @Summary Get a rent by ID
// @Description Admins can fetch any rent; other users only their own.
// @Tags Rent
// @Produce json
// @Param id path string true "Rent ID"
// @Success 200 {object} response.Data[dto.RentResponse] "Rent details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rent/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	res, err := handler.service.Get(ctx, id, userID, role)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rent")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rent retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
