package kos

import (
	"net/http"

	"kosan/infras/otel"
	"kosan/internal/domains/kos/model"
	"kosan/internal/domains/kos/model/dto"
	"kosan/internal/domains/kos/service"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/validator"
	"kosan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Kos
	otel    otel.Otel
}

func New(service service.Kos, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/kos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetKosList)
		routerGroup.Get("/{id}", handler.GetKosByID)
		routerGroup.Post("/", handler.CreateKos)
	})
}

// GetKosList lists kos with facilities and live room availability.
// @Summary Get all kos
// @Description Retrieve all kos with facilities and available room counts.
// @Tags Kos
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetKosListResponse] "List of kos"
// @Failure 500 {object} response.Error
// @Router /kos [get]
func (handler *Handler) GetKosList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKosList")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    request.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kos list")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos list retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetKosByID returns one kos with facilities, images and availability.
// @Summary Get a kos by ID
// @Description Retrieve a kos by its unique identifier.
// @Tags Kos
// @Produce json
// @Param id path string true "Kos ID"
// @Success 200 {object} response.Data[dto.KosResponse] "Kos details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kos/{id} [get]
func (handler *Handler) GetKosByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKosByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id, false)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateKos creates a kos with optional facility attachments.
// @Summary Create a kos
// @Description Create a new kos; the facility field, when present, must be an array of facility ids.
// @Tags Kos
// @Accept json
// @Produce json
// @Param request body dto.CreateKosRequest true "Create Kos Request"
// @Success 201 {object} response.Data[dto.KosResponse] "Created kos"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /kos [post]
// @Security BearerAuth
func (handler *Handler) CreateKos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateKos")
	defer scope.End()

	req := dto.CreateKosRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}
