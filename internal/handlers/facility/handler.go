package facility

import (
	"net/http"

	"kosan/infras/otel"
	"kosan/internal/domains/facility/model"
	"kosan/internal/domains/facility/model/dto"
	"kosan/internal/domains/facility/service"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/validator"
	"kosan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facility", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Post("/", handler.CreateFacility)
	})
}

// GetFacilities lists facilities.
// @Summary Get all facilities
// @Description Retrieve all facilities with pagination.
// @Tags Facility
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 500 {object} response.Error
// @Router /facility [get]
func (handler *Handler) GetFacilities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
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
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateFacility creates a new facility.
// @Summary Create a facility
// @Description Create a new facility with a unique name. Admin only.
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /facility [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility created successfully")

	response.WithMessage(writer, http.StatusCreated, "Facility created successfully")
}
