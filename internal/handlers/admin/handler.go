package admin

import (
	"net/http"

	"kosan/infras/otel"
	facilityModel "kosan/internal/domains/facility/model"
	facilityDto "kosan/internal/domains/facility/model/dto"
	facilityService "kosan/internal/domains/facility/service"
	imageDto "kosan/internal/domains/imagekosan/model/dto"
	imageService "kosan/internal/domains/imagekosan/service"
	rentDto "kosan/internal/domains/kamar/model/dto"
	rentService "kosan/internal/domains/kamar/service"
	kosModel "kosan/internal/domains/kos/model"
	kosDto "kosan/internal/domains/kos/model/dto"
	kosService "kosan/internal/domains/kos/service"
	userDto "kosan/internal/domains/user/model/dto"
	userService "kosan/internal/domains/user/service"
	"kosan/shared/constant"
	gDto "kosan/shared/dto"
	"kosan/shared/validator"
	"kosan/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	kosService      kosService.Kos
	facilityService facilityService.Facility
	rentService     rentService.Kamar
	imageService    imageService.ImageKosan
	userService     userService.User
	otel            otel.Otel
}

func New(
	kosService kosService.Kos,
	facilityService facilityService.Facility,
	rentService rentService.Kamar,
	imageService imageService.ImageKosan,
	userService userService.User,
	otel otel.Otel,
) Handler {
	return Handler{
		kosService:      kosService,
		facilityService: facilityService,
		rentService:     rentService,
		imageService:    imageService,
		userService:     userService,
		otel:            otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Route("/kos", func(kosGroup chi.Router) {
			kosGroup.Get("/", handler.GetKosList)
			kosGroup.Post("/", handler.CreateKos)
			kosGroup.Get("/{id}", handler.GetKosByID)
			kosGroup.Put("/{id}", handler.UpdateKos)
			kosGroup.Delete("/{id}", handler.DeleteKos)
			kosGroup.Post("/{id}/image", handler.UploadKosImage)
			kosGroup.Get("/{id}/image", handler.GetKosImages)
			kosGroup.Delete("/image/{imageId}", handler.DeleteKosImage)
		})

		routerGroup.Route("/facility", func(facilityGroup chi.Router) {
			facilityGroup.Get("/", handler.GetFacilities)
			facilityGroup.Post("/", handler.CreateFacility)
			facilityGroup.Put("/{id}", handler.UpdateFacility)
			facilityGroup.Delete("/{id}", handler.DeleteFacility)
		})

		routerGroup.Route("/rent", func(rentGroup chi.Router) {
			rentGroup.Get("/", handler.GetRents)
			rentGroup.Get("/{id}", handler.GetRentByID)
			rentGroup.Put("/{id}", handler.UpdateRentStatus)
		})

		routerGroup.Route("/user", func(userGroup chi.Router) {
			userGroup.Get("/", handler.GetUsers)
			userGroup.Delete("/{id}", handler.DeleteUser)
		})
	})
}

// CreateKos creates a kos and seeds its kamar inventory.
// @Summary Create a kos with kamars
// @Description Create a kos and bulk-create stockKamar kamars numbered K1..Kn, all available.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body kosDto.CreateKosRequest true "Create Kos Request"
// @Success 201 {object} response.Data[kosDto.KosResponse] "Created kos with kamars"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos [post]
// @Security BearerAuth
func (handler *Handler) CreateKos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateKos")
	defer scope.End()

	req := kosDto.CreateKosRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.kosService.CreateWithRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetKosList lists kos for the admin surface.
// @Summary Get all kos (admin)
// @Description Retrieve all kos with facilities and available room counts.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[kosDto.GetKosListResponse] "List of kos"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos [get]
// @Security BearerAuth
func (handler *Handler) GetKosList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKosList")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    kosModel.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    request.URL.Query().Get(kosModel.FieldName),
				Table:    kosModel.TableName,
			},
		},
	}

	res, err := handler.kosService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kos list")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos list retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetKosByID returns one kos with facilities, images, kamars and availability.
// @Summary Get a kos by ID (admin)
// @Description Retrieve a kos including its full kamar list.
// @Tags Admin
// @Produce json
// @Param id path string true "Kos ID"
// @Success 200 {object} response.Data[kosDto.KosResponse] "Kos details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetKosByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKosByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.kosService.Get(ctx, id, true)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateKos replaces all kos fields.
// @Summary Update a kos by ID
// @Description Update a kos; all fields are required.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Kos ID"
// @Param request body kosDto.UpdateKosRequest true "Update Kos Request"
// @Success 200 {object} response.Message "Kos updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateKos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateKos")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := kosDto.UpdateKosRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.kosService.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos updated successfully")

	response.WithMessage(writer, http.StatusOK, "Kos updated successfully")
}

// DeleteKos deletes a kos and everything attached to it.
// @Summary Delete a kos by ID
// @Description Delete a kos; kamars, facility joins and images cascade.
// @Tags Admin
// @Produce json
// @Param id path string true "Kos ID"
// @Success 200 {object} response.Message "Kos deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteKos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteKos")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.kosService.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete kos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Kos deleted successfully")
}

// UploadKosImage uploads a kos image to S3 and records it.
// @Summary Upload a kos image
// @Description Upload an image for a kos (multipart field "image").
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Kos ID"
// @Param image formData file true "Image file"
// @Success 201 {object} response.Data[imageDto.ImageKosanResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadKosImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadKosImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	req := imageDto.UploadImageRequest{}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.imageService.Upload(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload kos image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos image uploaded successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetKosImages lists the images of a kos.
// @Summary Get kos images
// @Description Retrieve all images recorded for a kos.
// @Tags Admin
// @Produce json
// @Param id path string true "Kos ID"
// @Success 200 {object} response.Data[imageDto.GetImageKosansResponse] "List of images"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/{id}/image [get]
// @Security BearerAuth
func (handler *Handler) GetKosImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKosImages")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.imageService.GetByKos(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kos images")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos images retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteKosImage removes a kos image and its S3 object.
// @Summary Delete a kos image
// @Description Delete a kos image by its id; the S3 object is removed as well.
// @Tags Admin
// @Produce json
// @Param imageId path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/kos/image/{imageId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteKosImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteKosImage")
	defer scope.End()

	imageID := chi.URLParam(request, "imageId")

	if err := handler.imageService.Delete(ctx, imageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete kos image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Kos image deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Image deleted successfully")
}

// GetFacilities lists facilities for the admin surface.
// @Summary Get all facilities (admin)
// @Description Retrieve all facilities with pagination.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[facilityDto.GetFacilitiesResponse] "List of facilities"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/facility [get]
// @Security BearerAuth
func (handler *Handler) GetFacilities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    facilityModel.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    request.URL.Query().Get(facilityModel.FieldName),
				Table:    facilityModel.TableName,
			},
		},
	}

	res, err := handler.facilityService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facilities retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateFacility creates a facility.
// @Summary Create a facility (admin)
// @Description Create a new facility with a unique name.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body facilityDto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/facility [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := facilityDto.CreateFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.facilityService.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility created successfully")

	response.WithMessage(writer, http.StatusCreated, "Facility created successfully")
}

// UpdateFacility renames a facility.
// @Summary Update a facility by ID
// @Description Update a facility's name.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body facilityDto.UpdateFacilityRequest true "Update Facility Request"
// @Success 200 {object} response.Message "Facility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/facility/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := facilityDto.UpdateFacilityRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.facilityService.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility updated successfully")

	response.WithMessage(writer, http.StatusOK, "Facility updated successfully")
}

// DeleteFacility deletes a facility.
// @Summary Delete a facility by ID
// @Description Delete a facility by its unique identifier.
// @Tags Admin
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Message "Facility deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/facility/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFacility")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.facilityService.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Facility deleted successfully")
}

// GetRents lists all kamars with kos and tenant details.
// @Summary Get all rents
// @Description Retrieve all kamars joined with kos and tenant information.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[rentDto.GetRentsResponse] "List of rents"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/rent [get]
// @Security BearerAuth
func (handler *Handler) GetRents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.rentService.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rents")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rents retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRentByID returns any rent by id.
// @Summary Get a rent by ID (admin)
// @Description Retrieve any kamar with kos and tenant details.
// @Tags Admin
// @Produce json
// @Param id path string true "Rent ID"
// @Success 200 {object} response.Data[rentDto.RentResponse] "Rent details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/rent/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.rentService.AdminGet(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rent")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rent retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUsers lists all user accounts.
// @Summary Get all users
// @Description Retrieve all user accounts with pagination.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[userDto.GetUsersResponse] "List of users"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/user [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	var res userDto.GetUsersResponse

	res, err := handler.userService.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteUser removes a user account.
// @Summary Delete a user by ID
// @Description Delete a user account; booked kamars keep their rows with the tenant cleared.
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/user/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.userService.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User deleted successfully")

	response.WithMessage(writer, http.StatusOK, "User deleted successfully")
}

// UpdateRentStatus force-sets a kamar's status.
// @Summary Update rent status
// @Description Set a kamar's status; available clears the tenant and rental period.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Rent ID"
// @Param request body rentDto.UpdateRentStatusRequest true "Update Rent Status Request"
// @Success 200 {object} response.Message "Rent updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/rent/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRentStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := rentDto.UpdateRentStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.rentService.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rent status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rent updated successfully")

	response.WithMessage(writer, http.StatusOK, "Rent updated successfully")
}
