package resolve_group_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonConsole/internal/api/handlers"
	"github.com/m04kA/SMC-SalonConsole/internal/usecase/resolve_group_staff"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidLocationID  = "некорректный ID точки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCompanyNotFound    = "компания не найдена"
	msgLocationNotFound   = "точка не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceNotAtPlace  = "услуга недоступна на этой точке"
	msgExtraNotFound      = "дополнительная опция не найдена"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/locations/{locationId}/group-bookings/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /group-bookings/staff - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /group-bookings/staff - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Декодируем body
	var req ResolveGroupStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /group-bookings/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(companyID, locationID)
	if err != nil {
		h.logger.Warn("POST /group-bookings/staff - Invalid member: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, resolve_group_staff.ErrInvalidInput):
			h.logger.Warn("POST /group-bookings/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, resolve_group_staff.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, resolve_group_staff.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, resolve_group_staff.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, resolve_group_staff.ErrServiceNotAvailableAtLocation):
			handlers.RespondUnprocessable(w, msgServiceNotAtPlace)

		case errors.Is(err, resolve_group_staff.ErrExtraNotFound):
			handlers.RespondUnprocessable(w, msgExtraNotFound)

		default:
			h.logger.Error("POST /group-bookings/staff - Failed to resolve staff: company_id=%d, location_id=%d, error=%v",
				companyID, locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /group-bookings/staff - Staff resolved: company_id=%d, location_id=%d, mode=%s",
		companyID, locationID, result.Mode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
