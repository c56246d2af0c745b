package resolve_group_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonConsole/internal/compatibility"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	catalogClient "github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonConsole/pkg/ptr"
)

// UseCase use case подбора сотрудников для группового бронирования
type UseCase struct {
	roster   RosterProvider
	settings SettingsProvider
	catalog  CatalogClient
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roster RosterProvider,
	settings SettingsProvider,
	catalog CatalogClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roster:   roster,
		settings: settings,
		catalog:  catalog,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет подбор сотрудников
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveGroupStaff: company=%d, location=%d, members=%d, prefer_same=%t",
		req.CompanyID, req.LocationID, len(req.Members), req.PreferSameStaff)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveGroupStaff: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем компанию и точку
	company, err := uc.catalog.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			uc.logger.Warn("ResolveGroupStaff: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("ResolveGroupStaff: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if !company.HasLocation(req.LocationID) {
		uc.logger.Warn("ResolveGroupStaff: location id=%d not found in company id=%d", req.LocationID, req.CompanyID)
		return nil, ErrLocationNotFound
	}

	// 3. Настройки консоли (политика перехода к разным мастерам)
	settings, err := uc.settings.Resolve(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("ResolveGroupStaff: failed to get settings for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Участники группы
	members := buildMembers(req.Members)

	// 5. Услуги, выбранные участниками
	services, err := uc.loadServices(ctx, req.CompanyID, req.LocationID, members)
	if err != nil {
		return nil, err
	}

	// 6. Состав сотрудников
	roster, err := uc.roster.GetRoster(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("ResolveGroupStaff: failed to get roster for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get roster: %v", ErrInternal, err)
	}

	// 7. Подбор
	plan := compatibility.PlanAssignment(members, roster, req.LocationID, req.PreferSameStaff, settings.SameStaffFallback)

	if uc.metrics != nil {
		uc.metrics.ObserveStaffResolution(string(plan.Mode))
	}

	uc.logger.Info("ResolveGroupStaff: company=%d, location=%d, mode=%s, common_staff=%d, invalid_assignments=%d",
		req.CompanyID, req.LocationID, plan.Mode, len(plan.CommonStaff), len(plan.InvalidAssignments))

	return buildResponse(members, services, plan), nil
}

// loadServices получает каждую выбранную услугу один раз и проверяет точку и опции
func (uc *UseCase) loadServices(
	ctx context.Context,
	companyID, locationID int64,
	members []*domain.GroupMember,
) (map[int64]*domain.Service, error) {
	services := make(map[int64]*domain.Service)

	for _, serviceID := range compatibility.SelectedServiceIDs(members) {
		service, err := uc.catalog.GetService(ctx, companyID, serviceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("ResolveGroupStaff: service id=%d not found", serviceID)
				return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, serviceID)
			}
			uc.logger.Error("ResolveGroupStaff: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		if !service.AvailableAt(locationID) {
			uc.logger.Warn("ResolveGroupStaff: service id=%d not available at location id=%d", serviceID, locationID)
			return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotAvailableAtLocation, serviceID)
		}

		services[serviceID] = service
	}

	for _, m := range members {
		if !m.HasService() {
			continue
		}
		service := services[*m.ServiceID]
		for _, extraID := range m.ExtraIDs {
			if _, ok := service.FindExtra(extraID); !ok {
				return nil, fmt.Errorf("%w: extra id=%d, service id=%d", ErrExtraNotFound, extraID, service.ID)
			}
		}
	}

	return services, nil
}

func buildMembers(inputs []MemberInput) []*domain.GroupMember {
	members := make([]*domain.GroupMember, 0, len(inputs))
	for _, in := range inputs {
		m := domain.NewGroupMember(in.Name)
		if in.ID != uuid.Nil {
			m.ID = in.ID
		}
		if id := ptr.Value(in.ServiceID); id > 0 {
			m.ServiceID = ptr.Ptr(id)
		}
		if id := ptr.Value(in.StaffID); id > 0 {
			m.StaffID = ptr.Ptr(id)
		}
		m.ExtraIDs = append([]int64(nil), in.ExtraIDs...)
		members = append(members, m)
	}
	return members
}

func buildResponse(members []*domain.GroupMember, services map[int64]*domain.Service, plan compatibility.Plan) *Response {
	invalid := make(map[uuid.UUID]struct{}, len(plan.InvalidAssignments))
	for _, ia := range plan.InvalidAssignments {
		invalid[ia.MemberID] = struct{}{}
	}

	resp := &Response{
		Mode:            plan.Mode,
		CanUseSameStaff: plan.CanUseSameStaff,
		CommonStaff:     toOptions(plan.CommonStaff),
		Members:         make([]MemberResult, 0, len(members)),
	}

	for i, m := range members {
		_, isInvalid := invalid[m.ID]
		result := MemberResult{
			ID:         m.ID,
			Name:       m.Name,
			ServiceID:  m.ServiceID,
			StaffID:    m.StaffID,
			StaffValid: !isInvalid,
			Options:    toOptions(plan.Members[i].Staff),
		}

		if m.HasService() {
			service := services[*m.ServiceID]
			result.ServiceName = ptr.Ptr(service.Name)
			result.DurationMinutes = service.DurationMinutes
			result.Price = memberPrice(service, m.ExtraIDs)
		}

		resp.Total += result.Price
		resp.Members = append(resp.Members, result)
	}

	return resp
}

// memberPrice цена услуги с выбранными опциями
func memberPrice(service *domain.Service, extraIDs []int64) float64 {
	price := service.Price
	for _, id := range extraIDs {
		if extra, ok := service.FindExtra(id); ok {
			price += extra.Price
		}
	}
	return price
}

func toOptions(staff []*domain.StaffMember) []StaffOption {
	options := make([]StaffOption, 0, len(staff))
	for _, s := range staff {
		options = append(options, StaffOption{ID: s.ID, Name: s.Name})
	}
	return options
}
