package resolve_group_staff

import (
	"fmt"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if len(req.Members) == 0 {
		return fmt.Errorf("%w: at least one member is required", ErrInvalidInput)
	}

	if len(req.Members) > domain.MaxGroupMembers {
		return fmt.Errorf("%w: group cannot have more than %d members", ErrInvalidInput, domain.MaxGroupMembers)
	}

	for i, m := range req.Members {
		if m.ServiceID != nil && *m.ServiceID < 0 {
			return fmt.Errorf("%w: members[%d].serviceId must not be negative", ErrInvalidInput, i)
		}
		if m.StaffID != nil && *m.StaffID < 0 {
			return fmt.Errorf("%w: members[%d].staffId must not be negative", ErrInvalidInput, i)
		}
		if len(m.ExtraIDs) > 0 && (m.ServiceID == nil || *m.ServiceID == 0) {
			return fmt.Errorf("%w: members[%d] has extras without a service", ErrInvalidInput, i)
		}
	}

	return nil
}
