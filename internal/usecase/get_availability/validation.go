package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID == "" {
		return fmt.Errorf("%w: stylistID must not be empty", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID must not be empty", ErrInvalidInput)
	}

	return nil
}
