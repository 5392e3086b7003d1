package get_availability

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_availability: salon not found")

	// ErrStylistNotFound возвращается, когда запрошенный мастер не найден
	// среди активных мастеров салона
	ErrStylistNotFound = errors.New("get_availability: stylist not found")

	// ErrServiceNotFound возвращается, когда запрошенная услуга не найдена
	// среди активных услуг салона
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
