package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса,
	// в том числе при любой попытке изменить терминальную запись
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
