package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStylistNotFound возвращается, когда мастер не найден, неактивен
	// или принадлежит другому салону
	ErrStylistNotFound = errors.New("create_appointment: stylist not found")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время начала вне рабочего окна
	// или не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotConflict возвращается, когда интервал пересекается с
	// существующей активной записью мастера
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
