package salon

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon.repository: salon not found")

	// ErrHoursNotConfigured возвращается, когда для дня недели нет строки
	// рабочих часов. Трактуется идентично выходному дню.
	ErrHoursNotConfigured = errors.New("salon.repository: working hours not configured for weekday")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("salon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("salon.repository: failed to scan row")
)
