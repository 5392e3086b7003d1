package create_service

// CreateServiceRequest HTTP запрос на добавление услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Duration    int     `json:"duration"` // минуты
	Price       float64 `json:"price"`
	Category    *string `json:"category,omitempty"`
}

// CreateServiceResponse HTTP ответ на добавление услуги
type CreateServiceResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
