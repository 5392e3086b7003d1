package create_stylist

// CreateStylistRequest HTTP запрос на добавление мастера
type CreateStylistRequest struct {
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
}

// CreateStylistResponse HTTP ответ на добавление мастера
type CreateStylistResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
