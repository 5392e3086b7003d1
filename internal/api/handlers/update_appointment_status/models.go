package update_appointment_status

// UpdateStatusRequest HTTP запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}
