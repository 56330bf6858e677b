package get_free_slots

// Request модель запроса свободных слотов
type Request struct {
	BarberID int64  // ID барбера
	Date     string // Дата в формате "2006-01-02"
}

// Response модель ответа со свободными слотами
type Response struct {
	BarberID int64    // ID барбера
	Date     string   // Дата запроса
	Slots    []string // Упорядоченные времена начала свободных слотов
}
