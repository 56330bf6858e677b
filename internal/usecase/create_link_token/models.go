package create_link_token

// Request модель запроса на выпуск токена персональной ссылки
type Request struct {
	Phone   string // Телефон клиента
	BaseURL string // Базовый адрес страницы записи для сборки ссылки
}

// Response модель ответа с выпущенным токеном
type Response struct {
	Token string // Выпущенный токен
	Link  string // Персональная ссылка для клиента
}
