package whatsapp

// Message исходящее сообщение для шлюза WhatsApp
type Message struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
