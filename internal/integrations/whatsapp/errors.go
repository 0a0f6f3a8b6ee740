package whatsapp

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки сообщения через Twilio.
	// Отправка выполняется best-effort: вызывающая сторона логирует ошибку и продолжает работу.
	ErrSendFailed = errors.New("whatsapp client: failed to send message")

	// ErrDisabled возвращается при попытке отправки, когда Twilio выключен в конфигурации
	ErrDisabled = errors.New("whatsapp client: twilio sending is disabled")
)
