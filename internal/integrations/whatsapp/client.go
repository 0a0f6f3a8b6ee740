// Package whatsapp исходящая связь с барбером после успешного бронирования.
// Две механики: wa.me deep link (возвращается клиенту всегда) и серверная
// отправка через Twilio (опционально). Обе работают best-effort: их сбой никогда
// не откатывает созданную запись.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// messageSender часть Twilio API, которую использует клиент (для подмены в тестах)
type messageSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client клиент исходящих WhatsApp-сообщений
type Client struct {
	barberPhone string // номер барбера в международном формате без "+" ("50256927575")
	from        string // Twilio-отправитель, формат "whatsapp:+1415..."
	enabled     bool
	api         messageSender
	log         Logger
}

// NewClient создает клиент. При enabled=false серверная отправка выключена,
// но построение wa.me ссылок работает всегда.
func NewClient(barberPhone string, enabled bool, accountSID, authToken, from string, log Logger) *Client {
	c := &Client{
		barberPhone: barberPhone,
		from:        from,
		enabled:     enabled,
		log:         log,
	}

	if enabled {
		rest := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		c.api = rest.Api
	}

	return c
}

// ComposeMessage собирает текст сообщения барберу (формат исходного приложения)
func ComposeMessage(clientName string, date types.DateString, slot types.SlotLabel, phone string) string {
	return fmt.Sprintf(
		"Hola, soy *%s*. 👋\nAcabo de reservar mi corte en la web para el día *%s* a las *%s*.\nMi número es: %s. ¡Nos vemos! 💈",
		clientName, date, slot, phone,
	)
}

// BuildLink строит wa.me deep link, который клиент открывает после бронирования
func (c *Client) BuildLink(clientName string, date types.DateString, slot types.SlotLabel, phone string) string {
	msg := ComposeMessage(clientName, date, slot, phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.barberPhone, url.QueryEscape(msg))
}

// Send отправляет сообщение барберу через Twilio WhatsApp API.
// Возвращает ErrDisabled, если отправка выключена в конфигурации.
func (c *Client) Send(ctx context.Context, clientName string, date types.DateString, slot types.SlotLabel, phone string) error {
	if !c.enabled || c.api == nil {
		return ErrDisabled
	}

	// Twilio SDK не принимает context, поэтому проверяем отмену хотя бы до вызова
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	body := ComposeMessage(clientName, date, slot, phone)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + c.barberPhone)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	c.log.Info("WhatsApp message sent to barber, sid=%s", sid)

	return nil
}
