package whatsapp

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

type fakeSender struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeSender) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestComposeMessage(t *testing.T) {
	msg := ComposeMessage("Ana García", types.DateString("2024-05-01"), types.SlotLabel("09:00 AM"), "50211112222")

	assert.Contains(t, msg, "Hola, soy *Ana García*")
	assert.Contains(t, msg, "*2024-05-01*")
	assert.Contains(t, msg, "*09:00 AM*")
	assert.Contains(t, msg, "50211112222")
}

func TestClient_BuildLink(t *testing.T) {
	c := NewClient("50256927575", false, "", "", "", nopLogger{})

	link := c.BuildLink("Ana", types.DateString("2024-05-01"), types.SlotLabel("09:00 AM"), "50211112222")

	require.True(t, strings.HasPrefix(link, "https://wa.me/50256927575?text="))

	// Текст обязан быть URL-безопасным и декодироваться обратно в сообщение
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Equal(t, ComposeMessage("Ana", "2024-05-01", "09:00 AM", "50211112222"), text)
}

func TestClient_Send_Disabled(t *testing.T) {
	c := NewClient("50256927575", false, "", "", "", nopLogger{})

	err := c.Send(context.Background(), "Ana", "2024-05-01", "09:00 AM", "50211112222")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestClient_Send(t *testing.T) {
	sender := &fakeSender{}
	c := &Client{
		barberPhone: "50256927575",
		from:        "whatsapp:+14155238886",
		enabled:     true,
		api:         sender,
		log:         nopLogger{},
	}

	err := c.Send(context.Background(), "Ana", "2024-05-01", "09:00 AM", "50211112222")
	require.NoError(t, err)

	require.NotNil(t, sender.params)
	assert.Equal(t, "whatsapp:+50256927575", *sender.params.To)
	assert.Equal(t, "whatsapp:+14155238886", *sender.params.From)
	assert.Contains(t, *sender.params.Body, "Hola, soy *Ana*")
}

func TestClient_Send_APIError(t *testing.T) {
	sender := &fakeSender{err: errors.New("401 unauthorized")}
	c := &Client{
		barberPhone: "50256927575",
		enabled:     true,
		api:         sender,
		log:         nopLogger{},
	}

	err := c.Send(context.Background(), "Ana", "2024-05-01", "09:00 AM", "50211112222")
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestClient_Send_CancelledContext(t *testing.T) {
	c := &Client{
		barberPhone: "50256927575",
		enabled:     true,
		api:         &fakeSender{},
		log:         nopLogger{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Send(ctx, "Ana", "2024-05-01", "09:00 AM", "50211112222")
	assert.ErrorIs(t, err, ErrSendFailed)
}
