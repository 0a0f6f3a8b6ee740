package domain

// DefaultCancellationReason подставляется, когда причина отмены не указана
const DefaultCancellationReason = "Cancelada por el administrador"

// Business validation constants
const (
	MaxClientNameLength         = 120
	MaxPhoneLength              = 30
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
