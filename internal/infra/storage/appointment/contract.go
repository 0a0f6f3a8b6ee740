package appointment

import (
	"github.com/m04kA/JBarber-BookingService/pkg/dbmetrics"
)

// DBExecutor интерфейс исполнителя запросов из dbmetrics.
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
