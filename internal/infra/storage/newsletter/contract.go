package newsletter

import "github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
