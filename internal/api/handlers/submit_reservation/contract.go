package submit_reservation

import (
	"context"

	submitReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/submit_reservation"
)

type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
