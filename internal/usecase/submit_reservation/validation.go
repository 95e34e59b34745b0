package submit_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

var validate = validator.New()

// normalize обрезает пробелы во всех текстовых полях
func normalize(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.Location = strings.TrimSpace(req.Location)
	req.Message = strings.TrimSpace(req.Message)
}

// validateRequest проверяет обязательные поля и ограничения длины
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}

// validateDate проверяет, что дата попадает в окно записи [сегодня+minLeadDays, сегодня+horizonMonths]
func validateDate(date, now time.Time, minLeadDays, horizonMonths int) error {
	today := dateOnly(now)
	earliest := today.AddDate(0, 0, minLeadDays)
	latest := today.AddDate(0, horizonMonths, 0)

	if date.Before(earliest) {
		return fmt.Errorf("%w: date must be on or after %s", ErrValidation, earliest.Format(domain.DateFormat))
	}
	if date.After(latest) {
		return fmt.Errorf("%w: date must be on or before %s", ErrValidation, latest.Format(domain.DateFormat))
	}
	return nil
}

// validateSlot проверяет слот относительно длительности услуги
func validateSlot(raw string, service domain.Service, grid SlotGrid) (types.TimeString, error) {
	if !service.RequiresSlot() {
		if raw != "" {
			return "", fmt.Errorf("%w: service %s does not take a time slot", ErrValidation, service.ID)
		}
		return "", nil
	}

	if raw == "" {
		return "", fmt.Errorf("%w: time slot is required for service %s", ErrValidation, service.ID)
	}

	slot, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !grid.Contains(slot) {
		return "", fmt.Errorf("%w: %s is not an offered time slot", ErrValidation, slot)
	}

	return slot, nil
}

// dateOnly отбрасывает время, сохраняя календарную дату в UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
