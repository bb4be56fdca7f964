package validator

import (
	"log"

	"photobook_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - это ошибка времени запуска,
			// приложение с ней стартовать не должно.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-booking-status': значение входит в набор статусов бронирования
	mustRegister("is-booking-status", validateBookingStatus)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения - забота 'required'
	}
	return models.IsValidBookingStatus(value)
}
