// Package timefmt нормализует пользовательский ввод времени к формату БД
// и считает границу недельного окна для уведомлений.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// To24Hour переводит строку вида "H:MM AM"/"H:MM PM" (регистр модификатора
// не важен) или уже 24-часовую "HH:MM" в "HH:MM:00".
//
// Правила: PM и час < 12 -> +12; AM и час == 12 -> 0. Кривой ввод
// (нет двоеточия, нечисловые части, час/минута вне диапазона) - ошибка,
// а не молча неправильное время.
func To24Hour(s string) (string, error) {
	clock := strings.TrimSpace(s)
	modifier := ""

	if idx := strings.IndexByte(clock, ' '); idx >= 0 {
		modifier = strings.ToUpper(strings.TrimSpace(clock[idx+1:]))
		clock = clock[:idx]
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time format: %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid time format: %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid time format: %q", s)
	}

	switch modifier {
	case "AM":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("invalid time format: %q", s)
		}
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("invalid time format: %q", s)
		}
		if hours < 12 {
			hours += 12
		}
	case "":
		// уже 24-часовой формат
		if hours < 0 || hours > 23 {
			return "", fmt.Errorf("invalid time format: %q", s)
		}
	default:
		return "", fmt.Errorf("invalid time format: %q", s)
	}

	if minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("invalid time format: %q", s)
	}

	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

// StartOfWeek возвращает ближайший прошедший понедельник 00:00 в локации t.
// Воскресенье откатывается на шесть дней назад.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday()) // 0=Sunday, 1=Monday ...
	diff := day - 1
	if day == 0 {
		diff = 6
	}
	monday := t.AddDate(0, 0, -diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
