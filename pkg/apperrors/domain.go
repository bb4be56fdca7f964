package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для доменных ошибок бронирования.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (для оборачивания ошибок из репозиториев)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (для частых, статичных ошибок)
// =========================================================================

// ErrUserNotFound - пользователь с указанным email не существует.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrBookingNotFound - бронирование с указанным id не существует.
var ErrBookingNotFound = New(
	CodeNotFound,
	"booking",
	"Booking not found",
	http.StatusNotFound,
)

// ErrReviewNotFound - отзыв не найден.
var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

// ErrSlotTaken - слот (дата+время) уже занят другим бронированием.
// Текст фиксированный: клиенту нужен контакт для ручного разруливания.
// Код 400, а не 409 - так отвечал прежний бэкенд, фронт завязан на это.
var ErrSlotTaken = New(
	CodeConflict,
	"booking",
	"Sorry, the event is already booked. Please contact the admin at 9344016076",
	http.StatusBadRequest,
)

// ErrEmailAlreadyRegistered - email уже зарегистрирован (400 по контракту).
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidAdminCredentials - то же для админского входа.
var ErrInvalidAdminCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid admin credentials",
	http.StatusUnauthorized,
)

// ErrInvalidBookingStatus - переданный booking_status вне допустимого набора.
var ErrInvalidBookingStatus = New(
	CodeInvalidStatus,
	"booking",
	"Invalid booking_status value",
	http.StatusBadRequest,
)
