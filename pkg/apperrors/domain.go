package apperrors

import (
	"net/http"
)

/*
Предопределенные доменные ошибки и фабрики.
Тексты для клиента совпадают с теми, что показывает фронтенд.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrWeakPassword - пароль слишком слабый
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusConflict,
)

// ErrPhoneAlreadyExists - телефон уже используется
var ErrPhoneAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Phone number already registered",
	http.StatusConflict,
)

// ErrUserNotFound - пользователь с таким email не зарегистрирован
var ErrUserNotFound = New(
	CodeInvalidCredentials,
	"auth",
	"User not found",
	http.StatusUnauthorized,
)

// ErrInvalidPassword - неверный пароль
var ErrInvalidPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - у роли нет доступа к операции
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
