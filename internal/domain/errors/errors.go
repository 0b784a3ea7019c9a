package errors

import (
	"net/http"

	"chaski/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business error code, so copies
// produced by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"No user logged in",
		"",
	)

	ErrAuthTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"AUTH_TIMEOUT",
		"La operación ha excedido el tiempo máximo de espera",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo electrónico o contraseña incorrectos",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"La sesión ha expirado",
		"",
	)

	ErrDemoUnsupported = NewBaseError(
		http.StatusForbidden,
		"DEMO_UNSUPPORTED",
		"Función no disponible en modo demo",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontró el perfil",
		"",
	)

	ErrProfileCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_CREATION_FAILED",
		"No se pudo crear el perfil",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"No se pudo actualizar el perfil",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"La autenticación con el proveedor falló",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Estado de autorización inválido o expirado",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Token de identidad inválido",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"Proveedor de autenticación no soportado",
		"",
	)

	// Catalog-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"No se encontró la tienda",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No se encontró el producto",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"Solo el propietario puede modificar este recurso",
		"",
	)

	// Upload-related errors
	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Solo se permiten archivos de imagen",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"El archivo no debe superar los 5MB",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"No se puede acceder al almacenamiento. Verifica la configuración del bucket",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Error al subir la imagen",
		"",
	)

	// Messaging-related errors
	ErrEmptyMessage = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_MESSAGE",
		"El mensaje no puede estar vacío",
		"",
	)

	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"No se encontró la conversación",
		"",
	)

	ErrSelfConversation = NewBaseError(
		http.StatusBadRequest,
		"SELF_CONVERSATION",
		"No puedes iniciar una conversación contigo mismo",
		"",
	)

	// Rating-related errors
	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"La calificación debe estar entre 1 y 5",
		"",
	)

	ErrSelfRating = NewBaseError(
		http.StatusBadRequest,
		"SELF_RATING",
		"No puedes calificarte a ti mismo",
		"",
	)

	// Checkout-related errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"El carrito está vacío",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Método de pago inválido",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"La transacción de base de datos falló",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Demasiadas solicitudes, intenta de nuevo en un momento",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
