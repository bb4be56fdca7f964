package contextkeys

// ContextKey - отдельный тип, чтобы ключи контекста не пересекались
// со строковыми ключами других пакетов.
type ContextKey string

const (
	// RequestIDKey - ключ request id в gin.Context
	RequestIDKey ContextKey = "request_id"
)
