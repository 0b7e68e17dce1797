package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyLocale    CtxKey = "Locale"
)
