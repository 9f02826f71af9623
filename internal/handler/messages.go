package handler

// User-facing texts
const (
	msgHelpHeader           = "Доступные команды:"
	msgLanguageChanged      = "Язык изменен: "
	msgLanguageUnsupported  = "Данный язык не поддерживается, установлен: "
	msgTranslateFailed      = "Не удалось перевести :( Код ошибки %d"
	msgTranslateUnavailable = "Не удалось перевести :( Сервис недоступен"
)
