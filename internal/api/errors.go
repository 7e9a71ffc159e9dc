// api — REST-клиент бэкенда коротких видео.
//
// Ошибки транспорта и статусы HTTP сводятся к небольшому набору
// сентинелов; текст сервера (поле "error" в теле ответа) сохраняется
// в обёртке и доступен через errors-цепочку.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnauthenticated — 401: нет токена или токен недействителен.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound — 404: сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — 400: сервер отверг входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict — 409: конфликт (дубликат username/email и т.п.).
	ErrConflict = errors.New("conflict")
	// ErrUnavailable — 5xx или сетевая ошибка: бэкенд недоступен.
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal — прочие неожиданные ответы.
	ErrInternal = errors.New("internal")
)

// errorBody — формат тела ошибки бэкенда: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// StatusError — ошибка HTTP-уровня с сохранённым сообщением сервера.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http %d", e.Code)
}

// Is — маппинг статуса на сентинел, чтобы работал errors.Is.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Code == http.StatusUnauthorized
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrInvalidArgument:
		return e.Code == http.StatusBadRequest
	case ErrConflict:
		return e.Code == http.StatusConflict
	case ErrUnavailable:
		return e.Code >= 500
	case ErrInternal:
		return e.Code >= 400 && e.Code < 500 &&
			e.Code != http.StatusUnauthorized &&
			e.Code != http.StatusNotFound &&
			e.Code != http.StatusBadRequest &&
			e.Code != http.StatusConflict
	}
	return false
}

// ServerMessage — текст ошибки сервера из цепочки err, если он есть.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

// statusError разбирает тело неуспешного ответа в StatusError.
// Тело читается целиком: соединение должно вернуться в пул.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	return &StatusError{Code: resp.StatusCode, Message: body.Error}
}
