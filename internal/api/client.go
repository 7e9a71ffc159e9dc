package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource — источник bearer-токена для исходящих запросов.
// Пустая строка означает анонимный запрос.
type TokenSource interface {
	Token() string
}

// StaticToken — фиксированный токен (удобно в тестах).
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client — HTTP-клиент REST-бэкенда.
//
// Все методы принимают context.Context и возвращают ошибку, сводимую
// через errors.Is к сентинелам пакета. Клиент не хранит состояние
// ленты: это забота feed.Controller.
type Client struct {
	baseURL string
	httpc   *http.Client
	uploadc *http.Client
	tokens  TokenSource
}

// Option — необязательные параметры конструктора.
type Option func(*Client)

// WithHTTPClient подменяет транспорт (тесты, кастомные таймауты).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithUploadClient подменяет транспорт загрузки файлов.
func WithUploadClient(h *http.Client) Option {
	return func(c *Client) { c.uploadc = h }
}

// WithTokenSource задаёт источник bearer-токена.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New создаёт клиент. baseURL — корень API (например, http://host:8080/api),
// завершающий слэш срезается.
func New(baseURL string, timeout, uploadTimeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		uploadc: &http.Client{Timeout: uploadTimeout},
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// endpoint собирает абсолютный URL с query-параметрами.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON — единая точка выполнения JSON-запросов.
// body == nil — запрос без тела; out == nil — тело ответа игнорируется.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	const op = "api/client/doJSON"

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w: %w", op, method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %s %s: %w", op, method, path, statusError(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode: %w", op, err)
		}
	}

	return nil
}

// authorize добавляет Authorization: Bearer, если токен есть.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}

	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
}
