package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// Файл unit-тестов REST-клиента (client.go и методы эндпоинтов).
//
// Покрываем ключевую бизнес-логику:
//  - формирование запросов: путь, query-параметры, bearer-заголовок,
//    сериализация тел (parentId опускается у корневого комментария);
//  - маппинг ответов: статусы -> сентинелы через errors.Is,
//    сообщение сервера доступно через ServerMessage;
//  - сетевой отказ -> ErrUnavailable.

// newTestClient — клиент, направленный на httptest-сервер.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/api", 5*time.Second, 5*time.Second, opts...), srv
}

// TestFeed_RequestShape — путь, пагинация и bearer-токен.
func TestFeed_RequestShape(t *testing.T) {
	t.Parallel()

	var gotPath, gotPage, gotSize, gotAuth string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("page")
		gotSize = r.URL.Query().Get("size")
		gotAuth = r.Header.Get("Authorization")

		_ = json.NewEncoder(w).Encode([]models.VideoEntry{
			{ID: uuid.New(), Title: "first"},
		})
	}, WithTokenSource(StaticToken("tkn-123")))

	items, err := c.Feed(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "first", items[0].Title)

	require.Equal(t, "/api/feed", gotPath)
	require.Equal(t, "2", gotPage)
	require.Equal(t, "10", gotSize)
	require.Equal(t, "Bearer tkn-123", gotAuth)
}

// TestFeed_AnonymousWithoutHeader — без источника токена заголовка нет.
func TestFeed_AnonymousWithoutHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.VideoEntry{})
	})

	_, err := c.Feed(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Equal(t, "", gotAuth)
}

// TestRecordView_QueryParams — длительность в секундах и флаг completed.
func TestRecordView_QueryParams(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()
	var gotPath, gotDuration, gotCompleted string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDuration = r.URL.Query().Get("watchDuration")
		gotCompleted = r.URL.Query().Get("completed")
		w.WriteHeader(http.StatusOK)
	})

	err := c.RecordView(context.Background(), videoID, 42*time.Second, true)
	require.NoError(t, err)

	require.Equal(t, "/api/feed/view/"+videoID.String(), gotPath)
	require.Equal(t, "42", gotDuration)
	require.Equal(t, "true", gotCompleted)
}

// TestStatusMapping — статусы сводятся к сентинелам, текст сервера
// сохраняется.
func TestStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"unauthorized", http.StatusUnauthorized, "Invalid token", ErrUnauthenticated},
		{"not_found", http.StatusNotFound, "Video not found", ErrNotFound},
		{"bad_request", http.StatusBadRequest, "Invalid input", ErrInvalidArgument},
		{"conflict", http.StatusConflict, "Username already exists", ErrConflict},
		{"server_error", http.StatusInternalServerError, "", ErrUnavailable},
		{"teapot", http.StatusTeapot, "", ErrInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": tc.message})
			})

			_, err := c.Feed(context.Background(), 0, 10)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, tc.message, ServerMessage(err))
		})
	}
}

// TestNetworkFailure — упавшее соединение даёт ErrUnavailable.
func TestNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close()

	c := New(srv.URL+"/api", time.Second, time.Second)

	_, err := c.Feed(context.Background(), 0, 10)
	require.ErrorIs(t, err, ErrUnavailable)
}

// TestToggleLike_ParsesServerState — liked берётся из ответа сервера.
func TestToggleLike_ParsesServerState(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/social/like/"+videoID.String(), r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "liked": true})
	})

	liked, err := c.ToggleLike(context.Background(), videoID)
	require.NoError(t, err)
	require.True(t, liked)
}

// TestShareVideo_ReturnsLink — shareLink из ответа; пустое тело даёт
// пустую строку без ошибки.
func TestShareVideo_ReturnsLink(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"shareLink": "https://short.link/xyz"})
	})

	link, err := c.ShareVideo(context.Background(), videoID)
	require.NoError(t, err)
	require.Equal(t, "https://short.link/xyz", link)
}

// TestAddComment_ParentOmittedForRoot — у корневого комментария поле
// parentId в JSON отсутствует; у ответа — содержит id корня.
func TestAddComment_ParentOmittedForRoot(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()
	parentID := uuid.New()

	var bodies []map[string]any

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		_ = json.NewEncoder(w).Encode(models.CommentNode{ID: uuid.New(), Content: body["content"].(string)})
	})

	ctx := context.Background()

	_, err := c.AddComment(ctx, videoID, "root comment", uuid.Nil)
	require.NoError(t, err)

	_, err = c.AddComment(ctx, videoID, "a reply", parentID)
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	_, hasParent := bodies[0]["parentId"]
	require.False(t, hasParent, "root comment must omit parentId")
	require.Equal(t, parentID.String(), bodies[1]["parentId"])
}

// TestLogin_BuildsSession — login возвращает токен и профиль одной сессией.
func TestLogin_BuildsSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "jwt-token",
			"user":  models.AccountUser{ID: userID, Username: "alice"},
		})
	})

	sess, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", sess.Token)
	require.Equal(t, userID, sess.User.ID)
}
