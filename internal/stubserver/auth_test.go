package stubserver

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Тесты выпуска и валидации токенов стаба (auth.go):
//  - issue/validate round-trip возвращает исходный id пользователя;
//  - чужой секрет и истёкший срок отвергаются;
//  - мусорная строка отвергается;
//  - bcrypt-пара hashPassword/checkPassword.

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := newTokenIssuer("secret-one", time.Hour)
	uid := uuid.New()

	token, err := issuer.issue(uid, "alice", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := issuer.validate(token)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	issuer := newTokenIssuer("secret-one", time.Hour)
	other := newTokenIssuer("secret-two", time.Hour)

	token, err := issuer.issue(uuid.New(), "alice", time.Now())
	require.NoError(t, err)

	_, err = other.validate(token)
	require.ErrorIs(t, err, errInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	t.Parallel()

	issuer := newTokenIssuer("secret-one", time.Minute)

	// Выпущен час назад с ttl в минуту: к текущему моменту истёк
	// даже с учётом leeway.
	token, err := issuer.issue(uuid.New(), "alice", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = issuer.validate(token)
	require.ErrorIs(t, err, errInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	t.Parallel()

	issuer := newTokenIssuer("secret-one", time.Hour)

	_, err := issuer.validate("not-a-token")
	require.ErrorIs(t, err, errInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := hashPassword("pass-12345")
	require.NoError(t, err)

	require.True(t, checkPassword(hash, "pass-12345"))
	require.False(t, checkPassword(hash, "wrong"))
	require.False(t, checkPassword(nil, "pass-12345"))
}
