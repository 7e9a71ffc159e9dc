// session — локальное durable-хранилище авторизационной сессии
// (токен + профиль): восстанавливается на старте процесса, очищается
// при logout. Файловый bbolt вместо серверного кэша: клиент живёт на
// устройстве и не имеет внешних зависимостей.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

var (
	bucketSession = []byte("session")
	keyCurrent    = []byte("current")
)

// Store — файловое хранилище сессии. Текущая сессия кэшируется в
// памяти; диск трогается только на Save/Load/Clear.
type Store struct {
	mu      sync.RWMutex
	db      *bolt.DB
	current *models.Session
}

// Open открывает (или создаёт) файл хранилища и восстанавливает
// сессию. Сессия с истёкшим токеном отбрасывается прямо на загрузке:
// иначе каждый запрос гарантированно получал бы 401.
func Open(path string) (*Store, error) {
	const op = "session/store/Open"

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// Close закрывает файл хранилища.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save персистит сессию и делает её текущей.
func (s *Store) Save(sess models.Session) error {
	const op = "session/store/Save"

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyCurrent, raw)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	return nil
}

// Clear удаляет сессию (logout).
func (s *Store) Clear() error {
	const op = "session/store/Clear"

	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyCurrent)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return nil
}

// Current — текущая сессия или nil.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}

	cp := *s.current
	return &cp
}

// Token реализует api.TokenSource. Пустая строка — анонимный клиент.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// load читает сессию с диска в память, отбрасывая истёкшие токены.
func (s *Store) load() error {
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get(keyCurrent); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return err
	}

	if raw == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Битая запись: считаем, что сессии нет, и вычищаем её.
		return s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketSession).Delete(keyCurrent)
		})
	}

	if TokenExpired(sess.Token, time.Now()) {
		return s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketSession).Delete(keyCurrent)
		})
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	return nil
}

// TokenExpired — истёк ли exp-клейм токена к моменту now.
//
// Подпись не проверяется: ключа подписи у клиента нет, а цель — не
// доверять токену, а не ходить с заведомо мёртвым. Токен без exp или
// неразбираемый считается живым — рассудит сервер.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
