package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

// backends returns a constructor for every backend that can run here.
func backends(t *testing.T) map[string]func(t *testing.T) Store {
	t.Helper()

	b := map[string]func(t *testing.T) Store{
		BackendMemory: func(t *testing.T) Store {
			return NewMemoryStore()
		},
		BackendSQLite: func(t *testing.T) Store {
			dsn := filepath.Join(t.TempDir(), "contacts.db")
			s, err := NewSQLiteStore(context.Background(), dsn)
			if err != nil {
				t.Fatalf("NewSQLiteStore() error: %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}

	if url := os.Getenv("APP_TEST_REDIS_URL"); url != "" {
		b[BackendRedis] = func(t *testing.T) Store {
			opts, err := redis.ParseURL(url)
			if err != nil {
				t.Fatalf("ParseURL() error: %v", err)
			}
			prefix := fmt.Sprintf("test:%s:", t.Name())
			s := NewRedisStoreFromClient(redis.NewClient(opts), prefix)
			t.Cleanup(func() {
				ctx := context.Background()
				keys, _ := s.client.Keys(ctx, prefix+"*").Result()
				if len(keys) > 0 {
					s.client.Del(ctx, keys...)
				}
				_ = s.Close()
			})
			return s
		}
	}

	return b
}

func TestStore_CreateAndRetrieve(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			// Arrange
			s := newStore(t)
			ctx := context.Background()
			contact := &model.Contact{Name: "Pete", Number: "5031234567", Type: "Person"}

			// Act
			created, err := s.Create(ctx, contact)

			// Assert
			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if !created {
				t.Error("Create() created = false, want true")
			}

			got, err := s.Retrieve(ctx, "Pete")
			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("Retrieve() returned nil contact")
			}
			if *got != *contact {
				t.Errorf("Retrieve() = %+v, want %+v", *got, *contact)
			}
		})
	}
}

func TestStore_RetrieveUnknown(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			s := newStore(t)

			got, err := s.Retrieve(context.Background(), "nobody")
			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("Retrieve() = %+v, want nil", got)
			}
		})
	}
}

func TestStore_CreateDuplicateKeepsFirst(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			// Arrange
			s := newStore(t)
			ctx := context.Background()
			first := &model.Contact{Name: "Dup", Number: "111", Type: "Person"}
			second := &model.Contact{Name: "Dup", Number: "222", Type: "Business"}

			// Act
			created1, err1 := s.Create(ctx, first)
			created2, err2 := s.Create(ctx, second)

			// Assert
			if err1 != nil || err2 != nil {
				t.Fatalf("Create() errors = %v, %v", err1, err2)
			}
			if !created1 || created2 {
				t.Errorf("created = %v, %v; want true, false", created1, created2)
			}

			got, err := s.Retrieve(ctx, "Dup")
			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got == nil || *got != *first {
				t.Errorf("Retrieve() = %+v, want %+v", got, *first)
			}
		})
	}
}

func TestStore_CreateNil(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			s := newStore(t)

			created, err := s.Create(context.Background(), nil)
			if !errors.Is(err, ErrNilContact) {
				t.Errorf("Create(nil) error = %v, want %v", err, ErrNilContact)
			}
			if created {
				t.Error("Create(nil) created = true")
			}
		})
	}
}

func TestStore_ConcurrentCreateSameName(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			// Arrange
			s := newStore(t)
			ctx := context.Background()
			const writers = 20

			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				winners []string
			)

			// Act
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					number := fmt.Sprintf("%03d", i)
					created, err := s.Create(ctx, &model.Contact{Name: "Dup", Number: number})
					if err != nil {
						t.Errorf("Create() unexpected error: %v", err)
						return
					}
					if created {
						mu.Lock()
						winners = append(winners, number)
						mu.Unlock()
					}
				}(i)
			}
			wg.Wait()

			// Assert
			if len(winners) != 1 {
				t.Fatalf("winners = %v, want exactly one", winners)
			}

			got, err := s.Retrieve(ctx, "Dup")
			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got == nil || got.Number != winners[0] {
				t.Errorf("Retrieve() = %+v, want number %s", got, winners[0])
			}
		})
	}
}

func TestStore_EmptyNameIsAKey(t *testing.T) {
	for backend, newStore := range backends(t) {
		t.Run(backend, func(t *testing.T) {
			s := newStore(t)
			ctx := context.Background()

			if _, err := s.Create(ctx, &model.Contact{Number: "1"}); err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}

			got, err := s.Retrieve(ctx, "")
			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got == nil || got.Number != "1" {
				t.Errorf("Retrieve(\"\") = %+v, want stored contact", got)
			}
		})
	}
}
