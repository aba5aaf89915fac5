package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"electroledger/pkg/models"
)

type note struct {
	ID   models.ID `json:"id"`
	Text string    `json:"text"`
	N    int       `json:"n"`
	Tags []string  `json:"tags,omitempty"`
}

func (n note) Identity() models.ID { return n.ID }

var errQuota = errors.New("quota exceeded")

type failingBackend struct {
	*MemoryBackend
	failReads bool
}

func (b failingBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if b.failReads {
		return nil, false, errQuota
	}
	return b.MemoryBackend.Read(ctx, key)
}

func (b failingBackend) Write(context.Context, string, []byte) error {
	return errQuota
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()
	file, err := NewFileBackend(filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	sqlite, err := NewSQLiteBackend(filepath.Join(dir, "db", "ledger.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := []note{
		{ID: "1", Text: "كابل 2.5 مم", N: 2, Tags: []string{"a", "b"}},
		{ID: "2", Text: "Disjoncteur", N: 0},
	}
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend)
			if err := Save(ctx, s, KeyPurchases, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load[note](ctx, s, KeyPurchases)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load = %+v, want %+v", got, want)
			}

			// Last write wins.
			if err := Save(ctx, s, KeyPurchases, want[:1]); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, _ = Load[note](ctx, s, KeyPurchases)
			if len(got) != 1 {
				t.Errorf("after overwrite got %d records, want 1", len(got))
			}
		})
	}
}

func TestLoadMissingOrMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend)
			got, err := Load[note](ctx, s, KeyExpenses)
			if err != nil || got == nil || len(got) != 0 {
				t.Errorf("missing key: got %v, %v; want empty slice", got, err)
			}

			for _, raw := range []string{`{not json`, `null`, `{"id":1}`} {
				if err := backend.Write(ctx, string(KeyExpenses), []byte(raw)); err != nil {
					t.Fatal(err)
				}
				got, err := Load[note](ctx, s, KeyExpenses)
				if err != nil || got == nil || len(got) != 0 {
					t.Errorf("stored %q: got %v, %v; want empty slice", raw, got, err)
				}
			}
		})
	}
}

func TestLoadSkipsUnreadableElements(t *testing.T) {
	ctx := context.Background()
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend)
			raw := `[{"id":1,"text":"a","n":1},{"id":5,"text":"b","n":"two"},{"id":2,"text":"c","n":3}]`
			if err := backend.Write(ctx, string(KeyExpenses), []byte(raw)); err != nil {
				t.Fatal(err)
			}
			got, err := Load[note](ctx, s, KeyExpenses)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			want := []note{{ID: "1", Text: "a", N: 1}, {ID: "2", Text: "c", N: 3}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load = %+v, want %+v", got, want)
			}
			if id := AllocateID(s, KeyExpenses, got); id != "6" {
				t.Errorf("AllocateID = %s, want 6", id)
			}

			if err := Save(ctx, s, KeyExpenses, got[:1]); err != nil {
				t.Fatalf("Save: %v", err)
			}
			data, _, _ := backend.Read(ctx, string(KeyExpenses))
			if string(data) != `[{"id":"1","text":"a","n":1},{"id":5,"text":"b","n":"two"}]` {
				t.Errorf("stored = %s", data)
			}
		})
	}
}

func TestStorageFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	s := New(failingBackend{MemoryBackend: NewMemoryBackend()})
	err := Save(ctx, s, KeyCustomers, []note{{ID: "1"}})
	if !errors.Is(err, ErrStorage) || !errors.Is(err, errQuota) {
		t.Fatalf("Save error = %v, want ErrStorage wrapping quota error", err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Op != "Write" || se.Key != KeyCustomers {
		t.Errorf("error = %#v", err)
	}

	s = New(failingBackend{MemoryBackend: NewMemoryBackend(), failReads: true})
	if _, err := Load[note](ctx, s, KeyCustomers); !errors.Is(err, ErrStorage) {
		t.Errorf("Load error = %v, want ErrStorage", err)
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		items []note
		want  models.ID
	}{
		{"empty", nil, "1"},
		{"sequential", []note{{ID: "1"}, {ID: "2"}}, "3"},
		{"gaps", []note{{ID: "7"}, {ID: "3"}}, "8"},
		{"non numeric ignored", []note{{ID: "x"}, {ID: "4"}}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextID(tt.items)
			if got != tt.want {
				t.Errorf("NextID = %s, want %s", got, tt.want)
			}
			if again := NextID(tt.items); again != got {
				t.Errorf("NextID not stable: %s then %s", got, again)
			}
		})
	}
}

func TestNextIDNeverReusesLiveID(t *testing.T) {
	var items []note
	// add, add, add, remove middle, add, remove last, add
	ops := []string{"add", "add", "add", "rm:2", "add", "rm:4", "add", "rm:1", "add"}
	for _, op := range ops {
		if op == "add" {
			id := NextID(items)
			for _, it := range items {
				if it.ID == id {
					t.Fatalf("NextID returned live id %s", id)
				}
			}
			items = append(items, note{ID: id})
			continue
		}
		target := models.ID(op[3:])
		kept := items[:0]
		for _, it := range items {
			if it.ID != target {
				kept = append(kept, it)
			}
		}
		items = kept
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"file", "sqlite", "memory"} {
		s, err := Open(Options{Backend: backend, Dir: dir})
		if err != nil {
			t.Fatalf("Open(%s): %v", backend, err)
		}
		if err := s.Close(); err != nil {
			t.Errorf("Close(%s): %v", backend, err)
		}
	}
	if _, err := Open(Options{Backend: "redis", Dir: dir}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(redis) error = %v, want ErrUnknownBackend", err)
	}
}
