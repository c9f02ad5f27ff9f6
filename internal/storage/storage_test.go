package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadDelete(t *testing.T) {
	s := openTest(t)
	now := time.Now().UTC().Truncate(time.Second)
	rec := &Record{ID: "abc", Position: "24/24/24/24/24/24/24/24 w 0", CreatedAt: now, UpdatedAt: now}
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load("abc")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Position != rec.Position || !got.CreatedAt.Equal(now) {
		t.Fatalf("loaded %+v, want %+v", got, rec)
	}

	if err := s.Delete("abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load("abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load after delete: err = %v, want ErrNotFound", err)
	}
}

func TestListOnlyReturnsGames(t *testing.T) {
	s := openTest(t)
	for _, id := range []string{"b", "a", "c"} {
		if err := s.Save(&Record{ID: id, Position: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	// keys on either side of the prefix must not leak into List
	if err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("gam"), []byte("{}")); err != nil {
			return err
		}
		return txn.Set([]byte("meta/version"), []byte(`{"id":"meta"}`))
	}); err != nil {
		t.Fatalf("write foreign keys: %v", err)
	}
	recs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("list = %d records, want 3", len(recs))
	}
	if recs[0].ID != "a" || recs[2].ID != "c" {
		t.Fatalf("list order = %s,%s,%s", recs[0].ID, recs[1].ID, recs[2].ID)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := openTest(t)
	if err := s.Save(&Record{}); err == nil {
		t.Fatal("expected an error for a record without id")
	}
}
