package main

import (
	"context"
	"errors"
	"testing"

	"circlechess/internal/storage"
)

func TestRunClosesStoreWhenListenFails(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), []string{"-data", dir, "-web", "", "-addr", "127.0.0.1:-1"})
	if err == nil {
		t.Fatal("expected a listen error")
	}
	// badger holds a directory lock until Close; reopening proves it ran
	st, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("reopen after failed run: %v", err)
	}
	st.Close()
}

func TestRunForgetDeletesGame(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Save(&storage.Record{ID: "g1", Position: "x"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st.Close()

	if err := run(context.Background(), []string{"-data", dir, "-forget", "g1"}); err != nil {
		t.Fatalf("run -forget: %v", err)
	}

	st, err = storage.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	if _, err := st.Load("g1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Load after forget: err = %v, want ErrNotFound", err)
	}
}

func TestRunForgetNeedsData(t *testing.T) {
	if err := run(context.Background(), []string{"-data", "", "-forget", "g1"}); err == nil {
		t.Fatal("expected an error without -data")
	}
}
