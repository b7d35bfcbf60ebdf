package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, KeyOrder, []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, KeyOrder, []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, err := s.Get(ctx, KeyOrder)
	if err != nil || string(v) != "v2" {
		t.Fatalf("get after reopen: %q %v", v, err)
	}
	if err := s.Delete(ctx, KeyOrder); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, KeyOrder); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSQLiteTx_Rollback(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	tx := NewSQLiteTx(s)

	err = tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.Set(ctx, KeyPayment, []byte("paid"))
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	boom := errors.New("boom")
	err = tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.Delete(ctx, KeyPayment); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err := s.Get(ctx, KeyPayment)
	if err != nil || string(v) != "paid" {
		t.Fatalf("rollback failed: %q %v", v, err)
	}
}

func TestOpenSQLite_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "session.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if err := s.Set(context.Background(), KeyUser, []byte("{}")); err != nil {
		t.Fatalf("set: %v", err)
	}
}
