package numdb

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aerth/prefixparse"
	"go.etcd.io/bbolt"
)

func openDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreFetch(t *testing.T) {
	db := openDB(t)
	for key, raw := range map[string]string{"mask": "0xff00", "mode": "0o755", "flags": "0b101", "count": "42"} {
		if err := StoreNumber(db, "config", key, raw); err != nil {
			t.Fatalf("StoreNumber(%s): %v", key, err)
		}
	}
	mask, err := FetchNumber[uint32](db, "config", "mask")
	if err != nil || mask != 0xff00 {
		t.Fatalf("mask: %d, %v", mask, err)
	}
	mode, err := FetchNumber[uint16](db, "config", "mode")
	if err != nil || mode != 0o755 {
		t.Fatalf("mode: %o, %v", mode, err)
	}
	flags, err := FetchNumber[uint8](db, "config", []byte("flags"))
	if err != nil || flags != 5 {
		t.Fatalf("flags: %d, %v", flags, err)
	}
	raw, err := FetchRaw(db, "config", "mode")
	if err != nil || raw != "0o755" {
		t.Fatalf("raw mode: %q, %v", raw, err)
	}
	// overflow is the caller's type, not the store's
	if _, err := FetchNumber[uint8](db, "config", "mask"); !errors.Is(err, prefixparse.ErrOverflow) {
		t.Fatalf("mask as uint8: %v", err)
	}
}

func TestStoreRejectsGarbage(t *testing.T) {
	db := openDB(t)
	for _, raw := range []string{"", "0x", "0b2", "0X10", "ten", "0x10000000000000000"} {
		if err := StoreNumber(db, "config", "k", raw); err == nil {
			t.Errorf("StoreNumber(%q) accepted", raw)
		}
	}
	if err := StoreNumber(db, "config", "neg", "-9223372036854775808"); err != nil {
		t.Fatalf("min int64: %v", err)
	}
	if err := StoreNumber(db, "config", "big", "0xffffffffffffffff"); err != nil {
		t.Fatalf("max uint64: %v", err)
	}
	if err := StoreNumber(db, "config", "", "1"); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("empty key: %v", err)
	}
}

func TestFetchErrors(t *testing.T) {
	db := openDB(t)
	if _, err := FetchNumber[int](db, "nope", "k"); !errors.Is(err, bbolt.ErrBucketNotFound) {
		t.Fatalf("missing bucket: %v", err)
	}
	if err := StoreNumber(db, "b", "k", "1"); err != nil {
		t.Fatalf("StoreNumber: %v", err)
	}
	if _, err := FetchNumber[int](db, "b", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing key: %v", err)
	}
	if _, err := FetchNumber[int, string](db, "b"); !errors.Is(err, ErrNoKey) {
		t.Fatalf("no key: %v", err)
	}
	if _, err := FetchNumber[int](db, "b", "x", "k"); !errors.Is(err, ErrBadNested) {
		t.Fatalf("bad nested: %v", err)
	}
}

func TestNested(t *testing.T) {
	db := openDB(t)
	if err := StoreNumberNested(db, "devices", []string{"i2c", "expander", "addr"}, "0x20"); err != nil {
		t.Fatalf("StoreNumberNested: %v", err)
	}
	addr, err := FetchNumber[uint8](db, "devices", "i2c", "expander", "addr")
	if err != nil || addr != 0x20 {
		t.Fatalf("addr: %d, %v", addr, err)
	}
}

func TestFetchWith(t *testing.T) {
	db := openDB(t)
	if err := StoreNumber(db, "perm", "mode", "755"); err != nil {
		t.Fatalf("StoreNumber: %v", err)
	}
	mode, err := FetchNumberWith[uint16](db, &prefixparse.OCT, "perm", "mode")
	if err != nil || mode != 0o755 {
		t.Fatalf("mode: %o, %v", mode, err)
	}
	dec, err := FetchNumber[uint16](db, "perm", "mode")
	if err != nil || dec != 755 {
		t.Fatalf("decimal mode: %d, %v", dec, err)
	}
}

func TestUpdate(t *testing.T) {
	db := openDB(t)
	if err := StoreNumber(db, "counters", "hits", "0x0f"); err != nil {
		t.Fatalf("StoreNumber: %v", err)
	}
	err := Update(db, "counters", "hits", func(v uint32) (string, error) {
		return "0x" + strings.Repeat("f", 2) + "0", nil // v is 15, write 0xff0
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	hits, err := FetchNumber[uint32](db, "counters", "hits")
	if err != nil || hits != 0xff0 {
		t.Fatalf("hits: %d, %v", hits, err)
	}
	errStop := errors.New("stop")
	if err := Update(db, "counters", "hits", func(uint32) (string, error) { return "", errStop }); err != errStop {
		t.Fatalf("modifier error: %v", err)
	}
	if err := Update(db, "counters", "hits", func(uint32) (string, error) { return "0xzz", nil }); !errors.Is(err, prefixparse.ErrInvalidDigit) {
		t.Fatalf("bad raw: %v", err)
	}
	raw, _ := FetchRaw(db, "counters", "hits")
	if raw != "0xff0" {
		t.Fatalf("failed update changed value: %q", raw)
	}
}

func TestDebugLog(t *testing.T) {
	db := openDB(t)
	var buf bytes.Buffer
	Debug, Log = true, log.New(&buf, "", 0)
	defer func() { Debug, Log = false, log.Default() }()
	if err := StoreNumber(db, "b", "k", "0b1"); err != nil {
		t.Fatalf("StoreNumber: %v", err)
	}
	if _, err := FetchNumber[int](db, "b", "k"); err != nil {
		t.Fatalf("FetchNumber: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "numdb: write b k 0b1") || !strings.Contains(out, "numdb: read b k") {
		t.Fatalf("log output: %q", out)
	}
}
