// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// numdb package stores numbers in bbolt as the string the user wrote ("0x1F", "0o755", "42")
// and fetches them as any integer type.
package numdb

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aerth/prefixparse"
	"go.etcd.io/bbolt"
)

// Debug logs every lookup to Log with the caller's location
var Debug = false

var Log = log.Default()

var (
	ErrNoKey     = errors.New("numdb: no key")
	ErrEmptyKey  = errors.New("numdb: empty key")
	ErrNotFound  = errors.New("numdb: not found")
	ErrBadNested = errors.New("numdb: bad nested lookup")
)

type byteslike interface {
	~string | ~[]byte
}

// Check that raw is a number Parse accepts, either as uint64 or int64.
func Check(raw string) error {
	if _, err := prefixparse.Parse[uint64](raw); err == nil {
		return nil
	}
	_, err := prefixparse.Parse[int64](raw)
	return err
}

// FetchNumber parses a stored value with prefix auto-detection.
//
// Multiple keys walk nested buckets, the last key is the value.
func FetchNumber[T prefixparse.Integer, K byteslike](db *bbolt.DB, bucket string, key ...K) (T, error) {
	return FetchNumberWith[T](db, nil, bucket, key...)
}

// FetchNumberWith parses a stored value with f (prefix optional). A nil f auto-detects.
func FetchNumberWith[T prefixparse.Integer, K byteslike](db *bbolt.DB, f *prefixparse.Format, bucket string, key ...K) (T, error) {
	var v T
	err := db.View(func(tx *bbolt.Tx) error {
		var err error
		v, err = FetchNumberWith_Tx[T](tx, f, bucket, key...)
		return err
	})
	return v, err
}

// FetchNumber_Tx (but in a Tx)
func FetchNumber_Tx[T prefixparse.Integer, K byteslike](tx *bbolt.Tx, bucket string, key ...K) (T, error) {
	return FetchNumberWith_Tx[T](tx, nil, bucket, key...)
}

func FetchNumberWith_Tx[T prefixparse.Integer, K byteslike](tx *bbolt.Tx, f *prefixparse.Format, bucket string, key ...K) (T, error) {
	raw, err := FetchRaw_Tx(tx, bucket, key...)
	if err != nil {
		var v T
		return v, err
	}
	if f != nil {
		return prefixparse.ParseWith[T](*f, raw)
	}
	return prefixparse.Parse[T](raw)
}

// FetchRaw returns the stored string, unparsed
func FetchRaw[K byteslike](db *bbolt.DB, bucket string, key ...K) (string, error) {
	var raw string
	err := db.View(func(tx *bbolt.Tx) error {
		var err error
		raw, err = FetchRaw_Tx(tx, bucket, key...)
		return err
	})
	return raw, err
}

func FetchRaw_Tx[K byteslike](tx *bbolt.Tx, bucket string, key ...K) (string, error) {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return "", bbolt.ErrBucketNotFound
	}
	l := len(key)
	if l == 0 {
		return "", ErrNoKey
	}
	if Debug {
		Log.Println(caller(), "numdb: read", bucket, string(key[l-1]))
	}
	for i := 0; i < l-1; i++ {
		bu = bu.Bucket([]byte(key[i]))
		if bu == nil {
			return "", fmt.Errorf("%w: bucket %q", ErrBadNested, string(key[i]))
		}
	}
	if len(key[l-1]) == 0 {
		return "", ErrEmptyKey
	}
	b := bu.Get([]byte(key[l-1]))
	if b == nil {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, bucket, string(key[l-1]))
	}
	return string(b), nil // copy, b is only valid during tx
}

// StoreNumber checks raw with Check, then stores it as-is. The bucket is created if needed.
func StoreNumber[K byteslike](db *bbolt.DB, bucket string, key K, raw string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return StoreNumber_Tx(tx, bucket, key, raw)
	})
}

func StoreNumber_Tx[K byteslike](tx *bbolt.Tx, bucket string, key K, raw string) error {
	return StoreNumberNested_Tx(tx, bucket, []K{key}, raw)
}

// StoreNumberNested creates nested buckets for all but the last key.
func StoreNumberNested[K byteslike](db *bbolt.DB, bucket string, key []K, raw string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return StoreNumberNested_Tx(tx, bucket, key, raw)
	})
}

func StoreNumberNested_Tx[K byteslike](tx *bbolt.Tx, bucket string, key []K, raw string) error {
	l := len(key)
	if l == 0 {
		return ErrNoKey
	}
	if len(key[l-1]) == 0 {
		return ErrEmptyKey
	}
	if err := Check(raw); err != nil {
		return err
	}
	bu, err := tx.CreateBucketIfNotExists([]byte(bucket))
	if err != nil {
		return err
	}
	for i := 0; i < l-1; i++ {
		bu, err = bu.CreateBucketIfNotExists([]byte(key[i]))
		if err != nil {
			return fmt.Errorf("%w: bucket %q: %w", ErrBadNested, string(key[i]), err)
		}
	}
	if Debug {
		Log.Println(caller(), "numdb: write", bucket, string(key[l-1]), raw)
	}
	return bu.Put([]byte(key[l-1]), []byte(raw))
}

// Update a stored number. modifier gets the parsed value and returns the new raw string.
func Update[T prefixparse.Integer, K byteslike](db *bbolt.DB, bucket string, key K, modifier func(v T) (string, error)) error {
	return db.Update(func(tx *bbolt.Tx) error {
		got, err := FetchNumber_Tx[T](tx, bucket, key)
		if err != nil {
			return err
		}
		raw, err := modifier(got)
		if err != nil {
			return err
		}
		return StoreNumber_Tx(tx, bucket, key, raw)
	})
}

// file:line of whoever called into numdb
func caller() string {
	var s string
	for i := 2; i <= 6; i++ {
		_, file, num, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fname := filepath.Base(file)
		if strings.HasPrefix(fname, "asm_") {
			break
		}
		s += fmt.Sprintf("%s:%d ", fname, num)
	}
	return s
}
