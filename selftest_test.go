package md4

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestSelfTestBuiltins(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		if err := SelfTest(b); err != nil {
			t.Fatalf("Self test failed: %s", err)
		}
	})
}

// corruptBackend flips a digest byte on the way out, so every reference
// vector must fail.
type corruptBackend struct{}

func (corruptBackend) Name() string { return "corrupt" }

func (corruptBackend) New() (Hash, error) {
	h, err := NewNativeHash()
	if err != nil {
		return nil, err
	}
	return &corruptHash{h}, nil
}

type corruptHash struct {
	*NativeHash
}

func (c *corruptHash) Sum() ([]byte, error) {
	sum, err := c.NativeHash.Sum()
	if err != nil {
		return nil, err
	}
	sum[0] ^= 0xff
	return sum, nil
}

func TestSelfTestReportsEveryVector(t *testing.T) {
	err := SelfTest(corruptBackend{})
	if err == nil {
		t.Fatal("Expected the self test of a corrupt backend to fail, but it passed")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Expected a multierror, but got %T", err)
	}
	if want := len(rfc1320Vectors) + 1; len(merr.Errors) != want {
		t.Fatalf("Expected %d failures, but got %d: %s", want, len(merr.Errors), err)
	}
	if !strings.Contains(err.Error(), "want 31d6cfe0d16ae931b73c59d7e0c089c0") {
		t.Fatalf("Expected the empty vector failure in the report, but got: %s", err)
	}
}
