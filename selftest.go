package md4

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// rfc1320Vectors are the reference digests from appendix A.5 of RFC 1320.
var rfc1320Vectors = []struct {
	in  string
	sum string
}{
	{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
	{"a", "bde52cb31de33e46245e05fbdbd6fb24"},
	{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
	{"message digest", "d9130a8164549fe818874806e1c7014b"},
	{"abcdefghijklmnopqrstuvwxyz", "d79e1c308aa5bbcdeea8ed63df412da9"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		"043f8582f241db351ce627e153e7f0e4"},
	{"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
		"e33b4ddc9c38f2199c3e7b164fcc0536"},
}

// SelfTest checks a backend against every RFC 1320 reference vector before
// it is trusted with real traffic. The longest vector is digested a second
// time one byte per feed to exercise the buffering path. All failures are
// collected and reported together rather than stopping at the first.
func SelfTest(b Backend) error {
	var result *multierror.Error
	for _, v := range rfc1320Vectors {
		sum, err := backendSum(b, []byte(v.in))
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("%d byte vector: %w", len(v.in), err))
			continue
		}
		if got := HexString(sum); got != v.sum {
			result = multierror.Append(result,
				fmt.Errorf("%d byte vector: digest %s, want %s", len(v.in), got, v.sum))
		}
	}

	last := rfc1320Vectors[len(rfc1320Vectors)-1]
	sum, err := backendSumChunked(b, []byte(last.in))
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("byte-wise feed: %w", err))
	} else if got := HexString(sum); got != last.sum {
		result = multierror.Append(result,
			fmt.Errorf("byte-wise feed: digest %s, want %s", got, last.sum))
	}
	return result.ErrorOrNil()
}

func backendSum(b Backend, data []byte) ([]byte, error) {
	hash, err := b.New()
	if err != nil {
		return nil, err
	}
	defer hash.Close()
	if err := hash.Update(data); err != nil {
		return nil, err
	}
	return hash.Sum()
}

func backendSumChunked(b Backend, data []byte) ([]byte, error) {
	hash, err := b.New()
	if err != nil {
		return nil, err
	}
	defer hash.Close()
	for i := range data {
		if err := hash.Update(data[i : i+1]); err != nil {
			return nil, err
		}
	}
	return hash.Sum()
}
