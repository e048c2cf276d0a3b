package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	// Known ciphertexts for the salted SHA-1 encoding. These are load-bearing:
	// a change here re-keys every published id and link.
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "test", "mXm6nVCBXNugvCMFGUFjgHTubIQ"},
		{"another word", "hello", "aMHeRPHq2jCw943eLXcYLPJ4scI"},
		{"empty string", "", "S9xjyoZ5j2rg95i-sVo9Gv15Jmc"},
		{"single digit id", "5", "lXgouUAR16hSIwxdJSpbr_dhyT8"},
		{"another digit id", "3", "AoRE4bhxdSdXur_NLdfh4JF81Y4"},
		{"numeric id", "1234567890", "-iNwbn2C9bOTVidh5xPhfjK6Eb4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	assert.Equal(t, Encode("20230724093435661593"), Encode("20230724093435661593"))
}

func TestEncodeOutputIsURLSafe(t *testing.T) {
	got := Encode("1234567890")
	assert.NotContains(t, got, "+")
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, "=")
}
