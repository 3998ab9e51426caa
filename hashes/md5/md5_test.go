package md5

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_Vectors(t *testing.T) {
	tests := map[string]string{
		"":               "d41d8cd98f00b204e9800998ecf8427e",
		"a":              "0cc175b9c0f1b6a831c399e269772661",
		"abc":            "900150983cd24fb0d6963f7d28e17f72",
		"message digest": "f96b697d7cb7938d525a2f31aaf161d0",
	}
	for in, want := range tests {
		got := Sum([]byte(in))
		assert.Equal(t, want, hex.EncodeToString(got[:]), "Sum(%q)", in)
	}
}

func TestAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 0; n <= 200; n++ {
		data := make([]byte, n)
		rng.Read(data)

		want := stdmd5.Sum(data)
		e := New()
		require.Equal(t, want[:], e.DigestOf(data), "len=%d", n)
	}
}

func TestNewHash(t *testing.T) {
	h := NewHash()
	h.Write([]byte("abc"))
	want := stdmd5.Sum([]byte("abc"))
	assert.Equal(t, want[:], h.Sum(nil))
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, BlockSize, h.BlockSize())
}
