package cmd

import (
	"context"
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/sha512block/lanes"
)

func TestKnownVectors(t *testing.T) {
	for _, v := range knownVectors {
		assert.Equal(t, digest([]byte(v.input)), v.hash)
	}
}

func TestGenerateAndVerify(t *testing.T) {
	msgs, ls := generate(500)
	for _, msg := range msgs {
		assert.That(t, len(msg) >= minMessage && len(msg) <= maxMessage)
	}

	_, err := lanes.Run(context.Background(), ls, lanes.Options{Workers: 4})
	assert.NoError(t, err)
	assert.NoError(t, verify(context.Background(), msgs, ls))

	ls[17].Digest[3] ^= 1
	assert.Error(t, verify(context.Background(), msgs, ls))
}
