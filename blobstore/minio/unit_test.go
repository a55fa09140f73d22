package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyJoin(t *testing.T) {
	s := &Store{bucket: "b", prefix: "models/"}
	assert.Equal(t, "models/glove.bin", s.key("glove.bin"))

	s = &Store{bucket: "b"}
	assert.Equal(t, "glove.bin", s.key("glove.bin"))
}
