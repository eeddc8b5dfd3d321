package gemini

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_IsInternalError(t *testing.T) {
	assert.False(t, isInternalError(nil))
	assert.True(t, isInternalError(errors.New("googleapi: Error 500: internal")))
	assert.False(t, isInternalError(errors.New("googleapi: Error 429: quota exceeded")))
}
