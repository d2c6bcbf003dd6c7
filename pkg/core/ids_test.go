package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestIDSource_SameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	ids := core.NewIDSource(func() time.Time { return frozen })

	a := ids.Next()
	b := ids.Next()

	assert.Equal(t, frozen.UnixMilli(), a)
	assert.Equal(t, a+1, b)
}

func TestIDSource_Observe(t *testing.T) {
	ids := core.NewIDSource(func() time.Time { return time.UnixMilli(10) })
	ids.Observe(500)

	assert.Equal(t, int64(501), ids.Next())

	ids.Observe(3)
	assert.Equal(t, int64(502), ids.Next())
}
