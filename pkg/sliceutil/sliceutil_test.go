package sliceutil_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/steamwebapi/pkg/sliceutil"
	"github.com/stretchr/testify/require"
)

func TestUniq(t *testing.T) {
	require.Nil(t, sliceutil.Uniq([]string{}))
	require.Equal(t, []string{"b", "a", "c"}, sliceutil.Uniq([]string{"b", "a", "b", "c", "a"}))
	require.Equal(t, []int{1}, sliceutil.Uniq([]int{1, 1, 1}))
}

func TestFirstPositive(t *testing.T) {
	require.Equal(t, 5*time.Second, sliceutil.FirstPositive(0, -time.Second, 5*time.Second, time.Minute))
	require.Equal(t, 0, sliceutil.FirstPositive(0, -1))
	require.InDelta(t, 0.5, sliceutil.FirstPositive(-1.0, 0.5), 0.0001)
}
