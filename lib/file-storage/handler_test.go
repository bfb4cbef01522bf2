package filestorage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCVObjectKey(t *testing.T) {
	t.Run(`CVObjectKey check`, func(t *testing.T) {
		key := CVObjectKey("space-1", "cand-1", "cv.pdf")
		require.True(t, strings.HasPrefix(key, "space-1/cv/cand-1/"))
		require.True(t, strings.HasSuffix(key, ".pdf"))
	})
	t.Run(`CVObjectKey unique check`, func(t *testing.T) {
		require.NotEqual(t, CVObjectKey("s", "c", "a.doc"), CVObjectKey("s", "c", "a.doc"))
	})
}
