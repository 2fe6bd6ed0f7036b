package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAll_RejectsEmpty(t *testing.T) {
	require.ErrorIs(t, WriteAll(""), ErrEmpty)
}
