package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	require.Equal(t, "v0.1.0-dev, date: 2023-10-17", GetVersion())

	old := commitDate
	defer func() { commitDate = old }()
	commitDate = ""
	require.Equal(t, "v0.1.0-dev", GetVersion())
}
