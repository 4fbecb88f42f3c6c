package cql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{"1970-01-01", "2024-02-29", "1900-01-01"}
	for _, c := range cases {
		d, err := encodeDateString(c)
		require.NoError(t, err, c)
		got := decodeDateString(d)
		require.Equal(t, c, got)
	}
}

func TestTimeEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{"0:00:00", "1:02:03.004", "23:59:59.999999999"}
	for _, c := range cases {
		n, err := encodeTimeString(c)
		require.NoError(t, err, c)
		got, err := decodeTimeString(n)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestTimeHourWrapsModulo24(t *testing.T) {
	n, err := encodeTimeString("25:00:00")
	require.NoError(t, err)
	got, err := decodeTimeString(n)
	require.NoError(t, err)
	require.Equal(t, "1:00:00", got)
}

func TestDecodeTimeOutOfRange(t *testing.T) {
	_, err := decodeTimeString(maxTimeNanos + 1)
	require.Error(t, err)
}

func TestEncodeDateMalformed(t *testing.T) {
	_, err := encodeDateString("not-a-date")
	require.Error(t, err)
}
