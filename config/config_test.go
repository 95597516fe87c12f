package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	p, err := parseProvider("")
	require.NoError(t, err)
	assert.Equal(t, "razorpay", p)

	p, err = parseProvider("razorpay")
	require.NoError(t, err)
	assert.Equal(t, "razorpay", p)

	_, err = parseProvider("stripe")
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a , b ,"))
}
