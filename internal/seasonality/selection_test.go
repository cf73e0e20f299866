package seasonality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_NormalizesPickOrder(t *testing.T) {
	var s Selection
	s.Pick(5)
	assert.Equal(t, SelectionOneEndpoint, s.State())

	s.Pick(3)
	require.Equal(t, SelectionTwoEndpoints, s.State())
	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)
}

func TestSelection_AscendingPicks(t *testing.T) {
	var s Selection
	s.Pick(10)
	s.Pick(40)
	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 10, start)
	assert.Equal(t, 40, end)
}

func TestSelection_EqualPicksCollapse(t *testing.T) {
	var s Selection
	s.Pick(7)
	s.Pick(7)
	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)
}

func TestSelection_ThirdPickStartsOver(t *testing.T) {
	var s Selection
	s.Pick(3)
	s.Pick(5)
	s.Pick(100)
	assert.Equal(t, SelectionOneEndpoint, s.State())
	_, _, ok := s.Range()
	assert.False(t, ok, "prior range must be discarded")

	s.Pick(120)
	start, end, _ := s.Range()
	assert.Equal(t, 100, start)
	assert.Equal(t, 120, end)
}

func TestSelection_Reset(t *testing.T) {
	var s Selection
	s.Pick(3)
	s.Pick(5)
	s.Reset()
	assert.Equal(t, SelectionEmpty, s.State())
	_, _, ok := s.Range()
	assert.False(t, ok)
}
