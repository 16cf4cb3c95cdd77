package employee

import (
	"testing"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Format(t *testing.T) {
	g := NewIDGenerator(sequence(42))
	id, err := g.Next(func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "EMP0042", id)

	g = NewIDGenerator(sequence(9999))
	id, err = g.Next(func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "EMP9999", id)
}

func TestIDGenerator_FallsBackToScan(t *testing.T) {
	// Every random draw hits 5; the scan starts at 5 and moves forward
	g := NewIDGenerator(sequence(5))
	taken := map[string]bool{"EMP0005": true, "EMP0006": true}

	id, err := g.Next(func(id string) bool { return taken[id] })
	require.NoError(t, err)
	assert.Equal(t, "EMP0007", id)
}

func TestIDGenerator_ScanWraps(t *testing.T) {
	g := NewIDGenerator(sequence(9999))
	id, err := g.Next(func(id string) bool { return id != "EMP0000" })
	require.NoError(t, err)
	assert.Equal(t, "EMP0000", id)
}

func TestIDGenerator_Exhausted(t *testing.T) {
	g := NewIDGenerator(nil)
	_, err := g.Next(func(string) bool { return true })
	assert.ErrorIs(t, err, employee.ErrIDSpaceExhausted)
}
