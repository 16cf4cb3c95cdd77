package employee

import (
	"fmt"
	"math/rand"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
)

const (
	idSpace           = 10000
	maxRandomAttempts = 32
)

// IDGenerator draws EMP#### ids at random and skips ids already in use.
type IDGenerator struct {
	intN func(n int) int
}

// NewIDGenerator uses intN as its random source; nil means math/rand.
func NewIDGenerator(intN func(n int) int) *IDGenerator {
	if intN == nil {
		intN = rand.Intn
	}
	return &IDGenerator{intN: intN}
}

// Next returns an id for which taken reports false. After a bounded number of
// random draws it scans forward from a random start, so it only fails when
// every id is taken.
func (g *IDGenerator) Next(taken func(id string) bool) (string, error) {
	for i := 0; i < maxRandomAttempts; i++ {
		id := formatID(g.intN(idSpace))
		if !taken(id) {
			return id, nil
		}
	}

	start := g.intN(idSpace)
	for i := 0; i < idSpace; i++ {
		id := formatID((start + i) % idSpace)
		if !taken(id) {
			return id, nil
		}
	}
	return "", employee.ErrIDSpaceExhausted
}

func formatID(n int) string {
	return fmt.Sprintf("EMP%04d", n)
}
