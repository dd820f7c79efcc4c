package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConsistencyReportsViolations(t *testing.T) {
	m := &Manager{}
	m.queryRows = func(query string) ([]string, [][]string, error) {
		if strings.Contains(query, "r.seat") {
			// two reservations for seat 12A on flight 7: one violation group
			return []string{"flight_id", "seat", "duplicates"},
				[][]string{{"7", "12A", "2"}}, nil
		}
		return []string{"passenger_id", "first_flight", "second_flight"}, nil, nil
	}

	res, report := m.CheckConsistency()
	assert.True(t, res.Success)
	require.Len(t, report, 2)

	seats := report["duplicate_seats"]
	assert.True(t, seats.Ran)
	assert.Equal(t, 1, seats.Violations)
	require.Len(t, seats.Rows, 1)
	assert.Equal(t, []string{"7", "12A", "2"}, seats.Rows[0])

	overlaps := report["overlapping_flights"]
	assert.True(t, overlaps.Ran)
	assert.Zero(t, overlaps.Violations)
}

func TestCheckConsistencySkipsFailedCheck(t *testing.T) {
	m := &Manager{}
	m.queryRows = func(query string) ([]string, [][]string, error) {
		if strings.Contains(query, "departure_time") {
			return nil, nil, errors.New("unknown column 'departure_time'")
		}
		return []string{"flight_id", "seat", "duplicates"}, nil, nil
	}

	res, report := m.CheckConsistency()
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "1 check(s) skipped")

	overlaps := report["overlapping_flights"]
	assert.False(t, overlaps.Ran)
	assert.Equal(t, -1, overlaps.Violations)
	assert.Contains(t, overlaps.Err, "unknown column")

	// the other check still ran
	assert.True(t, report["duplicate_seats"].Ran)
}

func TestCheckNamesMatchesSuiteOrder(t *testing.T) {
	assert.Equal(t, []string{"duplicate_seats", "overlapping_flights"}, CheckNames())
}
