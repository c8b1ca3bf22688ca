package domain

import (
	"math"
	"sort"
	"sync"
)

// HistoryStore keeps the most recent readings of every sensor.
//
// Each sensor gets a FIFO of at most capacity readings, created on its first
// reading and kept for the lifetime of the process. A single mutex guards the
// whole map: every method is atomic with respect to every other, and no
// caller code runs while the lock is held.
type HistoryStore struct {
	mu       sync.Mutex
	capacity int
	readings map[string][]Reading
}

// Record appends r to the history of sensorID, evicting the oldest reading
// when the history is already full.
func (s *HistoryStore) Record(sensorID string, r Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.readings[sensorID]
	if !ok {
		history = make([]Reading, 0, s.capacity)
	}

	if len(history) >= s.capacity {
		copy(history, history[1:])
		history[len(history)-1] = r
	} else {
		history = append(history, r)
	}
	s.readings[sensorID] = history
}

// AverageFor returns the mean temperature of the readings retained for
// sensorID, rounded to two decimals. ok is false for an unknown sensor.
func (s *HistoryStore) AverageFor(sensorID string) (avg float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Average(s.readings[sensorID])
}

// Latest returns the most recent reading of sensorID.
func (s *HistoryStore) Latest(sensorID string) (Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.readings[sensorID]
	if len(history) == 0 {
		return Reading{}, false
	}
	return history[len(history)-1], true
}

// History returns a copy of the readings retained for sensorID, oldest first.
func (s *HistoryStore) History(sensorID string) ([]Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.readings[sensorID]
	if !ok {
		return nil, false
	}
	return append([]Reading(nil), history...), true
}

// SensorIDs returns the known sensor identifiers in lexical order.
func (s *HistoryStore) SensorIDs() []string {
	s.mu.Lock()
	ids := make([]string, 0, len(s.readings))
	for id := range s.readings {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sort.Strings(ids)
	return ids
}

// Snapshot returns a copy of every sensor's history. The result shares no
// memory with the store and may be used freely without holding any lock.
func (s *HistoryStore) Snapshot() map[string][]Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string][]Reading, len(s.readings))
	for id, history := range s.readings {
		snapshot[id] = append([]Reading(nil), history...)
	}
	return snapshot
}

// Capacity returns the per-sensor history bound.
func (s *HistoryStore) Capacity() int {
	return s.capacity
}

// Average returns the mean temperature of readings rounded to two decimals,
// or false when there is nothing to average.
func Average(readings []Reading) (float64, bool) {
	if len(readings) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, r := range readings {
		sum += r.Temperature
	}
	return math.Round(sum/float64(len(readings))*100) / 100, true
}

// NewHistoryStore creates an empty store keeping capacity readings per sensor.
func NewHistoryStore(capacity HistoryCapacity) *HistoryStore {
	return &HistoryStore{
		capacity: int(capacity),
		readings: make(map[string][]Reading),
	}
}
