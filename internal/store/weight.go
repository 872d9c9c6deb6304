package store

import (
	"fmt"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

// LogWeight records a weigh-in for date (today when blank). At most one log
// exists per calendar date: logging the same date again overwrites its weight
// but keeps the original creation timestamp, so ordering and identity are
// stable. A saved profile's weight follows the latest log so BMI and TDEE
// stay current without re-entering the profile.
func (s *Store) LogWeight(weightKg float64, date string) (*model.WeightLog, error) {
	if weightKg <= 0 || weightKg > 500 {
		return nil, fmt.Errorf("enter a valid weight (1-500 kg)")
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.Today()
	} else if _, err := model.ParseDateString(date); err != nil {
		return nil, err
	}

	var log model.WeightLog
	updated := false
	for i := range s.weightLogs {
		if s.weightLogs[i].Date == date {
			s.weightLogs[i].WeightKg = weightKg
			log = s.weightLogs[i]
			updated = true
			break
		}
	}
	if !updated {
		log = model.WeightLog{Date: date, WeightKg: weightKg, CreatedAt: s.nextLogTimestamp()}
		s.weightLogs = append(s.weightLogs, log)
	}
	s.persist(keyWeightLogs, s.weightLogs)

	if s.profile != nil {
		s.profile.WeightKg = weightKg
		s.persist(keyProfile, s.profile)
	}

	out := log
	return &out, nil
}

// RemoveWeightLog deletes by creation timestamp, reporting whether a log was
// removed.
func (s *Store) RemoveWeightLog(createdAt int64) bool {
	kept := s.weightLogs[:0]
	removed := false
	for _, l := range s.weightLogs {
		if l.CreatedAt == createdAt {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return false
	}
	s.weightLogs = kept
	s.persist(keyWeightLogs, s.weightLogs)
	return true
}

// WeightLogs returns the logs in insertion order.
func (s *Store) WeightLogs() []model.WeightLog {
	out := make([]model.WeightLog, len(s.weightLogs))
	copy(out, s.weightLogs)
	return out
}

func (s *Store) nextLogTimestamp() int64 {
	ts := s.now().UnixMilli()
	for _, l := range s.weightLogs {
		if l.CreatedAt >= ts {
			ts = l.CreatedAt + 1
		}
	}
	return ts
}
