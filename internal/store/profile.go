package store

import (
	"fmt"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/energy"
	"github.com/kalorieapp/kalorie-cli/internal/model"
)

// ProfileDraft carries unvalidated profile input.
type ProfileDraft struct {
	Name     string
	WeightKg float64
	HeightCm float64
	AgeYears float64
	Sex      model.Sex
}

// SaveProfile validates draft and replaces the stored profile, marking it
// confirmed. Rules are checked in order (name, weight, height, age, BMI
// plausibility) and the first violation is returned as the error, ready for
// direct display.
func (s *Store) SaveProfile(draft ProfileDraft) (*model.Profile, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, fmt.Errorf("enter your first name")
	}
	if draft.WeightKg <= 0 || draft.WeightKg > 500 {
		return nil, fmt.Errorf("enter a valid weight (1-500 kg)")
	}
	if draft.HeightCm < 50 || draft.HeightCm > 280 {
		return nil, fmt.Errorf("enter a valid height (50-280 cm)")
	}
	if draft.AgeYears < 1 || draft.AgeYears > 130 {
		return nil, fmt.Errorf("enter a valid age (1-130 years)")
	}
	// Catches unit-entry mistakes such as height given in meters.
	bmi, ok := energy.BMI(draft.WeightKg, draft.HeightCm)
	if !ok || bmi < 5 || bmi > 100 {
		return nil, fmt.Errorf("implausible BMI (%.1f): check your values, height is in cm", bmi)
	}

	sex := draft.Sex
	if sex != model.SexFemale {
		sex = model.SexMale
	}
	p := model.Profile{
		Name:     name,
		WeightKg: draft.WeightKg,
		HeightCm: draft.HeightCm,
		AgeYears: draft.AgeYears,
		Sex:      sex,
	}
	s.profile = &p
	s.profileSaved = true
	s.persist(keyProfile, s.profile)
	s.persist(keyProfileSaved, s.profileSaved)

	out := p
	return &out, nil
}

// Profile returns a copy of the stored profile, or nil when none was saved.
func (s *Store) Profile() *model.Profile {
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// ProfileSaved reports whether a profile has been explicitly confirmed.
// Editing happens outside the store: the caller pre-fills a draft from
// Profile() and nothing changes until the next successful SaveProfile.
func (s *Store) ProfileSaved() bool {
	return s.profileSaved
}

// SetActivity persists the selected activity level.
func (s *Store) SetActivity(id string) error {
	level, err := energy.LevelByID(id)
	if err != nil {
		return err
	}
	s.activity = level.ID
	s.persist(keyActivity, s.activity)
	return nil
}

// Activity returns the persisted activity level id, default "moderate".
func (s *Store) Activity() string {
	return s.activity
}
