package entities

import (
	"errors"
	"time"
)

type SkillLevel string

const (
	Beginner     SkillLevel = "beginner"
	Intermediate SkillLevel = "intermediate"
	Advanced     SkillLevel = "advanced"
	Expert       SkillLevel = "expert"
)

func ToSkillLevel(s string) (SkillLevel, error) {
	switch SkillLevel(s) {
	case "":
		return Beginner, nil
	case Beginner, Intermediate, Advanced, Expert:
		return SkillLevel(s), nil
	default:
		return "", errors.New("invalid skill level")
	}
}

type Skill struct {
	ID        uint       `json:"id"`
	Name      string     `gorm:"not null;uniqueIndex:idx_skill_name_level" json:"name"`
	Level     SkillLevel `gorm:"not null;default:beginner;uniqueIndex:idx_skill_name_level" json:"level"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
