package skill

import "errors"

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrOccupationNotFound = errors.New("occupation not found")
)
