package usecase

import "errors"

// Ошибки расчётов
var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrNonFiniteResult = errors.New("calculation produced a non-finite result")
)
