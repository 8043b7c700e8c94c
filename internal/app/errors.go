// internal/app/errors.go
package app

import "errors"

// Ошибки операций игрока. Неудачный вызов никогда не меняет состояние игры.
var (
	ErrGameOver          = errors.New("game is over")
	ErrInvalidPlacement  = errors.New("invalid tower placement")
	ErrTooCloseToPath    = errors.New("too close to the path")
	ErrTooCloseToTower   = errors.New("too close to another tower")
	ErrTooCloseToBase    = errors.New("too close to the base")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrTowerLimit        = errors.New("tower limit reached")
	ErrTowerLocked       = errors.New("tower type is locked")
	ErrUnknownTower      = errors.New("unknown tower type")
	ErrTowerNotFound     = errors.New("tower not found")

	ErrUnknownUpgrade       = errors.New("unknown upgrade")
	ErrUpgradeMaxed         = errors.New("upgrade already at max level")
	ErrUpgradeNotApplicable = errors.New("upgrade does not apply to this tower")

	ErrInvalidSpeed      = errors.New("unsupported game speed")
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// shop
	ErrAlreadyUnlocked     = errors.New("tower already unlocked")
	ErrNotForSale          = errors.New("tower cannot be bought")
	ErrInsufficientCredits = errors.New("not enough credits")
)
