// internal/app/loadout.go
package app

import (
	"fmt"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
)

// Loadout: какие типы башен игрок может строить.
type Loadout struct {
	unlocked map[defs.TowerType]bool
	prices   map[defs.TowerType]int
}

// NewLoadout starts from the shop's initial set.
func NewLoadout(shop defs.ShopDefinition) *Loadout {
	l := &Loadout{
		unlocked: make(map[defs.TowerType]bool),
		prices:   make(map[defs.TowerType]int, len(shop.Unlocks)),
	}
	for _, t := range shop.Initial {
		l.unlocked[t] = true
	}
	for t, price := range shop.Unlocks {
		l.prices[t] = price
	}
	return l
}

func (l *Loadout) Unlocked(t defs.TowerType) bool {
	return l.unlocked[t]
}

// Available returns the unlocked tower types in display order.
func (l *Loadout) Available() []defs.TowerType {
	var out []defs.TowerType
	for _, t := range defs.AllTowerTypes {
		if l.unlocked[t] {
			out = append(out, t)
		}
	}
	return out
}

// Price returns the unlock price of a still-locked tower type.
func (l *Loadout) Price(t defs.TowerType) (int, bool) {
	if l.unlocked[t] {
		return 0, false
	}
	price, ok := l.prices[t]
	return price, ok
}

// UnlockAll открывает все типы башен (демо-режим).
func (l *Loadout) UnlockAll() {
	for _, t := range defs.AllTowerTypes {
		l.unlocked[t] = true
	}
}

func (l *Loadout) unlock(t defs.TowerType) {
	l.unlocked[t] = true
}

// Session хранит мета-состояние между играми: кредиты и магазин. Живёт только
// в памяти процесса.
type Session struct {
	Lib        *defs.Library
	Loadout    *Loadout
	Credits    int
	Difficulty defs.Difficulty
}

// NewSession starts with the normal starting money as credits.
func NewSession(lib *defs.Library) *Session {
	credits := 0
	if normal, ok := lib.Difficulty(defs.DifficultyNormal); ok {
		credits = normal.StartingMoney
	}
	return &Session{
		Lib:        lib,
		Loadout:    NewLoadout(lib.Shop),
		Credits:    credits,
		Difficulty: defs.DifficultyNormal,
	}
}

func (s *Session) SetDifficulty(d defs.Difficulty) error {
	if _, ok := s.Lib.Difficulty(d); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	s.Difficulty = d
	return nil
}

// Buy unlocks a tower type for credits.
func (s *Session) Buy(t defs.TowerType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTower, t)
	}
	if s.Loadout.Unlocked(t) {
		return ErrAlreadyUnlocked
	}
	price, ok := s.Loadout.Price(t)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotForSale, t)
	}
	if s.Credits < price {
		return ErrInsufficientCredits
	}
	s.Credits -= price
	s.Loadout.unlock(t)
	logger.Logger.Info("tower unlocked", "tower", t, "price", price, "credits", s.Credits)
	return nil
}

// NewGame starts a game with the session's difficulty and loadout.
func (s *Session) NewGame() (*Game, error) {
	return NewGame(s.Lib, s.Difficulty, s.Loadout)
}

// Settle переводит ещё не учтённый заработок игры в кредиты. Повторный
// вызов ничего не добавляет.
func (s *Session) Settle(g *Game) int {
	delta := g.ECS.Economy.Earned - g.settled
	if delta <= 0 {
		return 0
	}
	g.settled = g.ECS.Economy.Earned
	s.Credits += delta
	return delta
}

// Restart settles g and resets it.
func (s *Session) Restart(g *Game) {
	s.Settle(g)
	g.Reset()
}
