// internal/defs/demo.go
package defs

// TowerWeight: запись таблицы случайного выбора башни.
type TowerWeight struct {
	Tower  TowerType `yaml:"tower"`
	Weight int       `yaml:"weight"`
}

// DemoDefinition configures the attract mode shown behind the menu and used
// by headless runs.
type DemoDefinition struct {
	Towers      int           `yaml:"towers"`       // сколько башен расставить
	Attempts    int           `yaml:"attempts"`     // попыток найти свободное место на башню
	Money       int           `yaml:"money"`        // стартовые деньги демо
	Bounds      Vec           `yaml:"bounds"`       // размер поля для случайных точек
	TowerTable  []TowerWeight `yaml:"tower_table"`  // веса типов башен
	UpgradeOdds float64       `yaml:"upgrade_odds"` // шанс докупить улучшение за тик волны
}
