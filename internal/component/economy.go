// internal/component/economy.go
package component

// Economy: деньги игрока и состояние базы.
type Economy struct {
	Money         int
	BaseHealth    int
	MaxBaseHealth int
	BaseShake     int // тиков тряски базы после попадания
	Earned        int // сумма всех наград за игру
	Kills         int
	Leaked        int
}
