// component/movement.go
package component

import "go-path-defense/pkg/pathmap"

// Position: компонент позиции
type Position = pathmap.Point

// PathFollower: прогресс сущности по общему пути.
type PathFollower struct {
	CurrentPoint int  // индекс последнего достигнутого вейпоинта
	ReachedEnd   bool // дошёл ли до базы
}
