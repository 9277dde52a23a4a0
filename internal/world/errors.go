package world

import "errors"

var (
	// ErrChunkNotLoaded возвращается при доступе к блоку в нерезидентном чанке.
	// Генератор обязан трактовать эту ошибку как "нет информации":
	// чтение — блок не твердый, запись — пропустить и залогировать.
	ErrChunkNotLoaded = errors.New("чанк не загружен")

	// ErrOutOfBounds возвращается при Y вне вертикального диапазона сетки
	ErrOutOfBounds = errors.New("координата вне диапазона сетки")
)
