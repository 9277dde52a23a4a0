package world

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestChunkCreateAndGetBlock(t *testing.T) {
	coords := vec.Vec2{X: 5, Z: 10}
	chunk := NewChunk(coords, 32)

	// Проверяем координаты
	if chunk.Coords.X != 5 || chunk.Coords.Z != 10 {
		t.Errorf("Ожидались координаты {5,10}, получено {%d,%d}", chunk.Coords.X, chunk.Coords.Z)
	}

	// Проверяем, что блоки инициализированы как пустые
	pos := vec.Vec2{X: 3, Z: 4}
	blockID := chunk.GetBlock(pos, 7)
	if blockID != block.AirBlockID {
		t.Errorf("Ожидался пустой блок (AirBlockID), получен %d", blockID)
	}

	// Устанавливаем и проверяем блок
	chunk.SetBlock(pos, 7, block.StoneBlockID)
	blockID = chunk.GetBlock(pos, 7)
	if blockID != block.StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получен %d", blockID)
	}

	// Соседняя высота не затронута
	if chunk.GetBlock(pos, 8) != block.AirBlockID {
		t.Error("Запись не должна затрагивать соседние по высоте блоки")
	}
}

func TestChunkChanges(t *testing.T) {
	chunk := NewChunk(vec.Vec2{X: 3, Z: 4}, 32)

	// Изначально изменений нет
	if chunk.HasChanges() {
		t.Error("Новый чанк не должен иметь изменений")
	}

	pos := vec.Vec2{X: 1, Z: 2}
	chunk.SetBlock(pos, 0, block.StoneBlockID)

	if !chunk.HasChanges() {
		t.Error("Чанк должен иметь изменения после SetBlock")
	}
	if chunk.ChangeCounter != 1 {
		t.Errorf("Ожидался счетчик изменений 1, получено %d", chunk.ChangeCounter)
	}

	// Повторная запись того же блока изменением не считается
	chunk.SetBlock(pos, 0, block.StoneBlockID)
	if chunk.ChangeCounter != 1 {
		t.Errorf("Идемпотентная запись увеличила счетчик: %d", chunk.ChangeCounter)
	}

	chunk.ClearChanges()
	if chunk.HasChanges() {
		t.Error("Чанк не должен иметь изменений после ClearChanges")
	}
}

func TestChunkSnapshotRoundtrip(t *testing.T) {
	chunk := NewChunk(vec.Vec2{X: 0, Z: 0}, 16)
	chunk.SetBlock(vec.Vec2{X: 2, Z: 3}, 5, block.GrassBlockID)
	chunk.SetBlock(vec.Vec2{X: 15, Z: 15}, 15, block.WaterBlockID)

	snapshot := chunk.Snapshot()

	restored := NewChunk(vec.Vec2{X: 0, Z: 0}, 16)
	if !restored.ApplySnapshot(snapshot) {
		t.Fatal("ApplySnapshot отклонил снимок совпадающего размера")
	}

	if restored.GetBlock(vec.Vec2{X: 2, Z: 3}, 5) != block.GrassBlockID {
		t.Error("Блок травы потерян при восстановлении")
	}
	if restored.GetBlock(vec.Vec2{X: 15, Z: 15}, 15) != block.WaterBlockID {
		t.Error("Блок воды потерян при восстановлении")
	}

	// Снимок неверного размера отклоняется
	other := NewChunk(vec.Vec2{X: 0, Z: 0}, 32)
	if other.ApplySnapshot(snapshot) {
		t.Error("ApplySnapshot принял снимок чужого размера")
	}
}
