package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Типы событий генерации мира.
const (
	EventTypePhase = "worldgen.phase"
	EventTypeWorld = "worldgen.world"
)

// PhasePayload описывает прохождение одной фазы генерации.
type PhasePayload struct {
	Phase      string `json:"phase"`
	Status     string `json:"status"` // started | completed | failed
	Seed       int64  `json:"seed"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

// WorldPayload описывает завершение генерации мира целиком.
type WorldPayload struct {
	Seed       int64 `json:"seed"`
	Phases     int   `json:"phases"`
	Failed     int   `json:"failed"`
	DurationMs int64 `json:"duration_ms"`
}

// PublishPhase отправляет событие фазы в глобальную шину.
// correlationID связывает все события одного прогона генерации.
func PublishPhase(ctx context.Context, correlationID string, p PhasePayload) {
	publishJSON(ctx, EventTypePhase, correlationID, 3, p)
}

// PublishWorld отправляет итоговое событие прогона генерации.
func PublishWorld(ctx context.Context, correlationID string, p WorldPayload) {
	publishJSON(ctx, EventTypeWorld, correlationID, 5, p)
}

func publishJSON(ctx context.Context, eventType, correlationID string, priority int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// Ошибка публикации не должна ломать генерацию
	_ = Publish(ctx, &Envelope{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		Source:        "worldgen",
		EventType:     eventType,
		Version:       1,
		CorrelationID: correlationID,
		Priority:      priority,
		Payload:       data,
	})
}
