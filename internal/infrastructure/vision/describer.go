package vision

import (
	"context"
	"fmt"
	"strings"

	"lens-finder/internal/domain/entity"
	"lens-finder/internal/domain/port"
)

// TextDescriber описывает результат сканирования обычным текстом.
type TextDescriber struct {
	MaxListed int // сколько кандидатов перечислять, 0 значит все
}

// Describe формирует сообщение со счётчиком и координатами кандидатов.
func (d TextDescriber) Describe(ctx context.Context, result *entity.ScanResult) (*entity.ScanDescription, error) {
	_ = ctx
	if result == nil || !result.HasCandidates {
		return &entity.ScanDescription{Text: "✅ Подозрительных бликов не найдено."}, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 %s\n", CountLabel(result.Count))

	listed := result.Candidates
	if d.MaxListed > 0 && len(listed) > d.MaxListed {
		listed = listed[:d.MaxListed]
	}
	for i, r := range listed {
		x, y := r.Center()
		fmt.Fprintf(&sb, "%d. центр (%d, %d), %dx%d px, округлость %.2f\n", i+1, x, y, r.Width, r.Height, r.Circularity)
	}
	if rest := len(result.Candidates) - len(listed); rest > 0 {
		fmt.Fprintf(&sb, "… и ещё %d\n", rest)
	}

	return &entity.ScanDescription{Text: strings.TrimRight(sb.String(), "\n")}, nil
}

var _ port.ScanDescriber = TextDescriber{}
