package schedule

import (
	"time"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/metrics"
	"github.com/slotframe-app/slotframe/internal/timezone"
)

type GenerateSlots struct{}

func NewGenerateSlots() *GenerateSlots {
	return &GenerateSlots{}
}

func (uc *GenerateSlots) Execute(in domain.GenerateInput) ([]time.Time, error) {
	slots, err := domain.GenerateSlots(in, timezone.Now())
	if err != nil {
		return nil, err
	}

	metrics.AddSlotsGenerated(len(slots))
	return slots, nil
}
