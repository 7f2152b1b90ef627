package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	slotsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slotframe",
			Name:      "slots_generated_total",
			Help:      "Count of candidate slots produced by the generator.",
		},
	)

	framesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slotframe",
			Name:      "frames_created_total",
			Help:      "Count of schedule frames created.",
		},
	)

	bookingConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slotframe",
			Name:      "booking_confirmed_total",
			Help:      "Count of booking confirmations by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotsGenerated, framesCreated, bookingConfirmed)
	})
}

func AddSlotsGenerated(n int) {
	slotsGenerated.Add(float64(n))
}

func IncFramesCreated() {
	framesCreated.Inc()
}

func IncBookingConfirmed(outcome string) {
	bookingConfirmed.WithLabelValues(outcome).Inc()
}
