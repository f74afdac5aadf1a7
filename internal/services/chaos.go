package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Chaos injects artificial latency and randomized transient failures into
// mutating endpoints. It runs before the handler body, so a failed call never
// leaves a partial mutation behind. This is deliberate scaffolding: the
// consuming UI implements optimistic updates, and without an unreliable
// transport its rollback path would never be exercised.
type Chaos struct {
	enabled     bool
	minLatency  time.Duration
	maxLatency  time.Duration
	failureRate float64

	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(time.Duration)
}

func NewChaos(enabled bool, minLatency, maxLatency time.Duration, failureRate float64) *Chaos {
	return newChaos(enabled, minLatency, maxLatency, failureRate,
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Sleep)
}

// NewChaosWithSource fixes the random source and sleep function so tests can
// force deterministic success/failure sequences.
func NewChaosWithSource(enabled bool, minLatency, maxLatency time.Duration, failureRate float64, rng *rand.Rand, sleep func(time.Duration)) *Chaos {
	return newChaos(enabled, minLatency, maxLatency, failureRate, rng, sleep)
}

func newChaos(enabled bool, minLatency, maxLatency time.Duration, failureRate float64, rng *rand.Rand, sleep func(time.Duration)) *Chaos {
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	return &Chaos{
		enabled:     enabled,
		minLatency:  minLatency,
		maxLatency:  maxLatency,
		failureRate: failureRate,
		rng:         rng,
		sleep:       sleep,
	}
}

// Roll draws one latency/failure decision.
func (ch *Chaos) Roll() (time.Duration, bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	delay := ch.minLatency
	if span := ch.maxLatency - ch.minLatency; span > 0 {
		delay += time.Duration(ch.rng.Int63n(int64(span)))
	}
	return delay, ch.rng.Float64() < ch.failureRate
}

// Middleware wraps a mutating route. On an unlucky roll it short-circuits
// with 500 before the handler runs.
func (ch *Chaos) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ch.enabled {
			return c.Next()
		}

		delay, fail := ch.Roll()
		ch.sleep(delay)

		if fail {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Random server error. Please try again.",
				"code":  "transient_error",
			})
		}
		return c.Next()
	}
}
