package breaker

import (
	"errors"
	"log/slog"
	"time"

	cb "github.com/sony/gobreaker"
)

type Settings struct {
	Name                string
	Interval            time.Duration
	OpenTimeout         time.Duration
	ConsecutiveFailures uint32
	MinRequests         uint32
	FailureRatio        float64
}

// Breaker размыкатель вокруг внешнего источника предложений
type Breaker struct {
	cb *cb.CircuitBreaker
}

// ErrOpen возвращается, пока размыкатель открыт
var ErrOpen = errors.New("circuit breaker is open")

func New(s Settings, log *slog.Logger) *Breaker {
	st := cb.Settings{
		Name:     s.Name,
		Interval: s.Interval,
		Timeout:  s.OpenTimeout,
	}
	st.ReadyToTrip = func(counts cb.Counts) bool {
		if s.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= s.ConsecutiveFailures {
			return true
		}
		if counts.Requests < s.MinRequests || counts.Requests == 0 {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > s.FailureRatio
	}
	st.OnStateChange = func(name string, from, to cb.State) {
		log.Warn("смена состояния размыкателя",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	}
	return &Breaker{cb: cb.NewCircuitBreaker(st)}
}

// Execute вызывает fn через размыкатель. Открытое состояние даёт ErrOpen.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, cb.ErrOpenState) || errors.Is(err, cb.ErrTooManyRequests) {
			return zero, ErrOpen
		}
		return zero, err
	}
	return res.(T), nil
}

func (b *Breaker) State() string {
	return b.cb.State().String()
}
