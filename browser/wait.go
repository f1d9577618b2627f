package browser

import (
	"errors"
	"time"
)

// Poller retries a check until it passes or Timeout has elapsed.
type Poller struct {
	Timeout  time.Duration
	Interval time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPoller returns a Poller on the wall clock.
func NewPoller(timeout, interval time.Duration) *Poller {
	return &Poller{
		Timeout:  timeout,
		Interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Until calls check until it returns nil. Once more than Timeout has passed since
// the first call, the latest error from check is returned as is. ErrNoPage is
// returned at once: no page will load while the caller is blocked here.
func (p *Poller) Until(check func() error) error {
	now, sleep := p.now, p.sleep
	if now == nil {
		now = time.Now
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	start := now()
	for {
		err := check()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNoPage) || now().Sub(start) > p.Timeout {
			return err
		}
		sleep(p.Interval)
	}
}
