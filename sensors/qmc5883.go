package sensors

import (
	"math"
	"sync"
	"time"

	"gobot.io/x/gobot/drivers/i2c"
	"gobot.io/x/gobot/platforms/raspi"
)

// QMC5883Heading reads magnetic headings from a QMC5883 magnetometer on a
// Raspberry Pi I2C bus. When the bus or the chip is missing, Available
// reports false and the tracker never subscribes.
type QMC5883Heading struct {
	mag      *i2c.QMC5883Driver
	interval time.Duration
}

func NewQMC5883Heading(bus int, interval time.Duration) *QMC5883Heading {
	q := &QMC5883Heading{interval: interval}

	board := raspi.NewAdaptor()
	if err := board.Connect(); err != nil {
		return q
	}

	mag := i2c.NewQMC5883Driver(board, i2c.WithBus(bus))
	mag.SetConfig(i2c.QMC5883Continuous | i2c.QMC5883ODR50Hz | i2c.QMC5883RNG2G | i2c.QMC5883OSR128)
	if err := mag.Start(); err != nil {
		return q
	}

	q.mag = mag
	return q
}

func (q *QMC5883Heading) Available() bool { return q.mag != nil }

// RequestPermission is a no-op: a local I2C bus has no permission prompt.
func (q *QMC5883Heading) RequestPermission() {}

func (q *QMC5883Heading) Subscribe(onUpdate func(float64), onError func(string)) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(q.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				x, y, _, err := q.mag.RawHeading()
				if err != nil {
					onError(err.Error())
					continue
				}
				degrees := math.Atan2(float64(y), float64(x)) * 180.0 / math.Pi
				if degrees < 0 {
					degrees += 360.0
				}
				onUpdate(degrees)
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
