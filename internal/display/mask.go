package display

import (
	"time"
)

// MaskTicker is the secondary, optional thread of spec §5: on
// terminals without real echo-suppression support, a daemon goroutine
// periodically re-invokes a redraw callback to keep typed characters
// hidden. It is a mitigation, not a contract (spec Design Notes): an
// embedder on a terminal with echo already disabled may simply never
// start one.
type MaskTicker struct {
	stop chan struct{}
}

// StartMaskTicker starts a goroutine calling redraw every interval
// until StopMaskTicker is called.
func StartMaskTicker(interval time.Duration, redraw func()) *MaskTicker {
	m := &MaskTicker{stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				redraw()
			case <-m.stop:
				return
			}
		}
	}()

	return m
}

// Stop interrupts the background redraw goroutine.
func (m *MaskTicker) Stop() {
	close(m.stop)
}
