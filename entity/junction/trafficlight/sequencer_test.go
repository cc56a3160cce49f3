package trafficlight_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/clock"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/entity/junction/trafficlight"
)

func newTestLights() (ns, ew *trafficlight.Light) {
	ns = trafficlight.NewLight("North-South", 3)
	ew = trafficlight.NewLight("East-West", 3)
	ns.GreenDuration = 23
	ew.GreenDuration = 17
	return
}

func TestRunCycleEventOrder(t *testing.T) {
	c := clock.New(false)
	events := make([]trafficlight.Event, 0)
	s := trafficlight.NewSequencer(1, clock.NewInstantWaiter(c, nil), func(ev trafficlight.Event) {
		events = append(events, ev)
	})
	ns, ew := newTestLights()

	s.RunCycle(ns, ew)

	// 一个周期恰好六次相位切换，顺序固定
	expected := []trafficlight.Event{
		{Direction: "North-South", State: trafficlight.LightStateGreen, Duration: 23},
		{Direction: "North-South", State: trafficlight.LightStateYellow, Duration: 3},
		{Direction: "North-South", State: trafficlight.LightStateRed, Duration: 1, HandOff: true},
		{Direction: "East-West", State: trafficlight.LightStateGreen, Duration: 17},
		{Direction: "East-West", State: trafficlight.LightStateYellow, Duration: 3},
		{Direction: "East-West", State: trafficlight.LightStateRed, Duration: 1, HandOff: true},
	}
	assert.Equal(t, expected, events)

	// 周期结束后双方都处于红灯
	assert.Equal(t, trafficlight.LightStateRed, ns.State)
	assert.Equal(t, trafficlight.LightStateRed, ew.State)
}

func TestRunCycleAdvancesClock(t *testing.T) {
	c := clock.New(false)
	s := trafficlight.NewSequencer(1, clock.NewInstantWaiter(c, nil), nil)
	ns, ew := newTestLights()

	s.RunCycle(ns, ew)

	// 23+3+1 + 17+3+1
	assert.Equal(t, 48, c.ElapsedSeconds())
}

func TestRunCycleInstantDoesNotBlock(t *testing.T) {
	c := clock.New(false)
	s := trafficlight.NewSequencer(1, clock.NewInstantWaiter(c, nil), nil)
	ns, ew := newTestLights()
	ns.GreenDuration = 3600
	ew.GreenDuration = 3600

	start := time.Now()
	for n := 0; n < 10; n++ {
		s.RunCycle(ns, ew)
	}
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 10*(3600+3+1)*2, c.ElapsedSeconds())
}

func TestRunCycleZeroAllRed(t *testing.T) {
	c := clock.New(false)
	events := make([]trafficlight.Event, 0)
	s := trafficlight.NewSequencer(0, clock.NewInstantWaiter(c, nil), func(ev trafficlight.Event) {
		events = append(events, ev)
	})
	ns, ew := newTestLights()

	s.RunCycle(ns, ew)

	// 全红间隔为0时事件仍然产生，只是不度过时间
	assert.Len(t, events, 6)
	assert.Equal(t, 23+3+17+3, c.ElapsedSeconds())
}

func TestLightStateString(t *testing.T) {
	assert.Equal(t, "RED", trafficlight.LightStateRed.String())
	assert.Equal(t, "GREEN", trafficlight.LightStateGreen.String())
	assert.Equal(t, "YELLOW", trafficlight.LightStateYellow.String())
}
