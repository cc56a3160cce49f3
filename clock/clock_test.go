package clock_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/clock"
)

var stampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

func TestClockAdvance(t *testing.T) {
	c := clock.New(false)
	assert.Equal(t, 0, c.ElapsedSeconds())

	c.Advance(5)
	assert.Equal(t, 5, c.ElapsedSeconds())

	// 非正值不产生效果
	c.Advance(0)
	c.Advance(-3)
	assert.Equal(t, 5, c.ElapsedSeconds())

	c.Advance(3661)
	assert.Equal(t, "01:01:06", c.String())
}

func TestClockInit(t *testing.T) {
	c := clock.New(false)
	c.Advance(100)
	c.Init()
	assert.Equal(t, 0, c.ElapsedSeconds())
	assert.Equal(t, "00:00:00", c.String())
}

func TestClockStampFormat(t *testing.T) {
	assert.Regexp(t, stampPattern, clock.New(false).Stamp())
	assert.Regexp(t, stampPattern, clock.New(true).Stamp())
}

func TestClockStampFollowsSimulatedTime(t *testing.T) {
	c := clock.New(false)
	t1, err := time.Parse("15:04:05", c.Stamp())
	assert.NoError(t, err)

	c.Advance(10)
	t2, err := time.Parse("15:04:05", c.Stamp())
	assert.NoError(t, err)

	// 快速模式下时间戳按仿真秒数前进（对一天取模处理跨天）
	diff := t2.Sub(t1)
	if diff < 0 {
		diff += 24 * time.Hour
	}
	assert.Equal(t, 10*time.Second, diff)
}

func TestInstantWaiterDoesNotBlock(t *testing.T) {
	c := clock.New(false)
	waited := make([]int, 0)
	w := clock.NewInstantWaiter(c, func(seconds int) {
		waited = append(waited, seconds)
	})

	start := time.Now()
	w.Wait(3600)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 3600, c.ElapsedSeconds())
	assert.Equal(t, []int{3600}, waited)
}

func TestWaiterSkipsNonPositive(t *testing.T) {
	c := clock.New(false)
	called := false
	w := clock.NewInstantWaiter(c, func(int) { called = true })

	w.Wait(0)
	w.Wait(-5)
	assert.Equal(t, 0, c.ElapsedSeconds())
	assert.False(t, called)

	// 实时等待器对非正值同样直接返回，不阻塞
	sw := clock.NewSleepWaiter(c)
	start := time.Now()
	sw.Wait(0)
	sw.Wait(-1)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 0, c.ElapsedSeconds())
}
