package vehicle

import (
	"strings"
	"testing"

	"cabin/internal/intent"
)

func apply(t *testing.T, c *Controller, text string) Result {
	t.Helper()
	return c.Apply(intent.Parse(text))
}

func TestClimateOnDefaults(t *testing.T) {
	c := New("")

	res := apply(t, c, "打开空调")
	if !res.OK {
		t.Fatalf("打开空调 failed: %s", res.Message)
	}
	st := c.State()
	if !st.Climate.On || st.Climate.Temperature != 24 || st.Climate.Fan != 3 {
		t.Fatalf("climate after turn on = %+v, want on/24/3", st.Climate)
	}
	if !strings.Contains(res.Message, "24度") {
		t.Errorf("reply %q should mention 24度", res.Message)
	}
}

func TestTempSetOutOfRangeRejects(t *testing.T) {
	c := New("")
	apply(t, c, "打开空调")
	before := c.State()

	res := apply(t, c, "温度调到40度")
	if res.OK {
		t.Fatalf("温度调到40度 should be an error, got %q", res.Message)
	}
	if c.State() != before {
		t.Error("state must be unchanged after a rejected set")
	}
}

func TestTempStepsNeverLeaveRange(t *testing.T) {
	c := New("")
	apply(t, c, "打开空调")

	for i := 0; i < 30; i++ {
		apply(t, c, "温度调高一点")
		if temp := c.State().Climate.Temperature; temp > TempMax {
			t.Fatalf("temperature escaped range: %d", temp)
		}
	}
	if temp := c.State().Climate.Temperature; temp != TempMax {
		t.Fatalf("temperature = %d, want %d after many increments", temp, TempMax)
	}

	// At the bound the command is idempotent and informational.
	before := c.State()
	res := apply(t, c, "温度调高一点")
	if !res.OK || c.State() != before {
		t.Errorf("increment at max must be an informational no-op, got %+v", res)
	}

	for i := 0; i < 30; i++ {
		apply(t, c, "温度调低一点")
		if temp := c.State().Climate.Temperature; temp < TempMin {
			t.Fatalf("temperature escaped range: %d", temp)
		}
	}
	if temp := c.State().Climate.Temperature; temp != TempMin {
		t.Fatalf("temperature = %d, want %d after many decrements", temp, TempMin)
	}
}

func TestFanAndSeatBounds(t *testing.T) {
	c := New("")
	apply(t, c, "打开空调")

	for i := 0; i < 10; i++ {
		apply(t, c, "风速调大一点")
		apply(t, c, "座椅调高一点")
	}
	st := c.State()
	if st.Climate.Fan != FanMax {
		t.Errorf("fan = %d, want %d", st.Climate.Fan, FanMax)
	}
	if st.Seat.Position != SeatMax {
		t.Errorf("seat = %d, want %d", st.Seat.Position, SeatMax)
	}

	for i := 0; i < 10; i++ {
		apply(t, c, "风速调小一点")
		apply(t, c, "座椅调低一点")
	}
	st = c.State()
	if st.Climate.Fan != FanMin || st.Seat.Position != SeatMin {
		t.Errorf("fan/seat = %d/%d, want %d/%d", st.Climate.Fan, st.Seat.Position, FanMin, SeatMin)
	}
}

func TestOffTwiceIsIdempotent(t *testing.T) {
	c := New("")
	apply(t, c, "打开空调")
	apply(t, c, "关闭空调")

	before := c.State()
	res := apply(t, c, "关闭空调")
	if !res.OK {
		t.Fatalf("second off errored: %s", res.Message)
	}
	if !strings.Contains(res.Message, "已经") {
		t.Errorf("second off should carry an already-message, got %q", res.Message)
	}
	if c.State() != before {
		t.Error("second off mutated state")
	}
}

func TestClimatePrecondition(t *testing.T) {
	c := New("")
	before := c.State()

	for _, text := range []string{"温度调高一点", "温度调到26度", "风速调大一点"} {
		res := apply(t, c, text)
		if res.OK {
			t.Errorf("%q with A/C off should error, got %q", text, res.Message)
		}
	}
	if c.State() != before {
		t.Error("failed preconditions must not mutate state")
	}
}

func TestAmbientColorFlow(t *testing.T) {
	c := New("")

	if res := apply(t, c, "氛围灯调成蓝色"); res.OK {
		t.Errorf("recolor with ambient off should error, got %q", res.Message)
	}
	apply(t, c, "打开氛围灯")
	res := apply(t, c, "氛围灯调成蓝色")
	if !res.OK || c.State().Lights.AmbientColor != "蓝色" {
		t.Fatalf("recolor failed: %+v, state %+v", res, c.State().Lights)
	}
	// Same color again: informational, unchanged.
	before := c.State()
	res = apply(t, c, "氛围灯调成蓝色")
	if !res.OK || c.State() != before {
		t.Errorf("same color should be a no-op, got %+v", res)
	}
}

func TestMediaFlow(t *testing.T) {
	c := New("")

	if res := apply(t, c, "下一首"); res.OK {
		t.Errorf("track skip while paused should error, got %q", res.Message)
	}

	res := apply(t, c, "播放音乐")
	if !res.OK || !c.State().Media.Playing {
		t.Fatalf("play failed: %+v", res)
	}
	if !strings.Contains(res.Message, playlist[0]) {
		t.Errorf("play reply %q should name the track", res.Message)
	}

	apply(t, c, "下一首")
	if c.State().Media.Track != 1 {
		t.Errorf("track = %d, want 1", c.State().Media.Track)
	}
	apply(t, c, "上一首")
	if c.State().Media.Track != 0 {
		t.Errorf("track = %d, want 0", c.State().Media.Track)
	}

	for i := 0; i < 20; i++ {
		apply(t, c, "音量调大一点")
	}
	if v := c.State().Media.Volume; v != VolumeMax {
		t.Errorf("volume = %d, want %d", v, VolumeMax)
	}

	if res := apply(t, c, "音量调到120"); res.OK {
		t.Errorf("out-of-range volume set should error, got %q", res.Message)
	}
}

func TestSystemFlow(t *testing.T) {
	c := New("")

	apply(t, c, "打开蓝牙")
	if !c.State().System.Bluetooth {
		t.Error("bluetooth should be on")
	}
	before := c.State()
	res := apply(t, c, "打开蓝牙")
	if !res.OK || c.State() != before {
		t.Errorf("double bluetooth-on should be a no-op, got %+v", res)
	}

	for i := 0; i < 20; i++ {
		apply(t, c, "屏幕暗一点")
	}
	if b := c.State().System.Brightness; b != BrightnessMin {
		t.Errorf("brightness = %d, want %d", b, BrightnessMin)
	}
}

func TestUnknownYieldsGuidance(t *testing.T) {
	c := New("")
	before := c.State()

	res := c.Apply(intent.Parse("帮我订一张机票"))
	if !res.OK {
		t.Error("unknown input must not be an error")
	}
	if res.Message != Guidance {
		t.Errorf("reply = %q, want guidance", res.Message)
	}
	if c.State() != before {
		t.Error("unknown input mutated state")
	}
}

func TestReset(t *testing.T) {
	c := New("")
	apply(t, c, "打开空调")
	apply(t, c, "播放音乐")

	c.Reset()
	if c.State() != Defaults() {
		t.Errorf("state after reset = %+v", c.State())
	}
}
