package vehicle

import (
	"strings"
	"testing"
	"time"

	"cabin/internal/intent"
)

func TestQueryWeather(t *testing.T) {
	c := New("武汉")

	res := c.Apply(intent.Parse("北京天气怎么样"))
	if !res.OK || !strings.Contains(res.Message, "北京") {
		t.Errorf("weather reply = %+v", res)
	}

	// No city said: the configured default city answers.
	res = c.Apply(intent.Parse("今天天气怎么样"))
	if !res.OK || !strings.Contains(res.Message, "武汉") {
		t.Errorf("default-city weather reply = %+v", res)
	}
}

func TestQueryTimeAndDate(t *testing.T) {
	c := New("")
	c.now = func() time.Time {
		return time.Date(2026, 8, 28, 15, 4, 0, 0, time.Local)
	}

	res := c.Apply(intent.Parse("现在几点了"))
	if !res.OK || res.Message != "现在是15点04分" {
		t.Errorf("time reply = %+v", res)
	}

	res = c.Apply(intent.Parse("今天几号"))
	if !res.OK || res.Message != "今天是2026年8月28日，星期五" {
		t.Errorf("date reply = %+v", res)
	}
}

func TestQueryStatusReflectsState(t *testing.T) {
	c := New("")
	c.Apply(intent.Parse("打开空调"))
	c.Apply(intent.Parse("车窗开一半"))
	c.Apply(intent.Parse("锁车门"))

	before := c.State()
	res := c.Apply(intent.Parse("车辆状态怎么样"))
	if !res.OK {
		t.Fatalf("status query failed: %s", res.Message)
	}
	for _, want := range []string{"空调开着", "24度", "车窗开了一半", "车门已上锁", "引擎已熄火"} {
		if !strings.Contains(res.Message, want) {
			t.Errorf("status %q missing %q", res.Message, want)
		}
	}
	if c.State() != before {
		t.Error("query mutated state")
	}
}
