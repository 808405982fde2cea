package vehicle

import (
	"fmt"
	"strings"
	"time"

	"cabin/internal/intent"
)

// Canned forecasts: the demo has no weather service, city → one-liner.
var forecasts = map[string]string{
	"北京": "晴，22到30度",
	"上海": "多云，24到31度",
	"广州": "雷阵雨，26到33度",
	"深圳": "阵雨，26到32度",
	"武汉": "晴转多云，25到34度",
	"成都": "阴，21到27度",
	"重庆": "多云，26到35度",
	"杭州": "晴，23到32度",
	"南京": "多云，24到33度",
	"西安": "晴，20到31度",
}

var weekdays = map[time.Weekday]string{
	time.Sunday:    "星期日",
	time.Monday:    "星期一",
	time.Tuesday:   "星期二",
	time.Wednesday: "星期三",
	time.Thursday:  "星期四",
	time.Friday:    "星期五",
	time.Saturday:  "星期六",
}

// applyQuery never mutates state; it reads the clock, the forecast table and
// the current snapshot.
func (c *Controller) applyQuery(cmd intent.Command) Result {
	switch cmd.Type {
	case intent.QueryWeather:
		city := cmd.Params[intent.ParamCity]
		if city == "" {
			city = c.city
		}
		fc, ok := forecasts[city]
		if !ok {
			return failure("暂时查不到%s的天气", city)
		}
		return success("%s今天%s", city, fc)

	case intent.QueryTime:
		now := c.now()
		return success("现在是%d点%02d分", now.Hour(), now.Minute())

	case intent.QueryDate:
		now := c.now()
		return success("今天是%d年%d月%d日，%s",
			now.Year(), int(now.Month()), now.Day(), weekdays[now.Weekday()])

	case intent.QueryStatus:
		return success("%s", c.statusSummary())
	}

	return success(Guidance)
}

func (c *Controller) statusSummary() string {
	s := c.state
	var parts []string

	if s.Climate.On {
		parts = append(parts, fmt.Sprintf("空调开着，温度%d度，风速%d档", s.Climate.Temperature, s.Climate.Fan))
	} else {
		parts = append(parts, "空调关着")
	}

	switch s.Window.Openness {
	case WindowFull:
		parts = append(parts, "车窗全开")
	case WindowHalf:
		parts = append(parts, "车窗开了一半")
	default:
		parts = append(parts, "车窗关着")
	}

	if s.Doors.Locked {
		parts = append(parts, "车门已上锁")
	} else {
		parts = append(parts, "车门未上锁")
	}

	if s.Engine.Running {
		parts = append(parts, "引擎运转中")
	} else {
		parts = append(parts, "引擎已熄火")
	}

	return "当前" + strings.Join(parts, "，")
}
