package intent

import (
	"regexp"
	"strings"

	"cabin/pkg/util"
)

var (
	digitsRe = regexp.MustCompile(`[0-9]+`)

	upWords   = []string{"调高", "升高", "高一点", "高一些", "调大", "大一点", "加大"}
	downWords = []string{"调低", "降低", "低一点", "低一些", "调小", "小一点", "减小"}
	onWords   = []string{"打开", "开启", "启动"}
	offWords  = []string{"关闭", "关掉", "关上"}

	mediaKeywords   = []string{"音乐", "歌", "音量", "声音", "播放", "暂停"}
	vehicleKeywords = []string{
		"空调", "温度", "风速", "车窗", "窗户", "座椅", "氛围灯",
		"大灯", "车灯", "车门", "后备箱", "引擎", "发动机", "熄火", "点火", "锁",
	}
	systemKeywords = []string{"蓝牙", "wifi", "无线网", "屏幕", "亮度"}
	queryKeywords  = []string{"天气", "几点", "时间", "几号", "日期", "星期", "车辆状态", "车况"}

	// Colors and cities are stored in the params as said, lookup only.
	colorNames = []string{"红色", "橙色", "黄色", "绿色", "蓝色", "紫色", "粉色", "白色"}
	cityNames  = []string{"北京", "上海", "广州", "深圳", "武汉", "成都", "重庆", "杭州", "南京", "西安"}
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// Parse classifies one utterance. It is a pure function: same text in, same
// command out. Unmatched text yields a TypeUnknown command.
func Parse(text string) Command {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return command(TypeUnknown, CategoryUnknown, text)
	}

	if cmd, ok := matchIdiom(t); ok {
		cmd.Utterance = text
		return cmd
	}

	switch {
	case util.ContainsAny(t, mediaKeywords...):
		return parseMedia(t, text)
	case util.ContainsAny(t, vehicleKeywords...):
		return parseVehicle(t, text)
	case util.ContainsAny(t, systemKeywords...):
		return parseSystem(t, text)
	case util.ContainsAny(t, queryKeywords...):
		return parseQuery(t, text)
	}

	return command(TypeUnknown, CategoryUnknown, text)
}

// switchIntent decides on/off phrasing. Off words are checked first so that
// "关闭" never reads as "开".
func switchIntent(t string) (on, ok bool) {
	if util.ContainsAny(t, offWords...) {
		return false, true
	}
	if util.ContainsAny(t, onWords...) || contains(t, "开") {
		return true, true
	}
	return false, false
}

func numberParam(t string) (string, bool) {
	v := digitsRe.FindString(t)
	return v, v != ""
}

func parseMedia(t, raw string) Command {
	switch {
	case util.ContainsAny(t, "下一首", "换一首", "切歌"):
		return command(MusicNext, CategoryMedia, raw)
	case contains(t, "上一首"):
		return command(MusicPrev, CategoryMedia, raw)
	case util.ContainsAny(t, "音量", "声音"):
		if v, ok := numberParam(t); ok {
			return command(VolumeSet, CategoryMedia, raw).with(ParamValue, v)
		}
		if util.ContainsAny(t, upWords...) {
			return command(VolumeUp, CategoryMedia, raw)
		}
		if util.ContainsAny(t, downWords...) {
			return command(VolumeDown, CategoryMedia, raw)
		}
		return command(TypeUnknown, CategoryUnknown, raw)
	case util.ContainsAny(t, "暂停", "停止") || util.ContainsAny(t, offWords...):
		return command(MusicPause, CategoryMedia, raw)
	case util.ContainsAny(t, "音乐", "歌", "播放"):
		return command(MusicPlay, CategoryMedia, raw)
	}
	return command(TypeUnknown, CategoryUnknown, raw)
}

func parseVehicle(t, raw string) Command {
	num, hasNum := numberParam(t)

	switch {
	case contains(t, "风速"):
		switch {
		case hasNum:
			return command(FanSet, CategoryVehicle, raw).with(ParamValue, num)
		case util.ContainsAny(t, upWords...):
			return command(FanUp, CategoryVehicle, raw)
		case util.ContainsAny(t, downWords...):
			return command(FanDown, CategoryVehicle, raw)
		}

	case contains(t, "温度") || (hasNum && contains(t, "度")):
		switch {
		case hasNum:
			return command(TempSet, CategoryVehicle, raw).with(ParamValue, num)
		case util.ContainsAny(t, upWords...):
			return command(TempUp, CategoryVehicle, raw)
		case util.ContainsAny(t, downWords...):
			return command(TempDown, CategoryVehicle, raw)
		}

	case contains(t, "空调"):
		if on, ok := switchIntent(t); ok {
			if on {
				return command(ClimateOn, CategoryVehicle, raw)
			}
			return command(ClimateOff, CategoryVehicle, raw)
		}

	case util.ContainsAny(t, "车窗", "窗户"):
		switch {
		case util.ContainsAny(t, "一半", "半开"):
			return command(WindowHalf, CategoryVehicle, raw)
		case util.ContainsAny(t, offWords...) || contains(t, "关"):
			return command(WindowClose, CategoryVehicle, raw)
		default:
			return command(WindowOpen, CategoryVehicle, raw)
		}

	case contains(t, "座椅"):
		if contains(t, "加热") {
			if on, ok := switchIntent(t); ok && !on {
				return command(SeatHeatOff, CategoryVehicle, raw)
			}
			return command(SeatHeatOn, CategoryVehicle, raw)
		}
		switch {
		case hasNum:
			return command(SeatSet, CategoryVehicle, raw).with(ParamValue, num)
		case util.ContainsAny(t, upWords...):
			return command(SeatUp, CategoryVehicle, raw)
		case util.ContainsAny(t, downWords...):
			return command(SeatDown, CategoryVehicle, raw)
		}

	case contains(t, "氛围灯"):
		if color, ok := util.FirstContained(t, colorNames); ok {
			return command(AmbientColor, CategoryVehicle, raw).with(ParamColor, color)
		}
		if on, ok := switchIntent(t); ok {
			if on {
				return command(AmbientOn, CategoryVehicle, raw)
			}
			return command(AmbientOff, CategoryVehicle, raw)
		}

	case util.ContainsAny(t, "大灯", "车灯"):
		if on, ok := switchIntent(t); ok {
			if on {
				return command(HeadlightOn, CategoryVehicle, raw)
			}
			return command(HeadlightOff, CategoryVehicle, raw)
		}

	case contains(t, "后备箱"):
		if on, ok := switchIntent(t); ok {
			if on {
				return command(TrunkOpen, CategoryVehicle, raw)
			}
			return command(TrunkClose, CategoryVehicle, raw)
		}

	case util.ContainsAny(t, "车门", "锁"):
		// "解锁" contains "锁", so the unlock spellings go first.
		if util.ContainsAny(t, "解锁", "开锁") {
			return command(DoorUnlock, CategoryVehicle, raw)
		}
		if contains(t, "锁") {
			return command(DoorLock, CategoryVehicle, raw)
		}

	case util.ContainsAny(t, "引擎", "发动机", "熄火", "点火"):
		if util.ContainsAny(t, "熄火", "关闭", "关掉") {
			return command(EngineStop, CategoryVehicle, raw)
		}
		if util.ContainsAny(t, "启动", "点火", "打开") {
			return command(EngineStart, CategoryVehicle, raw)
		}
	}

	return command(TypeUnknown, CategoryUnknown, raw)
}

func parseSystem(t, raw string) Command {
	switch {
	case contains(t, "蓝牙"):
		if on, ok := switchIntent(t); ok {
			if on {
				return command(BluetoothOn, CategorySystem, raw)
			}
			return command(BluetoothOff, CategorySystem, raw)
		}
	case util.ContainsAny(t, "wifi", "无线网"):
		if on, ok := switchIntent(t); ok {
			if on {
				return command(WifiOn, CategorySystem, raw)
			}
			return command(WifiOff, CategorySystem, raw)
		}
	case util.ContainsAny(t, "屏幕", "亮度"):
		if v, ok := numberParam(t); ok {
			return command(BrightnessSet, CategorySystem, raw).with(ParamValue, v)
		}
		if util.ContainsAny(t, upWords...) || contains(t, "亮一点") {
			return command(BrightnessUp, CategorySystem, raw)
		}
		if util.ContainsAny(t, downWords...) || contains(t, "暗一点") {
			return command(BrightnessDown, CategorySystem, raw)
		}
	}
	return command(TypeUnknown, CategoryUnknown, raw)
}

func parseQuery(t, raw string) Command {
	switch {
	case util.ContainsAny(t, "车辆状态", "车况"):
		return command(QueryStatus, CategoryQuery, raw)
	case contains(t, "天气"):
		cmd := command(QueryWeather, CategoryQuery, raw)
		if city, ok := util.FirstContained(t, cityNames); ok {
			cmd = cmd.with(ParamCity, city)
		}
		return cmd
	case util.ContainsAny(t, "几点", "时间"):
		return command(QueryTime, CategoryQuery, raw)
	case util.ContainsAny(t, "几号", "日期", "星期"):
		return command(QueryDate, CategoryQuery, raw)
	}
	return command(TypeUnknown, CategoryUnknown, raw)
}
