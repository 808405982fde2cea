package vehicle

import (
	"cabin/internal/intent"
	"cabin/pkg/util"
)

// applySystem mocks the head-unit settings the real app changed through
// Android system calls.
func (c *Controller) applySystem(cmd intent.Command) Result {
	s := c.state.System

	switch cmd.Type {
	case intent.BrightnessUp:
		if s.Brightness >= BrightnessMax {
			return success("屏幕已经是最亮的了")
		}
		s.Brightness = util.Clamp(s.Brightness+BrightnessStep, BrightnessMin, BrightnessMax)
		c.state.System = s
		return success("屏幕亮度已调到%d", s.Brightness)

	case intent.BrightnessDown:
		if s.Brightness <= BrightnessMin {
			return success("屏幕已经是最暗的了")
		}
		s.Brightness = util.Clamp(s.Brightness-BrightnessStep, BrightnessMin, BrightnessMax)
		c.state.System = s
		return success("屏幕亮度已调到%d", s.Brightness)

	case intent.BrightnessSet:
		v, ok := numValue(cmd)
		if !ok {
			return failure("没听清要把亮度调到多少")
		}
		if v < BrightnessMin || v > BrightnessMax {
			return failure("亮度只能设置在%d到%d之间", BrightnessMin, BrightnessMax)
		}
		if v == s.Brightness {
			return success("屏幕亮度已经是%d了", v)
		}
		s.Brightness = v
		c.state.System = s
		return success("屏幕亮度已调到%d", v)

	case intent.BluetoothOn:
		if s.Bluetooth {
			return success("蓝牙已经打开了")
		}
		s.Bluetooth = true
		c.state.System = s
		return success("蓝牙已打开")

	case intent.BluetoothOff:
		if !s.Bluetooth {
			return success("蓝牙已经是关闭状态了")
		}
		s.Bluetooth = false
		c.state.System = s
		return success("蓝牙已关闭")

	case intent.WifiOn:
		if s.Wifi {
			return success("WiFi已经打开了")
		}
		s.Wifi = true
		c.state.System = s
		return success("WiFi已打开")

	case intent.WifiOff:
		if !s.Wifi {
			return success("WiFi已经是关闭状态了")
		}
		s.Wifi = false
		c.state.System = s
		return success("WiFi已关闭")
	}

	return success(Guidance)
}
