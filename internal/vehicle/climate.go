package vehicle

import "cabin/internal/intent"

const climateOffMsg = "空调还没有打开，请先打开空调"

// applyClimate handles the A/C sub-record. Turning the unit on restores the
// standby temperature and fan; adjusting anything while it is off is an error.
func (c *Controller) applyClimate(cmd intent.Command) Result {
	cl := c.state.Climate

	switch cmd.Type {
	case intent.ClimateOn:
		if cl.On {
			return success("空调已经打开了，当前温度%d度", cl.Temperature)
		}
		cl = Climate{On: true, Temperature: 24, Fan: 3}
		c.state.Climate = cl
		return success("空调已打开，温度%d度，风速%d档", cl.Temperature, cl.Fan)

	case intent.ClimateOff:
		if !cl.On {
			return success("空调已经是关闭状态了")
		}
		cl.On = false
		c.state.Climate = cl
		return success("空调已关闭")

	case intent.TempUp:
		if !cl.On {
			return failure(climateOffMsg)
		}
		if cl.Temperature >= TempMax {
			return success("温度已经是最高的%d度了", TempMax)
		}
		cl.Temperature++
		c.state.Climate = cl
		return success("温度已调到%d度", cl.Temperature)

	case intent.TempDown:
		if !cl.On {
			return failure(climateOffMsg)
		}
		if cl.Temperature <= TempMin {
			return success("温度已经是最低的%d度了", TempMin)
		}
		cl.Temperature--
		c.state.Climate = cl
		return success("温度已调到%d度", cl.Temperature)

	case intent.TempSet:
		if !cl.On {
			return failure(climateOffMsg)
		}
		v, ok := numValue(cmd)
		if !ok {
			return failure("没听清要把温度调到多少度")
		}
		if v < TempMin || v > TempMax {
			return failure("温度只能设置在%d到%d度之间", TempMin, TempMax)
		}
		if v == cl.Temperature {
			return success("温度已经是%d度了", v)
		}
		cl.Temperature = v
		c.state.Climate = cl
		return success("温度已调到%d度", v)

	case intent.FanUp:
		if !cl.On {
			return failure(climateOffMsg)
		}
		if cl.Fan >= FanMax {
			return success("风速已经是最大的%d档了", FanMax)
		}
		cl.Fan++
		c.state.Climate = cl
		return success("风速已调到%d档", cl.Fan)

	case intent.FanDown:
		if !cl.On {
			return failure(climateOffMsg)
		}
		if cl.Fan <= FanMin {
			return success("风速已经是最小的%d档了", FanMin)
		}
		cl.Fan--
		c.state.Climate = cl
		return success("风速已调到%d档", cl.Fan)

	case intent.FanSet:
		if !cl.On {
			return failure(climateOffMsg)
		}
		v, ok := numValue(cmd)
		if !ok {
			return failure("没听清要把风速调到几档")
		}
		if v < FanMin || v > FanMax {
			return failure("风速只能设置在%d到%d档之间", FanMin, FanMax)
		}
		if v == cl.Fan {
			return success("风速已经是%d档了", v)
		}
		cl.Fan = v
		c.state.Climate = cl
		return success("风速已调到%d档", v)
	}

	return success(Guidance)
}
