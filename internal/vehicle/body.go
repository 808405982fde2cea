package vehicle

import "cabin/internal/intent"

// applyVehicle routes the vehicle category to the sub-record executors.
func (c *Controller) applyVehicle(cmd intent.Command) Result {
	switch cmd.Type {
	case intent.ClimateOn, intent.ClimateOff,
		intent.TempUp, intent.TempDown, intent.TempSet,
		intent.FanUp, intent.FanDown, intent.FanSet:
		return c.applyClimate(cmd)

	case intent.SeatUp, intent.SeatDown, intent.SeatSet,
		intent.SeatHeatOn, intent.SeatHeatOff:
		return c.applySeat(cmd)

	case intent.WindowOpen, intent.WindowClose, intent.WindowHalf:
		return c.applyWindow(cmd)

	case intent.HeadlightOn, intent.HeadlightOff,
		intent.AmbientOn, intent.AmbientOff, intent.AmbientColor:
		return c.applyLights(cmd)

	case intent.DoorLock, intent.DoorUnlock,
		intent.TrunkOpen, intent.TrunkClose:
		return c.applyDoors(cmd)

	case intent.EngineStart, intent.EngineStop:
		return c.applyEngine(cmd)
	}
	return success(Guidance)
}

func (c *Controller) applySeat(cmd intent.Command) Result {
	st := c.state.Seat

	switch cmd.Type {
	case intent.SeatUp:
		if st.Position >= SeatMax {
			return success("座椅已经调到最高了")
		}
		st.Position++
		c.state.Seat = st
		return success("座椅已调到%d档", st.Position)

	case intent.SeatDown:
		if st.Position <= SeatMin {
			return success("座椅已经调到最低了")
		}
		st.Position--
		c.state.Seat = st
		return success("座椅已调到%d档", st.Position)

	case intent.SeatSet:
		v, ok := numValue(cmd)
		if !ok {
			return failure("没听清要把座椅调到几档")
		}
		if v < SeatMin || v > SeatMax {
			return failure("座椅只能调节在%d到%d档之间", SeatMin, SeatMax)
		}
		if v == st.Position {
			return success("座椅已经是%d档了", v)
		}
		st.Position = v
		c.state.Seat = st
		return success("座椅已调到%d档", v)

	case intent.SeatHeatOn:
		if st.Heating {
			return success("座椅加热已经打开了")
		}
		st.Heating = true
		c.state.Seat = st
		return success("座椅加热已打开")

	case intent.SeatHeatOff:
		if !st.Heating {
			return success("座椅加热已经是关闭状态了")
		}
		st.Heating = false
		c.state.Seat = st
		return success("座椅加热已关闭")
	}

	return success(Guidance)
}

func (c *Controller) applyWindow(cmd intent.Command) Result {
	w := c.state.Window

	switch cmd.Type {
	case intent.WindowOpen:
		if w.Openness == WindowFull {
			return success("车窗已经完全打开了")
		}
		w.Openness = WindowFull
		c.state.Window = w
		return success("车窗已打开")

	case intent.WindowClose:
		if w.Openness == WindowClosed {
			return success("车窗已经是关闭状态了")
		}
		w.Openness = WindowClosed
		c.state.Window = w
		return success("车窗已关闭")

	case intent.WindowHalf:
		if w.Openness == WindowHalf {
			return success("车窗已经开到一半了")
		}
		w.Openness = WindowHalf
		c.state.Window = w
		return success("车窗已开到一半")
	}

	return success(Guidance)
}

func (c *Controller) applyLights(cmd intent.Command) Result {
	l := c.state.Lights

	switch cmd.Type {
	case intent.HeadlightOn:
		if l.Headlight {
			return success("大灯已经打开了")
		}
		l.Headlight = true
		c.state.Lights = l
		return success("大灯已打开")

	case intent.HeadlightOff:
		if !l.Headlight {
			return success("大灯已经是关闭状态了")
		}
		l.Headlight = false
		c.state.Lights = l
		return success("大灯已关闭")

	case intent.AmbientOn:
		if l.Ambient {
			return success("氛围灯已经打开了")
		}
		l.Ambient = true
		c.state.Lights = l
		return success("氛围灯已打开，当前是%s", l.AmbientColor)

	case intent.AmbientOff:
		if !l.Ambient {
			return success("氛围灯已经是关闭状态了")
		}
		l.Ambient = false
		c.state.Lights = l
		return success("氛围灯已关闭")

	case intent.AmbientColor:
		if !l.Ambient {
			return failure("氛围灯还没有打开，请先打开氛围灯")
		}
		color, ok := cmd.Params[intent.ParamColor]
		if !ok || color == "" {
			return failure("没听清要换成什么颜色")
		}
		if color == l.AmbientColor {
			return success("氛围灯已经是%s了", color)
		}
		l.AmbientColor = color
		c.state.Lights = l
		return success("氛围灯已切换为%s", color)
	}

	return success(Guidance)
}

func (c *Controller) applyDoors(cmd intent.Command) Result {
	d := c.state.Doors

	switch cmd.Type {
	case intent.DoorLock:
		if d.Locked {
			return success("车门已经锁好了")
		}
		d.Locked = true
		c.state.Doors = d
		return success("车门已上锁")

	case intent.DoorUnlock:
		if !d.Locked {
			return success("车门已经是解锁状态了")
		}
		d.Locked = false
		c.state.Doors = d
		return success("车门已解锁")

	case intent.TrunkOpen:
		if d.TrunkOpen {
			return success("后备箱已经是打开的了")
		}
		d.TrunkOpen = true
		c.state.Doors = d
		return success("后备箱已打开")

	case intent.TrunkClose:
		if !d.TrunkOpen {
			return success("后备箱已经是关闭状态了")
		}
		d.TrunkOpen = false
		c.state.Doors = d
		return success("后备箱已关闭")
	}

	return success(Guidance)
}

func (c *Controller) applyEngine(cmd intent.Command) Result {
	e := c.state.Engine

	switch cmd.Type {
	case intent.EngineStart:
		if e.Running {
			return success("引擎已经在运转了")
		}
		e.Running = true
		c.state.Engine = e
		return success("引擎已启动，祝您一路平安")

	case intent.EngineStop:
		if !e.Running {
			return success("引擎已经熄火了")
		}
		e.Running = false
		c.state.Engine = e
		return success("引擎已熄火")
	}

	return success(Guidance)
}
