package vehicle

import (
	"cabin/internal/intent"
	"cabin/pkg/util"
)

func (c *Controller) applyMedia(cmd intent.Command) Result {
	m := c.state.Media

	switch cmd.Type {
	case intent.MusicPlay:
		if m.Playing {
			return success("已经在播放《%s》了", playlist[m.Track])
		}
		m.Playing = true
		c.state.Media = m
		return success("正在播放《%s》", playlist[m.Track])

	case intent.MusicPause:
		if !m.Playing {
			return success("当前没有在播放音乐")
		}
		m.Playing = false
		c.state.Media = m
		return success("音乐已暂停")

	case intent.MusicNext:
		if !m.Playing {
			return failure("当前没有在播放音乐，先说播放音乐试试")
		}
		m.Track = (m.Track + 1) % len(playlist)
		c.state.Media = m
		return success("已切换到下一首：《%s》", playlist[m.Track])

	case intent.MusicPrev:
		if !m.Playing {
			return failure("当前没有在播放音乐，先说播放音乐试试")
		}
		m.Track = (m.Track + len(playlist) - 1) % len(playlist)
		c.state.Media = m
		return success("已切换到上一首：《%s》", playlist[m.Track])

	case intent.VolumeUp:
		if m.Volume >= VolumeMax {
			return success("音量已经是最大了")
		}
		m.Volume = util.Clamp(m.Volume+VolumeStep, VolumeMin, VolumeMax)
		c.state.Media = m
		return success("音量已调到%d", m.Volume)

	case intent.VolumeDown:
		if m.Volume <= VolumeMin {
			return success("音量已经是最小了")
		}
		m.Volume = util.Clamp(m.Volume-VolumeStep, VolumeMin, VolumeMax)
		c.state.Media = m
		return success("音量已调到%d", m.Volume)

	case intent.VolumeSet:
		v, ok := numValue(cmd)
		if !ok {
			return failure("没听清要把音量调到多少")
		}
		if v < VolumeMin || v > VolumeMax {
			return failure("音量只能设置在%d到%d之间", VolumeMin, VolumeMax)
		}
		if v == m.Volume {
			return success("音量已经是%d了", v)
		}
		m.Volume = v
		c.state.Media = m
		return success("音量已调到%d", v)
	}

	return success(Guidance)
}
