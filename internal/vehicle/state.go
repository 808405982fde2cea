// Package vehicle holds the simulated vehicle and executes classified
// commands against it. Nothing here touches real hardware: every effect is a
// whole sub-record replacement on an in-memory state.
package vehicle

// Field bounds. Absolute sets outside these reject; relative steps stop at
// the bound with an informational reply.
const (
	TempMin = 16
	TempMax = 32
	FanMin  = 1
	FanMax  = 5
	SeatMin = 1
	SeatMax = 5

	VolumeMin  = 0
	VolumeMax  = 100
	VolumeStep = 10

	BrightnessMin  = 10
	BrightnessMax  = 100
	BrightnessStep = 10
)

// Window openness positions.
const (
	WindowClosed = 0
	WindowHalf   = 50
	WindowFull   = 100
)

type Climate struct {
	On          bool
	Temperature int
	Fan         int
}

type Seat struct {
	Position int
	Heating  bool
}

type Window struct {
	Openness int // WindowClosed, WindowHalf or WindowFull
}

type Lights struct {
	Headlight    bool
	Ambient      bool
	AmbientColor string
}

type Doors struct {
	Locked    bool
	TrunkOpen bool
}

type Engine struct {
	Running bool
}

type Media struct {
	Playing bool
	Track   int
	Volume  int
}

type System struct {
	Brightness int
	Bluetooth  bool
	Wifi       bool
}

// State is the whole simulated vehicle. Sub-records are independent; updates
// replace one sub-record at a time.
type State struct {
	Climate Climate `json:"climate"`
	Seat    Seat    `json:"seat"`
	Window  Window  `json:"window"`
	Lights  Lights  `json:"lights"`
	Doors   Doors   `json:"doors"`
	Engine  Engine  `json:"engine"`
	Media   Media   `json:"media"`
	System  System  `json:"system"`
}

// Defaults is the state at session start. The climate standby values are what
// turning the A/C on restores.
func Defaults() State {
	return State{
		Climate: Climate{On: false, Temperature: 24, Fan: 3},
		Seat:    Seat{Position: 3},
		Window:  Window{Openness: WindowClosed},
		Lights:  Lights{AmbientColor: "白色"},
		Doors:   Doors{},
		Engine:  Engine{},
		Media:   Media{Volume: 40},
		System:  System{Brightness: 60},
	}
}

// playlist is the canned media library the mock player cycles through.
var playlist = []string{"晴天", "夜曲", "平凡之路", "光年之外", "海阔天空"}
