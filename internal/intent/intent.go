// Package intent turns free text into a command from the fixed taxonomy.
// Matching is purely rule based: an idiom table first, then category keyword
// gating, then per-category rule trees. First match wins, no scoring.
package intent

// Category groups command types by the executor that handles them.
type Category string

const (
	CategoryUnknown Category = "unknown"
	CategoryMedia   Category = "media"
	CategoryVehicle Category = "vehicle"
	CategorySystem  Category = "system"
	CategoryQuery   Category = "query"
)

// Type is the classified command type.
type Type string

const (
	TypeUnknown Type = "unknown"

	// media
	MusicPlay  Type = "music_play"
	MusicPause Type = "music_pause"
	MusicNext  Type = "music_next"
	MusicPrev  Type = "music_prev"
	VolumeUp   Type = "volume_up"
	VolumeDown Type = "volume_down"
	VolumeSet  Type = "volume_set"

	// vehicle
	ClimateOn      Type = "climate_on"
	ClimateOff     Type = "climate_off"
	TempUp         Type = "temp_up"
	TempDown       Type = "temp_down"
	TempSet        Type = "temp_set"
	FanUp          Type = "fan_up"
	FanDown        Type = "fan_down"
	FanSet         Type = "fan_set"
	SeatUp         Type = "seat_up"
	SeatDown       Type = "seat_down"
	SeatSet        Type = "seat_set"
	SeatHeatOn     Type = "seat_heat_on"
	SeatHeatOff    Type = "seat_heat_off"
	WindowOpen     Type = "window_open"
	WindowClose    Type = "window_close"
	WindowHalf     Type = "window_half"
	HeadlightOn    Type = "headlight_on"
	HeadlightOff   Type = "headlight_off"
	AmbientOn      Type = "ambient_on"
	AmbientOff     Type = "ambient_off"
	AmbientColor   Type = "ambient_color"
	DoorLock       Type = "door_lock"
	DoorUnlock     Type = "door_unlock"
	TrunkOpen      Type = "trunk_open"
	TrunkClose     Type = "trunk_close"
	EngineStart    Type = "engine_start"
	EngineStop     Type = "engine_stop"

	// system
	BrightnessUp   Type = "brightness_up"
	BrightnessDown Type = "brightness_down"
	BrightnessSet  Type = "brightness_set"
	BluetoothOn    Type = "bluetooth_on"
	BluetoothOff   Type = "bluetooth_off"
	WifiOn         Type = "wifi_on"
	WifiOff        Type = "wifi_off"

	// query
	QueryWeather Type = "query_weather"
	QueryTime    Type = "query_time"
	QueryDate    Type = "query_date"
	QueryStatus  Type = "query_status"
)

// Param keys extracted alongside the command type.
const (
	ParamValue = "value"
	ParamColor = "color"
	ParamCity  = "city"
)

// Command is the immutable classification result. Params carry auxiliary
// values (a number, a color, a city); absent keys mean "not said".
type Command struct {
	Type      Type
	Category  Category
	Params    map[string]string
	Utterance string
}

// IsUnknown reports whether no rule matched the utterance.
func (c Command) IsUnknown() bool { return c.Type == TypeUnknown }

func command(typ Type, cat Category, text string) Command {
	return Command{Type: typ, Category: cat, Params: map[string]string{}, Utterance: text}
}

func (c Command) with(key, val string) Command {
	c.Params[key] = val
	return c
}
