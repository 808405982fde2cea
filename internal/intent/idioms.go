package intent

// Idioms are colloquial phrases that map straight to a command before any
// category gating runs. Order matters: the first contained phrase wins.
// The phrase spellings are load bearing, do not "fix" them.
var idioms = []struct {
	Phrase   string
	Type     Type
	Category Category
}{
	{"好冷", TempUp, CategoryVehicle},
	{"有点冷", TempUp, CategoryVehicle},
	{"冻死", TempUp, CategoryVehicle},
	{"好热", ClimateOn, CategoryVehicle},
	{"有点热", ClimateOn, CategoryVehicle},
	{"热死", ClimateOn, CategoryVehicle},
	{"太吵", VolumeDown, CategoryMedia},
	{"有点吵", VolumeDown, CategoryMedia},
	{"想听歌", MusicPlay, CategoryMedia},
	{"来点音乐", MusicPlay, CategoryMedia},
	{"透透气", WindowOpen, CategoryVehicle},
	{"好闷", WindowOpen, CategoryVehicle},
	{"出发", EngineStart, CategoryVehicle},
	{"到家了", EngineStop, CategoryVehicle},
}

func matchIdiom(text string) (Command, bool) {
	for _, id := range idioms {
		if contains(text, id.Phrase) {
			return command(id.Type, id.Category, text), true
		}
	}
	return Command{}, false
}

// IdiomPhrases returns the supported idiom phrases in match order.
func IdiomPhrases() []string {
	out := make([]string, len(idioms))
	for i, id := range idioms {
		out[i] = id.Phrase
	}
	return out
}
