package intent

import "testing"

func TestIdioms(t *testing.T) {
	tests := []struct {
		text string
		typ  Type
	}{
		{"我好冷", TempUp},
		{"今天有点冷", TempUp},
		{"好热啊", ClimateOn},
		{"车里太吵了", VolumeDown},
		{"我想听歌", MusicPlay},
		{"来点音乐吧", MusicPlay},
		{"开窗透透气", WindowOpen},
		{"我们出发吧", EngineStart},
		{"到家了", EngineStop},
	}
	for _, tt := range tests {
		cmd := Parse(tt.text)
		if cmd.Type != tt.typ {
			t.Errorf("Parse(%q).Type = %s, want %s", tt.text, cmd.Type, tt.typ)
		}
	}
}

func TestIdiomsWinOverCategoryRules(t *testing.T) {
	// "来点音乐" would also classify through the media tree; the idiom table
	// must win because it runs first.
	cmd := Parse("来点音乐")
	if cmd.Type != MusicPlay || cmd.Category != CategoryMedia {
		t.Errorf("Parse(来点音乐) = %s/%s", cmd.Type, cmd.Category)
	}
}

func TestEveryIdiomClassifies(t *testing.T) {
	for _, phrase := range IdiomPhrases() {
		if Parse(phrase).IsUnknown() {
			t.Errorf("idiom %q classified Unknown", phrase)
		}
	}
}
