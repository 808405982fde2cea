package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestInRange(t *testing.T) {
	if !InRange(16, 16, 32) || !InRange(32, 16, 32) {
		t.Error("bounds should be inside the range")
	}
	if InRange(15, 16, 32) || InRange(33, 16, 32) {
		t.Error("values outside the bounds should not be in range")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("温度调高一点", "调高", "升高") {
		t.Error("expected match on 调高")
	}
	if ContainsAny("播放音乐", "温度", "车窗") {
		t.Error("unexpected match")
	}
}

func TestFirstContained(t *testing.T) {
	got, ok := FirstContained("氛围灯调成蓝色", []string{"红色", "蓝色", "绿色"})
	if !ok || got != "蓝色" {
		t.Errorf("FirstContained = %q, %v", got, ok)
	}
	if _, ok := FirstContained("打开大灯", []string{"红色"}); ok {
		t.Error("expected no match")
	}
}
