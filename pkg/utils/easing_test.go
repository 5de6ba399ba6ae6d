package utils

import (
	"math"
	"testing"
)

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.0625},
		{"中点", 0.5, 0.5},
		{"四分之三", 0.75, 0.9375},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
}

// TestFader_FadeOut 1.5 秒内从可见淡出到不可见
func TestFader_FadeOut(t *testing.T) {
	f := NewFader(1.5, nil)
	if f.Opacity() != 1 || !f.Done() {
		t.Fatalf("new fader should be fully visible, got %v", f.Opacity())
	}

	f.SetVisible(false)
	dt := 1.0 / 60.0

	for i := 0; i < 45; i++ {
		f.Update(dt)
	}
	if math.Abs(f.Opacity()-0.5) > 1e-9 {
		t.Errorf("expected half opacity after 0.75s, got %v", f.Opacity())
	}
	if f.Done() {
		t.Error("fade should still be in progress")
	}

	for i := 0; i < 60; i++ {
		f.Update(dt)
	}
	if f.Opacity() != 0 || !f.Done() {
		t.Errorf("expected fully hidden, got %v", f.Opacity())
	}
}

// TestFader_Reverse 中途反转从当前进度继续
func TestFader_Reverse(t *testing.T) {
	f := NewFader(1, nil)
	f.SetVisible(false)
	f.Update(0.3)

	f.SetVisible(true)
	f.Update(0.1)
	if math.Abs(f.Opacity()-0.8) > 1e-9 {
		t.Errorf("expected 0.8 after reversing, got %v", f.Opacity())
	}
}

func TestFader_ZeroDuration(t *testing.T) {
	f := NewFader(0, EaseInOutCubic)
	f.SetVisible(false)
	f.Update(0)
	if f.Opacity() != 0 {
		t.Errorf("expected immediate switch, got %v", f.Opacity())
	}
}
