package face

import (
	"image"
	"testing"
)

func TestPrimaryRegion(t *testing.T) {
	tests := []struct {
		name     string
		boxes    []image.Rectangle
		expected image.Rectangle
	}{
		{
			name:     "single box",
			boxes:    []image.Rectangle{image.Rect(10, 10, 50, 50)},
			expected: image.Rect(10, 10, 50, 50),
		},
		{
			name: "largest box wins",
			boxes: []image.Rectangle{
				image.Rect(0, 0, 20, 20),
				image.Rect(100, 100, 180, 180),
				image.Rect(30, 30, 60, 60),
			},
			expected: image.Rect(100, 100, 180, 180),
		},
		{
			name: "equal areas break leftmost",
			boxes: []image.Rectangle{
				image.Rect(50, 10, 90, 50),
				image.Rect(10, 10, 50, 50),
			},
			expected: image.Rect(10, 10, 50, 50),
		},
		{
			name: "equal areas and x break topmost",
			boxes: []image.Rectangle{
				image.Rect(10, 40, 50, 80),
				image.Rect(10, 10, 50, 50),
			},
			expected: image.Rect(10, 10, 50, 50),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := PrimaryRegion(test.boxes)
			if got != test.expected {
				t.Errorf("PrimaryRegion = %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestPrimaryRegionIgnoresInputOrder(t *testing.T) {
	boxes := []image.Rectangle{
		image.Rect(10, 10, 50, 50),
		image.Rect(50, 10, 90, 50),
	}
	reversed := []image.Rectangle{boxes[1], boxes[0]}
	if PrimaryRegion(boxes) != PrimaryRegion(reversed) {
		t.Error("primary region selection changed with detector iteration order")
	}
}

func TestPadRegion(t *testing.T) {
	padded, ok := PadRegion(image.Rect(100, 100, 200, 200), 640, 480)
	if !ok {
		t.Fatal("expected a usable padded region")
	}
	expected := image.Rect(80, 80, 220, 220)
	if padded != expected {
		t.Errorf("padded region = %v, expected %v", padded, expected)
	}
}

func TestPadRegionClampsToFrame(t *testing.T) {
	padded, ok := PadRegion(image.Rect(0, 0, 100, 100), 90, 90)
	if !ok {
		t.Fatal("expected a usable padded region")
	}
	if padded.Min.X < 0 || padded.Min.Y < 0 || padded.Max.X > 90 || padded.Max.Y > 90 {
		t.Errorf("padded region %v escapes 90x90 frame", padded)
	}
}

func TestPadRegionRejectsEmptyResult(t *testing.T) {
	if _, ok := PadRegion(image.Rect(500, 500, 600, 600), 100, 100); ok {
		t.Error("expected empty clamped region to be rejected")
	}
}
