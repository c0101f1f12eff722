package fontpack

import (
	"errors"
	"testing"
)

func TestTransformConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TransformConfig
		wantErr bool
	}{
		{"zero value", TransformConfig{}, false},
		{"all rotations", TransformConfig{Rotation: 270}, false},
		{"rotation 45", TransformConfig{Rotation: 45}, true},
		{"rotation 360", TransformConfig{Rotation: 360}, true},
		{"negative rotation", TransformConfig{Rotation: -90}, true},
		{"negative target width", TransformConfig{TargetWidth: -1}, true},
		{"negative target height", TransformConfig{TargetHeight: -8}, true},
		{"valid targets", TransformConfig{TargetWidth: 8, TargetHeight: 8}, false},
		{"bad anchor", TransformConfig{Anchor: Anchor(99)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ce *ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("error type = %T, want *ConfigError", err)
				}
			}
		})
	}
}

func TestTransformRotate90(t *testing.T) {
	m := BitmapFromRows(
		"XX.",
		"..X",
	)
	got := Transform(m, TransformConfig{Rotation: 90})
	want := BitmapFromRows(
		".X",
		".X",
		"X.",
	)
	if !got.Equal(want) {
		t.Errorf("rotate 90:\n%v\nwant:\n%v", got, want)
	}
}

func TestTransformRotationIdentities(t *testing.T) {
	m := BitmapFromRows(
		"X..X.",
		".XX..",
		"..X.X",
	)

	t.Run("four quarter turns", func(t *testing.T) {
		got := m
		for i := 0; i < 4; i++ {
			got = Transform(got, TransformConfig{Rotation: 90})
		}
		if !got.Equal(m) {
			t.Errorf("rotating 4x90 changed the bitmap:\n%v", got)
		}
	})

	for _, r := range []int{90, 180, 270} {
		t.Run("rotation cancels", func(t *testing.T) {
			got := Transform(Transform(m, TransformConfig{Rotation: r}), TransformConfig{Rotation: 360 - r})
			if !got.Equal(m) {
				t.Errorf("rotate %d then %d is not identity:\n%v", r, 360-r, got)
			}
		})
	}
}

func TestTransformRotationIsLossless(t *testing.T) {
	m := BitmapFromRows("XX.X", "X..X")
	for _, r := range []int{0, 90, 180, 270} {
		got := Transform(m, TransformConfig{Rotation: r})
		lit := 0
		for y := 0; y < got.Height(); y++ {
			for x := 0; x < got.Width(); x++ {
				if got.Get(x, y) {
					lit++
				}
			}
		}
		if lit != 5 {
			t.Errorf("rotation %d dropped pixels: %d lit, want 5", r, lit)
		}
	}
}

func TestTransformMirror(t *testing.T) {
	m := BitmapFromRows(
		"X..",
		".X.",
	)

	tests := []struct {
		name string
		cfg  TransformConfig
		want *Bitmap
	}{
		{"horizontal", TransformConfig{MirrorH: true}, BitmapFromRows("..X", ".X.")},
		{"vertical", TransformConfig{MirrorV: true}, BitmapFromRows(".X.", "X..")},
		{"both", TransformConfig{MirrorH: true, MirrorV: true}, BitmapFromRows(".X.", "..X")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(m, tt.cfg)
			if !got.Equal(tt.want) {
				t.Errorf("got:\n%v\nwant:\n%v", got, tt.want)
			}
		})
	}
}

func TestTransformDoubleMirrorIdentity(t *testing.T) {
	m := BitmapFromRows("X.X", "XX.", "..X")
	for _, cfg := range []TransformConfig{{MirrorH: true}, {MirrorV: true}} {
		got := Transform(Transform(m, cfg), cfg)
		if !got.Equal(m) {
			t.Errorf("double mirror %+v is not identity:\n%v", cfg, got)
		}
	}
}

func TestTransformPad(t *testing.T) {
	m := BitmapFromRows(
		"XX",
		"X.",
	)

	tests := []struct {
		name string
		cfg  TransformConfig
		want *Bitmap
	}{
		{
			"top-left pads right and bottom",
			TransformConfig{TargetWidth: 4, TargetHeight: 3},
			BitmapFromRows("XX..", "X...", "...."),
		},
		{
			"bottom-right pads left and top",
			TransformConfig{TargetWidth: 4, TargetHeight: 3, Anchor: AnchorBottomRight},
			BitmapFromRows("....", "..XX", "..X."),
		},
		{
			"center",
			TransformConfig{TargetWidth: 4, TargetHeight: 4, Anchor: AnchorCenter},
			BitmapFromRows("....", ".XX.", ".X..", "...."),
		},
		{
			"pad fill lit",
			TransformConfig{TargetWidth: 3, TargetHeight: 2, PadFill: true},
			BitmapFromRows("XXX", "X.X"),
		},
		{
			"width only",
			TransformConfig{TargetWidth: 3},
			BitmapFromRows("XX.", "X.."),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(m, tt.cfg)
			if !got.Equal(tt.want) {
				t.Errorf("got:\n%v\nwant:\n%v", got, tt.want)
			}
		})
	}
}

func TestTransformTrim(t *testing.T) {
	m := BitmapFromRows(
		"XX..",
		"X.X.",
		"...X",
	)

	tests := []struct {
		name string
		cfg  TransformConfig
		want *Bitmap
	}{
		{
			"top-left keeps top-left window",
			TransformConfig{TargetWidth: 2, TargetHeight: 2},
			BitmapFromRows("XX", "X."),
		},
		{
			"bottom-right keeps bottom-right window",
			TransformConfig{TargetWidth: 2, TargetHeight: 2, Anchor: AnchorBottomRight},
			BitmapFromRows("X.", ".X"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(m, tt.cfg)
			if !got.Equal(tt.want) {
				t.Errorf("got:\n%v\nwant:\n%v", got, tt.want)
			}
		})
	}
}

// Padding a 5x7 glyph into an 8x8 cell anchored top-left: the original
// pixels stay put and the new area is unlit.
func TestTransformPadGlyphCell(t *testing.T) {
	m := diagonal5x7()
	got := Transform(m, TransformConfig{TargetWidth: 8, TargetHeight: 8})
	want := BitmapFromRows(
		"X.......",
		".X......",
		"..X.....",
		"...X....",
		"....X...",
		"........",
		"........",
	)
	want = Transform(want, TransformConfig{TargetHeight: 8})
	if got.Width() != 8 || got.Height() != 8 {
		t.Fatalf("size = %dx%d, want 8x8", got.Width(), got.Height())
	}
	if !got.Equal(want) {
		t.Errorf("got:\n%v\nwant:\n%v", got, want)
	}
}

func TestTransformDoesNotAliasInput(t *testing.T) {
	m := BitmapFromRows("X.", ".X")
	got := Transform(m, TransformConfig{})
	if got == m {
		t.Fatal("identity transform returned the input bitmap")
	}
	got.Set(1, 0, true)
	if m.Get(1, 0) {
		t.Error("mutating the output changed the input")
	}
}

// diagonal5x7 is the 5x7 test glyph used across transform and pack tests:
// a main diagonal with two empty rows at the bottom.
func diagonal5x7() *Bitmap {
	return BitmapFromRows(
		"X....",
		".X...",
		"..X..",
		"...X.",
		"....X",
		".....",
		".....",
	)
}
