package filter

import (
	"testing"
)

func TestColorMatrixIdentity(t *testing.T) {
	src := randomPixmap(6, 6, 21)
	if !Run(NewIdentityColorMatrix(), src).Equal(src) {
		t.Error("identity matrix changed the image")
	}
}

func TestInvertIsInvolution(t *testing.T) {
	src := randomPixmap(12, 9, 4)
	inv := NewInvertFilter()

	once := Run(inv, src)
	twice := Run(inv, once)

	if !twice.Equal(src) {
		t.Error("invert applied twice should restore the source")
	}

	r, g, b, a := once.RGBA8(3, 3)
	sr, sg, sb, sa := src.RGBA8(3, 3)
	if r != 255-sr || g != 255-sg || b != 255-sb || a != sa {
		t.Errorf("invert(%d,%d,%d,%d) = (%d,%d,%d,%d)", sr, sg, sb, sa, r, g, b, a)
	}
}

func TestGrayscale(t *testing.T) {
	src := randomPixmap(10, 10, 8)
	gray := Run(NewGrayscaleFilter(), src)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r, g, b, a := gray.RGBA8(x, y)
			_, _, _, sa := src.RGBA8(x, y)
			if r != g || g != b {
				t.Fatalf("(%d,%d) = (%d,%d,%d), want equal channels", x, y, r, g, b)
			}
			if a != sa {
				t.Fatalf("alpha at (%d,%d) = %d, want %d", x, y, a, sa)
			}
		}
	}

	if !Run(NewGrayscaleFilter(), gray).Equal(gray) {
		t.Error("grayscale should be idempotent")
	}
}

func TestGrayscaleWeights(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"red", 255, 0, 0, 76},
		{"green", 0, 255, 0, 150},
		{"blue", 0, 0, 255, 29},
		{"white", 255, 255, 255, 255},
		{"black", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Run(NewGrayscaleFilter(), createTestPixmap(1, 1, tt.r, tt.g, tt.b, 255))
			if got, _, _, _ := dst.RGBA8(0, 0); got != tt.want {
				t.Errorf("gray = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSepia(t *testing.T) {
	tests := []struct {
		name    string
		in      [3]uint8
		r, g, b uint8
	}{
		{"warm", [3]uint8{100, 50, 20}, 82, 73, 57},
		{"white saturates", [3]uint8{255, 255, 255}, 255, 255, 239},
		{"black", [3]uint8{0, 0, 0}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createTestPixmap(1, 1, tt.in[0], tt.in[1], tt.in[2], 200)
			r, g, b, a := Run(NewSepiaFilter(), src).RGBA8(0, 0)
			if r != tt.r || g != tt.g || b != tt.b || a != 200 {
				t.Errorf("sepia = (%d,%d,%d,%d), want (%d,%d,%d,200)", r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorMatrixMultiply(t *testing.T) {
	src := randomPixmap(8, 8, 13)
	gray := NewGrayscaleFilter()
	inv := NewInvertFilter()

	sequential := Run(inv, Run(gray, src))
	combined := Run(gray.Multiply(inv), src)

	a, b := sequential.Data(), combined.Data()
	for i := range a {
		if absi(int(a[i])-int(b[i])) > 1 {
			t.Fatalf("byte %d: sequential %d, combined %d", i, a[i], b[i])
		}
	}
}
