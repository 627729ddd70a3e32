package starbutton

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		input, want int
	}{
		{0, 1},
		{1, 1},
		{3, 4},
		{96, 128},
		{320, 512},
		{512, 512},
		{1000, 1024},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.input); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPoolKeyDistinguishesAxes(t *testing.T) {
	if poolKey(64, 128) == poolKey(128, 64) {
		t.Error("poolKey should not be symmetric")
	}
}

func TestPoolAcquireRoundsUp(t *testing.T) {
	var pool renderTexturePool
	img := pool.Acquire(320, 200)
	defer pool.Dispose()
	defer pool.Release(img)

	b := img.Bounds()
	if b.Dx() != 512 || b.Dy() != 256 {
		t.Errorf("size = %dx%d, want 512x256", b.Dx(), b.Dy())
	}
}

func TestPoolReusesReleasedImage(t *testing.T) {
	var pool renderTexturePool
	defer pool.Dispose()

	first := pool.Acquire(100, 100)
	pool.Release(first)
	second := pool.Acquire(90, 120)
	if first != second {
		t.Error("same power-of-two bucket should reuse the released image")
	}
	third := pool.Acquire(100, 100)
	if third == second {
		t.Error("an acquired image must not be handed out twice")
	}
	pool.Release(second)
	pool.Release(third)
}

func TestPoolReleaseNil(t *testing.T) {
	var pool renderTexturePool
	pool.Release(nil) // should not panic
}

func TestPoolDispose(t *testing.T) {
	var pool renderTexturePool
	pool.Release(pool.Acquire(16, 16))
	pool.Dispose()
	if len(pool.buckets) != 0 {
		t.Errorf("buckets = %d, want 0 after Dispose", len(pool.buckets))
	}
}
