package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandle() VideoHandle {
	return VideoHandle{
		Path:       "/videos/sample.mp4",
		Duration:   10,
		FrameRate:  30,
		FrameCount: 300,
		Width:      1280,
		Height:     720,
		Codec:      "h264",
	}
}

func assertAscending(t *testing.T, frames []FrameTimestamp) {
	t.Helper()
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i].Index, frames[i-1].Index, "indices must be strictly ascending")
		assert.Greater(t, frames[i].Seconds, frames[i-1].Seconds, "timestamps must be strictly ascending")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{name: "all", input: "all", want: StrategyAll},
		{name: "uniform", input: "uniform", want: StrategyUniform},
		{name: "fixed_random", input: "fixed_random", want: StrategyFixedRandom},
		{name: "empty defaults to all", input: "", want: StrategyAll},
		{name: "case insensitive", input: "Uniform", want: StrategyUniform},
		{name: "unknown name", input: "every_other", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_All(t *testing.T) {
	h := testHandle()

	tests := []struct {
		name      string
		window    Window
		wantCount int
		wantFirst int
		wantLast  int
	}{
		{name: "no window selects every frame", window: Window{}, wantCount: 300, wantFirst: 0, wantLast: 299},
		{name: "window spanning whole video", window: Window{Start: 0, End: 10}, wantCount: 300, wantFirst: 0, wantLast: 299},
		{name: "sub window", window: Window{Start: 2, End: 4}, wantCount: 60, wantFirst: 60, wantLast: 119},
		{name: "end beyond duration clamps", window: Window{Start: 9, End: 25}, wantCount: 30, wantFirst: 270, wantLast: 299},
		{name: "inverted window selects nothing", window: Window{Start: 6, End: 3}, wantCount: 0},
		{name: "empty window selects nothing", window: Window{Start: 5, End: 5}, wantCount: 0},
		{name: "start beyond duration selects nothing", window: Window{Start: 40, End: 50}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := Select(h, StrategyRequest{Strategy: StrategyAll, Window: tt.window})
			require.NoError(t, err)
			assert.Len(t, frames, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, frames[0].Index)
				assert.Equal(t, tt.wantLast, frames[len(frames)-1].Index)
			}
			assertAscending(t, frames)
		})
	}
}

func TestSelect_Uniform(t *testing.T) {
	h := testHandle()

	t.Run("one fps over full duration", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 1})
		require.NoError(t, err)
		require.Len(t, frames, 10)
		for i, f := range frames {
			assert.InDelta(t, float64(i), f.Seconds, 1e-9)
			assert.Equal(t, i*30, f.Index)
		}
		assertAscending(t, frames)
	})

	t.Run("gaps equal the sampling interval", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 3, Window: Window{Start: 1.5, End: 8}})
		require.NoError(t, err)
		require.NotEmpty(t, frames)
		assert.InDelta(t, 1.5, frames[0].Seconds, 1e-9, "first sample sits on the window start")
		for i := 1; i < len(frames); i++ {
			assert.InDelta(t, 1.0/3.0, frames[i].Seconds-frames[i-1].Seconds, 1e-9)
		}
		assert.Less(t, frames[len(frames)-1].Seconds, 8.0)
		assertAscending(t, frames)
	})

	t.Run("sampling at the source rate keeps frames distinct", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 30, Window: Window{Start: 0, End: 1}})
		require.NoError(t, err)
		assert.Len(t, frames, 30)
		assertAscending(t, frames)
	})

	t.Run("window shorter than the interval still yields one sample", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 1, Window: Window{Start: 4, End: 4.2}})
		require.NoError(t, err)
		require.Len(t, frames, 1)
		assert.InDelta(t, 4.0, frames[0].Seconds, 1e-9)
	})

	t.Run("inverted window selects nothing", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 1, Window: Window{Start: 8, End: 2}})
		require.NoError(t, err)
		assert.Empty(t, frames)
	})

	t.Run("zero fps fails", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 0})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("negative fps fails", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: -3})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("fps above the source rate fails", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyUniform, FPS: 60})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestSelect_FixedRandom(t *testing.T) {
	h := testHandle()

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		req := StrategyRequest{Strategy: StrategyFixedRandom, FPS: 5, Seed: 42}
		first, err := Select(h, req)
		require.NoError(t, err)
		second, err := Select(h, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 5)
		assertAscending(t, first)
	})

	t.Run("different seeds draw different frames", func(t *testing.T) {
		a, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 5, Seed: 1})
		require.NoError(t, err)
		b, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 5, Seed: 2})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("all picks stay inside the window", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 20, Seed: 7, Window: Window{Start: 2, End: 5}})
		require.NoError(t, err)
		require.Len(t, frames, 20)
		for _, f := range frames {
			assert.GreaterOrEqual(t, f.Index, 60)
			assert.Less(t, f.Index, 150)
			assert.GreaterOrEqual(t, f.Seconds, 2.0)
			assert.Less(t, f.Seconds, 5.0)
			assert.InDelta(t, (float64(f.Index)+0.5)/30, f.Seconds, 1e-9)
		}
		assertAscending(t, frames)
	})

	t.Run("exactly the available count succeeds", func(t *testing.T) {
		frames, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 30, Seed: 3, Window: Window{Start: 2, End: 3}})
		require.NoError(t, err)
		require.Len(t, frames, 30)
		assert.Equal(t, 60, frames[0].Index)
		assert.Equal(t, 89, frames[len(frames)-1].Index)
		assertAscending(t, frames)
	})

	t.Run("count above the available frames fails", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 31, Seed: 3, Window: Window{Start: 2, End: 3}})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("zero count fails", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 0})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("empty window fails for a positive count", func(t *testing.T) {
		_, err := Select(h, StrategyRequest{Strategy: StrategyFixedRandom, FPS: 1, Seed: 5, Window: Window{Start: 5, End: 5}})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestSelect_UnknownStrategy(t *testing.T) {
	_, err := Select(testHandle(), StrategyRequest{Strategy: Strategy("nope")})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
