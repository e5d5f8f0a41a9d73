package constraint

import (
	"slices"
	"testing"
)

func TestLayers_Chain(t *testing.T) {
	g := build(t, 3, [][2]int{{1, 2}, {2, 3}})

	want := [][]int{{1}, {2}, {3}}
	got := Layers(g)
	if !equalLayers(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestLayers_Diamond(t *testing.T) {
	g := build(t, 4, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}})

	want := [][]int{{1}, {2, 3}, {4}}
	got := Layers(g)
	if !equalLayers(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestLayers_IsolatedPhotosInFirstWave(t *testing.T) {
	g := build(t, 5, [][2]int{{1, 2}})

	want := [][]int{{1, 3, 4, 5}, {2}}
	got := Layers(g)
	if !equalLayers(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestLayers_LongestPathWins(t *testing.T) {
	// 4 is reachable in one step from 1 but also via 2→3, so it lands in
	// the last wave.
	g := build(t, 4, [][2]int{{1, 4}, {1, 2}, {2, 3}, {3, 4}})

	want := [][]int{{1}, {2}, {3}, {4}}
	got := Layers(g)
	if !equalLayers(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestLayers_RespectsRemovals(t *testing.T) {
	g := build(t, 3, [][2]int{{1, 2}, {2, 3}})
	g.Remove(1)

	want := [][]int{{2}, {3}}
	got := Layers(g)
	if !equalLayers(got, want) {
		t.Errorf("Layers() after Remove(1) = %v, want %v", got, want)
	}
}

func TestLayers_Empty(t *testing.T) {
	g := build(t, 0, nil)
	if got := Layers(g); len(got) != 0 {
		t.Errorf("Layers() = %v, want empty", got)
	}
}

func TestLayers_CoversAllPhotosOnce(t *testing.T) {
	g := build(t, 7, [][2]int{{1, 3}, {2, 3}, {3, 4}, {3, 5}, {6, 5}})

	seen := make(map[int]int)
	for _, wave := range Layers(g) {
		for _, id := range wave {
			seen[id]++
		}
	}
	for id := 1; id <= 7; id++ {
		if seen[id] != 1 {
			t.Errorf("photo %d appears %d times, want 1", id, seen[id])
		}
	}
}

func equalLayers(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
