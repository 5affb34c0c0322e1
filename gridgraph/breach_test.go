package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestBreachWalls_SingleWall tests a 1×3 line with one wall between start
// and goal.
// Expected: cost 1, route [0 1 2].
func TestBreachWalls_SingleWall(t *testing.T) {
	gg := mustParse(t, []string{"S#G"}, Conn4)

	path, walls, err := gg.BreachWalls(0, 2)
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if walls != 1 {
		t.Errorf("walls = %d; want 1", walls)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreachWalls_ThickWall tests a 1×4 line where two walls must go.
func TestBreachWalls_ThickWall(t *testing.T) {
	gg := mustParse(t, []string{"S##G"}, Conn4)

	path, walls, err := gg.BreachWalls(0, 3)
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if walls != 2 {
		t.Errorf("walls = %d; want 2", walls)
	}
	if len(path) != 4 {
		t.Errorf("path length = %d; want 4", len(path))
	}
}

// TestBreachWalls_Detour prefers a longer open route over a short one
// through a wall.
//
//	S # G
//	. . .
func TestBreachWalls_Detour(t *testing.T) {
	gg := mustParse(t, []string{"S#G", "..."}, Conn4)

	path, walls, err := gg.BreachWalls(0, 2)
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if walls != 0 {
		t.Errorf("walls = %d; want 0", walls)
	}
	if want := []int{0, 3, 4, 5, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreachWalls_Diagonal squeezes between two walls with Conn8.
func TestBreachWalls_Diagonal(t *testing.T) {
	gg := mustParse(t, []string{"S#", "#G"}, Conn8)

	_, walls, err := gg.BreachWalls(0, 3)
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if walls != 0 {
		t.Errorf("walls = %d; want 0", walls)
	}
}

func TestBreachWalls_SameCell(t *testing.T) {
	gg := mustParse(t, []string{"S."}, Conn4)

	path, walls, err := gg.BreachWalls(1, 1)
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if walls != 0 || !reflect.DeepEqual(path, []int{1}) {
		t.Errorf("got %v, %d; want [1], 0", path, walls)
	}
}

func TestBreachWalls_OutOfBounds(t *testing.T) {
	gg := mustParse(t, []string{"S."}, Conn4)

	if _, _, err := gg.BreachWalls(0, 9); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v; want ErrOutOfBounds", err)
	}
	if _, _, err := gg.BreachWalls(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v; want ErrOutOfBounds", err)
	}
}
