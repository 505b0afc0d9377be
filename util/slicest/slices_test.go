// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestMapAndMapI(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("Map() = %v", got)
	}

	gotI := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if !reflect.DeepEqual(gotI, []string{"a0", "b1"}) {
		t.Fatalf("MapI() = %v", gotI)
	}
}

func TestMapXI_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := MapXI([]int{1, 2, 3}, func(_ int, v int) (int, error) {
		calls++
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestFilterDoesNotAlias(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := Filter(in, func(v int) bool { return v%2 == 0 })
	if !reflect.DeepEqual(out, []int{2, 4}) {
		t.Fatalf("Filter() = %v", out)
	}
	out[0] = 99
	if in[1] != 2 {
		t.Fatalf("Filter result aliases input")
	}
}

func TestFind(t *testing.T) {
	v, ok := Find([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	if !ok || v != "bb" {
		t.Fatalf("Find() = %q, %v", v, ok)
	}
	if _, ok := Find([]string{"a"}, func(s string) bool { return s == "z" }); ok {
		t.Fatalf("expected not found")
	}
}
