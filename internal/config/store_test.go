package config

import (
	"reflect"
	"testing"
)

func TestStoreNestedAccess(t *testing.T) {
	s := NewStore()
	s.SetNested("general.wallpaper", "~/pics/bg.png")
	s.SetNested("general.opacity", 0.8)
	s.SetNested("network.port", int64(8080))

	v, ok := s.GetNested("general.wallpaper")
	if !ok || v != "~/pics/bg.png" {
		t.Errorf("GetNested(general.wallpaper) = %v, %v", v, ok)
	}
	if _, ok := s.GetNested("general.missing"); ok {
		t.Error("GetNested should miss on absent leaf")
	}
	if _, ok := s.GetNested("general.wallpaper.deeper"); ok {
		t.Error("GetNested should miss when traversing through a leaf")
	}
}

func TestStoreSetNestedOverwritesLeaf(t *testing.T) {
	s := NewStore()
	s.SetNested("a.b", "leaf")
	s.SetNested("a.b.c", true)

	v, ok := s.GetNested("a.b.c")
	if !ok || v != true {
		t.Errorf("GetNested(a.b.c) = %v, %v after overwriting leaf", v, ok)
	}
}

func TestStoreFlatMap(t *testing.T) {
	s := FromMap(map[string]any{
		"general": map[string]any{
			"wallpaper": "bg.png",
			"nested": map[string]any{
				"deep": int64(1),
			},
		},
		"debug": true,
	})

	want := map[string]any{
		"general.wallpaper":   "bg.png",
		"general.nested.deep": int64(1),
		"debug":               true,
	}
	if got := s.FlatMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("FlatMap() = %v, want %v", got, want)
	}
}
