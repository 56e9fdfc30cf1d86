package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/siegetools/dtsfile"
	"github.com/siegetools/dtsfile/dts"
)

func TestFill(t *testing.T) {
	s := &dtsfile.ShapeV2{
		Header: dtsfile.ShapeHeaderV2{NumNodes: 1, NumNames: 1, NumMeshes: 1},
		Nodes:  []dtsfile.NodeV2{{Name: 0, Parent: 3, DefaultTransform: -1}},
		Names:  []dtsfile.Name{dtsfile.NewName("root")},
		Meshes: []dtsfile.Mesh{&dtsfile.MeshV3{}},
		MaterialList: &dtsfile.MaterialListV4{
			Header:    dtsfile.MaterialListHeader{NumDetails: 1, NumMaterials: 1},
			Materials: []dtsfile.MaterialV4{{FileName: dtsfile.NewFileName("skin.bmp")}},
		},
	}
	b, err := dts.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	record, warn, err := dts.Decoder{NoValidate: true}.DecodeRecord(b, 0)
	if err != nil || warn != nil {
		t.Fatalf("unexpected result: %v, %v", warn, err)
	}

	var stats Stats
	stats.Fill(b, record)
	if stats.Size != len(b) || len(stats.Hash) != 64 {
		t.Errorf("unexpected size %d or hash %q", stats.Size, stats.Hash)
	}
	if stats.Header.ClassName != dtsfile.ShapeClassName || stats.Header.Version != 2 {
		t.Errorf("unexpected header %+v", stats.Header)
	}
	if stats.Counts["Nodes"] != 1 || stats.Counts["Names"] != 1 || stats.Counts["Meshes"] != 1 || stats.Counts["Sequences"] != 0 {
		t.Errorf("unexpected counts %v", stats.Counts)
	}
	if !reflect.DeepEqual(stats.MeshVersions, map[string]int{"3": 1}) {
		t.Errorf("unexpected mesh versions %v", stats.MeshVersions)
	}
	if stats.MaterialListVersion != 4 || !reflect.DeepEqual(stats.MaterialFiles, []string{"skin.bmp"}) {
		t.Errorf("unexpected materials %d %v", stats.MaterialListVersion, stats.MaterialFiles)
	}
	if !strings.Contains(stats.InvalidIndex, "parent") {
		t.Errorf("expected invalid parent, got %q", stats.InvalidIndex)
	}

	var empty Stats
	empty.Fill([]byte("NOPE"), nil)
	if empty.Size != 4 || empty.Counts != nil {
		t.Errorf("unexpected stats for undecodable input %+v", empty)
	}
}
