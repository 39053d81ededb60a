package cartoon

import "testing"

func TestBoneRotatesAboutItsOrigin(t *testing.T) {
	b := NewBone("b")
	b.OriginX = 10
	b.Rotation = 90

	it := NewPathItem("a")
	it.MoveTo(0, 0)
	it.BeginBone(b).LineTo(20, 0).EndBone()

	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "unboned", path[0], 0, 0)
	assertVertex(t, "boned", path[1], 10, 10)
}

func TestBoneOffsetsByPosition(t *testing.T) {
	b := NewBone("b")
	b.X, b.Y = 3, 4

	it := NewPathItem("a")
	it.BeginBone(b).MoveTo(1, 1).EndBone()

	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "p0", path[0], 4, 5)
}

func TestBoneChainAppliesLeafThenRoot(t *testing.T) {
	hip := NewBone("hip")
	hip.Rotation = 90
	knee := NewBone("knee")
	knee.OriginX = 10
	knee.Rotation = 90
	knee.SetParent(hip)

	it := NewPathItem("leg")
	it.BeginBone(hip).MoveTo(10, 0).EndBone()
	it.BeginBone(knee).LineTo(20, 0).EndBone()

	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "thigh", path[0], 0, 10)
	// knee: (20,0) about (10,0) → (10,10); hip: (10,10) about (0,0) → (-10,10)
	assertVertex(t, "shin", path[1], -10, 10)
}

func TestBonesApplyBeforeItemTransform(t *testing.T) {
	b := NewBone("b")
	b.Rotation = 90

	it := NewPathItem("a")
	it.X = 100
	it.BeginBone(b).MoveTo(10, 0).EndBone()

	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "p0", path[0], 100, 10)
}

func TestSetBoneSegmentsMovesOwnership(t *testing.T) {
	a := NewBone("a")
	b := NewBone("b")
	it := NewPathItem("item")
	it.BeginBone(a).MoveTo(0, 0).LineTo(1, 0).LineTo(2, 0).EndBone()
	it.AddBone(b)

	if !it.SetBoneSegments("b", []int{1}) {
		t.Fatal("SetBoneSegments returned false")
	}
	ia, _ := it.BoneSegments("a")
	ib, _ := it.BoneSegments("b")
	if len(ia) != 2 || ia[0] != 0 || ia[1] != 2 {
		t.Errorf("bone a = %v, want [0 2]", ia)
	}
	if len(ib) != 1 || ib[0] != 1 {
		t.Errorf("bone b = %v, want [1]", ib)
	}
	if it.SetBoneSegments("missing", []int{0}) {
		t.Error("expected false for an unregistered bone")
	}
}

func TestBoneSegmentsOutOfRangeIgnored(t *testing.T) {
	b := NewBone("b")
	b.X = 100
	it := NewPathItem("a")
	it.AddBone(b)
	it.MoveTo(1, 1)
	it.SetBoneSegments("b", []int{0, 7, -1})

	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "p0", path[0], 101, 1)
}

func TestAddBoneTwiceKeepsFirst(t *testing.T) {
	it := NewPathItem("a")
	first := NewBone("b")
	it.AddBone(first)
	it.AddBone(NewBone("b"))
	bones := it.Bones()
	if len(bones) != 1 || bones[0] != first {
		t.Errorf("bones = %v", bones)
	}
}

func TestBoneAttrs(t *testing.T) {
	b := NewBone("b")
	if !b.SetAttrs(map[string]any{"x": 1, "rotation": float32(45), "originY": 2.5}) {
		t.Fatal("SetAttrs returned false")
	}
	assertNear(t, "X", b.X, 1)
	assertNear(t, "Rotation", b.Rotation, 45)
	assertNear(t, "OriginY", b.OriginY, 2.5)
	if b.SetAttr("fillStyle", "#fff") {
		t.Error("bones have no render attributes")
	}
	if _, ok := b.Attr("visible"); ok {
		t.Error("bones have no visible attribute")
	}
	if b.IsVisible() {
		t.Error("bones are never drawn")
	}
}

func TestBoneSetParentRejectsCycles(t *testing.T) {
	a := NewBone("a")
	b := NewBone("b")
	b.SetParent(a)
	if a.SetParent(b) {
		t.Error("expected cycle to be rejected")
	}
}

func TestIndependentBonesMoveOnlyTheirVertices(t *testing.T) {
	a := NewBone("a")
	b := NewBone("b")
	it := NewPathItem("item")
	it.BeginBone(a).MoveTo(0, 0).EndBone()
	it.BeginBone(b).LineTo(1, 0).EndBone()
	it.LineTo(0, 2)

	a.X, a.Y = 5, 5
	path, err := it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "a moved", path[0], 5, 5)
	assertVertex(t, "b untouched", path[1], 1, 0)
	assertVertex(t, "unowned", path[2], 0, 2)

	b.X = 100
	path, err = it.GlobalPath()
	if err != nil {
		t.Fatal(err)
	}
	assertVertex(t, "a kept", path[0], 5, 5)
	assertVertex(t, "b moved", path[1], 101, 0)
	assertVertex(t, "unowned still", path[2], 0, 2)
}
