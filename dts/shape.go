package dts

import (
	"github.com/siegetools/dtsfile"
)

// shapeCodec reads and writes the body of one shape version.
type shapeCodec struct {
	read  func(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool)
	write func(w *writer, s dtsfile.Shape) bool
}

var shapeCodecs = map[uint32]shapeCodec{
	2: {read: readShapeV2, write: writeShapeV2},
	3: {read: readShapeV3, write: writeShapeV3},
	5: {read: readShapeV5, write: writeShapeV5},
	6: {read: readShapeV6, write: writeShapeV6},
	7: {read: readShapeV7, write: writeShapeV7},
	8: {read: readShapeV8, write: writeShapeV8},
}

////////////////////////////////////////////////////////////////////////////////
// Records

func (r *reader) shapeHeaderV2(h *dtsfile.ShapeHeaderV2) bool {
	return r.i32(&h.NumNodes) || r.i32(&h.NumSequences) || r.i32(&h.NumSubSequences) ||
		r.i32(&h.NumKeyFrames) || r.i32(&h.NumTransforms) || r.i32(&h.NumNames) ||
		r.i32(&h.NumObjects) || r.i32(&h.NumDetails) || r.i32(&h.NumMeshes) ||
		r.i32(&h.NumTransitions)
}

func (r *reader) shapeHeaderV5(h *dtsfile.ShapeHeaderV5) bool {
	return r.i32(&h.NumNodes) || r.i32(&h.NumSequences) || r.i32(&h.NumSubSequences) ||
		r.i32(&h.NumKeyFrames) || r.i32(&h.NumTransforms) || r.i32(&h.NumNames) ||
		r.i32(&h.NumObjects) || r.i32(&h.NumDetails) || r.i32(&h.NumMeshes) ||
		r.i32(&h.NumTransitions) || r.i32(&h.NumFrameTriggers)
}

func (r *reader) dataV2(d *dtsfile.DataV2) bool {
	return r.f32(&d.Radius) || r.vector3F(&d.Centre)
}

func (r *reader) dataV8(d *dtsfile.DataV8) bool {
	return r.f32(&d.Radius) || r.vector3F(&d.Centre) || r.vector3FPair(&d.Bounds)
}

func (r *reader) nodeV2(n *dtsfile.NodeV2) bool {
	return r.i32(&n.Name) || r.i32(&n.Parent) || r.i32(&n.NumSubSequences) ||
		r.i32(&n.FirstSubSequence) || r.i32(&n.DefaultTransform)
}

func (r *reader) nodeV8(n *dtsfile.NodeV8) bool {
	return r.i16(&n.Name) || r.i16(&n.Parent) || r.i16(&n.NumSubSequences) ||
		r.i16(&n.FirstSubSequence) || r.i16(&n.DefaultTransform)
}

func (r *reader) sequenceV2(s *dtsfile.SequenceV2) bool {
	return r.i32(&s.NameIndex) || r.i32(&s.Cyclic) || r.f32(&s.Duration) || r.i32(&s.Priority)
}

func (r *reader) sequenceV5(s *dtsfile.SequenceV5) bool {
	return r.i32(&s.NameIndex) || r.i32(&s.Cyclic) || r.f32(&s.Duration) || r.i32(&s.Priority) ||
		r.i32(&s.FirstFrameTrigger) || r.i32(&s.NumFrameTriggers) ||
		r.i32(&s.NumIflSubSequences) || r.i32(&s.FirstIflSubSequence)
}

func (r *reader) subSequenceV2(s *dtsfile.SubSequenceV2) bool {
	return r.i32(&s.SequenceIndex) || r.i32(&s.NumKeyFrames) || r.i32(&s.FirstKeyFrame)
}

func (r *reader) subSequenceV8(s *dtsfile.SubSequenceV8) bool {
	return r.i16(&s.SequenceIndex) || r.i16(&s.NumKeyFrames) || r.i16(&s.FirstKeyFrame)
}

func (r *reader) keyframeV2(k *dtsfile.KeyframeV2) bool {
	return r.f32(&k.Position) || r.u32(&k.KeyValue)
}

func (r *reader) keyframeV3(k *dtsfile.KeyframeV3) bool {
	return r.f32(&k.Position) || r.u32(&k.KeyValue) || r.u32(&k.MatIndex)
}

func (r *reader) keyframeV8(k *dtsfile.KeyframeV8) bool {
	return r.f32(&k.Position) || r.u16(&k.KeyValue) || r.u16(&k.MatIndex)
}

func (r *reader) transformV2(t *dtsfile.TransformV2) bool {
	return r.quaternion4F(&t.Rotation) || r.vector3F(&t.Translation) || r.vector3F(&t.Scale)
}

func (r *reader) transformV7(t *dtsfile.TransformV7) bool {
	return r.quaternion4S(&t.Rotation) || r.vector3F(&t.Translation) || r.vector3F(&t.Scale)
}

func (r *reader) transformV8(t *dtsfile.TransformV8) bool {
	return r.quaternion4S(&t.Rotation) || r.vector3F(&t.Translation)
}

func (r *reader) objectV2(o *dtsfile.ObjectV2) bool {
	return r.i16(&o.NameIndex) || r.i16(&o.Flags) ||
		r.i32(&o.MeshIndex) || r.i32(&o.NodeIndex) || r.i32(&o.DepFlags) ||
		r.vector3F(&o.Dep[0]) || r.vector3F(&o.Dep[1]) || r.vector3F(&o.Dep[2]) ||
		r.vector3F(&o.ObjectOffset) ||
		r.i32(&o.NumSubSequences) || r.i32(&o.FirstSubSequence)
}

// objectV8 reads a version 8 object, skipping the two alignment bytes that
// follow NodeIndex.
func (r *reader) objectV8(o *dtsfile.ObjectV8, index int) bool {
	var pad [2]byte
	if r.i16(&o.NameIndex) || r.i16(&o.Flags) ||
		r.i32(&o.MeshIndex) || r.i16(&o.NodeIndex) || r.bytes(pad[:]) {
		return true
	}
	if pad != [2]byte{} {
		r.warning(errAlignment{Index: index, Bytes: pad})
	}
	return r.vector3F(&o.ObjectOffset) ||
		r.i16(&o.NumSubSequences) || r.i16(&o.FirstSubSequence)
}

func (r *reader) detail(d *dtsfile.Detail) bool {
	return r.i32(&d.NameIndex) || r.f32(&d.Size)
}

func (r *reader) transitionHead(start, end *int32, startPos, endPos, duration *float32) bool {
	return r.i32(start) || r.i32(end) || r.f32(startPos) || r.f32(endPos) || r.f32(duration)
}

func (r *reader) transitionV2(t *dtsfile.TransitionV2) bool {
	return r.transitionHead(&t.StartSequence, &t.EndSequence, &t.StartPosition, &t.EndPosition, &t.Duration) ||
		r.transformV2(&t.Transform)
}

func (r *reader) transitionV7(t *dtsfile.TransitionV7) bool {
	return r.transitionHead(&t.StartSequence, &t.EndSequence, &t.StartPosition, &t.EndPosition, &t.Duration) ||
		r.quaternion4S(&t.Rotation) || r.vector3F(&t.Translation) || r.vector3F(&t.Scale)
}

func (r *reader) transitionV8(t *dtsfile.TransitionV8) bool {
	return r.transitionHead(&t.StartSequence, &t.EndSequence, &t.StartPosition, &t.EndPosition, &t.Duration) ||
		r.transformV8(&t.Transformation)
}

func (r *reader) frameTrigger(f *dtsfile.FrameTrigger) bool {
	return r.f32(&f.Position) || r.f32(&f.Value)
}

func (r *reader) footerV5(f *dtsfile.FooterV5) bool {
	return r.i32(&f.NumDefaultMaterials)
}

func (r *reader) footerV6(f *dtsfile.FooterV6) bool {
	return r.i32(&f.NumDefaultMaterials) || r.i32(&f.AlwaysNode)
}

// shapeMaterialList reads the optional material list at the end of a shape.
func (r *reader) shapeMaterialList(l shapeLayout, list *dtsfile.MaterialList) bool {
	if !l.MaterialListFlag {
		return false
	}
	return r.materialList(list)
}

func (w *writer) shapeHeaderV2(h dtsfile.ShapeHeaderV2) bool {
	return w.i32(h.NumNodes) || w.i32(h.NumSequences) || w.i32(h.NumSubSequences) ||
		w.i32(h.NumKeyFrames) || w.i32(h.NumTransforms) || w.i32(h.NumNames) ||
		w.i32(h.NumObjects) || w.i32(h.NumDetails) || w.i32(h.NumMeshes) ||
		w.i32(h.NumTransitions)
}

func (w *writer) shapeHeaderV5(h dtsfile.ShapeHeaderV5) bool {
	return w.i32(h.NumNodes) || w.i32(h.NumSequences) || w.i32(h.NumSubSequences) ||
		w.i32(h.NumKeyFrames) || w.i32(h.NumTransforms) || w.i32(h.NumNames) ||
		w.i32(h.NumObjects) || w.i32(h.NumDetails) || w.i32(h.NumMeshes) ||
		w.i32(h.NumTransitions) || w.i32(h.NumFrameTriggers)
}

func (w *writer) dataV2(d dtsfile.DataV2) bool {
	return w.f32(d.Radius) || w.vector3F(d.Centre)
}

func (w *writer) dataV8(d dtsfile.DataV8) bool {
	return w.f32(d.Radius) || w.vector3F(d.Centre) || w.vector3FPair(d.Bounds)
}

func (w *writer) nodeV2(n dtsfile.NodeV2) bool {
	return w.i32(n.Name) || w.i32(n.Parent) || w.i32(n.NumSubSequences) ||
		w.i32(n.FirstSubSequence) || w.i32(n.DefaultTransform)
}

func (w *writer) nodeV8(n dtsfile.NodeV8) bool {
	return w.i16(n.Name) || w.i16(n.Parent) || w.i16(n.NumSubSequences) ||
		w.i16(n.FirstSubSequence) || w.i16(n.DefaultTransform)
}

func (w *writer) sequenceV2(s dtsfile.SequenceV2) bool {
	return w.i32(s.NameIndex) || w.i32(s.Cyclic) || w.f32(s.Duration) || w.i32(s.Priority)
}

func (w *writer) sequenceV5(s dtsfile.SequenceV5) bool {
	return w.i32(s.NameIndex) || w.i32(s.Cyclic) || w.f32(s.Duration) || w.i32(s.Priority) ||
		w.i32(s.FirstFrameTrigger) || w.i32(s.NumFrameTriggers) ||
		w.i32(s.NumIflSubSequences) || w.i32(s.FirstIflSubSequence)
}

func (w *writer) subSequenceV2(s dtsfile.SubSequenceV2) bool {
	return w.i32(s.SequenceIndex) || w.i32(s.NumKeyFrames) || w.i32(s.FirstKeyFrame)
}

func (w *writer) subSequenceV8(s dtsfile.SubSequenceV8) bool {
	return w.i16(s.SequenceIndex) || w.i16(s.NumKeyFrames) || w.i16(s.FirstKeyFrame)
}

func (w *writer) keyframeV2(k dtsfile.KeyframeV2) bool {
	return w.f32(k.Position) || w.u32(k.KeyValue)
}

func (w *writer) keyframeV3(k dtsfile.KeyframeV3) bool {
	return w.f32(k.Position) || w.u32(k.KeyValue) || w.u32(k.MatIndex)
}

func (w *writer) keyframeV8(k dtsfile.KeyframeV8) bool {
	return w.f32(k.Position) || w.u16(k.KeyValue) || w.u16(k.MatIndex)
}

func (w *writer) transformV2(t dtsfile.TransformV2) bool {
	return w.quaternion4F(t.Rotation) || w.vector3F(t.Translation) || w.vector3F(t.Scale)
}

func (w *writer) transformV7(t dtsfile.TransformV7) bool {
	return w.quaternion4S(t.Rotation) || w.vector3F(t.Translation) || w.vector3F(t.Scale)
}

func (w *writer) transformV8(t dtsfile.TransformV8) bool {
	return w.quaternion4S(t.Rotation) || w.vector3F(t.Translation)
}

func (w *writer) objectV2(o dtsfile.ObjectV2) bool {
	return w.i16(o.NameIndex) || w.i16(o.Flags) ||
		w.i32(o.MeshIndex) || w.i32(o.NodeIndex) || w.i32(o.DepFlags) ||
		w.vector3F(o.Dep[0]) || w.vector3F(o.Dep[1]) || w.vector3F(o.Dep[2]) ||
		w.vector3F(o.ObjectOffset) ||
		w.i32(o.NumSubSequences) || w.i32(o.FirstSubSequence)
}

func (w *writer) objectV8(o dtsfile.ObjectV8) bool {
	return w.i16(o.NameIndex) || w.i16(o.Flags) ||
		w.i32(o.MeshIndex) || w.i16(o.NodeIndex) || w.bytes([]byte{0, 0}) ||
		w.vector3F(o.ObjectOffset) ||
		w.i16(o.NumSubSequences) || w.i16(o.FirstSubSequence)
}

func (w *writer) detail(d dtsfile.Detail) bool {
	return w.i32(d.NameIndex) || w.f32(d.Size)
}

func (w *writer) transitionHead(start, end int32, startPos, endPos, duration float32) bool {
	return w.i32(start) || w.i32(end) || w.f32(startPos) || w.f32(endPos) || w.f32(duration)
}

func (w *writer) transitionV2(t dtsfile.TransitionV2) bool {
	return w.transitionHead(t.StartSequence, t.EndSequence, t.StartPosition, t.EndPosition, t.Duration) ||
		w.transformV2(t.Transform)
}

func (w *writer) transitionV7(t dtsfile.TransitionV7) bool {
	return w.transitionHead(t.StartSequence, t.EndSequence, t.StartPosition, t.EndPosition, t.Duration) ||
		w.quaternion4S(t.Rotation) || w.vector3F(t.Translation) || w.vector3F(t.Scale)
}

func (w *writer) transitionV8(t dtsfile.TransitionV8) bool {
	return w.transitionHead(t.StartSequence, t.EndSequence, t.StartPosition, t.EndPosition, t.Duration) ||
		w.transformV8(t.Transformation)
}

func (w *writer) frameTrigger(f dtsfile.FrameTrigger) bool {
	return w.f32(f.Position) || w.f32(f.Value)
}

func (w *writer) footerV5(f dtsfile.FooterV5) bool {
	return w.i32(f.NumDefaultMaterials)
}

func (w *writer) footerV6(f dtsfile.FooterV6) bool {
	return w.i32(f.NumDefaultMaterials) || w.i32(f.AlwaysNode)
}

func (w *writer) shapeMaterialList(l shapeLayout, list dtsfile.MaterialList) bool {
	if !l.MaterialListFlag {
		return false
	}
	return w.materialList(list)
}

////////////////////////////////////////////////////////////////////////////////
// Versions

func readShapeV2(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[2]
	s := &dtsfile.ShapeV2{Tag: h}
	return s, r.shapeHeaderV2(&s.Header) ||
		r.dataV2(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV2) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV2) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV2) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV2) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV2) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, (*reader).objectV2) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV2) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV2(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[2]
	s := shape.(*dtsfile.ShapeV2)
	return w.shapeHeaderV2(s.Header) ||
		w.dataV2(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV2) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV2) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV2) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV2) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV2) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV2) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV2) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}

func readShapeV3(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[3]
	s := &dtsfile.ShapeV3{Tag: h}
	return s, r.shapeHeaderV2(&s.Header) ||
		r.dataV2(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV2) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV2) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV2) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV3) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV2) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, (*reader).objectV2) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV2) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV3(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[3]
	s := shape.(*dtsfile.ShapeV3)
	return w.shapeHeaderV2(s.Header) ||
		w.dataV2(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV2) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV2) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV2) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV3) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV2) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV2) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV2) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}

func readShapeV5(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[5]
	s := &dtsfile.ShapeV5{Tag: h}
	return s, r.shapeHeaderV5(&s.Header) ||
		r.dataV2(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV2) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV5) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV2) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV3) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV2) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, (*reader).objectV2) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV2) ||
		readList(r, "numFrameTriggers", s.Header.NumFrameTriggers, l.FrameTrigger, &s.FrameTriggers, (*reader).frameTrigger) ||
		r.footerV5(&s.Footer) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV5(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[5]
	s := shape.(*dtsfile.ShapeV5)
	return w.shapeHeaderV5(s.Header) ||
		w.dataV2(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV2) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV5) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV2) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV3) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV2) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV2) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV2) ||
		writeList(w, "numFrameTriggers", s.Header.NumFrameTriggers, s.FrameTriggers, (*writer).frameTrigger) ||
		w.footerV5(s.Footer) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}

func readShapeV6(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[6]
	s := &dtsfile.ShapeV6{Tag: h}
	return s, r.shapeHeaderV5(&s.Header) ||
		r.dataV2(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV2) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV5) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV2) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV3) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV2) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, (*reader).objectV2) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV2) ||
		readList(r, "numFrameTriggers", s.Header.NumFrameTriggers, l.FrameTrigger, &s.FrameTriggers, (*reader).frameTrigger) ||
		r.footerV6(&s.Footer) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV6(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[6]
	s := shape.(*dtsfile.ShapeV6)
	return w.shapeHeaderV5(s.Header) ||
		w.dataV2(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV2) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV5) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV2) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV3) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV2) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV2) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV2) ||
		writeList(w, "numFrameTriggers", s.Header.NumFrameTriggers, s.FrameTriggers, (*writer).frameTrigger) ||
		w.footerV6(s.Footer) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}

func readShapeV7(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[7]
	s := &dtsfile.ShapeV7{Tag: h}
	return s, r.shapeHeaderV5(&s.Header) ||
		r.dataV2(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV2) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV5) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV2) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV3) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV7) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, (*reader).objectV2) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV7) ||
		readList(r, "numFrameTriggers", s.Header.NumFrameTriggers, l.FrameTrigger, &s.FrameTriggers, (*reader).frameTrigger) ||
		r.footerV6(&s.Footer) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV7(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[7]
	s := shape.(*dtsfile.ShapeV7)
	return w.shapeHeaderV5(s.Header) ||
		w.dataV2(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV2) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV5) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV2) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV3) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV7) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV2) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV7) ||
		writeList(w, "numFrameTriggers", s.Header.NumFrameTriggers, s.FrameTriggers, (*writer).frameTrigger) ||
		w.footerV6(s.Footer) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}

func readShapeV8(r *reader, h dtsfile.TagHeader) (dtsfile.Shape, bool) {
	l := shapeLayouts[8]
	s := &dtsfile.ShapeV8{Tag: h}
	var object int
	readObject := func(r *reader, o *dtsfile.ObjectV8) bool {
		object++
		return r.objectV8(o, object-1)
	}
	return s, r.shapeHeaderV5(&s.Header) ||
		r.dataV8(&s.Data) ||
		readList(r, "numNodes", s.Header.NumNodes, l.Node, &s.Nodes, (*reader).nodeV8) ||
		readList(r, "numSequences", s.Header.NumSequences, l.Sequence, &s.Sequences, (*reader).sequenceV5) ||
		readList(r, "numSubSequences", s.Header.NumSubSequences, l.SubSequence, &s.SubSequences, (*reader).subSequenceV8) ||
		readList(r, "numKeyFrames", s.Header.NumKeyFrames, l.Keyframe, &s.Keyframes, (*reader).keyframeV8) ||
		readList(r, "numTransforms", s.Header.NumTransforms, l.Transform, &s.Transforms, (*reader).transformV8) ||
		readList(r, "numNames", s.Header.NumNames, l.Name, &s.Names, (*reader).name) ||
		readList(r, "numObjects", s.Header.NumObjects, l.Object, &s.Objects, readObject) ||
		readList(r, "numDetails", s.Header.NumDetails, l.Detail, &s.Details, (*reader).detail) ||
		readList(r, "numTransitions", s.Header.NumTransitions, l.Transition, &s.Transitions, (*reader).transitionV8) ||
		readList(r, "numFrameTriggers", s.Header.NumFrameTriggers, l.FrameTrigger, &s.FrameTriggers, (*reader).frameTrigger) ||
		r.footerV6(&s.Footer) ||
		r.meshes(s.Header.NumMeshes, &s.Meshes) ||
		r.shapeMaterialList(l, &s.MaterialList)
}

func writeShapeV8(w *writer, shape dtsfile.Shape) bool {
	l := shapeLayouts[8]
	s := shape.(*dtsfile.ShapeV8)
	return w.shapeHeaderV5(s.Header) ||
		w.dataV8(s.Data) ||
		writeList(w, "numNodes", s.Header.NumNodes, s.Nodes, (*writer).nodeV8) ||
		writeList(w, "numSequences", s.Header.NumSequences, s.Sequences, (*writer).sequenceV5) ||
		writeList(w, "numSubSequences", s.Header.NumSubSequences, s.SubSequences, (*writer).subSequenceV8) ||
		writeList(w, "numKeyFrames", s.Header.NumKeyFrames, s.Keyframes, (*writer).keyframeV8) ||
		writeList(w, "numTransforms", s.Header.NumTransforms, s.Transforms, (*writer).transformV8) ||
		writeList(w, "numNames", s.Header.NumNames, s.Names, (*writer).name) ||
		writeList(w, "numObjects", s.Header.NumObjects, s.Objects, (*writer).objectV8) ||
		writeList(w, "numDetails", s.Header.NumDetails, s.Details, (*writer).detail) ||
		writeList(w, "numTransitions", s.Header.NumTransitions, s.Transitions, (*writer).transitionV8) ||
		writeList(w, "numFrameTriggers", s.Header.NumFrameTriggers, s.FrameTriggers, (*writer).frameTrigger) ||
		w.footerV6(s.Footer) ||
		w.meshes(s.Header.NumMeshes, s.Meshes) ||
		w.shapeMaterialList(l, s.MaterialList)
}
