package dtsfile

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is wrapped by every IndexError.
var ErrInvalidIndex = errors.New("invalid index")

// IndexError indicates that a record refers to an element that does not
// exist, or that the parents of a node form a cycle.
type IndexError struct {
	// Record is the collection containing the offending record.
	Record string
	// Index is the position of the record within its collection.
	Index int
	// Field is the name of the offending field.
	Field string
	// Value is the value of the field.
	Value int
	// Limit is the length of the collection the field refers to.
	Limit int
	// Cycle is set when the node parents form a cycle.
	Cycle bool
}

func (err IndexError) Error() string {
	if err.Cycle {
		return fmt.Sprintf("%s #%d: %s chain forms a cycle", err.Record, err.Index, err.Field)
	}
	return fmt.Sprintf("%s #%d: %s %d is out of range [0, %d)", err.Record, err.Index, err.Field, err.Value, err.Limit)
}

func (err IndexError) Unwrap() error {
	return ErrInvalidIndex
}

// shapeIndex is the version-independent view of the references within a
// shape.
type shapeIndex struct {
	names        int
	transforms   int
	keyframes    int
	meshes       int
	nodes        []nodeRef
	sequences    []int
	subSequences []rangeRef
	objects      []objectRef
	details      []int
	transitions  [][2]int
	alwaysNode   int
	hasFooter    bool
}

type nodeRef struct {
	name, parent, transform int
	subSequences            rangeRef
}

// rangeRef is a count of elements beginning at first. For sub-sequences,
// target is the sequence index.
type rangeRef struct {
	target, num, first int
}

type objectRef struct {
	name, mesh, node int
	subSequences     rangeRef
}

type checker struct {
	record string
	index  int
	err    error
}

// check verifies that 0 <= v < limit. If optional is set, -1 is also
// accepted.
func (c *checker) check(field string, v, limit int, optional bool) {
	if c.err != nil {
		return
	}
	if optional && v == -1 {
		return
	}
	if v < 0 || v >= limit {
		c.err = IndexError{Record: c.record, Index: c.index, Field: field, Value: v, Limit: limit}
	}
}

// span verifies that r lies within a collection of length limit. Empty
// ranges are not checked.
func (c *checker) span(field string, r rangeRef, limit int) {
	if c.err != nil {
		return
	}
	if r.num < 0 {
		c.err = IndexError{Record: c.record, Index: c.index, Field: "num" + field, Value: r.num, Limit: limit}
		return
	}
	if r.num == 0 {
		return
	}
	c.check("first"+field, r.first, limit, false)
	c.check("first"+field+"+num"+field, r.first+r.num-1, limit, false)
}

// Validate returns an error wrapping ErrInvalidIndex if any index within s
// refers to an element that does not exist.
func Validate(s Shape) error {
	x := s.shape()

	c := checker{record: "node"}
	for i, n := range x.nodes {
		c.index = i
		c.check("name", n.name, x.names, true)
		c.check("parent", n.parent, len(x.nodes), true)
		c.check("defaultTransform", n.transform, x.transforms, true)
		c.span("SubSequence", n.subSequences, len(x.subSequences))
	}
	if c.err != nil {
		return c.err
	}
	if err := checkTree(x.nodes); err != nil {
		return err
	}

	c = checker{record: "sequence"}
	for i, name := range x.sequences {
		c.index = i
		c.check("nameIndex", name, x.names, true)
	}

	c.record = "subSequence"
	for i, r := range x.subSequences {
		c.index = i
		c.check("sequenceIndex", r.target, len(x.sequences), false)
		c.span("KeyFrame", r, x.keyframes)
	}

	c.record = "object"
	for i, o := range x.objects {
		c.index = i
		c.check("nameIndex", o.name, x.names, true)
		c.check("meshIndex", o.mesh, x.meshes, true)
		c.check("nodeIndex", o.node, len(x.nodes), true)
		c.span("SubSequence", o.subSequences, len(x.subSequences))
	}

	c.record = "detail"
	for i, name := range x.details {
		c.index = i
		c.check("nameIndex", name, x.names, true)
	}

	c.record = "transition"
	for i, t := range x.transitions {
		c.index = i
		c.check("startSequence", t[0], len(x.sequences), false)
		c.check("endSequence", t[1], len(x.sequences), false)
	}

	if x.hasFooter {
		c.record = "footer"
		c.index = 0
		c.check("alwaysNode", x.alwaysNode, len(x.nodes), true)
	}
	return c.err
}

// checkTree verifies that following the parents of any node reaches a root.
// Parents are assumed to be in range.
func checkTree(nodes []nodeRef) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]uint8, len(nodes))
	for i := range nodes {
		j := i
		for j >= 0 && state[j] == unvisited {
			state[j] = visiting
			j = nodes[j].parent
		}
		if j >= 0 && state[j] == visiting {
			return IndexError{Record: "node", Index: j, Field: "parent", Value: nodes[j].parent, Limit: len(nodes), Cycle: true}
		}
		for j = i; j >= 0 && state[j] == visiting; j = nodes[j].parent {
			state[j] = done
		}
	}
	return nil
}

func nodesV2(nodes []NodeV2) []nodeRef {
	refs := make([]nodeRef, len(nodes))
	for i, n := range nodes {
		refs[i] = nodeRef{
			name:         int(n.Name),
			parent:       int(n.Parent),
			transform:    int(n.DefaultTransform),
			subSequences: rangeRef{num: int(n.NumSubSequences), first: int(n.FirstSubSequence)},
		}
	}
	return refs
}

func nodesV8(nodes []NodeV8) []nodeRef {
	refs := make([]nodeRef, len(nodes))
	for i, n := range nodes {
		refs[i] = nodeRef{
			name:         int(n.Name),
			parent:       int(n.Parent),
			transform:    int(n.DefaultTransform),
			subSequences: rangeRef{num: int(n.NumSubSequences), first: int(n.FirstSubSequence)},
		}
	}
	return refs
}

func sequencesV2(seqs []SequenceV2) []int {
	refs := make([]int, len(seqs))
	for i, s := range seqs {
		refs[i] = int(s.NameIndex)
	}
	return refs
}

func sequencesV5(seqs []SequenceV5) []int {
	refs := make([]int, len(seqs))
	for i, s := range seqs {
		refs[i] = int(s.NameIndex)
	}
	return refs
}

func subSequencesV2(subs []SubSequenceV2) []rangeRef {
	refs := make([]rangeRef, len(subs))
	for i, s := range subs {
		refs[i] = rangeRef{target: int(s.SequenceIndex), num: int(s.NumKeyFrames), first: int(s.FirstKeyFrame)}
	}
	return refs
}

func subSequencesV8(subs []SubSequenceV8) []rangeRef {
	refs := make([]rangeRef, len(subs))
	for i, s := range subs {
		refs[i] = rangeRef{target: int(s.SequenceIndex), num: int(s.NumKeyFrames), first: int(s.FirstKeyFrame)}
	}
	return refs
}

func objectsV2(objs []ObjectV2) []objectRef {
	refs := make([]objectRef, len(objs))
	for i, o := range objs {
		refs[i] = objectRef{
			name:         int(o.NameIndex),
			mesh:         int(o.MeshIndex),
			node:         int(o.NodeIndex),
			subSequences: rangeRef{num: int(o.NumSubSequences), first: int(o.FirstSubSequence)},
		}
	}
	return refs
}

func objectsV8(objs []ObjectV8) []objectRef {
	refs := make([]objectRef, len(objs))
	for i, o := range objs {
		refs[i] = objectRef{
			name:         int(o.NameIndex),
			mesh:         int(o.MeshIndex),
			node:         int(o.NodeIndex),
			subSequences: rangeRef{num: int(o.NumSubSequences), first: int(o.FirstSubSequence)},
		}
	}
	return refs
}

func details(ds []Detail) []int {
	refs := make([]int, len(ds))
	for i, d := range ds {
		refs[i] = int(d.NameIndex)
	}
	return refs
}

func transitionsV2(ts []TransitionV2) [][2]int {
	refs := make([][2]int, len(ts))
	for i, t := range ts {
		refs[i] = [2]int{int(t.StartSequence), int(t.EndSequence)}
	}
	return refs
}

func transitionsV7(ts []TransitionV7) [][2]int {
	refs := make([][2]int, len(ts))
	for i, t := range ts {
		refs[i] = [2]int{int(t.StartSequence), int(t.EndSequence)}
	}
	return refs
}

func transitionsV8(ts []TransitionV8) [][2]int {
	refs := make([][2]int, len(ts))
	for i, t := range ts {
		refs[i] = [2]int{int(t.StartSequence), int(t.EndSequence)}
	}
	return refs
}

func (s *ShapeV2) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV2(s.Nodes),
		sequences:    sequencesV2(s.Sequences),
		subSequences: subSequencesV2(s.SubSequences),
		objects:      objectsV2(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV2(s.Transitions),
	}
}

func (s *ShapeV3) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV2(s.Nodes),
		sequences:    sequencesV2(s.Sequences),
		subSequences: subSequencesV2(s.SubSequences),
		objects:      objectsV2(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV2(s.Transitions),
	}
}

func (s *ShapeV5) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV2(s.Nodes),
		sequences:    sequencesV5(s.Sequences),
		subSequences: subSequencesV2(s.SubSequences),
		objects:      objectsV2(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV2(s.Transitions),
	}
}

func (s *ShapeV6) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV2(s.Nodes),
		sequences:    sequencesV5(s.Sequences),
		subSequences: subSequencesV2(s.SubSequences),
		objects:      objectsV2(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV2(s.Transitions),
		alwaysNode:   int(s.Footer.AlwaysNode),
		hasFooter:    true,
	}
}

func (s *ShapeV7) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV2(s.Nodes),
		sequences:    sequencesV5(s.Sequences),
		subSequences: subSequencesV2(s.SubSequences),
		objects:      objectsV2(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV7(s.Transitions),
		alwaysNode:   int(s.Footer.AlwaysNode),
		hasFooter:    true,
	}
}

func (s *ShapeV8) shape() shapeIndex {
	return shapeIndex{
		names:        len(s.Names),
		transforms:   len(s.Transforms),
		keyframes:    len(s.Keyframes),
		meshes:       len(s.Meshes),
		nodes:        nodesV8(s.Nodes),
		sequences:    sequencesV5(s.Sequences),
		subSequences: subSequencesV8(s.SubSequences),
		objects:      objectsV8(s.Objects),
		details:      details(s.Details),
		transitions:  transitionsV8(s.Transitions),
		alwaysNode:   int(s.Footer.AlwaysNode),
		hasFooter:    true,
	}
}
