package dts

import (
	"bytes"
	"io"

	"github.com/siegetools/dtsfile"
)

func (r *reader) vertex(v *dtsfile.Vertex) bool {
	return r.u8(&v.X) || r.u8(&v.Y) || r.u8(&v.Z) || r.u8(&v.Normal)
}

func (r *reader) textureVertex(v *dtsfile.TextureVertex) bool {
	return r.f32(&v.X) || r.f32(&v.Y)
}

func (r *reader) face(f *dtsfile.Face) bool {
	return r.i32(&f.VI1) || r.i32(&f.TI1) ||
		r.i32(&f.VI2) || r.i32(&f.TI2) ||
		r.i32(&f.VI3) || r.i32(&f.TI3) ||
		r.i32(&f.Material)
}

func (r *reader) frameV1(f *dtsfile.FrameV1) bool {
	return r.i32(&f.FirstVert)
}

func (r *reader) frameV3(f *dtsfile.FrameV3) bool {
	return r.i32(&f.FirstVert) || r.vector3F(&f.Scale) || r.vector3F(&f.Origin)
}

func (r *reader) meshHeaderV1(h *dtsfile.MeshHeaderV1) bool {
	return r.i32(&h.NumVerts) || r.i32(&h.VertsPerFrame) ||
		r.i32(&h.NumTextureVerts) || r.i32(&h.NumFaces) || r.i32(&h.NumFrames) ||
		r.vector3F(&h.Scale) || r.vector3F(&h.Origin) || r.f32(&h.Radius)
}

func (r *reader) meshHeaderV2(h *dtsfile.MeshHeaderV2) bool {
	return r.i32(&h.NumVerts) || r.i32(&h.VertsPerFrame) ||
		r.i32(&h.NumTextureVerts) || r.i32(&h.NumFaces) || r.i32(&h.NumFrames) ||
		r.i32(&h.TextureVertsPerFrame) ||
		r.vector3F(&h.Scale) || r.vector3F(&h.Origin) || r.f32(&h.Radius)
}

func (r *reader) meshHeaderV3(h *dtsfile.MeshHeaderV3) bool {
	return r.i32(&h.NumVerts) || r.i32(&h.VertsPerFrame) ||
		r.i32(&h.NumTextureVerts) || r.i32(&h.NumFaces) || r.i32(&h.NumFrames) ||
		r.i32(&h.TextureVertsPerFrame) || r.f32(&h.Radius)
}

// meshBody reads the lists that follow a mesh header.
func (r *reader) meshBody(numVerts, numTVerts, numFaces int32, verts *[]dtsfile.Vertex, tverts *[]dtsfile.TextureVertex, faces *[]dtsfile.Face) bool {
	return readList(r, "numVerts", numVerts, vertexSize, verts, (*reader).vertex) ||
		readList(r, "numTextureVerts", numTVerts, textureVertexSize, tverts, (*reader).textureVertex) ||
		readList(r, "numFaces", numFaces, faceSize, faces, (*reader).face)
}

// mesh reads a tagged mesh record.
func (r *reader) mesh() (dtsfile.Mesh, bool) {
	var h dtsfile.TagHeader
	if r.nestedHeader(&h, dtsfile.MeshClassName) {
		return nil, true
	}
	switch h.Version {
	case 1:
		m := &dtsfile.MeshV1{Tag: h}
		return m, r.meshHeaderV1(&m.Header) ||
			r.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, &m.Vertices, &m.TextureVertices, &m.Faces) ||
			readList(r, "numFrames", m.Header.NumFrames, frameV1Size, &m.Frames, (*reader).frameV1)
	case 2:
		m := &dtsfile.MeshV2{Tag: h}
		return m, r.meshHeaderV2(&m.Header) ||
			r.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, &m.Vertices, &m.TextureVertices, &m.Faces) ||
			readList(r, "numFrames", m.Header.NumFrames, frameV1Size, &m.Frames, (*reader).frameV1)
	case 3:
		m := &dtsfile.MeshV3{Tag: h}
		return m, r.meshHeaderV3(&m.Header) ||
			r.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, &m.Vertices, &m.TextureVertices, &m.Faces) ||
			readList(r, "numFrames", m.Header.NumFrames, frameV3Size, &m.Frames, (*reader).frameV3)
	}
	return nil, r.fail(ErrUnsupportedMeshVersion(h.Version))
}

// meshes reads n consecutive tagged meshes.
func (r *reader) meshes(n int32, list *[]dtsfile.Mesh) bool {
	c, failed := r.count("numMeshes", int64(n), minRecordSize)
	if failed {
		return true
	}
	meshes := make([]dtsfile.Mesh, c)
	for i := range meshes {
		m, failed := r.mesh()
		if failed {
			return r.wrapRecord("mesh", i)
		}
		meshes[i] = m
	}
	*list = meshes
	return false
}

func (w *writer) vertex(v dtsfile.Vertex) bool {
	return w.u8(v.X) || w.u8(v.Y) || w.u8(v.Z) || w.u8(v.Normal)
}

func (w *writer) textureVertex(v dtsfile.TextureVertex) bool {
	return w.f32(v.X) || w.f32(v.Y)
}

func (w *writer) face(f dtsfile.Face) bool {
	return w.i32(f.VI1) || w.i32(f.TI1) ||
		w.i32(f.VI2) || w.i32(f.TI2) ||
		w.i32(f.VI3) || w.i32(f.TI3) ||
		w.i32(f.Material)
}

func (w *writer) frameV1(f dtsfile.FrameV1) bool {
	return w.i32(f.FirstVert)
}

func (w *writer) frameV3(f dtsfile.FrameV3) bool {
	return w.i32(f.FirstVert) || w.vector3F(f.Scale) || w.vector3F(f.Origin)
}

func (w *writer) meshHeaderV1(h dtsfile.MeshHeaderV1) bool {
	return w.i32(h.NumVerts) || w.i32(h.VertsPerFrame) ||
		w.i32(h.NumTextureVerts) || w.i32(h.NumFaces) || w.i32(h.NumFrames) ||
		w.vector3F(h.Scale) || w.vector3F(h.Origin) || w.f32(h.Radius)
}

func (w *writer) meshHeaderV2(h dtsfile.MeshHeaderV2) bool {
	return w.i32(h.NumVerts) || w.i32(h.VertsPerFrame) ||
		w.i32(h.NumTextureVerts) || w.i32(h.NumFaces) || w.i32(h.NumFrames) ||
		w.i32(h.TextureVertsPerFrame) ||
		w.vector3F(h.Scale) || w.vector3F(h.Origin) || w.f32(h.Radius)
}

func (w *writer) meshHeaderV3(h dtsfile.MeshHeaderV3) bool {
	return w.i32(h.NumVerts) || w.i32(h.VertsPerFrame) ||
		w.i32(h.NumTextureVerts) || w.i32(h.NumFaces) || w.i32(h.NumFrames) ||
		w.i32(h.TextureVertsPerFrame) || w.f32(h.Radius)
}

func (w *writer) meshBody(numVerts, numTVerts, numFaces int32, verts []dtsfile.Vertex, tverts []dtsfile.TextureVertex, faces []dtsfile.Face) bool {
	return writeList(w, "numVerts", numVerts, verts, (*writer).vertex) ||
		writeList(w, "numTextureVerts", numTVerts, tverts, (*writer).textureVertex) ||
		writeList(w, "numFaces", numFaces, faces, (*writer).face)
}

// writeMesh writes m as a tagged record.
func writeMesh(out io.Writer, m dtsfile.Mesh) error {
	switch m := m.(type) {
	case *dtsfile.MeshV1:
		return writeRecord(out, m.Tag, dtsfile.MeshClassName, 1, func(w *writer) bool {
			return w.meshHeaderV1(m.Header) ||
				w.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, m.Vertices, m.TextureVertices, m.Faces) ||
				writeList(w, "numFrames", m.Header.NumFrames, m.Frames, (*writer).frameV1)
		})
	case *dtsfile.MeshV2:
		return writeRecord(out, m.Tag, dtsfile.MeshClassName, 2, func(w *writer) bool {
			return w.meshHeaderV2(m.Header) ||
				w.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, m.Vertices, m.TextureVertices, m.Faces) ||
				writeList(w, "numFrames", m.Header.NumFrames, m.Frames, (*writer).frameV1)
		})
	case *dtsfile.MeshV3:
		return writeRecord(out, m.Tag, dtsfile.MeshClassName, 3, func(w *writer) bool {
			return w.meshHeaderV3(m.Header) ||
				w.meshBody(m.Header.NumVerts, m.Header.NumTextureVerts, m.Header.NumFaces, m.Vertices, m.TextureVertices, m.Faces) ||
				writeList(w, "numFrames", m.Header.NumFrames, m.Frames, (*writer).frameV3)
		})
	case nil:
		return errNilRecord
	}
	return ErrUnsupportedMeshVersion(m.Version())
}

// meshes writes each mesh of list as a tagged record.
func (w *writer) meshes(n int32, list []dtsfile.Mesh) bool {
	if int(n) != len(list) {
		return w.fail(LengthError{Field: "numMeshes", Count: int64(n), Len: len(list)})
	}
	var buf bytes.Buffer
	for i, m := range list {
		buf.Reset()
		if err := writeMesh(&buf, m); err != nil {
			return w.fail(RecordError{Record: "mesh", Index: i, Cause: err})
		}
		if w.bytes(buf.Bytes()) {
			return true
		}
	}
	return false
}
