package mask

import "cogentcore.org/core/math32"

// Globals is the process-wide shader uniform table. It is written by one
// Synchronizer during the update step and read by renderers during draw.
// Keywords are exposed to shaders as float uniforms of the same name
// holding 1 or 0.
type Globals struct {
	ids      map[string]int
	names    []string
	vectors  map[int]math32.Vector3
	floats   map[int]float32
	keywords map[string]bool
	uniforms map[string]any
}

// NewGlobals returns an empty uniform table.
func NewGlobals() *Globals {
	return &Globals{
		ids:      make(map[string]int),
		vectors:  make(map[int]math32.Vector3),
		floats:   make(map[int]float32),
		keywords: make(map[string]bool),
		uniforms: make(map[string]any),
	}
}

// ResolveID returns the stable id for name, allocating one on first use.
// Ids start at 1.
func (g *Globals) ResolveID(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}
	g.names = append(g.names, name)
	id := len(g.names)
	g.ids[name] = id
	return id
}

// Name returns the uniform name of id.
func (g *Globals) Name(id int) (string, bool) {
	if id < 1 || id > len(g.names) {
		return "", false
	}
	return g.names[id-1], true
}

func (g *Globals) known(id int) bool {
	_, ok := g.Name(id)
	return ok
}

// SetVector stores a vector uniform. Unknown ids are ignored.
func (g *Globals) SetVector(id int, v math32.Vector3) {
	if !g.known(id) {
		return
	}
	delete(g.floats, id)
	g.vectors[id] = v
}

// SetFloat stores a float uniform. Unknown ids are ignored.
func (g *Globals) SetFloat(id int, f float32) {
	if !g.known(id) {
		return
	}
	delete(g.vectors, id)
	g.floats[id] = f
}

// EnableKeyword turns a shader feature on.
func (g *Globals) EnableKeyword(name string) {
	g.keywords[name] = true
}

// DisableKeyword turns a shader feature off.
func (g *Globals) DisableKeyword(name string) {
	g.keywords[name] = false
}

// KeywordEnabled reports whether name is currently on.
func (g *Globals) KeywordEnabled(name string) bool {
	return g.keywords[name]
}

// Vector returns the vector stored under id.
func (g *Globals) Vector(id int) (math32.Vector3, bool) {
	v, ok := g.vectors[id]
	return v, ok
}

// Float returns the float stored under id.
func (g *Globals) Float(id int) (float32, bool) {
	f, ok := g.floats[id]
	return f, ok
}

// Uniforms returns the table in the shape ebiten's DrawRectShaderOptions
// expects. The map is reused between calls; callers may add their own
// entries but must not keep it across frames.
func (g *Globals) Uniforms() map[string]any {
	for id, v := range g.vectors {
		g.uniforms[g.names[id-1]] = []float32{v.X, v.Y, v.Z}
	}
	for id, f := range g.floats {
		g.uniforms[g.names[id-1]] = f
	}
	for name, on := range g.keywords {
		if on {
			g.uniforms[name] = float32(1)
		} else {
			g.uniforms[name] = float32(0)
		}
	}
	return g.uniforms
}
