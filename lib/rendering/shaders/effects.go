package shaders

// DefaultEffects are the post-processing modes, selected with the
// number keys. Effect 0 shows the scene untouched.
func DefaultEffects() []Effect {
	return []Effect{
		{ID: 1, Name: "inversion", Body: "col = 1.0 - col;"},
		{ID: 2, Name: "grayscale", Body: "col = vec3(0.2126 * col.r + 0.7152 * col.g + 0.0722 * col.b);"},
		{ID: 3, Name: "sharpen", Kernel: []float32{
			-1, -1, -1,
			-1, 9, -1,
			-1, -1, -1,
		}},
		{ID: 4, Name: "blur", Kernel: []float32{
			1.0 / 16, 2.0 / 16, 1.0 / 16,
			2.0 / 16, 4.0 / 16, 2.0 / 16,
			1.0 / 16, 2.0 / 16, 1.0 / 16,
		}},
		{ID: 5, Name: "edge detection", Kernel: []float32{
			1, 1, 1,
			1, -8, 1,
			1, 1, 1,
		}},
	}
}

// EffectName returns the name of the effect with the given id.
func EffectName(effects []Effect, id int) string {
	for _, e := range effects {
		if e.ID == id {
			return e.Name
		}
	}
	return "none"
}
