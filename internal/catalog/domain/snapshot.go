package domain

// Snapshot reads a previously normalized movie back from a loosely typed
// record. Unlike Normalize it fills no placeholders and rewrites nothing; it
// only coerces types, so a numeric id or a null year still decodes. The
// runtime in minutes is accepted as runtimeMinutes or runtimeMins.
func (r RawRecord) Snapshot() Movie {
	m := Movie{
		ID:       r.text("id"),
		Title:    r.text("title"),
		Genre:    r.list("genre"),
		Runtime:  r.text("runtime"),
		Released: r.text("released"),
		Plot:     r.text("plot"),
		Director: r.text("director"),
		Cast:     r.list("cast"),
		Poster:   r.text("poster"),
		Year:     normalizeYear(r),
	}
	if v, ok := r.number("rating"); ok {
		m.Rating = v
	}
	for _, key := range []string{"runtimeMinutes", "runtimeMins"} {
		if v, ok := r.number(key); ok {
			m.RuntimeMinutes = int(v)
			break
		}
	}
	if v, ok := r.number("releaseTimestamp"); ok && v > 0 {
		m.ReleaseTimestamp = int64(v)
	}
	return m
}
