package pool

// AllocationMap renders the occupancy map as a string of '0' (free) and '1'
// (allocated), one character per arena byte. Diagnostic only; it never
// mutates pool state.
func (p *Pool) AllocationMap() string {
	buf := make([]byte, p.capacity)
	for i, occupied := range p.occupancy {
		if occupied {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
