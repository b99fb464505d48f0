// SPDX-License-Identifier: MIT
//
// File: blossom.go
// Role: Edmonds' weighted blossom algorithm over a dense integer edge list.
// Determinism:
//   - Vertices, edges and queues are scanned in index order only.
// Numeric policy:
//   - dualvar[v] holds twice the vertex dual, so every slack is an integer
//     and the slack of an S–S edge is even. All arithmetic is int64.

package matching

// weightedEdge is one undirected edge between vertex indices u and v.
type weightedEdge struct {
	u, v int
	w    int64
}

// Vertex/blossom labels.
const (
	labelFree   = 0
	labelS      = 1
	labelT      = 2
	labelBread  = 4 // breadcrumb bit used by scanBlossom
	labelSBread = labelS | labelBread
)

// blossomSolver holds the primal-dual state of one maximum-weight matching run.
//
// Indexing conventions:
//   - Vertices are 0..nv-1; non-trivial blossoms are nv..2nv-1.
//   - Edge k has endpoints 2k (edges[k].u) and 2k+1 (edges[k].v); p^1 is the
//     opposite endpoint of p.
//   - mate[v] is the remote endpoint of v's matched edge, or -1.
type blossomSolver struct {
	nv, ne  int
	edges   []weightedEdge
	maxCard bool

	endpoint  []int
	neighbend [][]int // neighbend[v] = remote endpoints of edges incident to v

	mate     []int
	label    []int
	labelend []int

	inblossom        []int
	blossomparent    []int
	blossomchilds    [][]int
	blossombase      []int
	blossomendps     [][]int
	bestedge         []int
	blossombestedges [][]int // nil means "not computed"
	unused           []int

	dualvar   []int64
	allowedge []bool
	queue     []int
}

// newBlossomSolver prepares the state for n vertices and the given edges.
// Complexity: O(V + E).
func newBlossomSolver(n int, edges []weightedEdge, maxCard bool) *blossomSolver {
	s := &blossomSolver{nv: n, ne: len(edges), edges: edges, maxCard: maxCard}

	var maxW int64
	for _, e := range edges {
		if e.w > maxW {
			maxW = e.w
		}
	}

	s.endpoint = make([]int, 2*s.ne)
	var p int
	for p = range s.endpoint {
		if p%2 == 0 {
			s.endpoint[p] = edges[p/2].u
		} else {
			s.endpoint[p] = edges[p/2].v
		}
	}
	s.neighbend = make([][]int, n)
	for k, e := range edges {
		s.neighbend[e.u] = append(s.neighbend[e.u], 2*k+1)
		s.neighbend[e.v] = append(s.neighbend[e.v], 2*k)
	}

	s.mate = filled(n, -1)
	s.label = make([]int, 2*n)
	s.labelend = filled(2*n, -1)
	s.inblossom = make([]int, n)
	s.blossomparent = filled(2*n, -1)
	s.blossomchilds = make([][]int, 2*n)
	s.blossombase = filled(2*n, -1)
	s.blossomendps = make([][]int, 2*n)
	s.bestedge = filled(2*n, -1)
	s.blossombestedges = make([][]int, 2*n)
	s.unused = make([]int, 0, n)
	s.dualvar = make([]int64, 2*n)
	s.allowedge = make([]bool, s.ne)

	var v int
	for v = 0; v < n; v++ {
		s.inblossom[v] = v
		s.blossombase[v] = v
		s.dualvar[v] = maxW
		s.unused = append(s.unused, n+v)
	}

	return s
}

// filled returns a slice of length n where every element is x.
func filled(n, x int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = x
	}

	return out
}

// slack returns 2·(u_i + u_j − w_k) for edge k.
func (s *blossomSolver) slack(k int) int64 {
	e := s.edges[k]
	return s.dualvar[e.u] + s.dualvar[e.v] - 2*e.w
}

// blossomLeaves lists the vertices contained in blossom b.
func (s *blossomSolver) blossomLeaves(b int) []int {
	if b < s.nv {
		return []int{b}
	}
	var out []int
	for _, t := range s.blossomchilds[b] {
		if t < s.nv {
			out = append(out, t)
		} else {
			out = append(out, s.blossomLeaves(t)...)
		}
	}

	return out
}

// assignLabel labels the top-level blossom containing w with t, reached via
// endpoint p. A T-label propagates an S-label to the blossom's mate.
func (s *blossomSolver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = -1, -1
	switch t {
	case labelS:
		s.queue = append(s.queue, s.blossomLeaves(b)...)
	case labelT:
		base := s.blossombase[b]
		s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
	}
}

// scanBlossom traces back from v and w towards the roots of their
// alternating trees. It returns the base of a new blossom, or -1 when the
// trees are distinct and an augmenting path exists.
func (s *blossomSolver) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&labelBread != 0 {
			base = s.blossombase[b]
			break
		}
		path = append(path, b)
		s.label[b] = labelSBread
		if s.labelend[b] == -1 {
			v = -1
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = labelS
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k into a new S-blossom
// with the given base, and recomputes its least-slack edges.
func (s *blossomSolver) addBlossom(base, k int) {
	v, w := s.edges[k].u, s.edges[k].v
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]
	s.blossombase[b] = base
	s.blossomparent[b] = -1
	s.blossomparent[bb] = b

	var path, endps []int
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.blossomchilds[b] = path
	s.blossomendps[b] = endps

	s.label[b] = labelS
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0
	for _, leaf := range s.blossomLeaves(b) {
		if s.label[s.inblossom[leaf]] == labelT {
			// former T-vertices become S-vertices inside the new blossom
			s.queue = append(s.queue, leaf)
		}
		s.inblossom[leaf] = b
	}

	bestedgeto := filled(2*s.nv, -1)
	for _, child := range path {
		var nblists [][]int
		if s.blossombestedges[child] == nil {
			for _, leaf := range s.blossomLeaves(child) {
				nb := make([]int, len(s.neighbend[leaf]))
				for i, p := range s.neighbend[leaf] {
					nb[i] = p / 2
				}
				nblists = append(nblists, nb)
			}
		} else {
			nblists = [][]int{s.blossombestedges[child]}
		}
		for _, nblist := range nblists {
			for _, kk := range nblist {
				j := s.edges[kk].v
				if s.inblossom[j] == b {
					j = s.edges[kk].u
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == labelS &&
					(bestedgeto[bj] == -1 || s.slack(kk) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = kk
				}
			}
		}
		s.blossombestedges[child] = nil
		s.bestedge[child] = -1
	}

	best := make([]int, 0)
	for _, kk := range bestedgeto {
		if kk != -1 {
			best = append(best, kk)
		}
	}
	s.blossombestedges[b] = best
	s.bestedge[b] = -1
	for _, kk := range best {
		if s.bestedge[b] == -1 || s.slack(kk) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = kk
		}
	}
}

// expandBlossom dissolves blossom b. Mid-stage expansion of a T-blossom
// relabels the even-length path from the entry child to the base.
func (s *blossomSolver) expandBlossom(b int, endstage bool) {
	for _, sub := range s.blossomchilds[b] {
		s.blossomparent[sub] = -1
		switch {
		case sub < s.nv:
			s.inblossom[sub] = sub
		case endstage && s.dualvar[sub] == 0:
			s.expandBlossom(sub, endstage)
		default:
			for _, leaf := range s.blossomLeaves(sub) {
				s.inblossom[leaf] = sub
			}
		}
	}

	if !endstage && s.label[b] == labelT {
		childs := s.blossomchilds[b]
		endps := s.blossomendps[b]
		n := len(childs)
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := indexOfInt(childs, entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			j -= n
			jstep, endptrick = 1, 0
		} else {
			jstep, endptrick = -1, 1
		}

		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = labelFree
			s.label[s.endpoint[endps[wrap(j-endptrick, n)]^endptrick^1]] = labelFree
			s.assignLabel(s.endpoint[p^1], labelT, p)
			s.allowedge[endps[wrap(j-endptrick, n)]/2] = true
			j += jstep
			p = endps[wrap(j-endptrick, n)] ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		bv := childs[wrap(j, n)]
		s.label[s.endpoint[p^1]], s.label[bv] = labelT, labelT
		s.labelend[s.endpoint[p^1]], s.labelend[bv] = p, p
		s.bestedge[bv] = -1
		j += jstep
		for childs[wrap(j, n)] != entrychild {
			bv = childs[wrap(j, n)]
			if s.label[bv] == labelS {
				j += jstep
				continue
			}
			for _, leaf := range s.blossomLeaves(bv) {
				if s.label[leaf] != labelFree {
					s.label[leaf] = labelFree
					s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = labelFree
					s.assignLabel(leaf, labelT, s.labelend[leaf])
					break
				}
			}
			j += jstep
		}
	}

	s.label[b], s.labelend[b] = -1, -1
	s.blossomchilds[b], s.blossomendps[b] = nil, nil
	s.blossombase[b] = -1
	s.blossombestedges[b] = nil
	s.bestedge[b] = -1
	s.unused = append(s.unused, b)
}

// augmentBlossom swaps matched/unmatched edges along the even path from
// vertex v to the base of blossom b, and rotates b so v becomes its base.
func (s *blossomSolver) augmentBlossom(b, v int) {
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.nv {
		s.augmentBlossom(t, v)
	}

	childs := s.blossomchilds[b]
	endps := s.blossomendps[b]
	n := len(childs)
	i := indexOfInt(childs, t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= n
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}

	for j != 0 {
		j += jstep
		t = childs[wrap(j, n)]
		p := endps[wrap(j-endptrick, n)] ^ endptrick
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = childs[wrap(j, n)]
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	rotChilds := make([]int, 0, n)
	rotChilds = append(append(rotChilds, childs[i:]...), childs[:i]...)
	rotEndps := make([]int, 0, n)
	rotEndps = append(append(rotEndps, endps[i:]...), endps[:i]...)
	s.blossomchilds[b] = rotChilds
	s.blossomendps[b] = rotEndps
	s.blossombase[b] = s.blossombase[rotChilds[0]]
}

// augmentMatching flips the augmenting path through edge k, which joins two
// distinct S-trees.
func (s *blossomSolver) augmentMatching(k int) {
	starts := [2][2]int{
		{s.edges[k].u, 2*k + 1},
		{s.edges[k].v, 2 * k},
	}
	for _, st := range starts {
		sv, p := st[0], st[1]
		for {
			bs := s.inblossom[sv]
			if bs >= s.nv {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelend[bs] == -1 {
				// reached a single root
				break
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			sv = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.nv {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// solve runs the primal-dual stages and returns mate as vertex indices
// (-1 for unmatched vertices).
//
// Complexity: at most V stages, each O(V²) ⇒ O(V³).
func (s *blossomSolver) solve() []int {
	out := filled(s.nv, -1)
	if s.ne == 0 {
		return out
	}

	for stage := 0; stage < s.nv; stage++ {
		s.resetStage()

		augmented := false
		for {
			augmented = s.growTrees()
			if augmented {
				break
			}
			if done := s.adjustDuals(); done {
				break
			}
		}
		if !augmented {
			break
		}

		// end of stage: expand S-blossoms whose dual reached zero
		for b := s.nv; b < 2*s.nv; b++ {
			if s.blossomparent[b] == -1 && s.blossombase[b] >= 0 &&
				s.label[b] == labelS && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}

	var v int
	for v = 0; v < s.nv; v++ {
		if s.mate[v] >= 0 {
			out[v] = s.endpoint[s.mate[v]]
		}
	}

	return out
}

// resetStage clears labels and least-slack bookkeeping, then labels every
// exposed top-level blossom S.
func (s *blossomSolver) resetStage() {
	var i int
	for i = range s.label {
		s.label[i] = labelFree
		s.bestedge[i] = -1
	}
	for i = s.nv; i < 2*s.nv; i++ {
		s.blossombestedges[i] = nil
	}
	for i = range s.allowedge {
		s.allowedge[i] = false
	}
	s.queue = s.queue[:0]

	for i = 0; i < s.nv; i++ {
		if s.mate[i] == -1 && s.label[s.inblossom[i]] == labelFree {
			s.assignLabel(i, labelS, -1)
		}
	}
}

// growTrees consumes the S-vertex queue along tight edges. It reports
// whether an augmentation happened.
func (s *blossomSolver) growTrees() bool {
	for len(s.queue) > 0 {
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		for _, p := range s.neighbend[v] {
			k := p / 2
			w := s.endpoint[p]
			if s.inblossom[v] == s.inblossom[w] {
				continue
			}
			var kslack int64
			if !s.allowedge[k] {
				kslack = s.slack(k)
				if kslack <= 0 {
					s.allowedge[k] = true
				}
			}

			switch {
			case s.allowedge[k]:
				switch {
				case s.label[s.inblossom[w]] == labelFree:
					s.assignLabel(w, labelT, p^1)
				case s.label[s.inblossom[w]] == labelS:
					base := s.scanBlossom(v, w)
					if base >= 0 {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						return true
					}
				case s.label[w] == labelFree:
					// w is inside a T-blossom but not yet reached itself
					s.label[w] = labelT
					s.labelend[w] = p ^ 1
				}
			case s.label[s.inblossom[w]] == labelS:
				b := s.inblossom[v]
				if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
					s.bestedge[b] = k
				}
			case s.label[w] == labelFree:
				if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
					s.bestedge[w] = k
				}
			}
		}
	}

	return false
}

// adjustDuals performs one dual update. It returns true when the stage
// must end without augmentation (optimum for this stage reached).
func (s *blossomSolver) adjustDuals() bool {
	const (
		deltaNone = iota
		deltaVertex
		deltaFreeEdge
		deltaSSEdge
		deltaBlossom
	)
	deltatype := deltaNone
	var delta int64
	deltaedge, deltablossom := -1, -1

	if !s.maxCard {
		deltatype = deltaVertex
		delta = s.minVertexDual()
	}

	var v, b int
	for v = 0; v < s.nv; v++ {
		if s.label[s.inblossom[v]] == labelFree && s.bestedge[v] != -1 {
			d := s.slack(s.bestedge[v])
			if deltatype == deltaNone || d < delta {
				delta, deltatype, deltaedge = d, deltaFreeEdge, s.bestedge[v]
			}
		}
	}
	for b = 0; b < 2*s.nv; b++ {
		if s.blossomparent[b] == -1 && s.label[b] == labelS && s.bestedge[b] != -1 {
			d := s.slack(s.bestedge[b]) / 2
			if deltatype == deltaNone || d < delta {
				delta, deltatype, deltaedge = d, deltaSSEdge, s.bestedge[b]
			}
		}
	}
	for b = s.nv; b < 2*s.nv; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 && s.label[b] == labelT &&
			(deltatype == deltaNone || s.dualvar[b] < delta) {
			delta, deltatype, deltablossom = s.dualvar[b], deltaBlossom, b
		}
	}
	if deltatype == deltaNone {
		// max-cardinality mode with no further progress possible
		deltatype = deltaVertex
		delta = s.minVertexDual()
		if delta < 0 {
			delta = 0
		}
	}

	for v = 0; v < s.nv; v++ {
		switch s.label[s.inblossom[v]] {
		case labelS:
			s.dualvar[v] -= delta
		case labelT:
			s.dualvar[v] += delta
		}
	}
	for b = s.nv; b < 2*s.nv; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 {
			switch s.label[b] {
			case labelS:
				s.dualvar[b] += delta
			case labelT:
				s.dualvar[b] -= delta
			}
		}
	}

	switch deltatype {
	case deltaVertex:
		return true
	case deltaFreeEdge:
		s.allowedge[deltaedge] = true
		i := s.edges[deltaedge].u
		if s.label[s.inblossom[i]] == labelFree {
			i = s.edges[deltaedge].v
		}
		s.queue = append(s.queue, i)
	case deltaSSEdge:
		s.allowedge[deltaedge] = true
		s.queue = append(s.queue, s.edges[deltaedge].u)
	case deltaBlossom:
		s.expandBlossom(deltablossom, false)
	}

	return false
}

// minVertexDual returns min(dualvar[0..nv-1]).
func (s *blossomSolver) minVertexDual() int64 {
	m := s.dualvar[0]
	for _, d := range s.dualvar[1:s.nv] {
		if d < m {
			m = d
		}
	}

	return m
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

func indexOfInt(a []int, x int) int {
	for i, y := range a {
		if y == x {
			return i
		}
	}

	return -1
}

// wrap maps a possibly negative offset into [0, n).
func wrap(j, n int) int {
	return ((j % n) + n) % n
}
