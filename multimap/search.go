package multimap

// findOrCreate is the public lookup of spec §4.4, taking the
// create_if_not_found flag. It handles the empty-tree and full-root
// edge cases before handing off to searchAndInsert for the descent.
//
// The source's find_node dereferences &mm->root->kNodes[0] on the empty-
// tree branch unconditionally, even when create is false (a latent null
// dereference spec §9 flags as a bug). This resolves that open question
// as directed: on an empty tree with create == false, return "not
// found" without touching a nil root.
func (m *Multimap) findOrCreate(key Key, create bool) *keyRecord {
	if m.root == nil {
		if !create {
			return nil
		}
		m.root = newNode(m.fanout, true)
		m.root.insertKeyAt(0, keyRecord{key: key})
		m.root.mustNotOverflow(m.fanout)
		return &m.root.keys[0]
	}

	cur := m.root
	if create && cur.n == m.fanout {
		// Root growth: the only place tree height increases (spec §4.3).
		newRoot := newNode(m.fanout, false)
		newRoot.children = newRoot.children[:1]
		newRoot.children[0] = cur
		splitNode(newRoot, 0, m.fanout)
		m.root = newRoot
		cur = newRoot
	}

	return searchAndInsert(cur, key, create, m.fanout)
}

// searchAndInsert walks from nd toward the key, proactively splitting
// any full child before descending into it (spec §4.3), and either
// returns the matching record or creates one in the leaf it eventually
// reaches. It is a direct port of the source's searchAndInsert.
func searchAndInsert(nd *node, key Key, create bool, fanout int) *keyRecord {
	pos := nd.search(key)

	if pos < nd.n && nd.keys[pos].key == key {
		return &nd.keys[pos]
	}

	if nd.isLeaf {
		if !create {
			return nil
		}
		// Proactive splitting guarantees room; this is a plain shift.
		nd.insertKeyAt(pos, keyRecord{key: key})
		nd.mustNotOverflow(fanout)
		return &nd.keys[pos]
	}

	next := nd.children[pos]
	if create && next.n == fanout {
		splitNode(nd, pos, fanout)
		// The key we want may now live in the new sibling: rescan from
		// nd rather than continuing into next (spec §4.3, §9).
		return searchAndInsert(nd, key, create, fanout)
	}

	return searchAndInsert(next, key, create, fanout)
}
