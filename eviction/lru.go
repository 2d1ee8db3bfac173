package eviction

import "container/list"

// lru keeps keys in a list ordered from most to least recently used.
type lru struct {
	order *list.List
	nodes map[string]*list.Element
}

func newLRU() *lru {
	return &lru{
		order: list.New(),
		nodes: make(map[string]*list.Element),
	}
}

func (l *lru) OnGet(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.MoveToFront(el)
	}
}

// OnPut treats a re-put as a use.
func (l *lru) OnPut(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.nodes[k] = l.order.PushFront(k)
}

func (l *lru) Evict() string {
	el := l.order.Back()
	if el == nil {
		return ""
	}
	k := l.order.Remove(el).(string)
	delete(l.nodes, k)
	return k
}

func (l *lru) Remove(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.Remove(el)
		delete(l.nodes, k)
	}
}
