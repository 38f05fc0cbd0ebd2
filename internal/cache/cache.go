package cache

import (
	"container/list"
	"time"
)

// Records is a bounded LRU cache for parsed sidecar records, keyed by the
// sidecar path. Entries carry the file modification time observed at parse
// time; a lookup with a newer modification time is treated as a miss so stale
// records are never served.
type Records struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	mtime time.Time
	value any
}

func NewRecords(size int) *Records {
	if size <= 0 {
		size = 1
	}
	return &Records{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get returns the cached value for key when its recorded modification time is
// not older than mtime.
func (c *Records) Get(key string, mtime time.Time) (value any, ok bool) {
	ele, hit := c.items[key]
	if !hit {
		return nil, false
	}

	ent := ele.Value.(*entry)
	if ent.mtime.Before(mtime) {
		c.removeElement(ele)
		return nil, false
	}

	c.evictList.MoveToFront(ele)
	return ent.value, true
}

func (c *Records) Put(key string, mtime time.Time, value any) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.mtime = mtime
		ent.value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key: key, mtime: mtime, value: value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *Records) Remove(key string) {
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

func (c *Records) Len() int {
	return c.evictList.Len()
}

func (c *Records) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Records) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	ent := e.Value.(*entry)
	delete(c.items, ent.key)
}
