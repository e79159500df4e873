package menurepo

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1024

// Cache holds recently loaded menu rows. Menus are never updated after creation,
// so an entry stays valid for the lifetime of the process.
type Cache struct {
	entries *lru.Cache[uuid.UUID, MenuDTO]
}

// NewCache creates a cache for up to size menus. A non-positive size falls back
// to the default.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}

	entries, err := lru.New[uuid.UUID, MenuDTO](size)
	if err != nil {
		entries, _ = lru.New[uuid.UUID, MenuDTO](defaultCacheSize)
	}

	return &Cache{entries: entries}
}

func (c *Cache) get(id uuid.UUID) (MenuDTO, bool) {
	if c == nil {
		return MenuDTO{}, false
	}
	return c.entries.Get(id)
}

func (c *Cache) put(dto MenuDTO) {
	if c == nil {
		return
	}
	c.entries.Add(dto.ID, dto)
}

// Len returns the number of cached menus.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
