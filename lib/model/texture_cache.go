package model

import "log/slog"

type TextureLoader func(path string) (uint32, error)

type cachedTexture struct {
	path string
	id   uint32
}

// TextureCache hands out one texture per file path. Models reference
// few distinct files so a linear scan is enough.
type TextureCache struct {
	load    TextureLoader
	entries []cachedTexture
	log     *slog.Logger
}

func NewTextureCache(load TextureLoader) *TextureCache {
	return &TextureCache{
		load: load,
		log:  slog.With("module", "model"),
	}
}

func (c *TextureCache) Get(path string) (uint32, error) {
	for _, e := range c.entries {
		if e.path == path {
			return e.id, nil
		}
	}

	id, err := c.load(path)
	if err != nil {
		return 0, err
	}
	c.log.Debug("loaded texture", "path", path, "id", id)
	c.entries = append(c.entries, cachedTexture{path: path, id: id})
	return id, nil
}

func (c *TextureCache) Len() int {
	return len(c.entries)
}

// Release hands every cached texture to free and empties the cache.
func (c *TextureCache) Release(free func(id uint32)) {
	for _, e := range c.entries {
		free(e.id)
	}
	c.entries = nil
}
