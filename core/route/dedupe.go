package route

import "github.com/trivium-ai/trivium/model"

// DedupeChunks removes duplicate chunks by identity key, keeping the first
// occurrence of each key in original order. Runs in linear time.
func DedupeChunks(chunks model.ChunkList) model.ChunkList {
	seen := make(map[model.ChunkKey]bool, len(chunks))
	unique := make(model.ChunkList, 0, len(chunks))

	for _, c := range chunks {
		key := c.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}

	return unique
}
