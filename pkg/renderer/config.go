package renderer

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	TileSize   int     // Edge length of the square tiles handed to workers
	MaxDepth   int     // Maximum recursion depth for reflected and refracted rays
	Gamma      float64 // Gamma applied when writing pixels (1 = linear)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		TileSize:   32,
		MaxDepth:   5,
		Gamma:      1.0,
	}
}

// MergeRenderConfig returns base with every positive field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.TileSize > 0 {
		result.TileSize = override.TileSize
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Gamma > 0 {
		result.Gamma = override.Gamma
	}
	return result
}
