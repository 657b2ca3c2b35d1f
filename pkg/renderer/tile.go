package renderer

// Tile is a rectangular region of the image rendered by one worker task.
// Bounds are half-open: x in [X0, X1), y in [Y0, Y1).
type Tile struct {
	Index int
	X0    int
	Y0    int
	X1    int
	Y1    int
}

// Width returns the tile width in pixels
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile height in pixels
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// Pixels returns the number of pixels covered by the tile
func (t Tile) Pixels() int { return t.Width() * t.Height() }

// makeTiles partitions a width x height image into tiles of at most
// tileSize x tileSize pixels. Edge tiles shrink to fit. Tiles are emitted
// in row-major order so tile indices, and therefore per-tile RNG seeds,
// are stable for a given image size.
func makeTiles(width, height, tileSize int) []Tile {
	tiles := make([]Tile, 0, ((width+tileSize-1)/tileSize)*((height+tileSize-1)/tileSize))
	index := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tile := Tile{
				Index: index,
				X0:    x,
				Y0:    y,
				X1:    min(x+tileSize, width),
				Y1:    min(y+tileSize, height),
			}
			tiles = append(tiles, tile)
			index++
		}
	}
	return tiles
}

// tileSeed derives the RNG seed for one tile in one pass. Mixing with
// large odd constants keeps seeds distinct across both dimensions so
// neighboring tiles never share sample sequences.
func tileSeed(baseSeed int64, pass, tileIndex int) int64 {
	seed := baseSeed
	seed = seed*6364136223846793005 + int64(pass)*1442695040888963407
	seed = seed*6364136223846793005 + int64(tileIndex)*1442695040888963407
	return seed
}
