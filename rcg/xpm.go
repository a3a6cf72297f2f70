package rcg

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tile geometry. Team graphics are cut into 8x8 tiles of one char per
// pixel.
const (
	TileWidth  = 8
	TileHeight = 8
	TileCPP    = 1

	MaxGraphicWidth  = 256
	MaxGraphicHeight = 64
	MaxGraphicColors = 255
)

var (
	ErrXpmHeader = errors.New("illegal xpm header")
	ErrXpmColor  = errors.New("illegal xpm color")
	ErrXpmPixels = errors.New("illegal xpm pixel line")
	ErrTileIndex = errors.New("tile index out of range")
	ErrTileExist = errors.New("tile already exists")
)

// XpmTile is one 8x8 tile of a team graphic.
type XpmTile struct {
	header    string
	numColors int
	colors    []string
	pixels    []string
}

// Header returns the raw xpm header ("8 8 N 1").
func (t *XpmTile) Header() string { return t.header }

// Colors returns the color lines.
func (t *XpmTile) Colors() []string { return t.colors }

// Pixels returns the pixel rows.
func (t *XpmTile) Pixels() []string { return t.pixels }

// Valid reports whether the header, every declared color and all eight
// rows are present.
func (t *XpmTile) Valid() bool {
	return t.header != "" &&
		t.numColors > 0 &&
		len(t.colors) == t.numColors &&
		len(t.pixels) == TileHeight
}

// AddData appends the next xpm line: the header first, then the
// declared colors, then the pixel rows.
func (t *XpmTile) AddData(data string) error {
	if t.header == "" {
		return t.SetHeader(data)
	}
	if len(t.colors) < t.numColors {
		return t.AddColor(data)
	}
	return t.AddPixelLine(data)
}

// SetHeader parses "<width> <height> <colors> <cpp>".
func (t *XpmTile) SetHeader(data string) error {
	f := strings.Fields(data)
	if len(f) != 4 {
		return fmt.Errorf("%w: %q", ErrXpmHeader, data)
	}
	var v [4]int
	for i := range f {
		n, err := strconv.Atoi(f[i])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrXpmHeader, data)
		}
		v[i] = n
	}
	if v[0] != TileWidth || v[1] != TileHeight || v[2] < 1 || v[3] != TileCPP {
		return fmt.Errorf("%w: %q", ErrXpmHeader, data)
	}
	t.header = data
	t.numColors = v[2]
	return nil
}

// AddColor appends a color line of the form "<c> c <value>".
func (t *XpmTile) AddColor(data string) error {
	if len(t.colors) >= t.numColors {
		return fmt.Errorf("%w: too many colors", ErrXpmColor)
	}
	if len(data) < TileCPP+4 ||
		!isSpace(data[TileCPP]) ||
		data[TileCPP+1] != 'c' ||
		!isSpace(data[TileCPP+2]) {
		return fmt.Errorf("%w: %q", ErrXpmColor, data)
	}
	t.colors = append(t.colors, data)
	return nil
}

// AddPixelLine appends one row of exactly TileWidth chars.
func (t *XpmTile) AddPixelLine(data string) error {
	if len(t.pixels) >= TileHeight {
		return fmt.Errorf("%w: too many rows", ErrXpmPixels)
	}
	if len(data) != TileWidth*TileCPP {
		return fmt.Errorf("%w: %q", ErrXpmPixels, data)
	}
	t.pixels = append(t.pixels, data)
	return nil
}

// Lines returns the header, colors and rows as raw xpm lines.
func (t *XpmTile) Lines() []string {
	lines := make([]string, 0, 1+len(t.colors)+len(t.pixels))
	lines = append(lines, fmt.Sprintf("%d %d %d %d", TileWidth, TileHeight, len(t.colors), TileCPP))
	lines = append(lines, t.colors...)
	return append(lines, t.pixels...)
}

// Print writes the quoted lines joined by sep.
func (t *XpmTile) Print(sep byte) string {
	var sb strings.Builder
	for i, line := range t.Lines() {
		if i > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteString(QuoteString(line))
	}
	return sb.String()
}

// TileIndex addresses a tile on the team graphic grid.
type TileIndex struct{ X, Y int }

// TeamGraphic is a team logo assembled from XpmTiles.
type TeamGraphic struct {
	width, height int
	tiles         map[TileIndex]*XpmTile
}

// NewTeamGraphic returns an empty graphic.
func NewTeamGraphic() *TeamGraphic {
	return &TeamGraphic{tiles: make(map[TileIndex]*XpmTile)}
}

func (g *TeamGraphic) Width() int  { return g.width }
func (g *TeamGraphic) Height() int { return g.height }
func (g *TeamGraphic) Len() int    { return len(g.tiles) }

// Tile returns the tile at (x, y).
func (g *TeamGraphic) Tile(x, y int) (*XpmTile, bool) {
	t, ok := g.tiles[TileIndex{x, y}]
	return t, ok
}

// Indexes returns the tile indexes ordered by x then y.
func (g *TeamGraphic) Indexes() []TileIndex {
	idx := make([]TileIndex, 0, len(g.tiles))
	for k := range g.tiles {
		idx = append(idx, k)
	}
	sort.Slice(idx, func(i, j int) bool {
		if idx[i].X != idx[j].X {
			return idx[i].X < idx[j].X
		}
		return idx[i].Y < idx[j].Y
	})
	return idx
}

// Clear removes every tile.
func (g *TeamGraphic) Clear() {
	g.width, g.height = 0, 0
	g.tiles = make(map[TileIndex]*XpmTile)
}

func (g *TeamGraphic) grow(x, y int) {
	if w := (x + 1) * TileWidth; g.width < w {
		g.width = w
	}
	if h := (y + 1) * TileHeight; g.height < h {
		g.height = h
	}
}

// AddTile stores tile at (x, y). Out-of-grid indexes and occupied
// cells are rejected.
func (g *TeamGraphic) AddTile(x, y int, tile *XpmTile) error {
	if x < 0 || x >= MaxGraphicWidth/TileWidth || y < 0 || y >= MaxGraphicHeight/TileHeight {
		return fmt.Errorf("%w: (%d, %d)", ErrTileIndex, x, y)
	}
	if g.tiles == nil {
		g.tiles = make(map[TileIndex]*XpmTile)
	}
	idx := TileIndex{x, y}
	if _, ok := g.tiles[idx]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrTileExist, x, y)
	}
	g.tiles[idx] = tile
	g.grow(x, y)
	return nil
}

// CreateFromRawXpm splits a whole xpm image into tiles. Each tile
// carries only the colors it uses. The previous content is replaced.
func (g *TeamGraphic) CreateFromRawXpm(xpm []string) error {
	if len(xpm) == 0 {
		return ErrXpmHeader
	}
	f := strings.Fields(xpm[0])
	if len(f) != 4 {
		return fmt.Errorf("%w: %q", ErrXpmHeader, xpm[0])
	}
	var v [4]int
	for i := range f {
		n, err := strconv.Atoi(f[i])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %q", ErrXpmHeader, xpm[0])
		}
		v[i] = n
	}
	width, height, ncolors, cpp := v[0], v[1], v[2], v[3]
	if width%TileWidth != 0 || width > MaxGraphicWidth ||
		height%TileHeight != 0 || height > MaxGraphicHeight ||
		ncolors > MaxGraphicColors || cpp != 1 {
		return fmt.Errorf("%w: unsupported %dx%d colors=%d cpp=%d", ErrXpmHeader, width, height, ncolors, cpp)
	}
	body := xpm[1:]
	if len(body) < ncolors+height {
		return fmt.Errorf("%w: want %d lines, got %d", ErrXpmPixels, ncolors+height, len(body))
	}
	colorMap := make(map[byte]string, ncolors)
	for _, c := range body[:ncolors] {
		if c == "" {
			return fmt.Errorf("%w: empty color line", ErrXpmColor)
		}
		colorMap[c[0]] = c
	}
	rows := body[ncolors : ncolors+height]
	for _, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: %q", ErrXpmPixels, row)
		}
	}

	g.width, g.height = width, height
	g.tiles = make(map[TileIndex]*XpmTile)

	for iy, y0 := 0, 0; y0 < height; iy, y0 = iy+1, y0+TileHeight {
		for ix, x0 := 0, 0; x0 < width; ix, x0 = ix+1, x0+TileWidth {
			tile := &XpmTile{}
			used := make(map[string]struct{})
			for y := y0; y < y0+TileHeight; y++ {
				line := rows[y][x0 : x0+TileWidth]
				for i := 0; i < len(line); i++ {
					used[colorMap[line[i]]] = struct{}{}
				}
				tile.pixels = append(tile.pixels, line)
			}
			colors := make([]string, 0, len(used))
			for c := range used {
				colors = append(colors, c)
			}
			sort.Strings(colors)
			tile.header = fmt.Sprintf("%d %d %d %d", TileWidth, TileHeight, len(colors), TileCPP)
			tile.numColors = len(colors)
			tile.colors = colors
			g.tiles[TileIndex{ix, iy}] = tile
		}
	}
	return nil
}

// ParseTeamGraphic decodes "(team_graphic_<l|r> (<x> <y> "<xpm>"...))"
// into its side, grid index and tile.
func ParseTeamGraphic(msg string) (Side, int, int, *XpmTile, error) {
	ts, err := Tokenize(msg)
	if err != nil {
		return Neutral, 0, 0, nil, err
	}
	if _, err := ts.Expect(TokenLParen); err != nil {
		return Neutral, 0, 0, nil, err
	}
	tag, err := ts.Atom()
	if err != nil {
		return Neutral, 0, 0, nil, err
	}
	var side Side
	switch tag {
	case "team_graphic_l":
		side = Left
	case "team_graphic_r":
		side = Right
	default:
		return Neutral, 0, 0, nil, &SyntaxError{Reason: "unknown team graphic tag " + strconv.Quote(tag), Offset: 0}
	}
	if _, err := ts.Expect(TokenLParen); err != nil {
		return side, 0, 0, nil, err
	}
	x, err := ts.Int()
	if err != nil {
		return side, 0, 0, nil, err
	}
	y, err := ts.Int()
	if err != nil {
		return side, 0, 0, nil, err
	}
	if x < 0 || y < 0 || (x+1)*TileWidth > MaxGraphicWidth || (y+1)*TileHeight > MaxGraphicHeight {
		return side, x, y, nil, fmt.Errorf("%w: (%d, %d)", ErrTileIndex, x, y)
	}
	tile := &XpmTile{}
	for ts.Peek().Type == TokenString {
		if err := tile.AddData(ts.Advance().Text()); err != nil {
			return side, x, y, nil, err
		}
	}
	if err := ts.Close(); err != nil {
		return side, x, y, nil, err
	}
	ts.Match(TokenRParen)
	if !tile.Valid() {
		return side, x, y, nil, fmt.Errorf("%w: incomplete tile", ErrXpmPixels)
	}
	return side, x, y, tile, nil
}

// ParseServerMessage decodes one team_graphic record and stores its
// tile. It returns the side the record belongs to.
func (g *TeamGraphic) ParseServerMessage(msg string) (Side, error) {
	side, x, y, tile, err := ParseTeamGraphic(msg)
	if err != nil {
		return side, err
	}
	if g.tiles == nil {
		g.tiles = make(map[TileIndex]*XpmTile)
	}
	g.tiles[TileIndex{x, y}] = tile
	g.grow(x, y)
	return side, nil
}

// Print writes one "(x y "..." ...)" line per tile.
func (g *TeamGraphic) Print() string {
	var sb strings.Builder
	for _, idx := range g.Indexes() {
		fmt.Fprintf(&sb, "(%d %d %s)\n", idx.X, idx.Y, g.tiles[idx].Print(' '))
	}
	return sb.String()
}

// TeamGraphicMessage formats a tile as the msg payload the server
// records.
func TeamGraphicMessage(side Side, x, y int, tile *XpmTile) string {
	return fmt.Sprintf("(team_graphic_%s (%d %d %s))", side, x, y, tile.Print(' '))
}
