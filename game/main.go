// Command game is a desktop board for playing against the bots.
package main

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"chessior/bots"
	"chessior/rules"
)

const (
	squareSize   = 80
	boardOffsetX = 40
	boardOffsetY = 60
	screenWidth  = squareSize*8 + boardOffsetX*2
	screenHeight = squareSize*8 + boardOffsetY*2

	// glyph tiles are drawn with the debug font and scaled up
	glyphWidth  = 8
	glyphHeight = 16
	glyphScale  = 3

	buttonWidth  = 200
	buttonHeight = 60
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	whiteToken  = color.RGBA{250, 250, 245, 255}
	blackToken  = color.RGBA{40, 40, 40, 255}
)

type Game struct {
	mu          sync.Mutex
	pos         rules.Position
	playerColor rules.Color
	started     bool
	botThinking bool
	lastMove    string

	selected     rules.Square
	dragging     bool
	dragX, dragY int

	bots     []bots.ChessBot
	botIndex int

	glyphs map[rules.PieceKind]*ebiten.Image
	tiles  [2]*ebiten.Image
	token  *ebiten.Image
}

func NewGame() *Game {
	g := &Game{
		bots:   createBots(),
		glyphs: make(map[rules.PieceKind]*ebiten.Image),
	}
	g.loadPieceImages()
	return g
}

func createBots() []bots.ChessBot {
	list := []bots.ChessBot{bots.NewNewbornBot(), bots.NewRandomBot()}
	for _, depth := range []int{1, 2} {
		b, err := bots.NewMinimaxBot(depth)
		if err != nil {
			log.Error().Err(err).Int("depth", depth).Msg("skipping bot")
			continue
		}
		b.Logger = log.Logger
		list = append(list, b)
	}
	return list
}

// loadPieceImages builds one white glyph per piece kind; Draw tints it by
// colour. There are no image assets.
func (g *Game) loadPieceImages() {
	for _, kind := range rules.Kinds {
		img := ebiten.NewImage(glyphWidth, glyphHeight)
		letter := rules.Piece{Kind: kind, Color: rules.White}.Symbol()
		ebitenutil.DebugPrintAt(img, letter, 1, 0)
		g.glyphs[kind] = img
	}

	g.tiles[0] = ebiten.NewImage(squareSize, squareSize)
	g.tiles[0].Fill(lightSquare)
	g.tiles[1] = ebiten.NewImage(squareSize, squareSize)
	g.tiles[1].Fill(darkSquare)

	g.token = ebiten.NewImage(squareSize*3/4, squareSize*3/4)
	g.token.Fill(color.White)
}

// squareAt maps screen coordinates to a board square, White at the bottom.
func squareAt(x, y int) (rules.Square, bool) {
	x -= boardOffsetX
	y -= boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return 0, false
	}
	return rules.NewSquare(x/squareSize, 7-y/squareSize), true
}

// findMove returns the legal move from one square to another. Promotions
// default to a queen.
func findMove(pos rules.Position, from, to rules.Square) rules.Move {
	if pos == nil {
		return nil
	}
	var found rules.Move
	for m := range pos.LegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if p := m.Promotion(); p == rules.NoKind || p == rules.Queen {
			return m
		}
		found = m
	}
	return found
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.started {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnY := screenHeight/2 + 40
			if y > btnY && y < btnY+buttonHeight {
				if x > screenWidth/2-buttonWidth-20 && x < screenWidth/2-20 {
					g.startGame(rules.White)
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+buttonWidth {
					g.startGame(rules.Black)
				}
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.botIndex = (g.botIndex + 1) % len(g.bots)
		log.Info().Str("bot", g.bots[g.botIndex].Name()).Msg("bot selected")
	}

	playerTurn := g.pos.SideToMove() == g.playerColor && g.pos.Status() == rules.Ongoing
	if playerTurn && !g.botThinking && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := squareAt(x, y); ok {
			if p := g.pos.PieceAt(sq); !p.Empty() && p.Color == g.playerColor {
				g.selected = sq
				g.dragging = true
			}
		}
	}

	if g.dragging {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if target, ok := squareAt(ebiten.CursorPosition()); ok {
			if m := findMove(g.pos, g.selected, target); m != nil {
				g.lastMove = m.String()
				g.pos = g.pos.Apply(m)
			}
		}
		g.dragging = false
	}

	if !g.botThinking && g.pos.SideToMove() != g.playerColor && g.pos.Status() == rules.Ongoing {
		g.botThinking = true
		go func() {
			time.Sleep(300 * time.Millisecond)
			g.makeBotMove()
		}()
	}
	return nil
}

func (g *Game) startGame(c rules.Color) {
	pos, err := rules.Notnil{}.Parse(rules.StartFEN)
	if err != nil {
		log.Error().Err(err).Msg("cannot set up board")
		return
	}
	g.pos = pos
	g.playerColor = c
	g.started = true
	g.lastMove = ""
	log.Info().Str("player", c.String()).Str("bot", g.bots[g.botIndex].Name()).Msg("game started")
}

// makeBotMove searches without holding the lock so the window stays live.
func (g *Game) makeBotMove() {
	g.mu.Lock()
	pos := g.pos
	bot := g.bots[g.botIndex]
	g.mu.Unlock()

	var m rules.Move
	if pos.Status() == rules.Ongoing {
		m = bot.BestMove(pos)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.botThinking = false
	if m == nil {
		return
	}
	if g.pos != pos {
		return
	}
	g.lastMove = m.String()
	g.pos = pos.Apply(m)
}

func outcome(pos rules.Position) string {
	switch pos.Status() {
	case rules.Decisive:
		return pos.SideToMove().Other().String() + " wins"
	case rules.Drawn:
		return "Draw"
	}
	return ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.started {
		ebitenutil.DebugPrintAt(screen, "Chess in Go", screenWidth/2-35, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Choose your colour:", screenWidth/2-60, screenHeight/2)

		whiteBtn := ebiten.NewImage(buttonWidth, buttonHeight)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Play White", 70, 22)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-buttonWidth-20), float64(screenHeight/2+40))
		screen.DrawImage(whiteBtn, op)

		blackBtn := ebiten.NewImage(buttonWidth, buttonHeight)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Play Black", 70, 22)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+40))
		screen.DrawImage(blackBtn, op)

		ebitenutil.DebugPrintAt(screen, "Bot: "+g.bots[g.botIndex].Name()+" (B to change)", 20, screenHeight-40)
		return
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*squareSize+boardOffsetX), float64(y*squareSize+boardOffsetY))
			screen.DrawImage(g.tiles[(x+y)%2], op)
		}
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := rules.NewSquare(x, 7-y)
			p := g.pos.PieceAt(sq)
			if p.Empty() || (g.dragging && sq == g.selected) {
				continue
			}
			g.drawPiece(screen, p, float64(x*squareSize+boardOffsetX), float64(y*squareSize+boardOffsetY))
		}
	}

	if g.dragging {
		p := g.pos.PieceAt(g.selected)
		g.drawPiece(screen, p, float64(g.dragX-squareSize/2), float64(g.dragY-squareSize/2))
	}

	status := "Your move"
	if g.botThinking {
		status = "Bot is thinking..."
	} else if g.pos.SideToMove() != g.playerColor {
		status = "Bot to move"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	if g.lastMove != "" {
		ebitenutil.DebugPrintAt(screen, "Last move: "+g.lastMove, screenWidth/2-50, 20)
	}
	if res := outcome(g.pos); res != "" {
		ebitenutil.DebugPrintAt(screen, "Result: "+res, screenWidth/2-50, 36)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Bot: %s (B to change)", g.bots[g.botIndex].Name()), 20, screenHeight-40)
}

// drawPiece draws a token in the piece's colour with the letter on top in
// the opposite colour.
func (g *Game) drawPiece(screen *ebiten.Image, p rules.Piece, x, y float64) {
	fill, ink := whiteToken, blackToken
	if p.Color == rules.Black {
		fill, ink = blackToken, whiteToken
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+squareSize/8, y+squareSize/8)
	op.ColorScale.ScaleWithColor(fill)
	screen.DrawImage(g.token, op)

	glyph := g.glyphs[p.Kind]
	if glyph == nil {
		return
	}
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(glyphScale, glyphScale)
	op.GeoM.Translate(
		x+float64(squareSize-glyphWidth*glyphScale)/2,
		y+float64(squareSize-glyphHeight*glyphScale)/2,
	)
	op.ColorScale.ScaleWithColor(ink)
	screen.DrawImage(glyph, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	game := NewGame()
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Chess in Go")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}
