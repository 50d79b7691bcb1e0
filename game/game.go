package game

import (
	"errors"

	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Audio is the sound side of the game. Calls are fire-and-forget.
type Audio interface {
	PlayEat()
	PlayCollision()
	StopMusic()
	PlayMusic()
}

type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	audio        Audio
	log          logrus.FieldLogger
	roundID      string
	ticks        int
}

func NewGame(grid types.Grid, rng manager.Source, audio Audio, log logrus.FieldLogger) (*Game, error) {
	g := &Game{
		Grid:         grid,
		snake:        entity.NewSnake(),
		foodMgr:      manager.NewFoodManager(grid, rng),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
		audio:        audio,
		log:          log,
		roundID:      uuid.New().String(),
	}

	for _, p := range g.snake.Body() {
		if !grid.Contains(p) {
			return nil, errors.New("grid too small for the spawn body")
		}
	}
	if _, err := g.foodMgr.PlaceRandomly(g.snake.Occupies); err != nil {
		return nil, err
	}

	g.log.WithField("round", g.roundID).Info("game started")
	return g, nil
}

// Update runs one game tick: move, eat, then the wall and self checks.
// It does nothing while the game is paused.
func (g *Game) Update() {
	if !g.stateMgr.Running() {
		return
	}
	g.ticks++

	g.snake.Advance()

	if g.collisionMgr.IsFoodCollision(g.snake, g.foodMgr.Position()) {
		g.audio.PlayEat()
		g.snake.Grow()
		score := g.stateMgr.AddPoint()
		if _, err := g.foodMgr.PlaceRandomly(g.snake.Occupies); err != nil {
			g.log.WithError(err).Warn("food not moved")
		}
		g.log.WithFields(logrus.Fields{
			"round": g.roundID,
			"score": score,
		}).Debug("food eaten")
	}

	if collision := g.collisionMgr.CheckFatal(g.snake); collision != manager.NoCollision {
		g.gameOver(collision)
	}
}

// Steer handles a directional key press. Any press resumes a paused game.
// Turning back onto the segment behind the head is ignored. It reports
// whether the snake's direction changed.
func (g *Game) Steer(dir types.Direction) bool {
	if g.stateMgr.Resume() {
		g.audio.PlayMusic()
		g.log.WithField("round", g.roundID).Info("game resumed")
	}
	if dir == g.snake.Heading().Opposite() || dir == g.snake.Direction() {
		return false
	}
	g.snake.SetDirection(dir)
	return true
}

func (g *Game) gameOver(cause manager.CollisionType) {
	g.audio.PlayCollision()
	g.audio.StopMusic()

	g.snake.Reset()
	if _, err := g.foodMgr.PlaceRandomly(g.snake.Occupies); err != nil {
		g.log.WithError(err).Warn("food not moved")
	}
	final := g.stateMgr.EndRound()

	g.log.WithFields(logrus.Fields{
		"round": g.roundID,
		"cause": cause.String(),
		"score": final,
		"ticks": g.ticks,
		"best":  g.stateMgr.GetHighScore(),
	}).Info("game over")

	g.roundID = uuid.New().String()
	g.ticks = 0
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.Position()
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

// Rounds is the number of rounds lost so far.
func (g *Game) Rounds() int {
	return g.stateMgr.Rounds()
}

func (g *Game) RoundID() string {
	return g.roundID
}
