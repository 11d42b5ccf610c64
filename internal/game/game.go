package game

import (
	"fmt"
	"math/rand"
	"time"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/generate"
	"chunk-roguelike/internal/logger"
	"chunk-roguelike/internal/msglog"
	"chunk-roguelike/internal/render"
	"chunk-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Starting positions of the bootstrap entities.
var (
	PlayerStart = component.Position{X: 2, Y: 2, Z: 0}
	DragonStart = component.Position{X: 2, Y: 14, Z: 0}
	SheepStart  = component.Position{X: 3, Y: 2, Z: 0}
)

const helpText = "Arrows/hjkl move, e interacts, y/u change layer, p uses an item, q quits."

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      Config
	world    *gamemap.Map
	entities *entity.Manager
	spawner  *system.Spawner
	messages *msglog.Log
	runLog   RunLog
	quit     bool
}

// New creates a Game on a freshly initialised terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return NewWithScreen(screen, cfg, time.Now()), nil
}

// NewWithScreen builds the world and bootstrap entities and draws on screen.
// The screen must already be initialised.
func NewWithScreen(screen tcell.Screen, cfg Config, now time.Time) *Game {
	cfg = cfg.normalized()
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		world:    gamemap.New(generate.Pattern),
		messages: msglog.New(cfg.LogCapacity),
		runLog:   RunLog{Seed: cfg.Seed, LevelReached: 1, Deaths: make(map[string]int)},
	}

	player := entity.NewPlayer(PlayerStart)
	g.entities = entity.NewManager(player)
	g.entities.Add(entity.NewAI(entity.Dragon, DragonStart))
	g.entities.Add(entity.NewAI(entity.Sheep, SheepStart))

	g.world.LoadAround(player.Position, cfg.LoadRadius)
	system.UpdateVisibility(player.Position, cfg.FOVRange, g.world)
	g.spawner = system.NewSpawner(cfg.Spawner, rand.New(rand.NewSource(cfg.Seed)), now)
	g.messages.Push(helpText)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"fov":       cfg.FOVRange,
		"chunks":    g.world.ChunkCount(),
	}).Info("Game started.")
	return g
}

// Player returns the player entity.
func (g *Game) Player() *entity.Entity { return g.entities.Player() }

// Entities returns the entity manager.
func (g *Game) Entities() *entity.Manager { return g.entities }

// World returns the map.
func (g *Game) World() *gamemap.Map { return g.world }

// Messages returns the message log.
func (g *Game) Messages() *msglog.Log { return g.messages }

// RunLog returns the statistics gathered so far.
func (g *Game) RunLog() RunLog { return g.runLog }

// Step handles one command and then makes a spawn attempt. It returns false
// once the player asked to quit. A dead player can only quit.
func (g *Game) Step(cmd Command, now time.Time) bool {
	if cmd == CmdQuit {
		g.quit = true
		return false
	}
	if g.Player().IsDead() {
		return true
	}

	switch cmd {
	case CmdNone:
	case CmdUseItem:
		if g.useItem() {
			g.tick(system.CmdWait)
		}
	default:
		g.tick(cmd.systemCommand())
	}

	if g.cfg.SpawnEnabled {
		if _, ok := g.spawner.TrySpawn(now, g.entities, g.world, g.messages); ok {
			g.runLog.Spawned++
		}
	}
	return true
}

// tick advances every entity by one turn and updates the run statistics.
func (g *Game) tick(cmd system.Command) {
	dead := system.Tick(g.entities, cmd, g.world, g.messages, g.cfg.FOVRange)

	player := g.Player()
	g.runLog.TurnsPlayed++
	g.runLog.LevelReached = max(g.runLog.LevelReached, player.Level.Level)
	g.runLog.HighestLayer = max(g.runLog.HighestLayer, player.Position.Z)
	g.runLog.DeepestLayer = min(g.runLog.DeepestLayer, player.Position.Z)
	for _, e := range dead {
		g.runLog.Deaths[e.Kind.String()]++
	}
	if player.IsDead() && !g.runLog.PlayerDied {
		g.runLog.PlayerDied = true
		g.messages.Push("You died.")
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"turns":     g.runLog.TurnsPlayed,
			"pos":       player.Position,
		}).Info("Player died.")
	}
}

// useItem uses the first item in the player's inventory: equipment is
// equipped, anything else is consumed for its healing.
func (g *Game) useItem() bool {
	player := g.Player()
	if player.Inventory.Len() == 0 {
		g.messages.Push("Your inventory is empty.")
		return false
	}
	it := player.Inventory.Items[0]
	healed, ok := player.UseItem(0)
	if !ok {
		return false
	}
	if it.Equipable() {
		g.messages.Push(fmt.Sprintf("%s equips %s", player.Symbol(), it.Name))
	} else {
		g.messages.Push(fmt.Sprintf("%s uses %s (+%d PV)", player.Symbol(), it.Name, healed))
	}
	return true
}

// Inspect describes what is drawn at screen cell (x, y): the entity there if
// any, otherwise the tile.
func (g *Game) Inspect(x, y int) (string, bool) {
	area := g.renderer.WorldArea()
	if x < area.X || y < area.Y || x >= area.X+area.Width || y >= area.Y+area.Height {
		return "", false
	}
	p := g.renderer.Camera().ScreenToWorld(x, y, area)
	if e, ok := g.entities.EntityAt(p); ok {
		return fmt.Sprintf("Entity: %s %s (%d/%d PV)", e.Symbol(), e.Name, e.Stats.HP, e.Stats.MaxHP), true
	}
	if t, ok := g.world.Tile(p); ok && g.world.IsRevealed(p) {
		return fmt.Sprintf("Tile: %s", t.Glyph()), true
	}
	return "", false
}

func (g *Game) draw() {
	g.renderer.CenterOn(g.Player().Position)
	g.renderer.DrawFrame(g.world, g.entities, g.messages.Lines())
}

// Run is the main game loop. Keys drive turns; a ticker keeps redraws and
// spawn attempts going between key presses.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer g.finish()

	done := make(chan struct{})
	defer close(done)
	go g.pace(done)

	for !g.quit {
		g.draw()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.Step(KeyToCommand(ev), time.Now())
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				if msg, ok := g.Inspect(ev.Position()); ok {
					g.messages.Push(msg)
				}
			}
		case *tcell.EventInterrupt:
			g.Step(CmdNone, time.Now())
		}
	}
}

// pace posts an interrupt every frame until done is closed.
func (g *Game) pace(done <-chan struct{}) {
	t := time.NewTicker(g.cfg.FrameInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// finish records the session once the loop exits.
func (g *Game) finish() {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"turns":     g.runLog.TurnsPlayed,
		"level":     g.runLog.LevelReached,
	})
	if g.cfg.SaveRunLog {
		if err := saveRunLog(g.runLog); err != nil {
			log.WithError(err).Warn("Could not save run log.")
		}
	}
	log.Info("Game over.")
}
