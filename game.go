package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/ecs/system"
	"github.com/milk9111/horde/prefabs"
	"github.com/milk9111/horde/save"
)

type gameState int

const (
	statePlaying gameState = iota
	statePaused
	stateGameOver
)

type Options struct {
	Debug bool
	Seed  uint64
	Watch bool
	Mute  bool
}

type Game struct {
	opts   Options
	frames int
	runs   int
	state  gameState
	quit   bool
	freeze int
	// set by menu buttons, handled at the start of the next Update
	restartRequested bool

	cfg   *prefabs.GameConfig
	world *ecs.World

	physics  *system.PhysicsSystem
	waves    *system.WaveSystem
	steering *system.SteeringSystem
	charm    *system.CharmSystem
	damage   *system.PlayerDamageSystem
	hud      *system.HUDSystem
	audio    *system.AudioSystem
	sprites  *system.SpriteRegistry

	watcher *prefabs.Watcher
	store   *save.Store

	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := prefabs.LoadGameConfig()
	if err != nil {
		return nil, fmt.Errorf("load game config: %w", err)
	}

	g := &Game{
		opts:    opts,
		cfg:     cfg,
		physics: system.NewPhysicsSystem(),
		hud:     system.NewHUDSystem(),
		sprites: system.NewSpriteRegistry(),
		store:   save.Open("horde"),
	}

	var audioCtx *audio.Context
	if !opts.Mute {
		audioCtx = audio.NewContext(system.SampleRate)
	}
	g.audio = system.NewAudioSystem(audioCtx)
	g.hud.Best = bestForHUD(g.store.Best())
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("[game] hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.newRun(); err != nil {
		return nil, err
	}
	return g, nil
}

// newRun replaces the world with a fresh one built from the current config.
func (g *Game) newRun() error {
	g.runs++
	seed := g.opts.Seed + uint64(g.runs)
	rng := rand.New(rand.NewPCG(seed, seed*0x9e3779b97f4a7c15))

	w := ecs.NewWorld()
	g.physics.Reset()
	g.waves = system.NewWaveSystem(seed)
	g.steering = system.NewSteeringSystem(g.cfg.Steering)
	g.charm = system.NewCharmSystem(g.cfg.Charm.Frames)
	g.damage = system.NewPlayerDamageSystem(g.cfg.Player.InvulnerableFrames)
	collisions := system.NewGameCollisionSystem()
	collisions.Debug = g.opts.Debug

	s := w.Scheduler()
	s.AddToStage(ecs.StagePreUpdate, system.NewInputSystem())

	s.AddToStage(ecs.StageUpdate, system.NewPlayerControllerSystem())
	s.AddToStage(ecs.StageUpdate, g.waves)
	s.AddToStage(ecs.StageUpdate, system.NewFormationSystem())
	s.AddToStage(ecs.StageUpdate, g.steering)
	s.AddToStage(ecs.StageUpdate, system.NewClusterRepulsionSystem(g.cfg.Steering.RepulsionRadius, g.cfg.Steering.RepulsionDivisor, seed))
	s.AddToStage(ecs.StageUpdate, system.NewOrbitSystem())
	s.AddToStage(ecs.StageUpdate, system.NewTweenSystem())
	s.AddToStage(ecs.StageUpdate, system.NewGemBobSystem())

	s.AddToStage(ecs.StagePhysics, g.physics)

	s.AddToStage(ecs.StagePostPhysics, collisions)
	s.AddToStage(ecs.StagePostPhysics, g.damage)
	s.AddToStage(ecs.StagePostPhysics, g.charm)
	s.AddToStage(ecs.StagePostPhysics, system.NewAllyCombatSystem())
	s.AddToStage(ecs.StagePostPhysics, system.NewWeaponDamageSystem())
	s.AddToStage(ecs.StagePostPhysics, system.NewGemCollectSystem())
	s.AddToStage(ecs.StagePostPhysics, system.NewGemDropSystem(g.cfg.Gems, rng))
	s.AddToStage(ecs.StagePostPhysics, system.NewRunStatsSystem())
	s.AddToStage(ecs.StagePostPhysics, system.NewHitFreezeSystem(g.cfg.Player.HitFreezeFrames, g.requestFreeze))

	s.AddToStage(ecs.StagePostUpdate, system.NewInvulnerableSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewCharmTimerSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewHitTintSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewSfxEventSystem())
	s.AddToStage(ecs.StagePostUpdate, g.audio)
	s.AddToStage(ecs.StagePostUpdate, system.NewWhiteFlashSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewTTLSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewAnimationSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewDepthSortSystem())
	s.AddToStage(ecs.StagePostUpdate, system.NewCameraSystem())

	w.AddRenderer(system.NewRenderSystem(g.sprites, g.cfg.Map.Size))
	w.AddRenderer(g.hud)

	if err := spawnRun(w, g.cfg); err != nil {
		return fmt.Errorf("new run: %w", err)
	}

	g.world = w
	g.state = statePlaying
	g.freeze = 0
	g.overUI = nil
	log.Printf("[game] run %d started (seed %d)", g.runs, seed)
	return nil
}

func spawnRun(w *ecs.World, cfg *prefabs.GameConfig) error {
	if _, err := entity.NewCamera(w); err != nil {
		return err
	}
	player, err := entity.NewPlayer(w, cfg)
	if err != nil {
		return err
	}
	for _, weapon := range cfg.Weapons {
		if _, err := entity.NewWeapon(w, weapon, player); err != nil {
			return err
		}
	}
	for _, wave := range cfg.Waves {
		if _, err := entity.NewWaveSpawner(w, wave); err != nil {
			return err
		}
	}
	for _, formation := range cfg.Formations {
		if _, err := entity.NewFormation(w, formation); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) requestFreeze(frames int) {
	if frames > g.freeze {
		g.freeze = frames
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.pollReload()
	if g.restartRequested {
		g.restartRequested = false
		return g.restart()
	}

	switch g.state {
	case statePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = statePlaying
			return nil
		}
		g.pauseUI.Update()
		return nil
	case stateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restart()
		}
		if g.overUI != nil {
			g.overUI.Update()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state = statePaused
		return nil
	}
	if g.freeze > 0 {
		g.freeze--
		return nil
	}

	g.world.Update()

	if stats := system.RunStatsOf(g.world); stats.Over {
		g.finishRun(stats.Frames, stats.Gems, stats.Kills)
	}
	return nil
}

func (g *Game) finishRun(frames, gems, kills int) {
	run := save.BestRun{Seconds: frames / common.TPS, Gems: gems, Kills: kills}
	newBest, err := g.store.Submit(run)
	if err != nil {
		log.Printf("[game] %v", err)
	}
	g.hud.Best = bestForHUD(g.store.Best())
	g.overUI = NewGameOverUI(g, run, newBest)
	g.state = stateGameOver
	log.Printf("[game] run %d over: %ds, %d gems, %d kills", g.runs, run.Seconds, run.Gems, run.Kills)
}

func (g *Game) restart() error {
	return g.newRun()
}

func (g *Game) resume() {
	if g.state == statePaused {
		g.state = statePlaying
	}
}

// pollReload applies prefab and script edits. Tuning changes take effect
// immediately; prefab changes apply to entities spawned afterwards.
func (g *Game) pollReload() {
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	entity.ResetPrefabCache()
	if g.waves != nil {
		g.waves.ReloadScripts()
	}

	for _, path := range changed {
		if !prefabs.IsGameConfig(path) {
			continue
		}
		cfg, err := prefabs.LoadGameConfig()
		if err != nil {
			log.Printf("[game] reload %s: %v", path, err)
			return
		}
		g.cfg = cfg
		g.steering.Tuning = cfg.Steering
		g.charm.Frames = cfg.Charm.Frames
		g.damage.InvulnerableFrames = cfg.Player.InvulnerableFrames
		log.Printf("[game] reloaded %s", path)
		return
	}
	log.Printf("[game] reloaded %d prefab file(s)", len(changed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawRunDebug(g.world, g.physics.BodyCount(), screen)
	}

	switch g.state {
	case statePaused:
		g.pauseUI.Draw(screen)
	case stateGameOver:
		if g.overUI != nil {
			g.overUI.Draw(screen)
		}
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func bestForHUD(b save.BestRun) system.BestRun {
	return system.BestRun{Seconds: b.Seconds, Gems: b.Gems, Kills: b.Kills}
}
