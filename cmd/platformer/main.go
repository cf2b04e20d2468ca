package main

import (
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/kinematic-platformer/assets"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/scenes"
	"github.com/automoto/kinematic-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const appName = "kinematic-platformer"

type Game struct {
	scene   *scenes.PlatformerScene
	watcher *cfg.Watcher
	config  *cfg.Config
}

func (g *Game) Update() error {
	pollWatcher(g.watcher, g.scene)
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.config.Width, g.config.Height
}

func main() {
	levelArg := flag.String("level", assets.DefaultLevelName, "Embedded level name, or a path to a .tmx file")
	configPath := flag.String("config", "", "YAML tunables file overlaid on the defaults")
	headless := flag.Bool("headless", false, "Run without a window and log the player state")
	steps := flag.Int("steps", 600, "Number of fixed steps to run in headless mode")
	watch := flag.Bool("watch", false, "Reload the -config file when it changes")
	flag.Parse()

	c := cfg.Default()
	if *configPath != "" {
		loaded, err := cfg.Load(os.DirFS(filepath.Dir(*configPath)), filepath.Base(*configPath))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		c = loaded
	}

	var watcher *cfg.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatalf("-watch needs -config")
		}
		w, err := cfg.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer w.Close()
		watcher = w
	}

	if *headless {
		scene, err := newScene(c, *levelArg, scenes.Options{})
		if err != nil {
			log.Fatalf("Failed to create scene: %v", err)
		}
		runHeadless(scene, watcher, *steps)
		return
	}

	persist := true
	if err := systems.InitPersistence(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		persist = false
	}

	scene, err := newScene(c, *levelArg, scenes.Options{PollInput: true, Persist: persist})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	loader := assets.NewAudioLoader(audio.NewContext(c.Audio.SampleRate), c.Audio)
	loader.PreloadSFX()
	systems.SetSoundPlayer(loader)

	ebiten.SetWindowSize(c.Width*2, c.Height*2)
	ebiten.SetWindowTitle("Kinematic Platformer")
	ebiten.SetTPS(int(math.Round(1 / c.Physics.FixedStep)))

	if err := ebiten.RunGame(&Game{scene: scene, watcher: watcher, config: c}); err != nil {
		log.Fatal(err)
	}
}

// newScene loads level either from a .tmx path on disk or by name from the
// embedded levels.
func newScene(c *cfg.Config, level string, opts scenes.Options) (*scenes.PlatformerScene, error) {
	if strings.HasSuffix(level, ".tmx") {
		return scenes.NewPlatformerScene(c, os.DirFS(filepath.Dir(level)), filepath.Base(level), opts)
	}
	data, err := assets.LoadLevel(level)
	if err != nil {
		return nil, err
	}
	return scenes.NewPlatformerSceneFromData(c, data, opts)
}

// pollWatcher applies reloaded configs without blocking the step.
func pollWatcher(w *cfg.Watcher, scene *scenes.PlatformerScene) {
	if w == nil {
		return
	}
	select {
	case c, ok := <-w.Configs:
		if ok {
			log.Printf("config reloaded")
			scene.SetConfig(c)
		}
	case err, ok := <-w.Errors:
		if ok {
			log.Printf("Warning: config reload failed: %v", err)
		}
	default:
	}
}
