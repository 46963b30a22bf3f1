// invaders-tty 在终端中运行游戏
//
// 用法:
//
//	go run ./cmd/invaders-tty [-config data/game.yaml] [-mute] [-verbose]
//
// 按键: ←/→ 或 a/d 移动，空格开火，m 切换音效，Esc/q/Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terminal"
	"github.com/decker502/invaders/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "把日志写入 invaders-tty.log")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	mute       = flag.Bool("mute", false, "关闭音效")
)

// ttyGame 终端游戏主循环的状态
type ttyGame struct {
	screen   tcell.Screen
	world    *game.World
	renderer *terminal.Renderer
	keyboard *terminal.Keyboard
	sound    *terminal.Sound // mute 或没有音频设备时为 nil
	tick     time.Duration
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	g, err := newTTYGame(cfg, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}

// setupLogging 终端被界面占用，日志只能写文件
func setupLogging(verbose bool) (*os.File, error) {
	if !verbose {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile("invaders-tty.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(path)
}

func newTTYGame(cfg *config.GameConfig, mute bool) (*ttyGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &ttyGame{
		screen:   screen,
		renderer: terminal.NewRenderer(screen, float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		keyboard: terminal.NewKeyboard(terminal.DefaultHoldWindow),
		tick:     time.Second / time.Duration(cfg.Screen.TPS),
	}

	var soundPlayer entities.SoundPlayer
	if !mute {
		sound := terminal.NewSound(&cfg.Audio)
		if err := sound.Init(); err != nil {
			log.Printf("[TTY] Warning: %v (running without sound)", err)
		} else {
			g.sound = sound
			soundPlayer = sound
		}
	}

	input := utils.NewInputState()
	input.Subscribe(g.keyboard)
	g.world = game.NewWorld(cfg, input, soundPlayer, nil, nil)

	return g, nil
}

func (g *ttyGame) run() {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.keyboard.Tick(now)
			g.world.Update()
			g.draw()
		}
	}
}

// handleEvent 返回 false 表示退出
func (g *ttyGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
			if g.sound != nil {
				log.Printf("[TTY] Sound enabled: %v", g.sound.Toggle())
			}
			return true
		}
		g.keyboard.HandleEvent(ev, time.Now())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *ttyGame) draw() {
	g.world.Draw(g.renderer)

	c := g.world.Counts()
	soundOn := g.sound != nil && g.sound.Enabled()
	status := fmt.Sprintf(" invaders:%d bullets:%d player:%d sound:%v  [←/→ move, space fire, m sound, q quit] ",
		c.Invaders, c.Bullets, c.Players, soundOn)
	g.renderer.DrawText(0, 0, status, tcell.StyleDefault.Reverse(true))

	g.screen.Show()
}

func (g *ttyGame) cleanup() {
	if g.sound != nil {
		g.sound.Close()
	}
	g.screen.Fini()
}
