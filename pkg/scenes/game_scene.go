package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
)

// touchGuideColor 触摸分区参考线颜色
var touchGuideColor = color.RGBA{R: 255, G: 255, B: 255, A: 40}

// GameSceneOptions 创建游戏场景所需的依赖
type GameSceneOptions struct {
	Config          *config.GameConfig
	ResourceManager *game.ResourceManager
	AudioManager    *game.AudioManager    // 可为 nil（静音）
	SceneManager    *game.SceneManager    // 可为 nil（不支持 R 键重开）
	SettingsManager *game.SettingsManager // 可为 nil（不保存设置）
	Debug           bool                  // 显示调试信息
	TouchGuides     bool                  // 绘制触摸分区参考线
}

// GameScene 游戏主场景
//
// 每帧先轮询输入，再处理热键（M 切换音效，R 重新开始），最后推进世界。
type GameScene struct {
	world        *game.World
	input        *utils.InputState
	unsubscribe  func()
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem

	audioManager    *game.AudioManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	width, height float64
	debug         bool
	touchGuides   bool
}

// NewGameScene 创建游戏场景
//
// 精灵图加载失败时记录警告，实体退回到纯色矩形绘制。
func NewGameScene(opts GameSceneOptions) *GameScene {
	cfg := opts.Config

	var sheet *ebiten.Image
	if cfg.Sprites.Sheet != "" && opts.ResourceManager != nil {
		img, err := opts.ResourceManager.LoadImage(cfg.Sprites.Sheet)
		if err != nil {
			log.Printf("[GameScene] Warning: %v (drawing rectangles)", err)
		} else {
			sheet = img
		}
	}

	inputSystem := systems.NewInputSystem(cfg.Screen.Width)
	input := utils.NewInputState()
	unsubscribe := input.Subscribe(inputSystem)

	// 避免把 nil 指针包装成非 nil 接口
	var sound entities.SoundPlayer
	if opts.AudioManager != nil {
		sound = opts.AudioManager
	}

	s := &GameScene{
		world:           game.NewWorld(cfg, input, sound, nil, nil),
		input:           input,
		unsubscribe:     unsubscribe,
		inputSystem:     inputSystem,
		renderSystem:    systems.NewRenderSystem(sheet, cfg.Screen.Background.RGBA()),
		audioManager:    opts.AudioManager,
		sceneManager:    opts.SceneManager,
		settingsManager: opts.SettingsManager,
		width:           float64(cfg.Screen.Width),
		height:          float64(cfg.Screen.Height),
		debug:           opts.Debug,
		touchGuides:     opts.TouchGuides,
	}

	log.Printf("[GameScene] Scene created (sprites: %v, debug: %v)", sheet != nil, opts.Debug)
	return s
}

// World 返回场景持有的游戏世界
func (s *GameScene) World() *game.World {
	return s.world
}

// Update 每帧调用一次
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.audioManager != nil {
		s.audioManager.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		s.Close()
		s.sceneManager.Reload()
		return
	}

	s.step()
}

// step 推进一个 tick
func (s *GameScene) step() {
	s.world.Update()
}

// Draw 绘制世界和可选的叠加层
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.SetTarget(screen)
	s.world.Draw(s.renderSystem)

	if s.touchGuides {
		s.drawTouchGuides(screen)
	}
	if s.debug {
		ebitenutil.DebugPrint(screen, s.debugText())
	}
}

// drawTouchGuides 绘制三个触摸分区之间的分隔线
func (s *GameScene) drawTouchGuides(screen *ebiten.Image) {
	third := float32(s.width / 3)
	h := float32(s.height)
	vector.StrokeLine(screen, third, 0, third, h, 1, touchGuideColor, false)
	vector.StrokeLine(screen, 2*third, 0, 2*third, h, 1, touchGuideColor, false)
}

// debugText 调试叠加层文本
func (s *GameScene) debugText() string {
	c := s.world.Counts()
	soundOn := s.audioManager != nil && s.audioManager.IsSoundEnabled()
	return fmt.Sprintf("TPS: %.1f\nTick: %d\nInvaders: %d\nBullets: %d\nPlayer: %d\nSound: %v",
		ebiten.ActualTPS(), s.world.Tick(), c.Invaders, c.Bullets, c.Players, soundOn)
}

// Close 取消输入订阅
func (s *GameScene) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// SaveOnExit 保存设置并释放输入订阅
// 实现 game.Saveable 接口
func (s *GameScene) SaveOnExit() bool {
	s.Close()

	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		return false
	}
	return true
}
