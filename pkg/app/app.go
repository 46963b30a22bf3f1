// Package app 组装游戏的所有组件并实现 ebiten.Game 接口
//
// 桌面端入口 (main.go) 和移动端入口 (mobile/) 共用这里的初始化逻辑。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "invaders"

// Config 应用启动配置
type Config struct {
	Verbose    bool   // 输出日志
	ConfigPath string // 游戏配置文件路径，为空时使用内置的 data/game.yaml
	Debug      bool   // 显示调试叠加层
	Scale      int    // 窗口放大倍数，0 表示使用配置文件中的值
}

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	gameConfig      *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化游戏应用
//
// 参数：
//   - cfg: 启动配置
//
// 返回：
//   - *App: 应用实例
//   - error: 游戏配置加载失败时返回错误
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Scale > 0 {
		gameConfig.Screen.Scale = cfg.Scale
	}
	log.Printf("[App] Playfield %dx%d, scale %d, %d TPS",
		gameConfig.Screen.Width, gameConfig.Screen.Height, gameConfig.Screen.Scale, gameConfig.Screen.TPS)

	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)
	resourceManager := game.NewResourceManager(audioContext)

	// 存储不可用时降级为仅内存设置
	var gdataManager *gdata.Manager
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: Failed to prepare storage dir: %v", err)
	}
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
	} else {
		gdataManager = m
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.LoadSounds(&gameConfig.Audio)
	audioManager.SetSoundVolume(settingsManager.GetSettings().SoundVolume)
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Config:          gameConfig,
			ResourceManager: resourceManager,
			AudioManager:    audioManager,
			SceneManager:    sceneManager,
			SettingsManager: settingsManager,
			Debug:           cfg.Debug,
			TouchGuides:     utils.IsMobile(),
		})
	})
	sceneManager.Reload()

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadConfig 加载游戏配置
// path 为空时读取内置的 data/game.yaml
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		gameConfig, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return gameConfig, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 未初始化嵌入资源，使用默认配置")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置配置读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内置配置: %s", config.DefaultGameConfigPath)
	return gameConfig, nil
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// ApplyWindowSettings 设置窗口标题、尺寸、TPS 和上次保存的全屏状态
// 仅桌面端调用
func (a *App) ApplyWindowSettings() {
	w, h := a.gameConfig.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.gameConfig.Screen.Title)
	ebiten.SetTPS(a.gameConfig.Screen.TPS)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 实现 ebiten.Game 接口
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting")
		a.Shutdown()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	deltaTime := 1.0 / float64(a.gameConfig.Screen.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 实现 ebiten.Game 接口
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回固定的逻辑画面尺寸，窗口缩放由 Ebitengine 处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// Shutdown 退出前保存当前场景的状态
func (a *App) Shutdown() {
	a.sceneManager.SaveOnExit()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 是否输出日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
