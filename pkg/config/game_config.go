package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内置默认配置在嵌入资源中的路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏调参配置
//
// 包含画面尺寸、玩家、入侵者、子弹、阵型、音频和精灵图的全部可调参数。
// 未在 YAML 中出现的字段保留 DefaultGameConfig 中的默认值。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Invader   InvaderConfig   `yaml:"invader"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Formation FormationConfig `yaml:"formation"`
	Audio     AudioConfig     `yaml:"audio"`
	Sprites   SpritesConfig   `yaml:"sprites"`
}

// ScreenConfig 画面配置
type ScreenConfig struct {
	Width      int         `yaml:"width"`      // 逻辑画面宽度（像素）
	Height     int         `yaml:"height"`     // 逻辑画面高度（像素）
	Scale      int         `yaml:"scale"`      // 窗口放大倍数
	TPS        int         `yaml:"tps"`        // 每秒 tick 数
	Title      string      `yaml:"title"`      // 窗口标题
	Background ColorConfig `yaml:"background"` // 清屏颜色
}

// PlayerConfig 玩家飞船配置
type PlayerConfig struct {
	Width           float64     `yaml:"width"`
	Height          float64     `yaml:"height"`
	Step            float64     `yaml:"step"`            // 每 tick 水平移动距离
	ShootIntervalMs int         `yaml:"shootIntervalMs"` // 最小射击间隔（毫秒）
	BulletOffsetY   float64     `yaml:"bulletOffsetY"`   // 子弹出生点在飞船顶部之上的额外偏移
	BulletSpeed     float64     `yaml:"bulletSpeed"`     // 子弹向上的速度（像素/tick）
	Color           ColorConfig `yaml:"color"`
}

// InvaderConfig 入侵者配置
type InvaderConfig struct {
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	SpeedX        float64     `yaml:"speedX"`        // 初始水平速度
	PatrolRange   float64     `yaml:"patrolRange"`   // 巡逻窗口宽度
	FireThreshold float64     `yaml:"fireThreshold"` // 随机数超过该阈值时尝试开火
	BulletSpeed   float64     `yaml:"bulletSpeed"`   // 子弹向下的速度（像素/tick）
	BulletSpread  float64     `yaml:"bulletSpread"`  // 子弹水平速度的随机范围宽度，以 0 为中心
	Color         ColorConfig `yaml:"color"`
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// OffscreenMargin 子弹完全离开画面超过该距离后被回收
	OffscreenMargin float64     `yaml:"offscreenMargin"`
	Color           ColorConfig `yaml:"color"`
}

// FormationConfig 入侵者初始阵型配置
//
// 第 i 个入侵者的位置为:
//
//	x = OriginX + (i % Columns) * SpacingX
//	y = OriginY + (i % Rows) * SpacingY
type FormationConfig struct {
	Count    int     `yaml:"count"`
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	OriginX  float64 `yaml:"originX"`
	OriginY  float64 `yaml:"originY"`
	SpacingX float64 `yaml:"spacingX"`
	SpacingY float64 `yaml:"spacingY"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	SampleRate int `yaml:"sampleRate"`
	// ShootSound 射击音效文件路径（.wav/.mp3/.ogg），为空时使用合成音
	ShootSound      string  `yaml:"shootSound"`
	ShootFrequency  float64 `yaml:"shootFrequency"`  // 合成音起始频率（Hz）
	ShootDurationMs int     `yaml:"shootDurationMs"` // 合成音时长（毫秒）
}

// SpritesConfig 精灵图配置
// Sheet 为空时所有实体都绘制为纯色矩形
type SpritesConfig struct {
	Sheet      string `yaml:"sheet"`
	CellWidth  int    `yaml:"cellWidth"`
	CellHeight int    `yaml:"cellHeight"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
}

// ColorConfig RGBA 颜色
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA 转换为 image/color 颜色
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:      310,
			Height:     310,
			Scale:      2,
			TPS:        60,
			Title:      "Invaders",
			Background: ColorConfig{R: 0, G: 0, B: 0, A: 255},
		},
		Player: PlayerConfig{
			Width:           15,
			Height:          15,
			Step:            2,
			ShootIntervalMs: 250,
			BulletOffsetY:   10,
			BulletSpeed:     7,
			Color:           ColorConfig{R: 120, G: 220, B: 120, A: 255},
		},
		Invader: InvaderConfig{
			Width:         15,
			Height:        15,
			SpeedX:        0.3,
			PatrolRange:   40,
			FireThreshold: 0.995,
			BulletSpeed:   2,
			BulletSpread:  1,
			Color:         ColorConfig{R: 230, G: 230, B: 230, A: 255},
		},
		Bullet: BulletConfig{
			Width:           3,
			Height:          3,
			OffscreenMargin: 20,
			Color:           ColorConfig{R: 255, G: 255, B: 255, A: 255},
		},
		Formation: FormationConfig{
			Count:    24,
			Columns:  8,
			Rows:     3,
			OriginX:  35,
			OriginY:  35,
			SpacingX: 30,
			SpacingY: 30,
		},
		Audio: AudioConfig{
			SampleRate:      48000,
			ShootFrequency:  880,
			ShootDurationMs: 90,
		},
		Sprites: SpritesConfig{
			CellWidth:  16,
			CellHeight: 16,
			Columns:    4,
			Rows:       1,
		},
	}
}

// LoadGameConfig 从文件系统加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 以默认配置为基础，YAML 中出现的字段覆盖默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 画面尺寸和放大倍数必须为正
//   - 所有实体尺寸不能为负
//   - 开火阈值必须在 [0, 1] 内
//   - 阵型行列数必须为正
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("screen scale must be positive, got %d", c.Screen.Scale)
	}
	if c.Screen.TPS <= 0 {
		return fmt.Errorf("screen tps must be positive, got %d", c.Screen.TPS)
	}

	sizes := []struct {
		name          string
		width, height float64
	}{
		{"player", c.Player.Width, c.Player.Height},
		{"invader", c.Invader.Width, c.Invader.Height},
		{"bullet", c.Bullet.Width, c.Bullet.Height},
	}
	for _, s := range sizes {
		if s.width < 0 || s.height < 0 {
			return fmt.Errorf("%s size must be non-negative, got %.1fx%.1f", s.name, s.width, s.height)
		}
	}

	if c.Player.ShootIntervalMs < 0 {
		return fmt.Errorf("player shootIntervalMs must be non-negative, got %d", c.Player.ShootIntervalMs)
	}
	if c.Invader.PatrolRange < 0 {
		return fmt.Errorf("invader patrolRange must be non-negative, got %.1f", c.Invader.PatrolRange)
	}
	if c.Invader.FireThreshold < 0 || c.Invader.FireThreshold > 1 {
		return fmt.Errorf("invader fireThreshold must be within [0, 1], got %.3f", c.Invader.FireThreshold)
	}
	if c.Bullet.OffscreenMargin < 0 {
		return fmt.Errorf("bullet offscreenMargin must be non-negative, got %.1f", c.Bullet.OffscreenMargin)
	}

	if c.Formation.Count < 0 {
		return fmt.Errorf("formation count must be non-negative, got %d", c.Formation.Count)
	}
	if c.Formation.Columns <= 0 || c.Formation.Rows <= 0 {
		return fmt.Errorf("formation columns and rows must be positive, got %dx%d",
			c.Formation.Columns, c.Formation.Rows)
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sampleRate must be positive, got %d", c.Audio.SampleRate)
	}

	if c.Sprites.Sheet != "" {
		if c.Sprites.CellWidth <= 0 || c.Sprites.CellHeight <= 0 {
			return fmt.Errorf("sprite cell size must be positive, got %dx%d",
				c.Sprites.CellWidth, c.Sprites.CellHeight)
		}
		if c.Sprites.Columns <= 0 || c.Sprites.Rows <= 0 {
			return fmt.Errorf("sprite grid must be positive, got %dx%d",
				c.Sprites.Columns, c.Sprites.Rows)
		}
	}

	return nil
}

// ShootInterval 玩家最小射击间隔
func (c *GameConfig) ShootInterval() time.Duration {
	return time.Duration(c.Player.ShootIntervalMs) * time.Millisecond
}

// WindowSize 返回放大后的窗口尺寸
func (c *GameConfig) WindowSize() (int, int) {
	return c.Screen.Width * c.Screen.Scale, c.Screen.Height * c.Screen.Scale
}
