package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制和开关（从 SettingsManager 读取设置）
//   - 通过音效ID播放，无需关心资源路径
//
// 实现 entities.SoundPlayer 接口。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置），可为 nil
	soundPlayers    map[string]*audio.Player // 音效播放器（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// LoadSounds 根据配置加载射击音效
//
// 配置了音效文件时从文件解码，加载失败或未配置时使用合成音。
// 合成也失败（例如没有音频上下文）时返回 false，游戏以静音继续。
func (am *AudioManager) LoadSounds(cfg *config.AudioConfig) bool {
	if cfg.ShootSound != "" {
		player, err := am.resourceManager.LoadSoundEffect(cfg.ShootSound)
		if err == nil {
			am.soundPlayers[entities.SoundShoot] = player
			log.Printf("[AudioManager] Loaded shoot sound: %s", cfg.ShootSound)
			return true
		}
		log.Printf("[AudioManager] Warning: %v (falling back to synthesized tone)", err)
	}

	duration := time.Duration(cfg.ShootDurationMs) * time.Millisecond
	player, err := am.resourceManager.NewToneSound("tone:"+entities.SoundShoot, cfg.ShootFrequency, duration)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v (shoot sound disabled)", err)
		return false
	}

	am.soundPlayers[entities.SoundShoot] = player
	log.Printf("[AudioManager] Synthesized shoot sound (%.0f Hz, %v)", cfg.ShootFrequency, duration)
	return true
}

// RegisterSound 注册已创建的播放器
func (am *AudioManager) RegisterSound(soundID string, player *audio.Player) {
	am.soundPlayers[soundID] = player
}

// PlaySound 播放音效
// 每次播放都先回到开头，连续触发时重新开始而不是叠加
//
// 参数：
//   - soundID: 音效ID（如 entities.SoundShoot）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.IsSoundEnabled() {
		return false
	}

	player := am.soundPlayers[soundID]
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// IsSoundEnabled 音效是否启用
func (am *AudioManager) IsSoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// ToggleSound 切换音效开关并保存设置
//
// 返回：
//   - bool: 切换后的开关状态
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}

	enabled := am.settingsManager.ToggleSound()
	if !enabled {
		for _, player := range am.soundPlayers {
			player.Pause()
		}
	}

	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	volume = clampVolume(volume)
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// getSoundVolume 获取当前音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
