package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	toneaudio "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/embedded"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and sound effects,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Paths are first looked up in the embedded file system (when initialized)
// and then on the local file system.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load everything from the game
// goroutine before the first frame.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded audio players: key -> Player
	audioContext *audio.Context           // Global audio context, nil disables audio
}

// NewResourceManager creates and returns a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context. May be nil, in which case
//     every audio load returns an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// readResource reads a resource from the embedded FS, falling back to disk.
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/sprites.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "assets/shoot.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable, cannot load %s", path)
	}

	audioData, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// NewToneSound synthesizes the shoot cue and caches its player under key.
//
// Parameters:
//   - key: Cache key (e.g., "tone:shoot")
//   - frequency: Start frequency of the sweep in Hz
//   - duration: Length of the cue
func (rm *ResourceManager) NewToneSound(key string, frequency float64, duration time.Duration) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable, cannot synthesize %s", key)
	}

	tone, err := toneaudio.NewShootTone(rm.audioContext.SampleRate(), frequency, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize %s: %w", key, err)
	}

	player, err := rm.audioContext.NewPlayer(tone)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", key, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// If the audio has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetAudioPlayer(key string) *audio.Player {
	return rm.audioCache[key]
}
