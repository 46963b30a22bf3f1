// simulate 在没有显示设备的情况下运行游戏世界
//
// 玩家按固定脚本左右移动并定期开火，时钟按 tick 推进，
// 结果只取决于 -seed。用于检查长时间运行时子弹数量是否有界。
//
// 用法:
//
//	go run ./cmd/simulate -ticks 3600 -seed 1 -fire-every 15
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/utils"
)

var (
	ticks      = flag.Int("ticks", 3600, "模拟的 tick 数")
	seed       = flag.Int64("seed", 1, "随机数种子")
	fireEvery  = flag.Int("fire-every", 15, "每隔多少 tick 按一次开火（0 表示不开火）")
	sweepTicks = flag.Int("sweep", 120, "玩家每个方向移动的 tick 数")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	verbose    = flag.Bool("verbose", false, "输出过程日志")
)

// simStats 模拟结果
type simStats struct {
	ticks      int
	final      game.BodyCounts
	peakBodies int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	stats := simulate(cfg, *ticks, *seed, *fireEvery, *sweepTicks)

	fmt.Printf("ticks:        %d\n", stats.ticks)
	fmt.Printf("invaders:     %d\n", stats.final.Invaders)
	fmt.Printf("bullets:      %d\n", stats.final.Bullets)
	fmt.Printf("player alive: %v\n", stats.final.Players > 0)
	fmt.Printf("peak bodies:  %d\n", stats.peakBodies)
}

// simulate 运行脚本化的一局
func simulate(cfg *config.GameConfig, ticks int, seed int64, fireEvery, sweepTicks int) simStats {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	step := time.Second / time.Duration(cfg.Screen.TPS)
	clock := func() time.Time { return now }

	input := utils.NewInputState()
	world := game.NewWorld(cfg, input, nil, clock, rand.New(rand.NewSource(seed)))

	stats := simStats{ticks: ticks}
	for i := 0; i < ticks; i++ {
		scriptInput(input, i, fireEvery, sweepTicks)
		world.Update()
		now = now.Add(step)

		if n := world.Len(); n > stats.peakBodies {
			stats.peakBodies = n
		}
		if (i+1)%cfg.Screen.TPS == 0 {
			c := world.Counts()
			log.Printf("[Simulate] tick %d: invaders=%d bullets=%d player=%d",
				i+1, c.Invaders, c.Bullets, c.Players)
		}
	}

	stats.final = world.Counts()
	return stats
}

// scriptInput 设置第 tick 帧的按键
// 开火帧松开方向键，因为移动优先于开火
func scriptInput(input *utils.InputState, tick, fireEvery, sweepTicks int) {
	input.Reset()

	if fireEvery > 0 && tick%fireEvery == 0 {
		input.KeyDown(utils.KeySpace)
		return
	}
	if sweepTicks <= 0 {
		return
	}

	if (tick/sweepTicks)%2 == 0 {
		input.KeyDown(utils.KeyLeft)
	} else {
		input.KeyDown(utils.KeyRight)
	}
}
