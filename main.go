package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	debug      = flag.Bool("debug", false, "显示调试叠加层（TPS、实体数量）")
	scale      = flag.Int("scale", 0, "窗口放大倍数（0 表示使用配置文件中的值）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Debug:      *debug,
		Scale:      *scale,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	gameApp.ApplyWindowSettings()

	// 关闭窗口时同样保存设置
	defer gameApp.Shutdown()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
