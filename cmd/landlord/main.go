package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/landlord-rules/internal/config"
	"github.com/palemoky/landlord-rules/internal/logger"
	"github.com/palemoky/landlord-rules/internal/storage"
	"github.com/palemoky/landlord-rules/internal/table"
	"github.com/palemoky/landlord-rules/internal/ui/common"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	classify := flag.String("classify", "", "识别牌型，如 33344456、BR")
	deal := flag.Bool("deal", false, "洗牌发牌并显示三家手牌")
	save := flag.Bool("save", false, "与 -deal 一起使用，把牌桌保存到 Redis")
	load := flag.String("load", "", "从 Redis 加载指定 ID 的牌桌并显示")
	list := flag.Bool("list", false, "恢复并列出 Redis 中保存的牌桌")
	seed := flag.Uint64("seed", 0, "洗牌种子，0 表示随机")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *seed != 0 {
		cfg.Table.Seed = *seed
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 只有需要持久化时才连接 Redis
	var client *redis.Client
	var store table.Store
	if *save || *load != "" || *list {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()
		store = storage.NewRedisStore(client, cfg.Table.ExpirationDuration())
	}
	app := newApp(table.NewManager(store, cfg.Table.Seed), cfg.Table.ExpirationDuration(), os.Stdout)

	switch {
	case *classify != "":
		err = app.classify(*classify)
	case *deal:
		err = app.deal(ctx, *save)
	case *load != "":
		err = app.load(ctx, *load)
	case *list:
		err = app.list(ctx)
	default:
		flag.Usage()
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrorStyle.Render(err.Error()))
		if client != nil {
			_ = client.Close()
		}
		logger.Close()
		os.Exit(1)
	}
}
