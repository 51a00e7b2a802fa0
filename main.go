// @title Student Learning Assistant API
// @version 1.0
// @description 学生成绩分析、个性化学习建议与学习助手对话服务。

// @contact.name API支持
// @contact.url http://www.swagger.io/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"flag"
	"learning_assistant_backend/internal/app"
	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"
	"log"
	"os"
	"time"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	publish := flag.String("publish-dataset", "", "将本地CSV上传到MinIO的数据集对象后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *publish != "" {
		if err := publishDataset(cfg, *publish); err != nil {
			log.Fatalf("Failed to publish dataset: %v", err)
		}
		log.Printf("Dataset uploaded to bucket %s as %s", cfg.Storage.MinioBucket, cfg.Dataset.Object)
		return
	}

	application := app.NewApp(cfg, *configDir)
	application.Run()
}

func publishDataset(cfg *config.Config, path string) error {
	if cfg.Storage.Type != util.StorageMinio {
		log.Printf("storage.type is %q, uploading to MinIO anyway", cfg.Storage.Type)
	}
	provider, err := service.NewMinioDatasetProvider(&cfg.Storage)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return provider.Upload(ctx, cfg.Dataset.Object, f, info.Size())
}
